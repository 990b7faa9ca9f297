package utils

import "strings"

// MaskEmail hides most of the local part of an address so the login response
// can hint at the OTP destination without disclosing it.
// "alice@example.com" becomes "a***e@example.com".
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return strings.Repeat("*", len(local)) + domain
	}
	return local[:1] + "***" + local[len(local)-1:] + domain
}
