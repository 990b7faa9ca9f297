package utils

import "strings"

// NormalizePhone reduces a phone number to its canonical digits-only form.
// Telegram sends contacts as "+62 812-3456-789" while the registry may hold
// "0812 3456 789"; both sides are normalized before comparison.
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhonesMatch reports whether two phone numbers refer to the same
// subscriber after normalization. Empty numbers never match.
func PhonesMatch(a, b string) bool {
	na, nb := NormalizePhone(a), NormalizePhone(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}
