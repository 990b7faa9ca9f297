package models

import "strings"

// Delivery channels for one-time passcodes.
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Link handshake outcomes stored under linkResult:<code> and returned by the
// status-polling endpoint.
const (
	LinkStatusPending       = "pending"
	LinkStatusSuccess       = "success"
	LinkStatusAlreadyLinked = "already_linked"
)

// LoginRequest represents a password login attempt
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents a new account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
}

// TempSession is returned after successful password authentication: the
// opaque handle proves the first factor pending OTP completion. Email is
// masked before it leaves the service.
type TempSession struct {
	TempToken string `json:"temp_token"`
	Email     string `json:"email"`
}

// RequestOTPRequest asks for a passcode on the given channel
type RequestOTPRequest struct {
	TempToken string `json:"temp_token" validate:"required"`
	Channel   string `json:"channel"`
}

// OTPIssueResult reports a successful passcode dispatch
type OTPIssueResult struct {
	Channel           string `json:"channel"`
	AttemptsUsed      int    `json:"attempts_used"`
	AttemptsRemaining int    `json:"attempts_remaining"`
	Delivered         bool   `json:"delivered"`
}

// VerifyOTPRequest submits a passcode for verification
type VerifyOTPRequest struct {
	TempToken string `json:"temp_token" validate:"required"`
	OTP       string `json:"otp" validate:"required"`
}

// AuthResponse represents the response after full authentication
type AuthResponse struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	Roles     string `json:"roles"`
	ExpiresAt int64  `json:"expires_at"`
}

// LinkCode correlates an HTTP-issued linking request with the bot transport
type LinkCode struct {
	Code        string `json:"code"`
	BotUsername string `json:"bot_username"`
}

// AuthEvent is published to the audit topic after notable auth transitions
type AuthEvent struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	Channel   string `json:"channel,omitempty"`
	ChatID    string `json:"chat_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Audit event types
const (
	EventLoginSucceeded = "login_succeeded"
	EventUserRegistered = "user_registered"
	EventOTPIssued      = "otp_issued"
	EventOTPVerified    = "otp_verified"
	EventAccountLinked  = "account_linked"
)

// SplitRoles converts a stored comma-separated role list into authorities.
func SplitRoles(roles string) []string {
	if roles == "" {
		return nil
	}
	parts := strings.Split(roles, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinRoles converts authorities back into the stored representation.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}
