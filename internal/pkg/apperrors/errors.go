package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// Domain outcomes surfaced to callers. Handlers translate these with
// errors.Is into distinct HTTP responses; anything not in this set is an
// internal error and must be reported generically.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrSessionExpired     = errors.New("invalid or expired session")
	ErrCodeExpired        = errors.New("OTP expired or not issued")
	ErrInvalidCode        = errors.New("invalid OTP")
	ErrUserNotFound       = errors.New("user not found")
	ErrTelegramNotLinked  = errors.New("telegram not linked for user")
)

// RateLimitError is returned when the OTP resend cap is exceeded. RetryAfter
// is derived from the attempt counter's remaining TTL, never from a
// separately tracked timestamp.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	mins := int(e.RetryAfter.Minutes())
	secs := int(e.RetryAfter.Seconds()) % 60
	return fmt.Sprintf("maximum resend attempts reached, try again in %dm%ds", mins, secs)
}

// IsRateLimited reports whether err is a resend-throttle outcome and
// returns the remaining cooldown when it is.
func IsRateLimited(err error) (time.Duration, bool) {
	var rle *RateLimitError
	if errors.As(err, &rle) {
		return rle.RetryAfter, true
	}
	return 0, false
}
