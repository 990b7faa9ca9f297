package gateway

import (
	"context"
	"fmt"
)

// otpMailRequest is the provider API payload for a transactional OTP mail
type otpMailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendOTPEmail delivers a passcode through the transactional mail provider
func (g *AuthGW) SendOTPEmail(ctx context.Context, toAddress, code string) error {
	if g.emailClient == nil {
		return fmt.Errorf("email delivery is not configured")
	}

	payload := otpMailRequest{
		From:    g.cfg.Email.FromAddress,
		To:      toAddress,
		Subject: "Your verification code",
		Text: fmt.Sprintf("Your OTP is: %s. It expires in %d minutes.",
			code, g.cfg.Auth.OTPTTLMinutes),
	}

	if err := g.emailClient.PostJSON(ctx, "/messages", payload); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	return nil
}
