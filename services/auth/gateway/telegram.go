package gateway

import (
	"context"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"
)

// SendOTPTelegram delivers a passcode to a linked chat
func (g *AuthGW) SendOTPTelegram(ctx context.Context, chatID, code string) error {
	if g.bot == nil {
		return fmt.Errorf("telegram delivery is not configured")
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}

	text := fmt.Sprintf("Your OTP is: %s. It expires in %d minutes.",
		code, g.cfg.Auth.OTPTTLMinutes)

	if _, err := g.bot.Send(tele.ChatID(id), text); err != nil {
		return fmt.Errorf("failed to send OTP telegram message: %w", err)
	}

	return nil
}
