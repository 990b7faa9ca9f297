package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
)

// GenerateLinkCode mints a one-time code correlating this user's linking
// request with a future inbound bot event. The client opens the bot deep
// link with the code as payload.
func (u *AuthUC) GenerateLinkCode(ctx context.Context, tempToken string) (*models.LinkCode, error) {
	username, err := u.resolveTempSession(ctx, tempToken)
	if err != nil {
		return nil, err
	}

	code := uuid.New().String()
	if err := u.stateRepo.StoreLinkCode(ctx, code, username); err != nil {
		return nil, fmt.Errorf("failed to store link code: %w", err)
	}

	logger.Info("Link code generated",
		logger.String("username", username))

	return &models.LinkCode{
		Code:        code,
		BotUsername: u.cfg.Telegram.BotUsername,
	}, nil
}

// CheckLinkStatus reports the handshake outcome for a code. No result yet
// means the bot side has not finished: the handshake is pending (or the
// code expired unredeemed, which the client treats the same way).
func (u *AuthUC) CheckLinkStatus(ctx context.Context, code string) (string, error) {
	result, found, err := u.stateRepo.GetLinkResult(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to read link result: %w", err)
	}
	if !found {
		return models.LinkStatusPending, nil
	}
	return result, nil
}

// IsLinked reports whether the session's user has a bound chat identity
func (u *AuthUC) IsLinked(ctx context.Context, tempToken string) (bool, error) {
	username, err := u.resolveTempSession(ctx, tempToken)
	if err != nil {
		return false, err
	}

	user, found, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	if !found {
		return false, apperrors.ErrUserNotFound
	}

	return user.TelegramChatID != "", nil
}
