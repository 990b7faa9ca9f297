package usecase

import (
	"context"
	"fmt"

	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/internal/utils"
)

// RedeemLinkCode processes a "/start <code>" or "/link <code>" command from
// a chat. A valid code alone is not enough to bind the chat: unless the
// pair is already bound, the handshake parks in pending state and waits for
// a verifiable contact share.
func (u *AuthUC) RedeemLinkCode(ctx context.Context, chatID, code string) (models.LinkOutcome, error) {
	username, found, err := u.stateRepo.GetLinkCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("failed to resolve link code: %w", err)
	}
	if !found {
		return models.LinkOutcomeInvalidCode, nil
	}

	user, found, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !found {
		// code resolved but the account is gone; nothing to link
		return models.LinkOutcomeInvalidCode, nil
	}

	// A chat bound to a different account must never be rebound silently.
	existing, found, err := u.userRepo.GetUserByTelegramChatID(ctx, chatID)
	if err != nil {
		return "", fmt.Errorf("failed to look up chat binding: %w", err)
	}
	if found && existing.Username != username {
		logger.Warn("Chat already linked to another account",
			logger.String("chat_id", chatID),
			logger.String("requested_by", username))
		if err := u.stateRepo.StoreLinkResult(ctx, code, models.LinkStatusAlreadyLinked); err != nil {
			return "", fmt.Errorf("failed to store link result: %w", err)
		}
		return models.LinkOutcomeConflict, nil
	}

	// Re-linking the same pair is an immediate success with no side effects.
	if user.TelegramChatID == chatID {
		if err := u.stateRepo.DeleteLinkCode(ctx, code); err != nil {
			return "", fmt.Errorf("failed to consume link code: %w", err)
		}
		if err := u.stateRepo.StoreLinkResult(ctx, code, models.LinkStatusSuccess); err != nil {
			return "", fmt.Errorf("failed to store link result: %w", err)
		}
		return models.LinkOutcomeAlreadyLinked, nil
	}

	if err := u.stateRepo.StorePendingLink(ctx, chatID, username, code); err != nil {
		return "", fmt.Errorf("failed to store pending link: %w", err)
	}

	return models.LinkOutcomeAwaitContact, nil
}

// VerifyLinkContact processes a shared contact from a chat with a pending
// handshake. On a phone match the binding is persisted and the handshake
// result published; on mismatch the pending state survives so the user can
// retry with the right contact until its TTL lapses.
func (u *AuthUC) VerifyLinkContact(ctx context.Context, chatID, phone string) (models.LinkOutcome, error) {
	username, code, found, err := u.stateRepo.GetPendingLink(ctx, chatID)
	if err != nil {
		return "", fmt.Errorf("failed to read pending link: %w", err)
	}
	if !found {
		return models.LinkOutcomeNoPending, nil
	}

	user, found, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !found {
		return models.LinkOutcomeNoPending, nil
	}

	if !utils.PhonesMatch(phone, user.Mobile) {
		logger.Warn("Contact verification mismatch",
			logger.String("username", username),
			logger.String("chat_id", chatID))
		return models.LinkOutcomeMismatch, nil
	}

	if err := u.userRepo.UpdateTelegramChatID(ctx, username, chatID); err != nil {
		return "", fmt.Errorf("failed to persist chat binding: %w", err)
	}
	if err := u.stateRepo.StoreLinkResult(ctx, code, models.LinkStatusSuccess); err != nil {
		return "", fmt.Errorf("failed to store link result: %w", err)
	}
	if err := u.stateRepo.DeleteLinkCode(ctx, code); err != nil {
		return "", fmt.Errorf("failed to consume link code: %w", err)
	}
	if err := u.stateRepo.DeletePendingLink(ctx, chatID); err != nil {
		return "", fmt.Errorf("failed to clear pending link: %w", err)
	}

	logger.Info("Account linked",
		logger.String("username", username),
		logger.String("chat_id", chatID))
	u.publishEvent(ctx, models.EventAccountLinked, username, "", chatID)

	return models.LinkOutcomeVerified, nil
}
