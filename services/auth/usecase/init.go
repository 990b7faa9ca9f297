package usecase

import (
	"context"
	"time"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/services/auth"
)

// AuthUC implements the authentication and account-linking usecase. It is
// stateless: everything it knows between calls lives in the state repo.
type AuthUC struct {
	userRepo  auth.UserRepo
	stateRepo auth.StateRepo
	authGW    auth.AuthGW
	cfg       *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	userRepo auth.UserRepo,
	stateRepo auth.StateRepo,
	authGW auth.AuthGW,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		userRepo:  userRepo,
		stateRepo: stateRepo,
		authGW:    authGW,
		cfg:       cfg,
	}
}

// resolveTempSession maps a temp session handle to its username or fails
// with the session-expired outcome.
func (u *AuthUC) resolveTempSession(ctx context.Context, tempToken string) (string, error) {
	username, found, err := u.stateRepo.GetTempSession(ctx, tempToken)
	if err != nil {
		return "", err
	}
	if !found {
		return "", apperrors.ErrSessionExpired
	}
	return username, nil
}

// publishEvent emits an audit event. Fire-and-forget: a broker outage must
// never fail the auth flow that triggered the event.
func (u *AuthUC) publishEvent(ctx context.Context, eventType, username, channel, chatID string) {
	event := &models.AuthEvent{
		Type:      eventType,
		Username:  username,
		Channel:   channel,
		ChatID:    chatID,
		Timestamp: time.Now().Unix(),
	}
	if err := u.authGW.PublishAuthEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish auth event",
			logger.String("event_type", eventType),
			logger.String("username", username),
			logger.Err(err))
	}
}
