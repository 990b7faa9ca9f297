package auth

import (
	"context"
	"time"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nvent/inventory-backend/services/auth UserRepo,StateRepo

// UserRepo is the durable user registry. Lookups return found=false instead
// of an error when no row matches, so absence is never control flow by
// exception.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, bool, error)
	GetUserByTelegramChatID(ctx context.Context, chatID string) (*models.User, bool, error)
	MarkVerified(ctx context.Context, username, roles string) error
	UpdateTelegramChatID(ctx context.Context, username, chatID string) error
}

// StateRepo is the ephemeral state store behind the login window and the
// linking handshake. Every entry carries a TTL; entries die by explicit
// delete on success or by expiry on abandonment.
type StateRepo interface {
	// temp sessions (password factor passed, OTP pending)
	CreateTempSession(ctx context.Context, handle, username string) error
	GetTempSession(ctx context.Context, handle string) (string, bool, error)
	DeleteTempSession(ctx context.Context, handle string) error

	// one-time passcodes
	StoreOTP(ctx context.Context, username, code string) error
	GetOTP(ctx context.Context, username string) (string, bool, error)
	DeleteOTP(ctx context.Context, username string) error

	// resend throttle; the increment is atomic, the TTL is the cooldown
	IncrementOTPAttempts(ctx context.Context, username string) (int64, error)
	OTPAttemptsCooldown(ctx context.Context, username string) (time.Duration, bool, error)

	// linking codes and per-chat pending state
	StoreLinkCode(ctx context.Context, code, username string) error
	GetLinkCode(ctx context.Context, code string) (string, bool, error)
	DeleteLinkCode(ctx context.Context, code string) error
	StorePendingLink(ctx context.Context, chatID, username, code string) error
	GetPendingLink(ctx context.Context, chatID string) (username, code string, found bool, err error)
	DeletePendingLink(ctx context.Context, chatID string) error
	StoreLinkResult(ctx context.Context, code, result string) error
	GetLinkResult(ctx context.Context, code string) (string, bool, error)
}
