package auth

import (
	"context"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nvent/inventory-backend/services/auth AuthUC

// AuthUC is the authentication and account-linking usecase contract. The
// HTTP handlers and the telegram bot handler both drive this interface; all
// cross-step state lives in the ephemeral store, never in the usecase.
type AuthUC interface {
	// password factor
	Register(ctx context.Context, req *models.RegisterRequest) (*models.TempSession, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TempSession, error)

	// OTP factor
	RequestOTP(ctx context.Context, tempToken, channel string) (*models.OTPIssueResult, error)
	VerifyOTP(ctx context.Context, tempToken, code string) (*models.AuthResponse, error)

	// linking, HTTP side
	GenerateLinkCode(ctx context.Context, tempToken string) (*models.LinkCode, error)
	CheckLinkStatus(ctx context.Context, code string) (string, error)
	IsLinked(ctx context.Context, tempToken string) (bool, error)

	// linking, bot side
	RedeemLinkCode(ctx context.Context, chatID, code string) (models.LinkOutcome, error)
	VerifyLinkContact(ctx context.Context, chatID, phone string) (models.LinkOutcome, error)
}
