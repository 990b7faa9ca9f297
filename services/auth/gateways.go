package auth

import (
	"context"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/nvent/inventory-backend/services/auth AuthGW

// AuthGW covers outbound side effects: OTP delivery on both channels and
// audit event publication. Delivery failures are surfaced but never abort
// the flow that triggered them.
type AuthGW interface {
	SendOTPEmail(ctx context.Context, toAddress, code string) error
	SendOTPTelegram(ctx context.Context, chatID, code string) error
	PublishAuthEvent(ctx context.Context, event *models.AuthEvent) error
}
