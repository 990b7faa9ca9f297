package usecase

import (
	"context"
	"fmt"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	jwtpkg "github.com/nvent/inventory-backend/internal/pkg/jwt"
	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/internal/utils"
)

// verifiedRoles is the role set applied once the second factor completes.
const verifiedRoles = "user,admin"

// RequestOTP issues a passcode for the session's user and dispatches it on
// the requested channel. The resend counter is bumped atomically before the
// code is generated; its TTL is the sole throttle.
func (u *AuthUC) RequestOTP(ctx context.Context, tempToken, channel string) (*models.OTPIssueResult, error) {
	username, err := u.resolveTempSession(ctx, tempToken)
	if err != nil {
		return nil, err
	}

	user, found, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !found {
		return nil, apperrors.ErrUserNotFound
	}

	if channel == "" {
		channel = models.ChannelEmail
	}
	if channel == models.ChannelTelegram && user.TelegramChatID == "" {
		return nil, apperrors.ErrTelegramNotLinked
	}

	attempts, err := u.stateRepo.IncrementOTPAttempts(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to count OTP attempts: %w", err)
	}
	resendCap := int64(u.cfg.Auth.OTPResendCap)
	if attempts > resendCap {
		cooldown, found, err := u.stateRepo.OTPAttemptsCooldown(ctx, username)
		if err != nil || !found {
			cooldown = 0
		}
		return nil, &apperrors.RateLimitError{RetryAfter: cooldown}
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, err
	}
	if err := u.stateRepo.StoreOTP(ctx, username, code); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	// Delivery is fire-and-forget: a failed send is reported but does not
	// roll back the stored code, the user may retry on another channel.
	delivered := true
	switch channel {
	case models.ChannelTelegram:
		err = u.authGW.SendOTPTelegram(ctx, user.TelegramChatID, code)
	default:
		err = u.authGW.SendOTPEmail(ctx, user.Email, code)
	}
	if err != nil {
		delivered = false
		logger.Error("OTP delivery failed",
			logger.String("username", username),
			logger.String("channel", channel),
			logger.Err(err))
	}

	u.publishEvent(ctx, models.EventOTPIssued, username, channel, "")

	return &models.OTPIssueResult{
		Channel:           channel,
		AttemptsUsed:      int(attempts),
		AttemptsRemaining: int(resendCap - attempts),
		Delivered:         delivered,
	}, nil
}

// VerifyOTP checks the submitted code against the stored one. On match both
// the code and the temp session are consumed, the user is marked verified
// and a signed token is issued. On mismatch the code survives so the user
// can retry until its TTL lapses.
func (u *AuthUC) VerifyOTP(ctx context.Context, tempToken, code string) (*models.AuthResponse, error) {
	username, err := u.resolveTempSession(ctx, tempToken)
	if err != nil {
		return nil, err
	}

	stored, found, err := u.stateRepo.GetOTP(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to read OTP: %w", err)
	}
	if !found {
		return nil, apperrors.ErrCodeExpired
	}
	if stored != code {
		return nil, apperrors.ErrInvalidCode
	}

	if err := u.stateRepo.DeleteOTP(ctx, username); err != nil {
		return nil, fmt.Errorf("failed to consume OTP: %w", err)
	}
	if err := u.stateRepo.DeleteTempSession(ctx, tempToken); err != nil {
		return nil, fmt.Errorf("failed to consume temp session: %w", err)
	}

	user, found, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !found {
		return nil, apperrors.ErrUserNotFound
	}

	roles := user.Roles
	if !user.IsVerified {
		roles = verifiedRoles
	}
	if err := u.userRepo.MarkVerified(ctx, username, roles); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(username, roles, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Second factor verified",
		logger.String("username", username))
	u.publishEvent(ctx, models.EventOTPVerified, username, "", "")

	return &models.AuthResponse{
		Token:     token,
		Username:  username,
		Roles:     roles,
		ExpiresAt: expiresAt,
	}, nil
}
