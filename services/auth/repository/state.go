package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nvent/inventory-backend/internal/pkg/constants"
)

// CreateTempSession stores a temp session handle after password auth
func (r *StateRepo) CreateTempSession(ctx context.Context, handle, username string) error {
	key := fmt.Sprintf(constants.KeyTempLogin, handle)
	ttl := time.Duration(r.cfg.Auth.TempSessionTTLMinutes) * time.Minute
	if err := r.redisClient.Set(ctx, key, username, ttl); err != nil {
		return fmt.Errorf("failed to store temp session: %w", err)
	}
	return nil
}

// GetTempSession resolves a temp session handle to a username
func (r *StateRepo) GetTempSession(ctx context.Context, handle string) (string, bool, error) {
	return r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyTempLogin, handle))
}

// DeleteTempSession consumes a temp session handle (single-use)
func (r *StateRepo) DeleteTempSession(ctx context.Context, handle string) error {
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyTempLogin, handle))
}

// StoreOTP stores the live passcode for a user, overwriting any prior one
func (r *StateRepo) StoreOTP(ctx context.Context, username, code string) error {
	key := fmt.Sprintf(constants.KeyOTP, username)
	ttl := time.Duration(r.cfg.Auth.OTPTTLMinutes) * time.Minute
	if err := r.redisClient.Set(ctx, key, code, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// GetOTP retrieves the live passcode for a user
func (r *StateRepo) GetOTP(ctx context.Context, username string) (string, bool, error) {
	return r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyOTP, username))
}

// DeleteOTP consumes the passcode on first correct match
func (r *StateRepo) DeleteOTP(ctx context.Context, username string) error {
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyOTP, username))
}

// IncrementOTPAttempts atomically bumps the resend counter, creating it with
// the cooldown window TTL on first use.
func (r *StateRepo) IncrementOTPAttempts(ctx context.Context, username string) (int64, error) {
	key := fmt.Sprintf(constants.KeyOTPAttempt, username)
	window := time.Duration(r.cfg.Auth.OTPResendWindowMin) * time.Minute
	count, err := r.redisClient.IncrWithTTL(ctx, key, window)
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP attempts: %w", err)
	}
	return count, nil
}

// OTPAttemptsCooldown reports the remaining life of the resend window
func (r *StateRepo) OTPAttemptsCooldown(ctx context.Context, username string) (time.Duration, bool, error) {
	return r.redisClient.TTL(ctx, fmt.Sprintf(constants.KeyOTPAttempt, username))
}

// StoreLinkCode maps a one-time linking code to the username that minted it
func (r *StateRepo) StoreLinkCode(ctx context.Context, code, username string) error {
	key := fmt.Sprintf(constants.KeyLinkCode, code)
	ttl := time.Duration(r.cfg.Auth.LinkCodeTTLMinutes) * time.Minute
	if err := r.redisClient.Set(ctx, key, username, ttl); err != nil {
		return fmt.Errorf("failed to store link code: %w", err)
	}
	return nil
}

// GetLinkCode resolves a linking code to its username
func (r *StateRepo) GetLinkCode(ctx context.Context, code string) (string, bool, error) {
	return r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyLinkCode, code))
}

// DeleteLinkCode consumes a linking code
func (r *StateRepo) DeleteLinkCode(ctx context.Context, code string) error {
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyLinkCode, code))
}

// StorePendingLink records that a chat redeemed a code and must now share a
// contact. Both keys are written unconditionally: a stale pending entry from
// an abandoned attempt is simply overwritten.
func (r *StateRepo) StorePendingLink(ctx context.Context, chatID, username, code string) error {
	ttl := time.Duration(r.cfg.Auth.LinkCodeTTLMinutes) * time.Minute
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyPendingUser, chatID), username, ttl); err != nil {
		return fmt.Errorf("failed to store pending user: %w", err)
	}
	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyPendingCode, chatID), code, ttl); err != nil {
		return fmt.Errorf("failed to store pending code: %w", err)
	}
	return nil
}

// GetPendingLink retrieves the pending verification state for a chat
func (r *StateRepo) GetPendingLink(ctx context.Context, chatID string) (string, string, bool, error) {
	username, found, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyPendingUser, chatID))
	if err != nil || !found {
		return "", "", false, err
	}
	code, _, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyPendingCode, chatID))
	if err != nil {
		return "", "", false, err
	}
	return username, code, true, nil
}

// DeletePendingLink clears the pending verification state for a chat
func (r *StateRepo) DeletePendingLink(ctx context.Context, chatID string) error {
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyPendingUser, chatID)); err != nil {
		return err
	}
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyPendingCode, chatID))
}

// StoreLinkResult records the handshake outcome for the polling endpoint
func (r *StateRepo) StoreLinkResult(ctx context.Context, code, result string) error {
	key := fmt.Sprintf(constants.KeyLinkResult, code)
	ttl := time.Duration(r.cfg.Auth.LinkResultTTLMinutes) * time.Minute
	if err := r.redisClient.Set(ctx, key, result, ttl); err != nil {
		return fmt.Errorf("failed to store link result: %w", err)
	}
	return nil
}

// GetLinkResult retrieves the handshake outcome, if any
func (r *StateRepo) GetLinkResult(ctx context.Context, code string) (string, bool, error) {
	return r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyLinkResult, code))
}
