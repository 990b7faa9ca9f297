package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

const userColumns = `id, username, password, email, mobile, roles, is_verified, telegram_chat_id, created_at, updated_at`

// CreateUser inserts a new account into the registry
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, username, password, email, mobile, roles,
			is_verified, telegram_chat_id, created_at, updated_at
		) VALUES (:id, :username, :password, :email, :mobile, :roles,
			:is_verified, :telegram_chat_id, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves a user by its identity key. Absence is
// reported through the boolean, not an error.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, true, nil
}

// GetUserByTelegramChatID retrieves the user bound to a chat identity
func (r *UserRepo) GetUserByTelegramChatID(ctx context.Context, chatID string) (*models.User, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE telegram_chat_id = $1`, userColumns)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, chatID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get user by chat id: %w", err)
	}

	return &user, true, nil
}

// MarkVerified flips the verification flag and applies the promoted role set
// after a successful OTP verification.
func (r *UserRepo) MarkVerified(ctx context.Context, username, roles string) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, roles = $1, updated_at = $2
		WHERE username = $3
	`
	result, err := r.db.ExecContext(ctx, query, roles, time.Now(), username)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("no user updated for username %s", username)
	}

	return nil
}

// UpdateTelegramChatID persists the chat binding established by the linking
// handshake. Called exactly once per successful handshake.
func (r *UserRepo) UpdateTelegramChatID(ctx context.Context, username, chatID string) error {
	query := `
		UPDATE users
		SET telegram_chat_id = $1, updated_at = $2
		WHERE username = $3
	`
	result, err := r.db.ExecContext(ctx, query, chatID, time.Now(), username)
	if err != nil {
		return fmt.Errorf("failed to update telegram chat id: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("no user updated for username %s", username)
	}

	return nil
}
