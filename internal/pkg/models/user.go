package models

import (
	"time"
)

// User represents an account in the user registry. Roles are stored as a
// comma-separated list (e.g. "user,admin"); TelegramChatID is empty until a
// linking handshake completes.
type User struct {
	ID             string    `json:"id" db:"id"`
	Username       string    `json:"username" db:"username"`
	Password       string    `json:"-" db:"password"`
	Email          string    `json:"email" db:"email"`
	Mobile         string    `json:"mobile" db:"mobile"`
	Roles          string    `json:"roles" db:"roles"`
	IsVerified     bool      `json:"is_verified" db:"is_verified"`
	TelegramChatID string    `json:"telegram_chat_id,omitempty" db:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// RoleList splits the stored roles into individual authorities.
func (u *User) RoleList() []string {
	return SplitRoles(u.Roles)
}
