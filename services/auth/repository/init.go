package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/nvent/inventory-backend/internal/pkg/database"
	"github.com/nvent/inventory-backend/internal/pkg/models"
)

// UserRepo implements the durable user registry on PostgreSQL
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// StateRepo implements the ephemeral state store on Redis. TTL policy comes
// from configuration; key formats live in the constants package.
type StateRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewStateRepo creates a new ephemeral state repository instance
func NewStateRepo(cfg *models.Config, redisClient *database.RedisClient) *StateRepo {
	return &StateRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
