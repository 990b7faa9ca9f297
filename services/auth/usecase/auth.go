package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/internal/utils"
)

// Login verifies the password factor and opens the OTP window: a random
// session handle mapped to the username with a short TTL. The response never
// reveals whether the username existed.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.TempSession, error) {
	user, found, err := u.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !found {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	handle := uuid.New().String()
	if err := u.stateRepo.CreateTempSession(ctx, handle, user.Username); err != nil {
		return nil, fmt.Errorf("failed to create temp session: %w", err)
	}

	logger.Info("Password factor verified",
		logger.String("username", user.Username))
	u.publishEvent(ctx, models.EventLoginSucceeded, user.Username, "", "")

	return &models.TempSession{
		TempToken: handle,
		Email:     utils.MaskEmail(user.Email),
	}, nil
}

// Register creates a new unverified account and opens the OTP window
// immediately so verification follows registration without a second login.
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.TempSession, error) {
	_, found, err := u.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if found {
		return nil, apperrors.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:   req.Username,
		Password:   string(hash),
		Email:      req.Email,
		Mobile:     req.Mobile,
		Roles:      "user",
		IsVerified: false,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	handle := uuid.New().String()
	if err := u.stateRepo.CreateTempSession(ctx, handle, user.Username); err != nil {
		return nil, fmt.Errorf("failed to create temp session: %w", err)
	}

	logger.Info("User registered",
		logger.String("username", user.Username))
	u.publishEvent(ctx, models.EventUserRegistered, user.Username, "", "")

	return &models.TempSession{
		TempToken: handle,
		Email:     utils.MaskEmail(user.Email),
	}, nil
}
