package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "inventory-backend",
		},
		Auth: models.AuthConfig{
			TempSessionTTLMinutes: 5,
			OTPTTLMinutes:         5,
			OTPResendCap:          3,
			OTPResendWindowMin:    10,
			LinkCodeTTLMinutes:    5,
			LinkResultTTLMinutes:  5,
		},
		Telegram: models.TelegramConfig{BotUsername: "InventoryAuthBot"},
	}
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockStateRepo := mocks.NewMockStateRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockUserRepo, mockStateRepo, mockGW, testConfig())

	user := &models.User{
		Username: "alice",
		Password: hashPassword(t, "s3cret"),
		Email:    "alice@example.com",
	}

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "alice").
		Return(user, true, nil)
	mockStateRepo.EXPECT().
		CreateTempSession(gomock.Any(), gomock.Any(), "alice").
		Return(nil)
	mockGW.EXPECT().
		PublishAuthEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	session, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "s3cret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, session.TempToken)
	assert.Equal(t, "a***e@example.com", session.Email)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockStateRepo := mocks.NewMockStateRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockUserRepo, mockStateRepo, mockGW, testConfig())

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "ghost").
		Return(nil, false, nil)

	session, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockStateRepo := mocks.NewMockStateRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockUserRepo, mockStateRepo, mockGW, testConfig())

	user := &models.User{
		Username: "alice",
		Password: hashPassword(t, "s3cret"),
		Email:    "alice@example.com",
	}

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "alice").
		Return(user, true, nil)

	// Same outcome as an unknown username: the response must not reveal
	// which factor failed.
	session, err := uc.Login(context.Background(), &models.LoginRequest{
		Username: "alice",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockStateRepo := mocks.NewMockStateRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockUserRepo, mockStateRepo, mockGW, testConfig())

	var created *models.User
	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "bob").
		Return(nil, false, nil)
	mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			created = u
			return nil
		})
	mockStateRepo.EXPECT().
		CreateTempSession(gomock.Any(), gomock.Any(), "bob").
		Return(nil)
	mockGW.EXPECT().
		PublishAuthEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	session, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "bob",
		Password: "hunter2hunter2",
		Email:    "bob@example.com",
		Mobile:   "+628123456789",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, session.TempToken)
	assert.Equal(t, "b***b@example.com", session.Email)

	assert.Equal(t, "user", created.Roles)
	assert.False(t, created.IsVerified)
	// the stored credential must be a hash, never the plaintext
	assert.NotEqual(t, "hunter2hunter2", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("hunter2hunter2")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockStateRepo := mocks.NewMockStateRepo(ctrl)
	mockGW := mocks.NewMockAuthGW(ctrl)
	uc := NewAuthUC(mockUserRepo, mockStateRepo, mockGW, testConfig())

	mockUserRepo.EXPECT().
		GetUserByUsername(gomock.Any(), "alice").
		Return(&models.User{Username: "alice"}, true, nil)

	session, err := uc.Register(context.Background(), &models.RegisterRequest{
		Username: "alice",
		Password: "whatever",
		Email:    "other@example.com",
		Mobile:   "+628123456789",
	})

	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	assert.Nil(t, session)
}
