package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/services/auth/mocks"
)

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"username": "alice", "password": "s3cret"}`)

	mockAuthUC.EXPECT().
		Login(gomock.Any(), &models.LoginRequest{Username: "alice", Password: "s3cret"}).
		Return(&models.TempSession{TempToken: "handle-1", Email: "a***e@example.com"}, nil)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "handle-1", data["temp_token"])
	assert.Equal(t, "a***e@example.com", data["email"])
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"username": "alice", "password": "wrong"}`)

	mockAuthUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid username or password", response["error"])
}

func TestLoginHandler_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"username": "alice"}`)

	// rejected before the usecase is consulted
	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username": "alice", "password": "s3cret", "email": "a@b.c", "mobile": "0812"}`)

	mockAuthUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUsernameTaken)

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterHandler_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"username": "bob", "password": "hunter2", "email": "bob@example.com", "mobile": "0812"}`)

	mockAuthUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.TempSession{TempToken: "handle-2", Email: "b***b@example.com"}, nil)

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequestOTPHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp/request",
		`{"temp_token": "handle-1", "channel": "telegram"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "handle-1", "telegram").
		Return(&models.OTPIssueResult{
			Channel:           models.ChannelTelegram,
			AttemptsUsed:      1,
			AttemptsRemaining: 2,
			Delivered:         true,
		}, nil)

	err := authHandler.RequestOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "OTP sent to your linked Telegram account", response["message"])
}

func TestRequestOTPHandler_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp/request",
		`{"temp_token": "handle-1"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "handle-1", "").
		Return(nil, &apperrors.RateLimitError{RetryAfter: 90 * time.Second})

	err := authHandler.RequestOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "90", rec.Header().Get("Retry-After"))
}

func TestRequestOTPHandler_ExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp/request",
		`{"temp_token": "stale"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "stale", "").
		Return(nil, apperrors.ErrSessionExpired)

	err := authHandler.RequestOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyOTPHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp/verify",
		`{"temp_token": "handle-1", "otp": "123456"}`)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), "handle-1", "123456").
		Return(&models.AuthResponse{
			Token:    "signed.jwt.token",
			Username: "alice",
			Roles:    "user,admin",
		}, nil)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
	assert.Equal(t, "user,admin", data["roles"])
}

func TestVerifyOTPHandler_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp/verify",
		`{"temp_token": "handle-1", "otp": "000000"}`)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), "handle-1", "000000").
		Return(nil, apperrors.ErrInvalidCode)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
