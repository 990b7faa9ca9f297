package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nvent/inventory-backend/internal/pkg/apperrors"
	"github.com/nvent/inventory-backend/internal/pkg/logger"
	"github.com/nvent/inventory-backend/internal/pkg/middleware"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/internal/utils"
	"github.com/nvent/inventory-backend/services/auth"
)

// AuthHandler handles HTTP requests for the login and OTP flows
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Login handles password authentication requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Username and password are required")
	}

	session, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return mapAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password verified, OTP required", session)
}

// Register handles account registration requests
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Username == "" || req.Password == "" || req.Email == "" || req.Mobile == "" {
		return utils.BadRequestResponse(c, "Username, password, email and mobile are required")
	}

	session, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return mapAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", session)
}

// RequestOTP handles passcode issuance requests
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TempToken == "" {
		return utils.BadRequestResponse(c, "temp_token is required")
	}

	result, err := h.authUC.RequestOTP(c.Request().Context(), req.TempToken, req.Channel)
	if err != nil {
		return mapAuthError(c, err)
	}

	message := "OTP sent to your registered email"
	if result.Channel == models.ChannelTelegram {
		message = "OTP sent to your linked Telegram account"
	}
	return utils.SuccessResponse(c, http.StatusOK, message, result)
}

// VerifyOTP handles passcode verification requests
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.TempToken == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "temp_token and otp are required")
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.TempToken, req.OTP)
	if err != nil {
		return mapAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Authentication successful", resp)
}

// Me returns the identity established by the auth gate
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := middleware.UsernameFromContext(c)
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"username":    username,
		"authorities": middleware.AuthoritiesFromContext(c),
	})
}

// mapAuthError translates domain outcomes into distinct HTTP responses.
// Anything outside the taxonomy is logged and reported generically.
func mapAuthError(c echo.Context, err error) error {
	if retryAfter, ok := apperrors.IsRateLimited(err); ok {
		return utils.TooManyRequestsResponse(c, err.Error(), int(retryAfter.Seconds()))
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	case errors.Is(err, apperrors.ErrUsernameTaken):
		return utils.ConflictResponse(c, "Username already exists")
	case errors.Is(err, apperrors.ErrSessionExpired):
		return utils.UnauthorizedResponse(c, "Invalid or expired session")
	case errors.Is(err, apperrors.ErrCodeExpired):
		return utils.UnauthorizedResponse(c, "OTP expired, request a new one")
	case errors.Is(err, apperrors.ErrInvalidCode):
		return utils.UnauthorizedResponse(c, "Invalid OTP")
	case errors.Is(err, apperrors.ErrUserNotFound):
		return utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, apperrors.ErrTelegramNotLinked):
		return utils.BadRequestResponse(c, "Telegram is not linked for this account")
	default:
		logger.Error("Unexpected auth error", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
