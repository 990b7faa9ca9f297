package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nvent/inventory-backend/internal/pkg/middleware"
	"github.com/nvent/inventory-backend/internal/utils"
	"github.com/nvent/inventory-backend/services/auth"
)

// LinkHandler handles HTTP requests for the Telegram account-linking flow.
// All endpoints authenticate with the temp session token issued by login,
// carried as a bearer credential.
type LinkHandler struct {
	authUC auth.AuthUC
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(authUC auth.AuthUC) *LinkHandler {
	return &LinkHandler{authUC: authUC}
}

// GenerateLinkCode issues a one-time code the user hands to the bot
func (h *LinkHandler) GenerateLinkCode(c echo.Context) error {
	tempToken, ok := middleware.BearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing session token")
	}

	code, err := h.authUC.GenerateLinkCode(c.Request().Context(), tempToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Link code generated", code)
}

// CheckLinkStatus reports the outcome of a pending link handshake. Polled by
// the frontend while the user talks to the bot.
func (h *LinkHandler) CheckLinkStatus(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return utils.BadRequestResponse(c, "code is required")
	}

	status, err := h.authUC.CheckLinkStatus(c.Request().Context(), code)
	if err != nil {
		return mapAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]string{"status": status})
}

// IsLinked reports whether the session's account has a Telegram chat attached
func (h *LinkHandler) IsLinked(c echo.Context) error {
	tempToken, ok := middleware.BearerToken(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Missing session token")
	}

	linked, err := h.authUC.IsLinked(c.Request().Context(), tempToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]bool{"linked": linked})
}
