package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nvent/inventory-backend/internal/pkg/middleware"
	"github.com/nvent/inventory-backend/services/auth"
	handlerhttp "github.com/nvent/inventory-backend/services/auth/handler/http"
)

// Handler groups the HTTP handlers of the auth service
type Handler struct {
	authHandler *handlerhttp.AuthHandler
	linkHandler *handlerhttp.LinkHandler
}

// NewHandler creates the HTTP handler set for the auth service
func NewHandler(authUC auth.AuthUC) *Handler {
	return &Handler{
		authHandler: handlerhttp.NewAuthHandler(authUC),
		linkHandler: handlerhttp.NewLinkHandler(authUC),
	}
}

// RegisterRoutes mounts the auth and linking endpoints on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/otp/request", h.authHandler.RequestOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)
	authGroup.GET("/me", h.authHandler.Me, middleware.RequireAuth())

	tgGroup := e.Group("/telegram")
	tgGroup.GET("/link-code", h.linkHandler.GenerateLinkCode)
	tgGroup.GET("/link-status/:code", h.linkHandler.CheckLinkStatus)
	tgGroup.GET("/linked", h.linkHandler.IsLinked)
}
