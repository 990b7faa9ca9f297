package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/nvent/inventory-backend/internal/pkg/jwt"
	"github.com/nvent/inventory-backend/internal/pkg/models"
	"github.com/nvent/inventory-backend/internal/utils"
)

// Context keys populated by the auth gate
const (
	ContextKeyUsername    = "auth_username"
	ContextKeyAuthorities = "auth_authorities"
)

// AuthGate validates a bearer token when one is present and stores the
// caller's identity and authorities in the request context. A request
// without a token (or with a bad one) passes through unauthenticated;
// rejection is the job of the per-route guards below, not the gate.
func AuthGate(cfg models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := BearerToken(c)
			if !ok {
				return next(c)
			}

			claims, err := jwtpkg.ValidateToken(tokenString, cfg.Secret)
			if err != nil {
				// identity stays unset; guarded routes will reject
				return next(c)
			}

			username, roles, err := jwtpkg.SubjectAndRoles(claims)
			if err != nil {
				return next(c)
			}

			c.Set(ContextKeyUsername, username)
			c.Set(ContextKeyAuthorities, models.SplitRoles(roles))

			return next(c)
		}
	}
}

// RequireAuth rejects requests whose identity was not established by the gate
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UsernameFromContext(c); !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			return next(c)
		}
	}
}

// RequireRole rejects authenticated requests lacking the given authority
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UsernameFromContext(c); !ok {
				return utils.UnauthorizedResponse(c, "Authentication required")
			}
			for _, authority := range AuthoritiesFromContext(c) {
				if strings.EqualFold(authority, role) {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient authority")
		}
	}
}

// UsernameFromContext returns the authenticated caller, if any
func UsernameFromContext(c echo.Context) (string, bool) {
	username, ok := c.Get(ContextKeyUsername).(string)
	return username, ok && username != ""
}

// AuthoritiesFromContext returns the caller's authority set, if any
func AuthoritiesFromContext(c echo.Context) []string {
	authorities, _ := c.Get(ContextKeyAuthorities).([]string)
	return authorities
}

// BearerToken extracts the token from the standard Authorization header
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
