package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/nvent/inventory-backend/internal/pkg/jwt"
	"github.com/nvent/inventory-backend/internal/pkg/models"
)

var gateJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "inventory-backend",
}

func gateRequest(t *testing.T, authHeader string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthGate_ValidToken(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken("alice", "user,admin", gateJWTConfig)
	require.NoError(t, err)

	c := gateRequest(t, "Bearer "+token)
	called := false
	err = AuthGate(gateJWTConfig)(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	username, ok := UsernameFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
	assert.Equal(t, []string{"user", "admin"}, AuthoritiesFromContext(c))
}

func TestAuthGate_NoTokenPassesThroughUnauthenticated(t *testing.T) {
	c := gateRequest(t, "")
	called := false
	err := AuthGate(gateJWTConfig)(func(c echo.Context) error {
		called = true
		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	_, ok := UsernameFromContext(c)
	assert.False(t, ok)
}

func TestAuthGate_BadTokenLeavesIdentityUnset(t *testing.T) {
	c := gateRequest(t, "Bearer not.a.token")
	err := AuthGate(gateJWTConfig)(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	_, ok := UsernameFromContext(c)
	assert.False(t, ok)
}

func TestRequireAuth(t *testing.T) {
	e := echo.New()

	// unauthenticated request is rejected
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := RequireAuth()(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// authenticated request passes
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyUsername, "alice")
	called := false
	err = RequireAuth()(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	newCtx := func(roles []string) (echo.Context, *httptest.ResponseRecorder) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		c.Set(ContextKeyUsername, "alice")
		c.Set(ContextKeyAuthorities, roles)
		return c, rec
	}

	// authority present, case-insensitive
	c, _ := newCtx([]string{"user", "ADMIN"})
	called := false
	err := RequireRole("admin")(func(c echo.Context) error {
		called = true
		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, called)

	// authority absent
	c, rec := newCtx([]string{"user"})
	err = RequireRole("admin")(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{name: "well formed", header: "Bearer abc123", want: "abc123", ok: true},
		{name: "lowercase scheme", header: "bearer abc123", want: "abc123", ok: true},
		{name: "missing header", header: "", ok: false},
		{name: "wrong scheme", header: "Basic abc123", ok: false},
		{name: "empty token", header: "Bearer ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gateRequest(t, tt.header)
			token, ok := BearerToken(c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, token)
		})
	}
}
