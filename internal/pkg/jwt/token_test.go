package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvent/inventory-backend/internal/pkg/models"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "inventory-backend",
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, expiresAt, err := GenerateToken("alice", "user,admin", testJWTConfig)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, testJWTConfig.Secret)
	require.NoError(t, err)

	sub, roles, err := SubjectAndRoles(claims)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)
	assert.Equal(t, "user,admin", roles)
	assert.Equal(t, "inventory-backend", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("alice", "user", testJWTConfig)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig
	cfg.Expiration = -1

	token, _, err := GenerateToken("alice", "user", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNonHMAC(t *testing.T) {
	// alg=none must never validate regardless of the payload
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice", "roles": "user,admin",
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, testJWTConfig.Secret)
	assert.Error(t, err)
}

func TestSubjectAndRoles_MissingSubject(t *testing.T) {
	_, _, err := SubjectAndRoles(jwt.MapClaims{"roles": "user"})
	assert.Error(t, err)
}
