package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticator_EmptySecret(t *testing.T) {
	_, err := NewAuthenticator("", "order-console")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestAuthenticator_RoundTrip(t *testing.T) {
	a, err := NewAuthenticator("secret", "order-console")
	require.NoError(t, err)

	token, err := a.GenerateToken("42", "chef@example.com", RoleOrderMaintainer)
	require.NoError(t, err)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "chef@example.com", claims.Email)
	assert.Equal(t, RoleOrderMaintainer, claims.Role)
}

func TestAuthenticator_GenerateTokenEmptyUser(t *testing.T) {
	a, err := NewAuthenticator("secret", "order-console")
	require.NoError(t, err)

	_, err = a.GenerateToken("", "chef@example.com", RoleAdmin)
	assert.Error(t, err)
}

func TestAuthenticator_RejectsInvalidTokens(t *testing.T) {
	a, err := NewAuthenticator("secret", "order-console")
	require.NoError(t, err)
	other, err := NewAuthenticator("other-secret", "order-console")
	require.NoError(t, err)

	foreign, err := other.GenerateToken("42", "", RoleAdmin)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "42",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "order-console",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredToken, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "42",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "order-console"},
	})
	noExpiryToken, err := noExpiry.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"expired", expiredToken},
		{"no expiry", noExpiryToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestAuthenticator_Issuer(t *testing.T) {
	strict, err := NewAuthenticator("secret", "order-console")
	require.NoError(t, err)
	foreign, err := NewAuthenticator("secret", "someone-else")
	require.NoError(t, err)
	open, err := NewAuthenticator("secret", "")
	require.NoError(t, err)

	token, err := foreign.GenerateToken("42", "", RoleAdmin)
	require.NoError(t, err)

	_, err = strict.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims, err := open.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole(RoleAdmin, RoleOrderMaintainer, RoleAdmin))
	assert.False(t, HasRole("guest", RoleOrderMaintainer, RoleAdmin))
	assert.False(t, HasRole(RoleOrderMaintainer, RoleAdmin))
}
