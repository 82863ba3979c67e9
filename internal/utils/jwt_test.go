package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenExpiringAt(t *testing.T, at *time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{}
	if at != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*at)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestTokenExpired_FutureExpiry(t *testing.T) {
	at := time.Now().Add(time.Hour)
	assert.False(t, TokenExpired(tokenExpiringAt(t, &at)))
}

func TestTokenExpired_PastExpiry(t *testing.T) {
	at := time.Now().Add(-time.Minute)
	assert.True(t, TokenExpired(tokenExpiringAt(t, &at)))
}

// TestTokenExpired_NoExpiryClaim verifies that a token without an exp claim
// is left for the server to judge.
func TestTokenExpired_NoExpiryClaim(t *testing.T) {
	assert.False(t, TokenExpired(tokenExpiringAt(t, nil)))
}

func TestTokenExpired_Garbage(t *testing.T) {
	assert.False(t, TokenExpired("not-a-jwt"))
	assert.False(t, TokenExpired(""))
}
