package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateToken("u-1", "BRANCH", "b-hr")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "BRANCH", claims.Role)
	assert.Equal(t, "b-hr", claims.BranchID)
}

func TestTokenRejections(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	token, err := issuer.GenerateToken("u-1", "SUPER_ADMIN", "")
	require.NoError(t, err)

	other := NewTokenIssuer("another-secret", time.Hour)
	_, err = other.ValidateToken(token)
	assert.Error(t, err, "wrong secret")

	later := NewTokenIssuer("secret", time.Hour)
	later.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.ValidateToken(token)
	assert.Error(t, err, "expired")

	_, err = issuer.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "guess"))
}
