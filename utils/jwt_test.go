package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, expiresAt, err := GenerateToken("USR001", "admin", "System Administrator", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), expiresAt, 5*time.Second)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "USR001", claims.ID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "System Administrator", claims.FullName)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, _, err := GenerateToken("USR001", "admin", "System Administrator", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-b")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
