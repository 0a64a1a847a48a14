package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplewallet/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := models.NewUser("alice@example.com", "hash", "Alice")

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// Tampering with the payload breaks the signature.
	token, err := GenerateToken(models.NewUser("a@b.com", "hash", "A"))
	require.NoError(t, err)
	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}
