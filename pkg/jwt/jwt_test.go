package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", 60)

	token, err := m.GenerateAccessToken(42, "ahmed", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ahmed", claims.Username)
	assert.False(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "every token carries a JTI for revocation")
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewManager("secret-a", 60)
	other := NewManager("secret-b", 60)

	token, err := m.GenerateAccessToken(1, "user", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.GenerateAccessToken(1, "user", false)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokensCarryDistinctJTIs(t *testing.T) {
	m := NewManager("test-secret", 60)

	t1, err := m.GenerateAccessToken(1, "user", false)
	require.NoError(t, err)
	t2, err := m.GenerateAccessToken(1, "user", false)
	require.NoError(t, err)

	c1, err := m.ValidateToken(t1)
	require.NoError(t, err)
	c2, err := m.ValidateToken(t2)
	require.NoError(t, err)

	assert.NotEqual(t, c1.ID, c2.ID, "revoking one session must not affect another")
}
