package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager(JWTConfig{Secret: "unit-test-secret", Expiry: time.Hour, Issuer: "studytrack-test"})
}

func TestGenerateAndValidate(t *testing.T) {
	m := newTestManager()

	token, jti, expiresAt, err := m.GenerateAccessToken(42, "kim@example.com", "student", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, jti)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "kim@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, jti, claims.ID)
}

func TestTokensHaveDistinctIDs(t *testing.T) {
	m := newTestManager()

	_, first, _, err := m.GenerateAccessToken(1, "a@example.com", "student", 0)
	require.NoError(t, err)
	_, second, _, err := m.GenerateAccessToken(1, "a@example.com", "student", 0)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := newTestManager()
	token, _, _, err := m.GenerateAccessToken(1, "a@example.com", "student", 0)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsForeignTokens(t *testing.T) {
	m := newTestManager()

	otherSecret := NewJWTManager(JWTConfig{Secret: "someone-else", Expiry: time.Hour, Issuer: "studytrack-test"})
	token, _, _, err := otherSecret.GenerateAccessToken(1, "a@example.com", "student", 0)
	require.NoError(t, err)
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherIssuer := NewJWTManager(JWTConfig{Secret: "unit-test-secret", Expiry: time.Hour, Issuer: "elsewhere"})
	token, _, _, err = otherIssuer.GenerateAccessToken(1, "a@example.com", "student", 0)
	require.NoError(t, err)
	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
