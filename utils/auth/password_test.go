package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.NoError(t, VerifyPassword(hash, "s3cret!"))
	assert.ErrorIs(t, VerifyPassword(hash, "S3cret!"), ErrPasswordMismatch)
}

func TestHashPasswordSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPasswordTooShort(t *testing.T) {
	_, err := HashPassword("12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
