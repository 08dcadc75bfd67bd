package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/educa/internal/pkg/apperrors"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("change-me-now")
	require.NoError(t, err)
	assert.NotEqual(t, "change-me-now", hash)

	assert.True(t, CheckPassword(hash, "change-me-now"))
	assert.False(t, CheckPassword(hash, "change-me-later"))
	assert.False(t, CheckPassword("not-a-hash", "change-me-now"))
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
