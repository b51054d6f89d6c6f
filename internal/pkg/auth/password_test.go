package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("SANTOS123")
	require.NoError(t, err)
	assert.NotEqual(t, "SANTOS123", hash)

	assert.True(t, CheckPassword(hash, "SANTOS123"))
	assert.False(t, CheckPassword(hash, "santos123"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "SANTOS123"))
}
