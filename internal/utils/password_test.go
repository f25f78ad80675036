package utils_test

import (
	"testing"

	"github.com/gestorobras/gestor_diarias_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("segredo123")
	require.NoError(t, err)
	assert.NotEqual(t, "segredo123", hash)

	assert.True(t, utils.CheckPasswordHash("segredo123", hash))
	assert.False(t, utils.CheckPasswordHash("errada", hash))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("segredo123", "not-a-bcrypt-hash"))
}
