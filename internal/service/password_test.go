package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anastasya/flower-shop/internal/service"
)

func TestPassword_RoundTrip(t *testing.T) {
	// Minimum cost keeps the unit test fast; the round-trip property holds
	// for any cost.
	hash, err := service.HashPassword("Passw0rd", 4)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "Passw0rd", hash)

	assert.True(t, service.CheckPassword("Passw0rd", hash))
	assert.False(t, service.CheckPassword("passw0rd", hash))
	assert.False(t, service.CheckPassword("", hash))
	assert.False(t, service.CheckPassword("Passw0rd ", hash))
}

func TestPassword_HashesAreSalted(t *testing.T) {
	first, err := service.HashPassword("Passw0rd", 4)
	require.NoError(t, err)
	second, err := service.HashPassword("Passw0rd", 4)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
}

func TestPassword_CheckAgainstGarbageHash(t *testing.T) {
	assert.False(t, service.CheckPassword("Passw0rd", "not-a-bcrypt-hash"))
}
