package auth

import (
	"strings"
	"testing"

	"apikit/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_HashRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	hash, err := hasher.Hash("abc12345")

	require.NoError(t, err)
	assert.NotEqual(t, "abc12345", hash)
	assert.True(t, hasher.Check("abc12345", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(8))

	hash, err := hasher.Hash("abc12345")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 8, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	for _, cfg := range []*config.Config{newHasherConfig(99), {}} {
		h, ok := NewBcryptHasher(cfg).(*bcryptHasher)
		require.True(t, ok)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))
	hash, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)

	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("StrongPass123", "invalid_hash"))
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("a1", 40))

	require.Error(t, err)
}
