package auth

import (
	"strings"
	"testing"

	"gamehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Admin: &config.AdminConfig{BcryptCost: bcrypt.MinCost}})

	password := "operator-secret"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Admin: &config.AdminConfig{BcryptCost: bcrypt.MinCost}})
	password := "operator-secret"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-secret", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: &config.Config{Admin: &config.AdminConfig{BcryptCost: 5}}, want: 5},
		{name: "out of range", cfg: &config.Config{Admin: &config.AdminConfig{BcryptCost: 1}}, want: bcrypt.DefaultCost},
		{name: "no admin section", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Admin: &config.AdminConfig{BcryptCost: bcrypt.MinCost}})

	_, err := hasher.Hash(strings.Repeat("x", 100))
	assert.Error(t, err)
}
