package auth

import (
	"testing"
	"time"

	"gamehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(service string) *config.Config {
	cfg := &config.Config{
		Admin: &config.AdminConfig{
			TokenSecret: "test_admin_secret_key_very_long_for_testing",
			TokenTTL:    time.Hour,
		},
	}
	cfg.Env.ServiceName = service

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("distributor"))
	require.NoError(t, err)

	token, err := svc.GenerateToken("operator", []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, "gamehub/distributor", claims.Issuer)
	assert.Equal(t, time.Hour, svc.TokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{Admin: &config.AdminConfig{}})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("distributor"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_OtherServiceToken(t *testing.T) {
	distributor, err := NewJWTService(newTestConfig("distributor"))
	require.NoError(t, err)
	publisher, err := NewJWTService(newTestConfig("publisher"))
	require.NoError(t, err)

	token, err := distributor.GenerateToken("operator", nil)
	require.NoError(t, err)

	_, err = publisher.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("publisher"))
	require.NoError(t, err)

	other := newTestConfig("publisher")
	other.Admin.TokenSecret = "another_secret_key_of_reasonable_length"
	forger, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := forger.GenerateToken("operator", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("publisher"))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	impl.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("operator", nil)
	require.NoError(t, err)

	impl.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
