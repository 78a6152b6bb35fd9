package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setServerEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/portfolioai_test")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("EXPORT_DIR", "")
}

func TestNewServer_Defaults(t *testing.T) {
	setServerEnv(t)

	cfg, err := NewServer()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.Equal(t, "test-key", cfg.GeminiKey)
}

func TestNewServer_RequiredVars(t *testing.T) {
	setServerEnv(t)
	t.Setenv("DATABASE_URL", "")
	_, err := NewServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	setServerEnv(t)
	t.Setenv("GEMINI_API_KEY", "")
	_, err = NewServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewServer_PortValidation(t *testing.T) {
	setServerEnv(t)

	t.Setenv("PORT", "9090")
	cfg, err := NewServer()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)

	t.Setenv("PORT", "0")
	_, err = NewServer()
	assert.Error(t, err)

	t.Setenv("PORT", "not-a-number")
	_, err = NewServer()
	assert.Error(t, err)
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "48")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 48, cfg.ExpirationHours)

	t.Setenv("JWT_EXPIRATION_HOURS", "0")
	_, err = NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	_, err = NewJWTConfig()
	assert.Error(t, err)
}

func TestNewPasswordConfig_CostBounds(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)

	for _, bad := range []string{"9", "15", "abc"} {
		t.Setenv("BCRYPT_COST", bad)
		_, err := NewPasswordConfig()
		assert.Error(t, err, "BCRYPT_COST=%s", bad)
	}
}

func TestPassword_HashVerifyRoundTrip(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10, Pepper: "pep"}

	hash, err := cfg.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifyPassword("hunter2hunter2", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))

	// A different pepper invalidates the hash even with the right password.
	other := &PasswordConfig{BcryptCost: 10, Pepper: "different"}
	assert.False(t, other.VerifyPassword("hunter2hunter2", hash))
}
