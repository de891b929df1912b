package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")

	for _, secret := range []string{"", insecureJWTSecret} {
		t.Setenv("JWT_SECRET", secret)

		cfg, err := LoadConfig()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, ErrInsecureJWTSecret, "secret %q", secret)
	}
}

func TestLoadConfig_DevelopmentFallsBackToDefaultSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "false")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, insecureJWTSecret, cfg.JWTSecret)
}

func TestLoadConfig_ProductionWithSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "a-real-production-secret")
	t.Setenv("JWT_ISSUER", "shop")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("RECAPTCHA_BYPASS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.RecaptchaBypass, "bypass is ignored in production")

	signer := cfg.AdminTokenSigner()
	assert.Equal(t, "a-real-production-secret", signer.Secret)
	assert.Equal(t, "shop", signer.Issuer)
	assert.Equal(t, 30*time.Minute, signer.Expiry)
}
