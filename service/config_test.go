package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigValidateRequiresSecretKey(t *testing.T) {
	cfg := DefaultConfig()
	require.ErrorIs(t, cfg.Validate(), ErrInvalidSecretKey)
}

func TestConfigValidateRequiresPositiveTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SecretKey = []byte("0123456789abcdef0123456789abcdef")
	cfg.AccessTokenTTL = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestConfigValidateRequiresRateLimitParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SecretKey = []byte("0123456789abcdef0123456789abcdef")
	cfg.EnableRateLimit = true
	cfg.RateLimitRate = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestConfigValidateAccepts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SecretKey = []byte("0123456789abcdef0123456789abcdef")
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfigTimings(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, "jwtcore-service", cfg.Issuer)
}
