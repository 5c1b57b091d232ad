package service

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cybergodev/jwtcore"
	"github.com/cybergodev/jwtcore/service/blacklist"
)

// Config configures a Processor: the ambient layer around jwtcore's
// core encode/verify pipeline (audit logging, revocation, rate
// limiting, TTL policy), none of which the core itself is aware of.
type Config struct {
	// SecretKey signs and verifies access tokens. Length is validated
	// against Algorithm's digest size when New builds the Processor.
	SecretKey []byte

	// Algorithm must be one of jwtcore's MAC algorithms (HS256/384/512).
	Algorithm jwtcore.Algorithm

	// AccessTokenTTL is the lifetime stamped into exp at issuance.
	AccessTokenTTL time.Duration

	// Issuer is stamped into iss at issuance.
	Issuer string

	// EnableRateLimit throttles IssueToken per subject.
	EnableRateLimit bool
	RateLimitRate   int
	RateLimitWindow time.Duration

	// EnableBlacklist turns on revocation checking in VerifyToken.
	EnableBlacklist bool

	// RedisClient backs the blacklist with a shared store when set;
	// nil falls back to an in-process memory store.
	RedisClient redis.UniversalClient

	BlacklistConfig blacklist.Config

	// Logger receives structured audit events. A production logger is
	// constructed if nil.
	Logger *zap.Logger
}

// DefaultConfig returns non-secret defaults; SecretKey must still be
// supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Algorithm:       jwtcore.HS256,
		AccessTokenTTL:  15 * time.Minute,
		Issuer:          "jwtcore-service",
		EnableRateLimit: false,
		RateLimitRate:   100,
		RateLimitWindow: time.Minute,
		EnableBlacklist: false,
		BlacklistConfig: blacklist.Config{
			CleanupInterval:   time.Minute,
			MaxSize:           100000,
			EnableAutoCleanup: true,
		},
	}
}

// Validate checks the configuration ahead of key construction. Key
// length/algorithm-family validation itself is left to
// jwtcore.NewHMACKey, which is the one place spec §4.5's rule is
// implemented; duplicating it here would risk drift between the two.
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}
	if len(c.SecretKey) == 0 {
		return fmt.Errorf("%w: secret key must not be empty", ErrInvalidSecretKey)
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("%w: access token TTL must be positive", ErrInvalidConfig)
	}
	if c.Issuer == "" {
		return fmt.Errorf("%w: issuer must not be empty", ErrInvalidConfig)
	}
	if c.EnableRateLimit && (c.RateLimitRate <= 0 || c.RateLimitWindow <= 0) {
		return fmt.Errorf("%w: rate limit rate and window must be positive", ErrInvalidConfig)
	}
	return nil
}
