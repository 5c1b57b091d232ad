package service

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cybergodev/jwtcore"
	"github.com/cybergodev/jwtcore/service/blacklist"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.SecretKey = []byte("0123456789abcdef0123456789abcdef")
	cfg.Logger = zap.NewNop()
	return cfg
}

func TestProcessorIssueAndVerify(t *testing.T) {
	p, err := New(testConfig(t))
	require.NoError(t, err)
	defer p.Close()

	token, err := p.IssueToken("user-1", []string{"aud-1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := p.VerifyToken(token, jwtcore.ExpectAudience("aud-1"))
	require.NoError(t, err)

	sub, err := verified.Subject()
	require.NoError(t, err)
	require.Equal(t, "user-1", sub)
}

func TestProcessorRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.SecretKey = nil
	_, err := New(cfg)
	require.ErrorIs(t, err, ErrInvalidSecretKey)
}

func TestProcessorRateLimiting(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnableRateLimit = true
	cfg.RateLimitRate = 1
	cfg.RateLimitWindow = time.Minute

	p, err := New(cfg)
	require.NoError(t, err)
	defer p.Close()

	_, err = p.IssueToken("user-1", nil)
	require.NoError(t, err)

	_, err = p.IssueToken("user-1", nil)
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestProcessorRevocationWithMemoryStore(t *testing.T) {
	cfg := testConfig(t)
	cfg.EnableBlacklist = true
	cfg.BlacklistConfig = blacklist.Config{MaxSize: 1000}

	p, err := New(cfg)
	require.NoError(t, err)
	defer p.Close()

	token, err := p.IssueToken("user-1", nil)
	require.NoError(t, err)

	_, err = p.VerifyToken(token)
	require.NoError(t, err)

	require.NoError(t, p.RevokeToken(token))

	_, err = p.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestProcessorRevocationWithRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cfg := testConfig(t)
	cfg.EnableBlacklist = true
	cfg.RedisClient = client

	p, err := New(cfg)
	require.NoError(t, err)
	defer p.Close()

	token, err := p.IssueToken("user-1", nil)
	require.NoError(t, err)
	require.NoError(t, p.RevokeToken(token))

	_, err = p.VerifyToken(token)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestProcessorRejectsAfterClose(t *testing.T) {
	p, err := New(testConfig(t))
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, err = p.IssueToken("user-1", nil)
	require.ErrorIs(t, err, ErrProcessorClosed)
}
