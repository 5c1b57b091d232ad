package blacklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps any failure reaching the backing Redis
// instance, distinguished from a plain "not found" so callers can
// decide whether to fail open or closed.
var ErrRedisUnavailable = errors.New("blacklist: redis unavailable")

const redisKeyPrefix = "jwtcore:blacklist:"

// redisStore is a shared revocation list backed by Redis key TTLs: the
// key's own expiry does the cleanup work, so Cleanup is a no-op and Size
// is not supported (it returns an error). Suitable for multi-instance deployments where a memoryStore
// alone would let one instance verify a token another has revoked.
type redisStore struct {
	client redis.UniversalClient
}

// NewRedisStore returns a Store backed by client. Revocation entries
// expire via Redis TTL, set to the token's own expiration.
func NewRedisStore(client redis.UniversalClient) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Add(tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	ctx := context.Background()
	if err := s.client.Set(ctx, redisKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

func (s *redisStore) Contains(tokenID string) (bool, error) {
	ctx := context.Background()
	n, err := s.client.Exists(ctx, redisKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return n > 0, nil
}

func (s *redisStore) Remove(tokenID string) error {
	ctx := context.Background()
	if err := s.client.Del(ctx, redisKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Cleanup is a no-op: Redis key TTLs already reclaim expired entries.
func (s *redisStore) Cleanup() (int, error) { return 0, nil }

// Size is unsupported for a shared keyspace store without a dedicated
// index; scanning the full keyspace to count keys would be an
// operational hazard on a production Redis instance.
func (s *redisStore) Size() (int, error) {
	return 0, errors.New("blacklist: Size is not supported by redisStore")
}

func (s *redisStore) Close() error { return s.client.Close() }

func redisKey(tokenID string) string { return redisKeyPrefix + tokenID }
