// Package blacklist tracks revoked token IDs (jti) so a token that
// verifies structurally can still be rejected before its natural
// expiration. It sits outside the core per spec §6 — jwtcore has no
// notion of revocation — and is exercised only by service.Processor.
package blacklist

import "time"

// Store is a revocation list keyed by token ID (jti).
type Store interface {
	// Add marks tokenID revoked until expiresAt.
	Add(tokenID string, expiresAt time.Time) error

	// Contains reports whether tokenID is currently revoked. An entry
	// past its expiresAt is treated as absent.
	Contains(tokenID string) (bool, error)

	// Remove clears a revocation entry ahead of its natural expiry.
	Remove(tokenID string) error

	// Cleanup drops expired entries and returns how many were removed.
	// A store with server-side expiry (Redis TTL) may treat this as a
	// no-op.
	Cleanup() (int, error)

	// Size returns the current number of tracked entries. The Redis-backed
	// store does not count its keys and returns an error instead.
	Size() (int, error)

	// Close releases the store's resources.
	Close() error
}

// Config tunes a Store's background maintenance.
type Config struct {
	CleanupInterval   time.Duration
	MaxSize           int
	EnableAutoCleanup bool
}
