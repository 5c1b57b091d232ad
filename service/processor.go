// Package service is the ambient layer around jwtcore's core encode/verify
// pipeline: TTL policy, subject rate limiting, jti-based revocation, and
// structured audit logging. None of these are core concerns per spec §6 —
// the core never logs, never revokes, and never assigns TTLs on its own.
package service

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cybergodev/jwtcore"
	"github.com/cybergodev/jwtcore/service/blacklist"
)

// Processor issues and verifies access tokens on top of a single
// jwtcore.MACHandle, adding the ambient policy Config describes.
type Processor struct {
	handle          *jwtcore.MACHandle
	key             *jwtcore.HMACKey
	accessTokenTTL  time.Duration
	issuer          string
	blacklist       blacklist.Manager
	enableBlacklist bool
	rateLimiter     *RateLimiter
	logger          *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// New builds a Processor from cfg. The secret key is copied into a
// zeroing container immediately; cfg.SecretKey is not retained.
func New(cfg Config) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key, err := jwtcore.NewHMACKey(cfg.Algorithm, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger, err = zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("service: failed to build default logger: %w", err)
		}
	}

	var mgr blacklist.Manager
	if cfg.EnableBlacklist {
		var store blacklist.Store
		if cfg.RedisClient != nil {
			store = blacklist.NewRedisStore(cfg.RedisClient)
		} else {
			store = blacklist.NewMemoryStore(cfg.BlacklistConfig.MaxSize)
		}
		mgr = blacklist.NewManager(store, cfg.BlacklistConfig)
	}

	var limiter *RateLimiter
	if cfg.EnableRateLimit {
		limiter = NewRateLimiter(cfg.RateLimitRate, cfg.RateLimitWindow)
	}

	p := &Processor{
		handle:          jwtcore.NewJWTMAC(key),
		key:             key,
		accessTokenTTL:  cfg.AccessTokenTTL,
		issuer:          cfg.Issuer,
		blacklist:       mgr,
		enableBlacklist: cfg.EnableBlacklist,
		rateLimiter:     limiter,
		logger:          logger,
	}
	runtime.SetFinalizer(p, (*Processor).finalize)
	return p, nil
}

// IssueToken builds and signs an access token for subject, stamping
// iss/iat/exp and a fresh jti. audience may be nil.
func (p *Processor) IssueToken(subject string, audience []string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return "", ErrProcessorClosed
	}

	if p.rateLimiter != nil && !p.rateLimiter.Allow(subject) {
		p.logger.Warn("token issuance rate limited", zap.String("subject", subject))
		return "", ErrRateLimited
	}

	now := time.Now()
	builder := jwtcore.NewRawJwtBuilder().
		SetIssuer(p.issuer).
		SetSubject(subject).
		SetJwtID(uuid.NewString())
	for _, aud := range audience {
		builder = builder.AddAudience(aud)
	}
	if err := builder.SetIssuedAt(now); err != nil {
		return "", err
	}
	if err := builder.SetExpiration(now.Add(p.accessTokenTTL)); err != nil {
		return "", err
	}

	raw, err := builder.Build()
	if err != nil {
		return "", err
	}

	token, err := p.handle.ComputeAndEncode(raw)
	if err != nil {
		p.logger.Error("token issuance failed", zap.String("subject", subject), zap.Error(err))
		return "", err
	}

	p.logger.Info("token issued", zap.String("subject", subject), zap.Duration("ttl", p.accessTokenTTL))
	return token, nil
}

// VerifyToken verifies token against the processor's key and validator
// options, then — if revocation is enabled — checks the token's jti
// against the blacklist. Revocation is checked after signature
// verification, since jti cannot be trusted before the MAC is valid.
func (p *Processor) VerifyToken(token string, opts ...jwtcore.ValidatorOption) (jwtcore.VerifiedJwt, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return jwtcore.VerifiedJwt{}, ErrProcessorClosed
	}

	validator := jwtcore.NewValidator(opts...)
	verified, err := p.handle.VerifyAndDecode(token, validator)
	if err != nil {
		p.logger.Info("token verification failed", zap.Error(err))
		return jwtcore.VerifiedJwt{}, err
	}

	if p.enableBlacklist {
		jti, err := verified.JwtID()
		if err == nil {
			revoked, err := p.blacklist.IsRevoked(jti)
			if err != nil {
				p.logger.Error("blacklist check failed", zap.String("jti", jti), zap.Error(err))
				return jwtcore.VerifiedJwt{}, err
			}
			if revoked {
				p.logger.Info("verified token was revoked", zap.String("jti", jti))
				return jwtcore.VerifiedJwt{}, ErrTokenRevoked
			}
		}
	}

	return verified, nil
}

// RevokeToken verifies token (ignoring expiration, since an already
// expired token needs no revocation) and adds its jti to the blacklist
// until the token's own expiration.
func (p *Processor) RevokeToken(token string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProcessorClosed
	}
	if !p.enableBlacklist {
		return fmt.Errorf("service: revocation is not enabled for this processor")
	}

	// No validator: revocation only needs an authentic token, not one
	// that currently passes time/issuer/audience policy — an already
	// expired token still needs no revocation, but a token expiring
	// soon does, and either way MAC verification alone establishes
	// authenticity.
	verified, err := p.handle.VerifyAndDecode(token, nil)
	if err != nil {
		return err
	}

	jti, err := verified.JwtID()
	if err != nil {
		return fmt.Errorf("service: token has no jti to revoke: %w", err)
	}
	expiresAt := time.Now().Add(24 * time.Hour)
	if verified.HasExpiration() {
		if exp, err := verified.Expiration(); err == nil {
			expiresAt = exp
		}
	}

	if err := p.blacklist.Revoke(jti, expiresAt); err != nil {
		return err
	}
	p.logger.Info("token revoked", zap.String("jti", jti))
	return nil
}

// Close releases the processor's key material, rate limiter, and
// blacklist manager. Safe to call more than once.
func (p *Processor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	p.key.Destroy()
	if p.rateLimiter != nil {
		p.rateLimiter.Close()
	}
	if p.blacklist != nil {
		if err := p.blacklist.Close(); err != nil {
			return err
		}
	}
	_ = p.logger.Sync()
	runtime.SetFinalizer(p, nil)
	return nil
}

func (p *Processor) finalize() {
	_ = p.Close()
}
