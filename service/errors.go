package service

import "errors"

var (
	ErrInvalidConfig    = errors.New("service: invalid configuration")
	ErrInvalidSecretKey = errors.New("service: invalid secret key")
	ErrRateLimited      = errors.New("service: rate limit exceeded")
	ErrTokenRevoked     = errors.New("service: token has been revoked")
	ErrProcessorClosed  = errors.New("service: processor is closed")
)
