package jwtcore

import "github.com/cybergodev/jwtcore/internal/signing"

// Algorithm is the closed registry of six algorithms spec §3 defines.
// It is a re-export of internal/signing.Algorithm so callers never need
// to import the internal package directly.
type Algorithm = signing.Algorithm

const (
	HS256 = signing.HS256
	HS384 = signing.HS384
	HS512 = signing.HS512
	ES256 = signing.ES256
	ES384 = signing.ES384
	ES512 = signing.ES512
)
