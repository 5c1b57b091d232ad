package jwtcore

import (
	"crypto/ecdsa"

	"github.com/cybergodev/jwtcore/internal/signing"
)

// HMACKey binds raw key bytes to one MAC algorithm. Construction
// validates the length per spec §4.5; the bytes are copied into a
// zeroing-on-release container immediately, and the caller's slice is
// never retained.
type HMACKey struct {
	alg Algorithm
	mac *signing.MAC
}

// NewHMACKey validates and binds key to alg. Keys shorter than the
// algorithm's digest output length fail with InvalidKey.
func NewHMACKey(alg Algorithm, key []byte) (*HMACKey, error) {
	mac, err := signing.NewMAC(alg, key)
	if err != nil {
		return nil, translateSigningErr(err)
	}
	return &HMACKey{alg: alg, mac: mac}, nil
}

// Algorithm returns the algorithm this key is bound to.
func (k *HMACKey) Algorithm() Algorithm { return k.alg }

// Destroy zeroes the underlying key material. Safe to call more than
// once; the key must not be used again afterward.
func (k *HMACKey) Destroy() { k.mac.Destroy() }

// ECDSAPrivateKey binds an ECDSA private key to one signature
// algorithm. Public keys have no zeroization requirement per spec §5;
// only HMACKey owns a SecureBytes container.
type ECDSAPrivateKey struct {
	alg    Algorithm
	signer *signing.Signer
}

// NewECDSAPrivateKey validates that priv's curve matches alg and binds
// them together.
func NewECDSAPrivateKey(alg Algorithm, priv *ecdsa.PrivateKey) (*ECDSAPrivateKey, error) {
	signer, err := signing.NewSigner(alg, priv)
	if err != nil {
		return nil, translateSigningErr(err)
	}
	return &ECDSAPrivateKey{alg: alg, signer: signer}, nil
}

func (k *ECDSAPrivateKey) Algorithm() Algorithm { return k.alg }

// ECDSAPublicKey binds an ECDSA public key to one signature algorithm.
type ECDSAPublicKey struct {
	alg      Algorithm
	verifier *signing.Verifier
}

// NewECDSAPublicKey validates that pub's curve matches alg and that
// (x, y) is on-curve, then binds them together.
func NewECDSAPublicKey(alg Algorithm, pub *ecdsa.PublicKey) (*ECDSAPublicKey, error) {
	verifier, err := signing.NewVerifier(alg, pub)
	if err != nil {
		return nil, translateSigningErr(err)
	}
	return &ECDSAPublicKey{alg: alg, verifier: verifier}, nil
}

func (k *ECDSAPublicKey) Algorithm() Algorithm { return k.alg }
