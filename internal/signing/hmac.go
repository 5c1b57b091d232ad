package signing

import (
	"crypto/hmac"

	"github.com/cybergodev/jwtcore/internal/security"
)

// MAC computes and verifies HMAC tags for one algorithm+key pair,
// component E of the design.
type MAC struct {
	alg    Algorithm
	info   algorithmInfo
	secret *security.SecureBytes
}

// NewMAC binds alg to key. Per spec §4.5, the key must be at least the
// digest's output length; shorter keys are rejected at construction.
func NewMAC(alg Algorithm, key []byte) (*MAC, error) {
	info, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	if info.family != FamilyMAC {
		return nil, invalidKey("algorithm " + string(alg) + " is not a MAC algorithm")
	}
	if len(key) < info.tagLen {
		return nil, invalidKey("HMAC key shorter than digest output length")
	}

	return &MAC{
		alg:    alg,
		info:   info,
		secret: security.NewSecureBytes(key),
	}, nil
}

// Alg returns the header "alg" name for this binding.
func (m *MAC) Alg() string { return string(m.alg) }

// TagLength is the fixed tag length in bytes for this algorithm.
func (m *MAC) TagLength() int { return m.info.tagLen }

// Compute returns the HMAC tag over msg.
func (m *MAC) Compute(msg []byte) ([]byte, error) {
	h := hmac.New(m.info.hash.New, m.secret.Bytes())
	h.Write(msg)
	return h.Sum(nil), nil
}

// Verify reports whether tag is the correct HMAC over msg, using a
// constant-time comparison. Any mismatch, wrong-length tag, or
// underlying failure surfaces as InvalidMacError.
func (m *MAC) Verify(tag, msg []byte) error {
	if len(tag) != m.info.tagLen {
		return invalidMac("HMAC tag has wrong length")
	}
	expected, err := m.Compute(msg)
	if err != nil {
		return invalidMac("failed to compute HMAC: " + err.Error())
	}
	defer security.ZeroBytes(expected)

	if !security.ConstantTimeCompare(tag, expected) {
		return invalidMac("HMAC verification failed")
	}
	return nil
}

// Destroy zeroes the underlying key material. Safe to call more than
// once.
func (m *MAC) Destroy() { m.secret.Destroy() }
