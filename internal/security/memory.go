// Package security owns key-material lifetime: scoped acquisition of
// sensitive bytes with guaranteed zeroization on release, and
// constant-time comparison for tag/signature verification.
package security

import (
	"crypto/subtle"
	"runtime"
	"sync"
)

// SecureBytes owns a private copy of sensitive byte data and zeroes it
// on Destroy (also registered as a finalizer, in case a caller forgets).
// This is the container spec §9 calls for: "scoped acquisition of key
// material with guaranteed zeroization on all exit paths", kept distinct
// from a plain []byte so callers can't accidentally alias it away.
type SecureBytes struct {
	mu   sync.Mutex
	data []byte
}

// NewSecureBytes copies src into a new SecureBytes. The caller retains
// ownership of src; SecureBytes never zeroes bytes it doesn't own.
func NewSecureBytes(src []byte) *SecureBytes {
	sb := &SecureBytes{data: append([]byte(nil), src...)}
	runtime.SetFinalizer(sb, (*SecureBytes).Destroy)
	return sb
}

// Bytes returns the underlying slice. Callers must not retain it past
// the SecureBytes' lifetime.
func (s *SecureBytes) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

// Destroy zeroes the backing array and releases it. Safe to call more
// than once and safe to call concurrently with Bytes (though a Bytes
// slice already handed out is not further protected).
func (s *SecureBytes) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return
	}
	ZeroBytes(s.data)
	s.data = nil
	runtime.SetFinalizer(s, nil)
}

// ZeroBytes overwrites data with zeroes in place.
func ZeroBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}

// ConstantTimeCompare reports whether a and b hold the same bytes,
// taking time independent of where they first differ. Different lengths
// are unequal (and this itself leaks no timing information about
// content, only about length, which the caller already knows before
// calling).
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
