package service

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jwtcore"
)

// ErrNoKeyVerified is returned by KeySet.VerifyAndDecode when none of the
// held keys accept the token.
var ErrNoKeyVerified = errors.New("service: no key in the set verified the token")

// KeySet holds multiple MACHandles and accepts a token if any one of them
// verifies it. This mirrors Tink's jwt_mac_wrapper, which tries every
// primitive in a keyset until one succeeds or all fail, supporting key
// rotation without a verifier ever needing to know which key signed a
// given token.
//
// KeySet does not change the meaning of MACHandle itself: each handle
// inside the set still performs the exact spec §4.7 verify-then-parse
// sequence on its own.
type KeySet struct {
	handles []*jwtcore.MACHandle
	keys    []*jwtcore.HMACKey
	primary int
}

// NewKeySet builds a KeySet from one or more HMAC keys. The first key is
// the primary: ComputeAndEncode always uses it. VerifyAndDecode tries
// every key in order, primary first, and returns the first successful
// result.
func NewKeySet(keys ...*jwtcore.HMACKey) (*KeySet, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("service: NewKeySet requires at least one key")
	}
	handles := make([]*jwtcore.MACHandle, len(keys))
	for i, k := range keys {
		if k == nil {
			return nil, fmt.Errorf("service: NewKeySet key at index %d is nil", i)
		}
		handles[i] = jwtcore.NewJWTMAC(k)
	}
	return &KeySet{handles: handles, keys: keys, primary: 0}, nil
}

// ComputeAndEncode signs raw with the primary (first) key.
func (ks *KeySet) ComputeAndEncode(raw jwtcore.RawJwt) (string, error) {
	return ks.handles[ks.primary].ComputeAndEncode(raw)
}

// VerifyAndDecode tries every key in the set, primary first, returning the
// first successful verification. If every key fails, it returns
// ErrNoKeyVerified wrapping the primary key's own error, since that
// failure is the one most likely to matter to a caller mid-rotation.
func (ks *KeySet) VerifyAndDecode(token string, validator *jwtcore.Validator) (jwtcore.VerifiedJwt, error) {
	var primaryErr error
	for i, h := range ks.handles {
		verified, err := h.VerifyAndDecode(token, validator)
		if err == nil {
			return verified, nil
		}
		if i == ks.primary {
			primaryErr = err
		}
	}
	return jwtcore.VerifiedJwt{}, fmt.Errorf("%w: %w", ErrNoKeyVerified, primaryErr)
}

// Destroy zeroizes every key held by the set.
func (ks *KeySet) Destroy() {
	for _, k := range ks.keys {
		k.Destroy()
	}
}
