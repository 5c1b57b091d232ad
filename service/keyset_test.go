package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cybergodev/jwtcore"
)

func mustHMACKey(t *testing.T, seed byte) *jwtcore.HMACKey {
	t.Helper()
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = seed
	}
	key, err := jwtcore.NewHMACKey(jwtcore.HS256, raw)
	require.NoError(t, err)
	return key
}

func mustRawJwt(t *testing.T) jwtcore.RawJwt {
	t.Helper()
	builder := jwtcore.NewRawJwtBuilder().
		SetIssuer("keyset-test").
		SetSubject("user-1")
	require.NoError(t, builder.SetExpiration(time.Now().Add(time.Hour)))
	raw, err := builder.Build()
	require.NoError(t, err)
	return raw
}

func TestKeySetVerifiesWithOlderKey(t *testing.T) {
	oldKey := mustHMACKey(t, 0x01)
	newKey := mustHMACKey(t, 0x02)
	defer oldKey.Destroy()
	defer newKey.Destroy()

	oldHandle := jwtcore.NewJWTMAC(oldKey)
	token, err := oldHandle.ComputeAndEncode(mustRawJwt(t))
	require.NoError(t, err)

	ks, err := NewKeySet(newKey, oldKey)
	require.NoError(t, err)

	verified, err := ks.VerifyAndDecode(token, jwtcore.NewValidator())
	require.NoError(t, err)
	subject, err := verified.Subject()
	require.NoError(t, err)
	require.Equal(t, "user-1", subject)
}

func TestKeySetSignsWithPrimary(t *testing.T) {
	primary := mustHMACKey(t, 0x03)
	other := mustHMACKey(t, 0x04)
	defer primary.Destroy()
	defer other.Destroy()

	ks, err := NewKeySet(primary, other)
	require.NoError(t, err)

	token, err := ks.ComputeAndEncode(mustRawJwt(t))
	require.NoError(t, err)

	primaryHandle := jwtcore.NewJWTMAC(primary)
	_, err = primaryHandle.VerifyAndDecode(token, jwtcore.NewValidator())
	require.NoError(t, err)

	otherHandle := jwtcore.NewJWTMAC(other)
	_, err = otherHandle.VerifyAndDecode(token, jwtcore.NewValidator())
	require.Error(t, err)
}

func TestKeySetRejectsWhenNoKeyMatches(t *testing.T) {
	signingKey := mustHMACKey(t, 0x05)
	unrelatedKey := mustHMACKey(t, 0x06)
	defer signingKey.Destroy()
	defer unrelatedKey.Destroy()

	handle := jwtcore.NewJWTMAC(signingKey)
	token, err := handle.ComputeAndEncode(mustRawJwt(t))
	require.NoError(t, err)

	ks, err := NewKeySet(unrelatedKey)
	require.NoError(t, err)

	_, err = ks.VerifyAndDecode(token, jwtcore.NewValidator())
	require.ErrorIs(t, err, ErrNoKeyVerified)
}

func TestNewKeySetRequiresAtLeastOneKey(t *testing.T) {
	_, err := NewKeySet()
	require.Error(t, err)
}
