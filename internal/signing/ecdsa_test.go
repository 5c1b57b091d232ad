package signing

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"
)

func generateKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()
	priv, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return priv
}

func TestSignerVerifierRoundTrip(t *testing.T) {
	cases := []struct {
		alg    Algorithm
		curve  elliptic.Curve
		sigLen int
	}{
		{ES256, elliptic.P256(), 64},
		{ES384, elliptic.P384(), 96},
		{ES512, elliptic.P521(), 132},
	}

	for _, c := range cases {
		priv := generateKey(t, c.curve)

		signer, err := NewSigner(c.alg, priv)
		if err != nil {
			t.Fatalf("%s: NewSigner: %v", c.alg, err)
		}
		verifier, err := NewVerifier(c.alg, &priv.PublicKey)
		if err != nil {
			t.Fatalf("%s: NewVerifier: %v", c.alg, err)
		}

		msg := []byte("header.payload")
		sig, err := signer.Sign(msg)
		if err != nil {
			t.Fatalf("%s: Sign: %v", c.alg, err)
		}
		if len(sig) != c.sigLen {
			t.Fatalf("%s: signature length = %d, want %d", c.alg, len(sig), c.sigLen)
		}
		if err := verifier.Verify(sig, msg); err != nil {
			t.Fatalf("%s: Verify of a valid signature failed: %v", c.alg, err)
		}

		sig[0] ^= 0xFF
		if err := verifier.Verify(sig, msg); err == nil {
			t.Fatalf("%s: expected Verify to reject a tampered signature", c.alg)
		}
	}
}

func TestNewSignerRejectsCurveMismatch(t *testing.T) {
	priv := generateKey(t, elliptic.P384())
	if _, err := NewSigner(ES256, priv); err == nil {
		t.Fatal("expected error binding a P-384 key to ES256")
	}
}

func TestVerifierRejectsWrongLengthSignature(t *testing.T) {
	priv := generateKey(t, elliptic.P256())
	verifier, err := NewVerifier(ES256, &priv.PublicKey)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	if err := verifier.Verify([]byte("too-short"), []byte("msg")); err == nil {
		t.Fatal("expected Verify to reject a wrong-length signature")
	}
}
