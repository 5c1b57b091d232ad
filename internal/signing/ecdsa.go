package signing

import (
	"crypto/ecdsa"
	"crypto/rand"
	"math/big"
)

// Signer produces IEEE-P1363 fixed-width ECDSA signatures, component F
// of the design (sign side).
type Signer struct {
	alg  Algorithm
	info algorithmInfo
	priv *ecdsa.PrivateKey
}

// Verifier checks IEEE-P1363 fixed-width ECDSA signatures, component F
// of the design (verify side).
type Verifier struct {
	alg  Algorithm
	info algorithmInfo
	pub  *ecdsa.PublicKey
}

// NewSigner binds alg to a private key. Curve mismatch is rejected with
// InvalidKeyError; on-curve validity is enforced by crypto/ecdsa itself
// when the key was constructed or parsed.
func NewSigner(alg Algorithm, priv *ecdsa.PrivateKey) (*Signer, error) {
	info, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	if info.family != FamilySignature {
		return nil, invalidKey("algorithm " + string(alg) + " is not a signature algorithm")
	}
	if priv == nil || priv.Curve == nil {
		return nil, invalidKey("nil ECDSA private key")
	}
	if priv.Curve != info.curve {
		return nil, invalidKey("ECDSA private key curve does not match algorithm " + string(alg))
	}
	return &Signer{alg: alg, info: info, priv: priv}, nil
}

// NewVerifier binds alg to a public key.
func NewVerifier(alg Algorithm, pub *ecdsa.PublicKey) (*Verifier, error) {
	info, err := lookup(alg)
	if err != nil {
		return nil, err
	}
	if info.family != FamilySignature {
		return nil, invalidKey("algorithm " + string(alg) + " is not a signature algorithm")
	}
	if pub == nil || pub.Curve == nil {
		return nil, invalidKey("nil ECDSA public key")
	}
	if pub.Curve != info.curve {
		return nil, invalidKey("ECDSA public key curve does not match algorithm " + string(alg))
	}
	if !pub.Curve.IsOnCurve(pub.X, pub.Y) {
		return nil, invalidKey("ECDSA public key is not on curve")
	}
	return &Verifier{alg: alg, info: info, pub: pub}, nil
}

func (s *Signer) Alg() string { return string(s.alg) }
func (v *Verifier) Alg() string { return string(v.alg) }

// SignatureLength is the fixed IEEE-P1363 wire length: 2*byteWidth.
func (s *Signer) SignatureLength() int { return 2 * s.info.byteWidth }
func (v *Verifier) SignatureLength() int { return 2 * v.info.byteWidth }

// Sign produces a fixed-width r||s signature over msg.
func (s *Signer) Sign(msg []byte) ([]byte, error) {
	digest := hashMessage(s.info, msg)

	r, sVal, err := ecdsa.Sign(rand.Reader, s.priv, digest)
	if err != nil {
		return nil, invalidSignature("ECDSA signing failed: " + err.Error())
	}

	return encodeP1363(r, sVal, s.info.byteWidth), nil
}

// Verify checks sig against msg. A wrong-length signature or a failed
// primitive check both surface as InvalidSignatureError.
func (v *Verifier) Verify(sig, msg []byte) error {
	width := v.info.byteWidth
	if len(sig) != 2*width {
		return invalidSignature("ECDSA signature has wrong length")
	}

	r := new(big.Int).SetBytes(sig[:width])
	s := new(big.Int).SetBytes(sig[width:])

	digest := hashMessage(v.info, msg)

	if !ecdsa.Verify(v.pub, digest, r, s) {
		return invalidSignature("ECDSA verification failed")
	}
	return nil
}

func hashMessage(info algorithmInfo, msg []byte) []byte {
	h := info.hash.New()
	h.Write(msg)
	return h.Sum(nil)
}

// encodeP1363 renders r and s as the fixed-width big-endian
// concatenation IEEE-P1363 (and RFC 7518 §3.4) requires: each component
// left-padded with zero bytes to byteWidth.
func encodeP1363(r, s *big.Int, byteWidth int) []byte {
	out := make([]byte, 2*byteWidth)
	r.FillBytes(out[:byteWidth])
	s.FillBytes(out[byteWidth:])
	return out
}
