package jwtcore

import (
	"github.com/cybergodev/jwtcore/internal/compact"
	"github.com/cybergodev/jwtcore/internal/jsonvalue"
	"github.com/cybergodev/jwtcore/internal/signing"
)

// SignerHandle is the JWT-Sign orchestrator for the asymmetric case:
// component G bound to F (signature primitive) instead of E.
type SignerHandle struct {
	alg           Algorithm
	signer        *signing.Signer
	encodedHeader string
}

// NewJWTSigner builds a signer handle bound to key.
func NewJWTSigner(key *ECDSAPrivateKey) *SignerHandle {
	return &SignerHandle{
		alg:           key.alg,
		signer:        key.signer,
		encodedHeader: compact.CreateHeader(string(key.alg)),
	}
}

// ComputeAndEncode implements spec §4.7's encode path for the signature
// primitive.
func (h *SignerHandle) ComputeAndEncode(raw RawJwt) (string, error) {
	encodedPayload := jsonvalue.EncodeBase64Url(raw.JSON())
	signingInput := h.encodedHeader + "." + encodedPayload

	sig, err := h.signer.Sign([]byte(signingInput))
	if err != nil {
		return "", translateSigningErr(err)
	}

	return signingInput + "." + jsonvalue.EncodeBase64Url(sig), nil
}

// VerifierHandle is the JWT-Verify orchestrator for the asymmetric case.
type VerifierHandle struct {
	alg      Algorithm
	verifier *signing.Verifier
}

// NewJWTVerifier builds a verifier handle bound to key.
func NewJWTVerifier(key *ECDSAPublicKey) *VerifierHandle {
	return &VerifierHandle{alg: key.alg, verifier: key.verifier}
}

// VerifyAndDecode implements spec §4.7's decode path for the signature
// primitive, with the same verify-before-parse ordering as MACHandle.
func (h *VerifierHandle) VerifyAndDecode(token string, validator *Validator) (VerifiedJwt, error) {
	split, err := compact.Split(token)
	if err != nil {
		return VerifiedJwt{}, translateCompactErr(err)
	}

	sig, err := jsonvalue.DecodeBase64Url(split.EncodedTag)
	if err != nil {
		return VerifiedJwt{}, translateJSONErr(err)
	}

	if err := h.verifier.Verify(sig, []byte(split.SigningInput)); err != nil {
		return VerifiedJwt{}, translateSigningErr(err)
	}

	if _, err := compact.ValidateHeader(split.EncodedHeader, string(h.alg)); err != nil {
		return VerifiedJwt{}, translateCompactErr(err)
	}

	payloadBytes, err := jsonvalue.DecodeBase64Url(split.EncodedPayload)
	if err != nil {
		return VerifiedJwt{}, translateJSONErr(err)
	}
	payload, err := jsonvalue.Parse(payloadBytes)
	if err != nil {
		return VerifiedJwt{}, translateJSONErr(err)
	}
	raw, err := rawJwtFromValue(payload)
	if err != nil {
		return VerifiedJwt{}, err
	}

	if validator != nil {
		if err := validator.Validate(raw); err != nil {
			return VerifiedJwt{}, err
		}
	}

	return newVerifiedJwt(raw), nil
}
