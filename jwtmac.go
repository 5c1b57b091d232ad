package jwtcore

import (
	"github.com/cybergodev/jwtcore/internal/compact"
	"github.com/cybergodev/jwtcore/internal/jsonvalue"
	"github.com/cybergodev/jwtcore/internal/signing"
)

// MACHandle is the JWT-MAC orchestrator component G describes for the
// symmetric case: it binds C (claim set), D (compact framing), and E
// (MAC primitive) into compute_and_encode / verify_and_decode. A handle
// is built once per key and is safe for concurrent read-only use, per
// spec §5.
type MACHandle struct {
	alg           Algorithm
	mac           *signing.MAC
	encodedHeader string
}

// NewJWTMAC builds a MAC handle bound to key. The header is precomputed
// once, since it depends only on the algorithm.
func NewJWTMAC(key *HMACKey) *MACHandle {
	return &MACHandle{
		alg:           key.alg,
		mac:           key.mac,
		encodedHeader: compact.CreateHeader(string(key.alg)),
	}
}

// ComputeAndEncode implements spec §4.7's encode path.
func (h *MACHandle) ComputeAndEncode(raw RawJwt) (string, error) {
	encodedPayload := jsonvalue.EncodeBase64Url(raw.JSON())
	signingInput := h.encodedHeader + "." + encodedPayload

	tag, err := h.mac.Compute([]byte(signingInput))
	if err != nil {
		return "", translateSigningErr(err)
	}

	return signingInput + "." + jsonvalue.EncodeBase64Url(tag), nil
}

// VerifyAndDecode implements spec §4.7's decode path. Verification
// happens before any parse of header or payload beyond the split, per
// the spec's ordering requirement.
func (h *MACHandle) VerifyAndDecode(token string, validator *Validator) (VerifiedJwt, error) {
	split, err := compact.Split(token)
	if err != nil {
		return VerifiedJwt{}, translateCompactErr(err)
	}

	tag, err := jsonvalue.DecodeBase64Url(split.EncodedTag)
	if err != nil {
		return VerifiedJwt{}, translateJSONErr(err)
	}

	if err := h.mac.Verify(tag, []byte(split.SigningInput)); err != nil {
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
