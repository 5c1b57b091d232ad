// Package compact implements JWS Compact Serialization framing:
// header construction/validation and the three-segment split, component D
// of the design. It never inspects claim contents.
package compact

import (
	"github.com/cybergodev/jwtcore/internal/jsonvalue"
)

// MalformedError and HeaderError are distinguished so the root package
// can map them to the MalformedToken / InvalidHeader / AlgorithmMismatch
// error kinds spec §7 requires without compact importing the root
// package's error type (which would be a cycle).
type MalformedError struct{ msg string }

func (e *MalformedError) Error() string { return e.msg }

type HeaderError struct{ msg string }

func (e *HeaderError) Error() string { return e.msg }

type AlgorithmMismatchError struct{ msg string }

func (e *AlgorithmMismatchError) Error() string { return e.msg }

func malformed(msg string) error   { return &MalformedError{msg: msg} }
func headerErr(msg string) error   { return &HeaderError{msg: msg} }
func algMismatch(msg string) error { return &AlgorithmMismatchError{msg: msg} }

// CreateHeader builds the canonical {"alg":"<ALG>","typ":"JWT"} header and
// returns its base64url encoding, per spec §4.4.
func CreateHeader(alg string) string {
	header := jsonvalue.Object(map[string]jsonvalue.Value{
		"alg": jsonvalue.String(alg),
		"typ": jsonvalue.String("JWT"),
	})
	return jsonvalue.EncodeBase64Url(jsonvalue.Serialize(header))
}

// ValidateHeader decodes encodedHeader and checks it against expectedAlg
// per spec §4.4 steps 1-6. It returns the parsed header object on success
// so callers that need to inspect additional (tolerated) keys can do so.
func ValidateHeader(encodedHeader, expectedAlg string) (jsonvalue.Value, error) {
	raw, err := jsonvalue.DecodeBase64Url(encodedHeader)
	if err != nil {
		return jsonvalue.Value{}, malformed("malformed header segment: " + err.Error())
	}

	header, err := jsonvalue.Parse(raw)
	if err != nil {
		return jsonvalue.Value{}, malformed("malformed header JSON: " + err.Error())
	}
	if header.Kind() != jsonvalue.KindObject {
		return jsonvalue.Value{}, malformed("header is not a JSON object")
	}

	if typVal, ok := header.Get("typ"); ok {
		typStr, isStr := typVal.StringValue()
		if !isStr || typStr != "JWT" {
			return jsonvalue.Value{}, headerErr(`header "typ" must be exactly "JWT" when present`)
		}
	}

	algVal, ok := header.Get("alg")
	if !ok {
		return jsonvalue.Value{}, headerErr(`header is missing "alg"`)
	}
	algStr, isStr := algVal.StringValue()
	if !isStr {
		return jsonvalue.Value{}, headerErr(`header "alg" must be a string`)
	}
	if algStr != expectedAlg {
		return jsonvalue.Value{}, algMismatch("header alg " + algStr + " does not match handle algorithm " + expectedAlg)
	}

	if _, hasCrit := header.Get("crit"); hasCrit {
		return jsonvalue.Value{}, headerErr(`"crit" header parameter is not supported`)
	}

	return header, nil
}
