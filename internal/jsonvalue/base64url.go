// Package jsonvalue implements the JWT core's JSON value model: a tagged
// six-kind value (component B of the design), the URL-safe base64 codec
// segments are carried over (component A), and a deterministic
// string<->value codec built on encoding/json's tokenizer.
package jsonvalue

import (
	"encoding/base64"
	"strings"
)

// EncodeBase64Url encodes raw bytes using the URL- and filename-safe
// base64 alphabet with padding removed, per spec §4.1.
func EncodeBase64Url(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64Url decodes a base64url segment. It tolerates an optional
// trailing run of '=' padding but otherwise accepts only the base64url
// alphabet; any other character (including whitespace, '+', or '/')
// fails. Length mod 4 == 1 (after stripping padding) is always invalid.
func DecodeBase64Url(segment string) ([]byte, error) {
	trimmed := strings.TrimRight(segment, "=")
	if err := validateAlphabet(trimmed); err != nil {
		return nil, err
	}

	switch len(trimmed) % 4 {
	case 1:
		return nil, errMalformed("invalid base64url length")
	}

	data, err := base64.RawURLEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, errMalformed("invalid base64url encoding: " + err.Error())
	}
	return data, nil
}

func validateAlphabet(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return errMalformed("invalid base64url character")
		}
	}
	return nil
}
