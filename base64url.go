package jwtcore

import "github.com/cybergodev/jwtcore/internal/jsonvalue"

// EncodeBase64Url encodes data with the URL- and filename-safe alphabet,
// padding removed, per spec §4.1.
func EncodeBase64Url(data []byte) string { return jsonvalue.EncodeBase64Url(data) }

// DecodeBase64UrlKey decodes a base64url-without-padding string into raw
// key bytes, e.g. for CLI or config-file key material. Decoding is
// strict per spec §4.1: only the base64url alphabet plus optional
// trailing '=' is accepted.
func DecodeBase64UrlKey(encoded string) ([]byte, error) {
	data, err := jsonvalue.DecodeBase64Url(encoded)
	if err != nil {
		return nil, translateJSONErr(err)
	}
	return data, nil
}
