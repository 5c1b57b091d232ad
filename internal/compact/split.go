package compact

import "strings"

// Split3 holds the three decoded segments of a compact token plus the
// pre-computed signing input (the concatenation the MAC/signature is
// computed over).
type Split3 struct {
	EncodedHeader  string
	EncodedPayload string
	EncodedTag     string
	SigningInput   string
}

// Split breaks a compact token into its three segments per spec §4.4.
// It uses the *last* '.' to find the signature boundary, then requires
// exactly one '.' in the remaining signing input — the only split rule
// that stays unambiguous given the base64url alphabet excludes '.'.
func Split(compact string) (Split3, error) {
	lastDot := strings.LastIndexByte(compact, '.')
	if lastDot < 0 {
		return Split3{}, malformed("compact token has no '.' separator")
	}

	signingInput := compact[:lastDot]
	encodedTag := compact[lastDot+1:]

	firstDot := strings.IndexByte(signingInput, '.')
	if firstDot < 0 {
		return Split3{}, malformed("compact token signing input has no '.' separator")
	}
	if strings.IndexByte(signingInput[firstDot+1:], '.') >= 0 {
		return Split3{}, malformed("compact token has too many '.' separators")
	}

	encodedHeader := signingInput[:firstDot]
	encodedPayload := signingInput[firstDot+1:]

	if encodedHeader == "" || encodedPayload == "" || encodedTag == "" {
		return Split3{}, malformed("compact token has an empty segment")
	}

	return Split3{
		EncodedHeader:  encodedHeader,
		EncodedPayload: encodedPayload,
		EncodedTag:     encodedTag,
		SigningInput:   signingInput,
	}, nil
}
