package jwtcore

import (
	"errors"
	"fmt"

	"github.com/cybergodev/jwtcore/internal/compact"
	"github.com/cybergodev/jwtcore/internal/jsonvalue"
	"github.com/cybergodev/jwtcore/internal/signing"
)

// ErrorKind is the closed taxonomy of failure modes spec §7 defines.
type ErrorKind string

const (
	InvalidArgument   ErrorKind = "invalid_argument"
	InvalidKey        ErrorKind = "invalid_key"
	MalformedToken    ErrorKind = "malformed_token"
	InvalidHeader     ErrorKind = "invalid_header"
	AlgorithmMismatch ErrorKind = "algorithm_mismatch"
	InvalidMac        ErrorKind = "invalid_mac"
	InvalidSignature  ErrorKind = "invalid_signature"
	TokenExpired      ErrorKind = "token_expired"
	NotYetValid       ErrorKind = "not_yet_valid"
	IssuerMismatch    ErrorKind = "issuer_mismatch"
	SubjectMismatch   ErrorKind = "subject_mismatch"
	AudienceMismatch  ErrorKind = "audience_mismatch"
	NotFound          ErrorKind = "not_found"
)

// Error carries an ErrorKind alongside a human-readable message and an
// optional wrapped cause, in the spirit of the teacher's ValidationError
// (Field/Message/Err with Unwrap) but keyed on a closed error-kind enum
// instead of a free-form field name.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether err carries the given ErrorKind, looking through
// wrapped causes via errors.As.
func Is(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func newErr(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func wrapErr(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// translateCompactErr maps an internal/compact error into the matching
// *Error kind. Anything unrecognized becomes MalformedToken, since that
// is the most conservative reading of "the framing didn't parse".
func translateCompactErr(err error) *Error {
	if err == nil {
		return nil
	}
	var malformed *compact.MalformedError
	if errors.As(err, &malformed) {
		return wrapErr(MalformedToken, "malformed compact token", err)
	}
	var headerErr *compact.HeaderError
	if errors.As(err, &headerErr) {
		return wrapErr(InvalidHeader, "invalid header", err)
	}
	var algErr *compact.AlgorithmMismatchError
	if errors.As(err, &algErr) {
		return wrapErr(AlgorithmMismatch, "algorithm mismatch", err)
	}
	return wrapErr(MalformedToken, "malformed compact token", err)
}

// translateJSONErr maps a jsonvalue decode failure to MalformedToken.
func translateJSONErr(err error) *Error {
	if err == nil {
		return nil
	}
	var malformed *jsonvalue.MalformedError
	if errors.As(err, &malformed) {
		return wrapErr(MalformedToken, "malformed JSON", err)
	}
	return wrapErr(MalformedToken, "malformed JSON", err)
}

// translateSigningErr maps an internal/signing construction or
// verification failure to the matching *Error kind.
func translateSigningErr(err error) *Error {
	if err == nil {
		return nil
	}
	var invKey *signing.InvalidKeyError
	if errors.As(err, &invKey) {
		return wrapErr(InvalidKey, "invalid key", err)
	}
	var invMac *signing.InvalidMacError
	if errors.As(err, &invMac) {
		return wrapErr(InvalidMac, "MAC verification failed", err)
	}
	var invSig *signing.InvalidSignatureError
	if errors.As(err, &invSig) {
		return wrapErr(InvalidSignature, "signature verification failed", err)
	}
	var unknownAlg *signing.ErrUnknownAlgorithm
	if errors.As(err, &unknownAlg) {
		return wrapErr(InvalidArgument, "unsupported algorithm", err)
	}
	return wrapErr(InvalidKey, "signing primitive error", err)
}
