package jwtcore

import (
	"time"

	"github.com/cybergodev/jwtcore/internal/jsonvalue"
)

var registeredClaimNames = map[string]struct{}{
	"iss": {}, "sub": {}, "aud": {}, "exp": {}, "nbf": {}, "iat": {}, "jti": {},
}

// isRegisteredClaimName reports whether name is one of the seven names
// RFC 7519 §4.1 reserves.
func isRegisteredClaimName(name string) bool {
	_, ok := registeredClaimNames[name]
	return ok
}

// RawJwt is an immutable claim set (component C). It owns one JSON
// object and is built exclusively through RawJwtBuilder; there is no
// mutation path once constructed.
type RawJwt struct {
	value jsonvalue.Value
}

// rawJwtFromValue wraps an already-decoded JSON object. Used by the
// verify path once the payload has parsed and by the builder's Build.
func rawJwtFromValue(v jsonvalue.Value) (RawJwt, error) {
	if v.Kind() != jsonvalue.KindObject {
		return RawJwt{}, newErr(MalformedToken, "payload is not a JSON object")
	}
	if err := validateRegisteredClaimKinds(v); err != nil {
		return RawJwt{}, err
	}
	return RawJwt{value: v}, nil
}

func validateRegisteredClaimKinds(v jsonvalue.Value) error {
	for _, name := range []string{"iss", "sub", "jti"} {
		if val, ok := v.Get(name); ok {
			if _, isStr := val.StringValue(); !isStr {
				return newErr(InvalidArgument, "claim "+name+" must be a string")
			}
		}
	}
	if aud, ok := v.Get("aud"); ok {
		if !isValidAudienceShape(aud) {
			return newErr(InvalidArgument, "claim aud must be a string or a non-empty array of strings")
		}
	}
	for _, name := range []string{"exp", "nbf", "iat"} {
		if val, ok := v.Get(name); ok {
			if _, isNum := val.NumberValue(); !isNum {
				return newErr(InvalidArgument, "claim "+name+" must be a number")
			}
		}
	}
	return nil
}

func isValidAudienceShape(v jsonvalue.Value) bool {
	if _, isStr := v.StringValue(); isStr {
		return true
	}
	items, isArr := v.ArrayValue()
	if !isArr || len(items) == 0 {
		return false
	}
	for _, item := range items {
		if _, isStr := item.StringValue(); !isStr {
			return false
		}
	}
	return true
}

// JSON returns the deterministic minimal-JSON serialization of the
// claim set, per spec §4.2/§4.3.
func (r RawJwt) JSON() []byte {
	return jsonvalue.Serialize(r.value)
}

// --- registered claim accessors ---

func (r RawJwt) HasIssuer() bool { return r.hasRegistered("iss") }
func (r RawJwt) HasSubject() bool { return r.hasRegistered("sub") }
func (r RawJwt) HasJwtID() bool { return r.hasRegistered("jti") }
func (r RawJwt) HasAudiences() bool { return r.hasRegistered("aud") }
func (r RawJwt) HasExpiration() bool { return r.hasRegistered("exp") }
func (r RawJwt) HasNotBefore() bool { return r.hasRegistered("nbf") }
func (r RawJwt) HasIssuedAt() bool { return r.hasRegistered("iat") }

func (r RawJwt) hasRegistered(name string) bool {
	_, ok := r.value.Get(name)
	return ok
}

func (r RawJwt) Issuer() (string, error)  { return r.stringClaim("iss") }
func (r RawJwt) Subject() (string, error) { return r.stringClaim("sub") }
func (r RawJwt) JwtID() (string, error)   { return r.stringClaim("jti") }

func (r RawJwt) stringClaim(name string) (string, error) {
	val, ok := r.value.Get(name)
	if !ok {
		return "", newErr(NotFound, "claim "+name+" is not present")
	}
	s, isStr := val.StringValue()
	if !isStr {
		return "", newErr(InvalidArgument, "claim "+name+" is not a string")
	}
	return s, nil
}

// Audiences normalizes the aud claim: a single string becomes a
// one-element list, an array of strings is returned as-is.
func (r RawJwt) Audiences() ([]string, error) {
	val, ok := r.value.Get("aud")
	if !ok {
		return nil, newErr(NotFound, "claim aud is not present")
	}
	if s, isStr := val.StringValue(); isStr {
		return []string{s}, nil
	}
	items, isArr := val.ArrayValue()
	if !isArr {
		return nil, newErr(InvalidArgument, "claim aud has an invalid shape")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, isStr := item.StringValue()
		if !isStr {
			return nil, newErr(InvalidArgument, "claim aud contains a non-string entry")
		}
		out = append(out, s)
	}
	return out, nil
}

func (r RawJwt) Expiration() (time.Time, error) { return r.timeClaim("exp") }
func (r RawJwt) NotBefore() (time.Time, error)  { return r.timeClaim("nbf") }
func (r RawJwt) IssuedAt() (time.Time, error)   { return r.timeClaim("iat") }

func (r RawJwt) timeClaim(name string) (time.Time, error) {
	val, ok := r.value.Get(name)
	if !ok {
		return time.Time{}, newErr(NotFound, "claim "+name+" is not present")
	}
	n, isNum := val.NumberValue()
	if !isNum {
		return time.Time{}, newErr(InvalidArgument, "claim "+name+" is not a number")
	}
	return time.Unix(int64(n), 0).UTC(), nil
}

// --- custom claim accessors ---

// CustomClaimNames returns the object keys excluding the seven
// registered names.
func (r RawJwt) CustomClaimNames() []string {
	var out []string
	for _, k := range r.value.Keys() {
		if !isRegisteredClaimName(k) {
			out = append(out, k)
		}
	}
	return out
}

func (r RawJwt) customValue(name string) (jsonvalue.Value, bool) {
	if isRegisteredClaimName(name) {
		return jsonvalue.Value{}, false
	}
	return r.value.Get(name)
}

func (r RawJwt) IsNullClaim(name string) bool {
	v, ok := r.customValue(name)
	return ok && v.IsNull()
}

func (r RawJwt) HasBoolClaim(name string) bool {
	v, ok := r.customValue(name)
	if !ok {
		return false
	}
	_, isBool := v.BoolValue()
	return isBool
}

func (r RawJwt) BoolClaim(name string) (bool, error) {
	v, ok := r.customValue(name)
	if !ok {
		return false, newErr(NotFound, "claim "+name+" is not present")
	}
	b, isBool := v.BoolValue()
	if !isBool {
		return false, newErr(InvalidArgument, "claim "+name+" is not a bool")
	}
	return b, nil
}

func (r RawJwt) HasStringClaim(name string) bool {
	v, ok := r.customValue(name)
	if !ok {
		return false
	}
	_, isStr := v.StringValue()
	return isStr
}

func (r RawJwt) StringClaim(name string) (string, error) {
	v, ok := r.customValue(name)
	if !ok {
		return "", newErr(NotFound, "claim "+name+" is not present")
	}
	s, isStr := v.StringValue()
	if !isStr {
		return "", newErr(InvalidArgument, "claim "+name+" is not a string")
	}
	return s, nil
}

func (r RawJwt) HasNumberClaim(name string) bool {
	v, ok := r.customValue(name)
	if !ok {
		return false
	}
	_, isNum := v.NumberValue()
	return isNum
}

func (r RawJwt) NumberClaim(name string) (float64, error) {
	v, ok := r.customValue(name)
	if !ok {
		return 0, newErr(NotFound, "claim "+name+" is not present")
	}
	n, isNum := v.NumberValue()
	if !isNum {
		return 0, newErr(InvalidArgument, "claim "+name+" is not a number")
	}
	return n, nil
}

func (r RawJwt) HasJSONObjectClaim(name string) bool {
	v, ok := r.customValue(name)
	return ok && v.Kind() == jsonvalue.KindObject
}

// JSONObjectClaim returns the claim's serialized JSON text.
func (r RawJwt) JSONObjectClaim(name string) (string, error) {
	v, ok := r.customValue(name)
	if !ok {
		return "", newErr(NotFound, "claim "+name+" is not present")
	}
	if v.Kind() != jsonvalue.KindObject {
		return "", newErr(InvalidArgument, "claim "+name+" is not a JSON object")
	}
	return string(jsonvalue.Serialize(v)), nil
}

func (r RawJwt) HasJSONArrayClaim(name string) bool {
	v, ok := r.customValue(name)
	return ok && v.Kind() == jsonvalue.KindArray
}

// JSONArrayClaim returns the claim's serialized JSON text.
func (r RawJwt) JSONArrayClaim(name string) (string, error) {
	v, ok := r.customValue(name)
	if !ok {
		return "", newErr(NotFound, "claim "+name+" is not present")
	}
	if v.Kind() != jsonvalue.KindArray {
		return "", newErr(InvalidArgument, "claim "+name+" is not a JSON array")
	}
	return string(jsonvalue.Serialize(v)), nil
}
