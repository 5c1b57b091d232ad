package jwtcore

import (
	"time"

	"github.com/cybergodev/jwtcore/internal/jsonvalue"
)

// RawJwtBuilder builds a RawJwt incrementally. It is not safe for
// concurrent use; a claim set is built once per token.
type RawJwtBuilder struct {
	obj map[string]jsonvalue.Value
}

// NewRawJwtBuilder returns an empty builder.
func NewRawJwtBuilder() *RawJwtBuilder {
	return &RawJwtBuilder{obj: map[string]jsonvalue.Value{}}
}

func (b *RawJwtBuilder) SetIssuer(issuer string) *RawJwtBuilder {
	b.obj["iss"] = jsonvalue.String(issuer)
	return b
}

func (b *RawJwtBuilder) SetSubject(subject string) *RawJwtBuilder {
	b.obj["sub"] = jsonvalue.String(subject)
	return b
}

func (b *RawJwtBuilder) SetJwtID(id string) *RawJwtBuilder {
	b.obj["jti"] = jsonvalue.String(id)
	return b
}

// AddAudience appends aud to the audience list, creating it if absent.
// The wire representation is always a JSON array, even after a single
// call.
func (b *RawJwtBuilder) AddAudience(aud string) *RawJwtBuilder {
	existing, ok := b.obj["aud"]
	if !ok {
		b.obj["aud"] = jsonvalue.Array([]jsonvalue.Value{jsonvalue.String(aud)})
		return b
	}
	items, _ := existing.ArrayValue()
	items = append(items, jsonvalue.String(aud))
	b.obj["aud"] = jsonvalue.Array(items)
	return b
}

// SetExpiration stores exp as whole seconds since the Unix epoch,
// truncated toward zero. Negative values fail with InvalidArgument.
func (b *RawJwtBuilder) SetExpiration(t time.Time) error { return b.setTimeClaim("exp", t) }

// SetNotBefore stores nbf as whole seconds since the Unix epoch.
func (b *RawJwtBuilder) SetNotBefore(t time.Time) error { return b.setTimeClaim("nbf", t) }

// SetIssuedAt stores iat as whole seconds since the Unix epoch.
func (b *RawJwtBuilder) SetIssuedAt(t time.Time) error { return b.setTimeClaim("iat", t) }

func (b *RawJwtBuilder) setTimeClaim(name string, t time.Time) error {
	seconds := t.Unix()
	if seconds < 0 {
		return newErr(InvalidArgument, "claim "+name+" must not be negative")
	}
	b.obj[name] = jsonvalue.Number(float64(seconds))
	return nil
}

func (b *RawJwtBuilder) rejectRegistered(name string) error {
	if name == "" {
		return newErr(InvalidArgument, "claim name must not be empty")
	}
	if isRegisteredClaimName(name) {
		return newErr(InvalidArgument, "claim name "+name+" is a registered claim name")
	}
	return nil
}

func (b *RawJwtBuilder) AddNullClaim(name string) error {
	if err := b.rejectRegistered(name); err != nil {
		return err
	}
	b.obj[name] = jsonvalue.Null()
	return nil
}

func (b *RawJwtBuilder) AddBoolClaim(name string, value bool) error {
	if err := b.rejectRegistered(name); err != nil {
		return err
	}
	b.obj[name] = jsonvalue.Bool(value)
	return nil
}

func (b *RawJwtBuilder) AddStringClaim(name, value string) error {
	if err := b.rejectRegistered(name); err != nil {
		return err
	}
	b.obj[name] = jsonvalue.String(value)
	return nil
}

func (b *RawJwtBuilder) AddNumberClaim(name string, value float64) error {
	if err := b.rejectRegistered(name); err != nil {
		return err
	}
	b.obj[name] = jsonvalue.Number(value)
	return nil
}

// AddJSONObjectClaim parses jsonText and stores it as a custom claim.
// jsonText must decode to a JSON object.
func (b *RawJwtBuilder) AddJSONObjectClaim(name, jsonText string) error {
	if err := b.rejectRegistered(name); err != nil {
		return err
	}
	v, err := jsonvalue.Parse([]byte(jsonText))
	if err != nil {
		return translateJSONErr(err)
	}
	if v.Kind() != jsonvalue.KindObject {
		return newErr(InvalidArgument, "claim "+name+" JSON text is not an object")
	}
	b.obj[name] = v
	return nil
}

// AddJSONArrayClaim parses jsonText and stores it as a custom claim.
// jsonText must decode to a JSON array.
func (b *RawJwtBuilder) AddJSONArrayClaim(name, jsonText string) error {
	if err := b.rejectRegistered(name); err != nil {
		return err
	}
	v, err := jsonvalue.Parse([]byte(jsonText))
	if err != nil {
		return translateJSONErr(err)
	}
	if v.Kind() != jsonvalue.KindArray {
		return newErr(InvalidArgument, "claim "+name+" JSON text is not an array")
	}
	b.obj[name] = v
	return nil
}

// Build finalizes the claim set. The result is immutable.
func (b *RawJwtBuilder) Build() (RawJwt, error) {
	return rawJwtFromValue(jsonvalue.Object(b.obj))
}
