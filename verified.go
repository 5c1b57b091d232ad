package jwtcore

import "time"

// VerifiedJwt is a claim set plus the marker that it passed MAC/signature
// verification and validator policy (component I). It exposes the same
// read accessors as RawJwt and cannot be re-signed or mutated; the only
// way to obtain one is through a JWT-MAC or JWT-Sign/Verify handle's
// verify path.
type VerifiedJwt struct {
	raw RawJwt
}

func newVerifiedJwt(raw RawJwt) VerifiedJwt { return VerifiedJwt{raw: raw} }

func (v VerifiedJwt) JSON() []byte { return v.raw.JSON() }

func (v VerifiedJwt) HasIssuer() bool      { return v.raw.HasIssuer() }
func (v VerifiedJwt) HasSubject() bool     { return v.raw.HasSubject() }
func (v VerifiedJwt) HasJwtID() bool       { return v.raw.HasJwtID() }
func (v VerifiedJwt) HasAudiences() bool   { return v.raw.HasAudiences() }
func (v VerifiedJwt) HasExpiration() bool  { return v.raw.HasExpiration() }
func (v VerifiedJwt) HasNotBefore() bool   { return v.raw.HasNotBefore() }
func (v VerifiedJwt) HasIssuedAt() bool    { return v.raw.HasIssuedAt() }

func (v VerifiedJwt) Issuer() (string, error)  { return v.raw.Issuer() }
func (v VerifiedJwt) Subject() (string, error) { return v.raw.Subject() }
func (v VerifiedJwt) JwtID() (string, error)   { return v.raw.JwtID() }

func (v VerifiedJwt) Audiences() ([]string, error) { return v.raw.Audiences() }

func (v VerifiedJwt) Expiration() (time.Time, error) { return v.raw.Expiration() }
func (v VerifiedJwt) NotBefore() (time.Time, error)  { return v.raw.NotBefore() }
func (v VerifiedJwt) IssuedAt() (time.Time, error)   { return v.raw.IssuedAt() }

func (v VerifiedJwt) CustomClaimNames() []string { return v.raw.CustomClaimNames() }

func (v VerifiedJwt) IsNullClaim(name string) bool { return v.raw.IsNullClaim(name) }

func (v VerifiedJwt) HasBoolClaim(name string) bool      { return v.raw.HasBoolClaim(name) }
func (v VerifiedJwt) BoolClaim(name string) (bool, error) { return v.raw.BoolClaim(name) }

func (v VerifiedJwt) HasStringClaim(name string) bool        { return v.raw.HasStringClaim(name) }
func (v VerifiedJwt) StringClaim(name string) (string, error) { return v.raw.StringClaim(name) }

func (v VerifiedJwt) HasNumberClaim(name string) bool          { return v.raw.HasNumberClaim(name) }
func (v VerifiedJwt) NumberClaim(name string) (float64, error) { return v.raw.NumberClaim(name) }

func (v VerifiedJwt) HasJSONObjectClaim(name string) bool { return v.raw.HasJSONObjectClaim(name) }
func (v VerifiedJwt) JSONObjectClaim(name string) (string, error) {
	return v.raw.JSONObjectClaim(name)
}

func (v VerifiedJwt) HasJSONArrayClaim(name string) bool { return v.raw.HasJSONArrayClaim(name) }
func (v VerifiedJwt) JSONArrayClaim(name string) (string, error) {
	return v.raw.JSONArrayClaim(name)
}
