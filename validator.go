package jwtcore

import "time"

const maxClockSkew = 10 * time.Minute

// Validator is the policy object component H describes: an immutable
// set of checks applied to a claim set at verify time. Build one with
// NewValidator and any number of ValidatorOptions.
type Validator struct {
	expectedIssuer          *string
	expectedSubject         *string
	expectedAudience        *string
	clockSkew               time.Duration
	fixedNow                *time.Time
	allowMissingExpiration  bool
}

// ValidatorOption configures a Validator at construction.
type ValidatorOption func(*Validator)

// ExpectIssuer requires iss to be present and equal to issuer.
func ExpectIssuer(issuer string) ValidatorOption {
	return func(v *Validator) { v.expectedIssuer = &issuer }
}

// ExpectSubject requires sub to be present and equal to subject.
func ExpectSubject(subject string) ValidatorOption {
	return func(v *Validator) { v.expectedSubject = &subject }
}

// ExpectAudience requires the aud list to contain audience.
func ExpectAudience(audience string) ValidatorOption {
	return func(v *Validator) { v.expectedAudience = &audience }
}

// WithClockSkew sets the tolerance applied to exp/nbf checks. Values
// outside [0, 10min] are clamped into range rather than rejected, since
// this is a construction-time policy knob, not caller-supplied data.
func WithClockSkew(d time.Duration) ValidatorOption {
	return func(v *Validator) {
		if d < 0 {
			d = 0
		}
		if d > maxClockSkew {
			d = maxClockSkew
		}
		v.clockSkew = d
	}
}

// WithFixedNow pins the validator's notion of "now", overriding the
// real clock. Used by S1/S2-style fixture tests.
func WithFixedNow(t time.Time) ValidatorOption {
	return func(v *Validator) { v.fixedNow = &t }
}

// AllowMissingExpiration permits verifying a claim set with no exp
// claim. Default is false: exp is required.
func AllowMissingExpiration(allow bool) ValidatorOption {
	return func(v *Validator) { v.allowMissingExpiration = allow }
}

// NewValidator builds a Validator from the given options.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Validator) now() time.Time {
	if v.fixedNow != nil {
		return *v.fixedNow
	}
	return time.Now()
}

// Validate applies the six-step policy of spec §4.8 to raw. now is
// resolved from fixed_now if set, else the real clock.
func (v *Validator) Validate(raw RawJwt) error {
	now := v.now()

	if raw.HasExpiration() {
		exp, err := raw.Expiration()
		if err != nil {
			return err
		}
		if !now.Before(exp.Add(v.clockSkew)) {
			return newErr(TokenExpired, "token has expired")
		}
	} else if !v.allowMissingExpiration {
		return newErr(TokenExpired, "token has no expiration and allow_missing_expiration is false")
	}

	if raw.HasNotBefore() {
		nbf, err := raw.NotBefore()
		if err != nil {
			return err
		}
		if now.Before(nbf.Add(-v.clockSkew)) {
			return newErr(NotYetValid, "token is not yet valid")
		}
	}

	if v.expectedIssuer != nil {
		iss, err := raw.Issuer()
		if err != nil || iss != *v.expectedIssuer {
			return newErr(IssuerMismatch, "issuer does not match expected value")
		}
	}

	if v.expectedSubject != nil {
		sub, err := raw.Subject()
		if err != nil || sub != *v.expectedSubject {
			return newErr(SubjectMismatch, "subject does not match expected value")
		}
	}

	if v.expectedAudience != nil {
		auds, err := raw.Audiences()
		if err != nil || !containsString(auds, *v.expectedAudience) {
			return newErr(AudienceMismatch, "audience does not contain expected value")
		}
	}

	return nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
