package compact

import (
	"encoding/base64"
	"testing"
)

func TestCreateAndValidateHeader(t *testing.T) {
	encoded := CreateHeader("HS256")
	header, err := ValidateHeader(encoded, "HS256")
	if err != nil {
		t.Fatalf("ValidateHeader: %v", err)
	}
	alg, _ := header.Get("alg")
	if s, _ := alg.StringValue(); s != "HS256" {
		t.Fatalf("alg = %q, want HS256", s)
	}
}

func TestValidateHeaderRejectsAlgorithmMismatch(t *testing.T) {
	encoded := CreateHeader("HS256")
	_, err := ValidateHeader(encoded, "HS384")
	if _, ok := err.(*AlgorithmMismatchError); !ok {
		t.Fatalf("expected AlgorithmMismatchError, got %T (%v)", err, err)
	}
}

func TestValidateHeaderToleratesMissingTyp(t *testing.T) {
	_, err := ValidateHeader(rawJSONHeader(`{"alg":"HS256"}`), "HS256")
	if err != nil {
		t.Fatalf("expected missing typ to be tolerated: %v", err)
	}
}

func TestValidateHeaderRejectsWrongTyp(t *testing.T) {
	_, err := ValidateHeader(rawJSONHeader(`{"alg":"HS256","typ":"jwt"}`), "HS256")
	if _, ok := err.(*HeaderError); !ok {
		t.Fatalf("expected HeaderError for wrong-case typ, got %T (%v)", err, err)
	}
}

func TestValidateHeaderRejectsCrit(t *testing.T) {
	_, err := ValidateHeader(rawJSONHeader(`{"alg":"HS256","typ":"JWT","crit":["exp"]}`), "HS256")
	if _, ok := err.(*HeaderError); !ok {
		t.Fatalf("expected HeaderError for crit, got %T (%v)", err, err)
	}
}

func TestValidateHeaderToleratesUnknownKeys(t *testing.T) {
	_, err := ValidateHeader(rawJSONHeader(`{"alg":"HS256","typ":"JWT","kid":"k1"}`), "HS256")
	if err != nil {
		t.Fatalf("expected unknown header keys to be tolerated: %v", err)
	}
}

func TestSplitRejectsWrongDotCount(t *testing.T) {
	cases := []string{
		"eyJhbGciOiJIUzI1NiJ9.e30.abc.",
		"eyJhbGciOiJIUzI1NiJ9.e30",
		"eyJhbGciOiJIUzI1NiJ9",
	}
	for _, c := range cases {
		if _, err := Split(c); err == nil {
			t.Errorf("Split(%q): expected error", c)
		}
	}
}

func TestSplitUsesLastDotForBoundary(t *testing.T) {
	s, err := Split("H.a.b.S")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if s.EncodedTag != "S" {
		t.Fatalf("EncodedTag = %q, want S", s.EncodedTag)
	}
	if s.EncodedHeader != "H" || s.EncodedPayload != "a.b" {
		t.Fatalf("unexpected split: header=%q payload=%q", s.EncodedHeader, s.EncodedPayload)
	}
}

func rawJSONHeader(json string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(json))
}
