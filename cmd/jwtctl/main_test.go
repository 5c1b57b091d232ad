package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestIssueThenVerifyRoundTrip(t *testing.T) {
	logger = zap.NewNop()

	const key = "AyM1SysPpbyDfgZld3umj1qzKObwVMkoqQ-EstJQLr_T-1qS0gZH75aKtMN3Yj0iPS4hcgUuTwjAzZr1Z9CAow"

	issueCmd := newIssueCmd()
	var issueOut bytes.Buffer
	issueCmd.SetOut(&issueOut)
	issueCmd.SetArgs([]string{
		"--key", key,
		"--subject", "user-1",
		"--issuer", "jwtctl-test",
		"--audience", "aud-1",
	})
	if err := issueCmd.Execute(); err != nil {
		t.Fatalf("issue: %v", err)
	}
	token := strings.TrimSpace(issueOut.String())
	if token == "" {
		t.Fatal("issue: expected a token on stdout")
	}

	verifyCmd := newVerifyCmd()
	var verifyOut bytes.Buffer
	verifyCmd.SetOut(&verifyOut)
	verifyCmd.SetArgs([]string{
		"--key", key,
		"--token", token,
		"--expect-issuer", "jwtctl-test",
		"--expect-audience", "aud-1",
	})
	if err := verifyCmd.Execute(); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !strings.Contains(verifyOut.String(), `"user-1"`) {
		t.Fatalf("verify output missing subject: %s", verifyOut.String())
	}
}

func TestVerifyRejectsBadKey(t *testing.T) {
	logger = zap.NewNop()

	verifyCmd := newVerifyCmd()
	var out bytes.Buffer
	verifyCmd.SetOut(&out)
	verifyCmd.SetArgs([]string{
		"--key", "not-valid-base64!!",
		"--token", "a.b.c",
	})
	if err := verifyCmd.Execute(); err == nil {
		t.Fatal("expected error for malformed key")
	}
}
