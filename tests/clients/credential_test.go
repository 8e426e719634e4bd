package clients_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/surjithprasanna/proz-portal/internal/clients"
)

const domain = "prozspace.com"

func TestIssueCredential(t *testing.T) {
	cred, err := clients.IssueCredential("  proz-ab12  ", domain)
	if err != nil {
		t.Fatalf("IssueCredential() failed: %v", err)
	}

	if cred.AccessCode != "PROZ-AB12" {
		t.Errorf("AccessCode = %q, want normalized PROZ-AB12", cred.AccessCode)
	}
	if cred.LoginEmail != "proz-ab12@prozspace.com" {
		t.Errorf("LoginEmail = %q", cred.LoginEmail)
	}
	if cred.PasswordHash == "" || cred.PasswordHash == cred.AccessCode {
		t.Error("PasswordHash should be a bcrypt hash of the code")
	}
	if !clients.VerifyAccessCode("proz-ab12", cred.PasswordHash) {
		t.Error("VerifyAccessCode should accept the issuing code in any case")
	}
	if clients.VerifyAccessCode("PROZ-XY99", cred.PasswordHash) {
		t.Error("VerifyAccessCode should reject a different code")
	}
}

func TestIssueCredentialRejectsMalformedCodes(t *testing.T) {
	tests := []string{
		"",
		"AB",
		"has spaces",
		"under_score",
		"-LEADING",
		"TRAILING-",
		"WAY-TOO-LONG-ACCESS-CODE-THAT-EXCEEDS-THE-LIMIT",
	}

	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			_, err := clients.IssueCredential(code, domain)
			if !errors.Is(err, clients.ErrInvalidAccessCode) {
				t.Errorf("IssueCredential(%q) error = %v, want ErrInvalidAccessCode", code, err)
			}
		})
	}
}

func TestDeriveLoginEmail(t *testing.T) {
	if got := clients.DeriveLoginEmail("PROZ-AB12", domain); got != "proz-ab12@prozspace.com" {
		t.Errorf("DeriveLoginEmail = %q", got)
	}
}

func TestGenerateAccessCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PROZ-[A-Z2-9]{4}$`)

	for range 50 {
		code := clients.GenerateAccessCode()
		if !pattern.MatchString(code) {
			t.Fatalf("GenerateAccessCode() = %q, want PROZ-XXXX", code)
		}
		// Generated codes must themselves be issuable.
		if _, err := clients.IssueCredential(code, domain); err != nil {
			t.Fatalf("generated code %q not issuable: %v", code, err)
		}
	}
}

func TestNormalizeAccessCode(t *testing.T) {
	if got := clients.NormalizeAccessCode("  proz-ab12\n"); got != "PROZ-AB12" {
		t.Errorf("NormalizeAccessCode = %q", got)
	}
}
