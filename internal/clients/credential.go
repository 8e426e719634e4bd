package clients

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// accessCodePattern constrains human-assigned access codes: uppercase
// letters, digits, and hyphens, 4 to 32 characters.
var accessCodePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{2,30}[A-Z0-9]$`)

const generatedCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// IssuedCredential is the value object behind a client login: the access
// code, the synthetic login email derived from it, and the bcrypt hash of
// the code (the code is also the password).
type IssuedCredential struct {
	AccessCode   string
	LoginEmail   string
	PasswordHash string
}

// IssueCredential builds an IssuedCredential from a human-assigned access
// code and the configured client domain. The code is normalized (trimmed,
// uppercased) before derivation.
func IssueCredential(accessCode, domain string) (IssuedCredential, error) {
	code := NormalizeAccessCode(accessCode)
	if !accessCodePattern.MatchString(code) {
		return IssuedCredential{}, fmt.Errorf("%w: %q", ErrInvalidAccessCode, accessCode)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return IssuedCredential{}, fmt.Errorf("hash access code: %w", err)
	}

	return IssuedCredential{
		AccessCode:   code,
		LoginEmail:   DeriveLoginEmail(code, domain),
		PasswordHash: string(hash),
	}, nil
}

// NormalizeAccessCode trims surrounding whitespace and uppercases the code.
func NormalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DeriveLoginEmail maps an access code to its synthetic login email.
func DeriveLoginEmail(code, domain string) string {
	return strings.ToLower(code) + "@" + domain
}

// GenerateAccessCode produces a fresh access code of the form PROZ-XXXX.
// The alphabet omits easily-confused characters. Callers retry on collision.
func GenerateAccessCode() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	code := make([]byte, 4)
	for i, b := range buf {
		code[i] = generatedCodeAlphabet[int(b)%len(generatedCodeAlphabet)]
	}
	return "PROZ-" + string(code)
}

// VerifyAccessCode checks a login attempt against the stored hash.
func VerifyAccessCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(NormalizeAccessCode(code))) == nil
}
