// Package auth implements session authentication for the portal.
// Admin access is a shared-secret capability gate behind the Authenticator
// interface so that per-admin credentials can replace it without touching
// route logic. Sessions are HS256 tokens carried in HTTP-only cookies.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/surjithprasanna/proz-portal/internal/config"
)

const (
	// AdminCookie is the cookie carrying the admin session token.
	AdminCookie = "admin-auth"
	// ClientCookie is the cookie carrying the client session token.
	ClientCookie = "client-auth"

	roleAdmin  = "admin"
	roleClient = "client"
)

// Authenticator verifies admin login attempts.
type Authenticator interface {
	// Authenticate reports whether the given password grants admin access.
	Authenticate(password string) bool
}

// SharedSecret is an Authenticator backed by a single shared password.
// Every admin holds the same capability; there is no per-principal identity.
type SharedSecret struct {
	secret string
}

// NewSharedSecret creates a shared-secret Authenticator.
func NewSharedSecret(secret string) *SharedSecret {
	return &SharedSecret{secret: secret}
}

func (s *SharedSecret) Authenticate(password string) bool {
	return s.secret != "" && password == s.secret
}

// Sessions issues and verifies signed session tokens.
type Sessions struct {
	signingKey []byte
	ttl        time.Duration
}

// NewSessions creates a session token issuer from the auth configuration.
func NewSessions(cfg *config.AuthConfig) *Sessions {
	return &Sessions{
		signingKey: []byte(cfg.SigningKey),
		ttl:        cfg.SessionTTLDuration(),
	}
}

// TTL returns the configured session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.ttl
}

// IssueAdmin returns a signed admin session token.
func (s *Sessions) IssueAdmin() (string, error) {
	return s.issue(roleAdmin, "")
}

// IssueClient returns a signed session token for the given client profile id.
func (s *Sessions) IssueClient(profileID string) (string, error) {
	return s.issue(roleClient, profileID)
}

// VerifyAdmin validates an admin session token.
func (s *Sessions) VerifyAdmin(token string) error {
	_, err := s.verify(token, roleAdmin)
	return err
}

// VerifyClient validates a client session token and returns the profile id.
func (s *Sessions) VerifyClient(token string) (string, error) {
	return s.verify(token, roleClient)
}

func (s *Sessions) issue(role, subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func (s *Sessions) verify(tokenStr, wantRole string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenMalformed
	}
	if role, _ := claims["role"].(string); role != wantRole {
		return "", ErrForbidden
	}

	subject, _ := claims["sub"].(string)
	return subject, nil
}
