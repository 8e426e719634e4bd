// Package clients implements the client identity domain for the portal.
// A client identity is a profile row plus an issued credential: a
// human-assigned access code that doubles as the login secret, mapped to a
// synthetic email under a fixed domain.
package clients

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a client account: profile attributes joined with the
// login email derived from its access code.
type Client struct {
	ID           uuid.UUID `json:"id"`
	CredentialID uuid.UUID `json:"credential_id"`
	DisplayName  string    `json:"display_name"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Role         string    `json:"role"`
	AccessCode   string    `json:"access_code"`
	LoginEmail   string    `json:"login_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to provision a client identity.
// AccessCode may be empty, in which case one is generated.
type CreateCommand struct {
	AccessCode  string  `json:"access_code"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

// LoginCommand carries a client login attempt. The access code is the sole
// credential.
type LoginCommand struct {
	AccessCode string `json:"access_code"`
}
