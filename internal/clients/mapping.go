package clients

import (
	"github.com/surjithprasanna/proz-portal/pkg/repository"
)

// Client reads join profiles with credentials, so the SQL is written by hand
// instead of going through the single-table query builder.
const clientColumns = `p.id, p.credential_id, p.display_name, p.email, p.phone, p.role,
		c.access_code, c.login_email, p.created_at, p.updated_at`

const clientFrom = `public.profiles p JOIN public.credentials c ON c.id = p.credential_id`

func scanClient(s repository.Scanner) (Client, error) {
	var cl Client
	err := s.Scan(
		&cl.ID,
		&cl.CredentialID,
		&cl.DisplayName,
		&cl.Email,
		&cl.Phone,
		&cl.Role,
		&cl.AccessCode,
		&cl.LoginEmail,
		&cl.CreatedAt,
		&cl.UpdatedAt,
	)
	return cl, err
}
