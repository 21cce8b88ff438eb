package ports

import "context"

// Mailer envío de correos transaccionales.
type Mailer interface {
	SendCredentials(ctx context.Context, to, fullName, password string) error
}
