package ports

import "context"

// EmailMessage is an outbound HTML email.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers email. Implementations decide transport (SMTP in
// production, log-only in development).
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}
