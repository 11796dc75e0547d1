package email

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// LogMailer writes outbound mail to the log instead of delivering it. Used
// in development so the reset flow can be exercised without an SMTP server.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg ports.EmailMessage) error {
	m.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("body_bytes", len(msg.HTML)).
		Msg("email (log-only delivery)")
	return nil
}
