package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
)

// Mailer delivers confirmation mail to employees.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer is the stream-transport stand-in: it logs the message instead of
// handing it to a real MTA.
type LogMailer struct {
	from   string
	logger *zap.Logger
}

// NewLogMailer constructs the stub mailer.
func NewLogMailer(cfg config.NotificationConfig, logger *zap.Logger) *LogMailer {
	return &LogMailer{from: cfg.EmailFrom, logger: logger}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("confirmation email sent",
		zap.String("from", m.from),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
