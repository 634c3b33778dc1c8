package notifxconsole

import (
	"context"
	"strings"

	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/notifx"
)

// ConsoleProvider writes emails to the log instead of sending them. Intended for development.
type ConsoleProvider struct {
	log *logx.Logger
}

// NewConsoleProvider creates a console provider. A nil logger means the default logger.
func NewConsoleProvider(log *logx.Logger) *ConsoleProvider {
	if log == nil {
		log = logx.GetDefaultLogger()
	}
	return &ConsoleProvider{log: log}
}

// SendEmail logs the email details instead of sending it.
func (p *ConsoleProvider) SendEmail(_ context.Context, msg notifx.EmailMessage, _ ...notifx.Option) error {
	p.log.WithFields(logx.Fields{
		"to":           strings.Join(msg.To, ", "),
		"sender_name":  msg.SenderName,
		"sender_email": msg.SenderEmail,
		"subject":      msg.Subject,
	}).Info("notifx/console: email sent (dev mode)")

	if msg.TextBody != "" {
		p.log.WithField("body", msg.TextBody).Debug("notifx/console: text body")
	}
	return nil
}
