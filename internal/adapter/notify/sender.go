// Package notify delivers e-mail notifications. SendGrid is used when an API
// key is configured; otherwise messages are only logged.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/heartmarshall/trainrec-backend/internal/config"
)

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

// Message is a single plain-text e-mail.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	Text      string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender returns a SendGrid sender when cfg carries an API key and a
// logging sender otherwise.
func NewSender(cfg config.MailConfig, logger *slog.Logger) Sender {
	if cfg.SendGridAPIKey == "" {
		return &LogSender{log: logger.With("adapter", "mail")}
	}
	return NewSendGrid(cfg, logger)
}

// SendGrid sends mail through the SendGrid v3 API.
type SendGrid struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
	log        *slog.Logger
}

// NewSendGrid creates a SendGrid sender.
func NewSendGrid(cfg config.MailConfig, logger *slog.Logger) *SendGrid {
	return &SendGrid{
		key:        cfg.SendGridAPIKey,
		host:       defaultHost,
		from:       sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
		subjPrefix: "[" + cfg.FromName + "] ",
		log:        logger.With("adapter", "sendgrid"),
	}
}

func (s *SendGrid) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToAddress))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	return m
}

// Send delivers msg. Messages without a recipient are dropped.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if msg.ToAddress == "" {
		return nil
	}

	req := sendgrid.GetRequest(s.key, endpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: unexpected status %d", res.StatusCode)
	}

	s.log.DebugContext(ctx, "mail sent", slog.String("to", msg.ToAddress), slog.Int("status", res.StatusCode))
	return nil
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	log *slog.Logger
}

// Send logs msg.
func (l *LogSender) Send(ctx context.Context, msg Message) error {
	l.log.InfoContext(ctx, "mail delivery disabled, message dropped",
		slog.String("to", msg.ToAddress),
		slog.String("subject", msg.Subject))
	return nil
}
