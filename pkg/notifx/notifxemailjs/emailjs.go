// Package notifxemailjs sends mail through the EmailJS REST API. EmailJS
// renders the message from a template it hosts, so only template
// parameters travel over the wire.
package notifxemailjs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alamane/outreach/pkg/asyncx"
	"github.com/alamane/outreach/pkg/notifx"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

// DefaultEndpoint is the EmailJS send API.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Template parameter names understood by the hosted template.
const (
	ParamToEmail   = "to_email"
	ParamFromName  = "from_name"
	ParamFromEmail = "from_email"
	ParamMessage   = "message"
	ParamSubject   = "subject"
	ParamReplyTo   = "reply_to"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config carries the account identifiers and the public credential.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	// AccessToken is the optional private key required for calls made
	// outside a browser when strict mode is on.
	AccessToken string
	Endpoint    string
	Timeout     time.Duration
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Provider implements notifx.EmailSender against EmailJS.
type Provider struct {
	cfg    Config
	client *fiber.Client
}

// NewProvider validates cfg and returns a ready provider.
func NewProvider(cfg Config) (*Provider, error) {
	var missing []string
	if strings.TrimSpace(cfg.ServiceID) == "" {
		missing = append(missing, "service_id")
	}
	if strings.TrimSpace(cfg.TemplateID) == "" {
		missing = append(missing, "template_id")
	}
	if strings.TrimSpace(cfg.PublicKey) == "" {
		missing = append(missing, "public_key")
	}
	if len(missing) > 0 {
		return nil, notifx.Errors().New(notifx.ErrInvalidProviderConf).
			WithDetail("provider", "emailjs").
			WithDetail("missing", missing)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	return &Provider{
		cfg: cfg,
		client: &fiber.Client{
			JSONEncoder: json.Marshal,
			JSONDecoder: json.Unmarshal,
		},
	}, nil
}

// SendEmail posts the message's template parameters to EmailJS.
func (p *Provider) SendEmail(ctx context.Context, msg notifx.EmailMessage, _ ...notifx.Option) error {
	payload := sendRequest{
		ServiceID:      p.cfg.ServiceID,
		TemplateID:     p.cfg.TemplateID,
		UserID:         p.cfg.PublicKey,
		AccessToken:    p.cfg.AccessToken,
		TemplateParams: templateParams(msg),
	}

	fut := asyncx.Run(func() (struct{}, error) {
		return struct{}{}, p.post(payload)
	})
	_, err := fut.AwaitContext(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return notifx.Errors().NewWithCause(notifx.ErrSendFailed, err).WithDetail("provider", "emailjs")
	}
	return err
}

// post performs the HTTP call. fasthttp does not take a context, so the
// caller bounds the wait instead.
func (p *Provider) post(payload sendRequest) error {
	agent := p.client.Post(p.cfg.Endpoint).
		JSON(payload).
		Set(fiber.HeaderAccept, "text/plain")
	if p.cfg.Timeout > 0 {
		agent = agent.Timeout(p.cfg.Timeout)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return notifx.Errors().NewWithCause(notifx.ErrSendFailed, errors.Join(errs...)).
			WithDetail("provider", "emailjs")
	}
	if status != fiber.StatusOK {
		return notifx.Errors().New(notifx.ErrSendFailed).
			WithDetail("provider", "emailjs").
			WithDetail("status", status).
			WithDetail("response", strings.TrimSpace(string(body)))
	}
	return nil
}

// templateParams merges the well-known fields with msg.Params; explicit
// Params win.
func templateParams(msg notifx.EmailMessage) map[string]string {
	params := map[string]string{
		ParamToEmail: strings.Join(msg.To, ","),
		ParamSubject: msg.Subject,
	}
	if msg.SenderName != "" {
		params[ParamFromName] = msg.SenderName
	}
	if msg.SenderEmail != "" {
		params[ParamFromEmail] = msg.SenderEmail
	}
	if msg.ReplyTo != "" {
		params[ParamReplyTo] = msg.ReplyTo
	}
	if msg.TextBody != "" {
		params[ParamMessage] = msg.TextBody
	}
	for k, v := range msg.Params {
		params[k] = v
	}
	return params
}
