package notifxses

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/alamane/outreach/pkg/notifx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// API is the subset of the SES client used here.
type API interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESProvider implements notifx.EmailSender using AWS SES.
type SESProvider struct {
	client      API
	fromAddress string
	fromName    string
}

// NewSESProvider creates a new SES email provider. The from address must be
// a verified SES identity.
func NewSESProvider(client API, fromAddress, fromName string) *SESProvider {
	return &SESProvider{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

// SendEmail sends a single email via SES. Replies go to the person who
// filled in the form.
func (p *SESProvider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	so := notifx.ApplySendOptions(opts)

	input := &ses.SendEmailInput{
		Source:      aws.String(p.source(msg)),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: body(msg),
		},
	}

	switch {
	case msg.ReplyTo != "":
		input.ReplyToAddresses = []string{msg.ReplyTo}
	case msg.SenderEmail != "":
		input.ReplyToAddresses = []string{(&mail.Address{Name: msg.SenderName, Address: msg.SenderEmail}).String()}
	}
	if so.ConfigID != "" {
		input.ConfigurationSetName = aws.String(so.ConfigID)
	}
	for k, v := range so.Tags {
		input.Tags = append(input.Tags, types.MessageTag{Name: aws.String(k), Value: aws.String(v)})
	}

	if _, err := p.client.SendEmail(ctx, input); err != nil {
		return notifx.Errors().NewWithCause(notifx.ErrSendFailed, err).
			WithDetail("provider", "ses").
			WithDetail("subject", msg.Subject)
	}
	return nil
}

func (p *SESProvider) source(msg notifx.EmailMessage) string {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}
	if p.fromName == "" {
		return from
	}
	return (&mail.Address{Name: p.fromName, Address: from}).String()
}

func body(msg notifx.EmailMessage) *types.Body {
	b := &types.Body{}
	text := msg.TextBody
	if text == "" && msg.HTMLBody == "" {
		text = fmt.Sprintf("%s <%s>", msg.SenderName, msg.SenderEmail)
	}
	if text != "" {
		b.Text = &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")}
	}
	if msg.HTMLBody != "" {
		b.Html = &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")}
	}
	return b
}
