package outreach

import (
	"context"

	"github.com/alamane/outreach/pkg/notifx"
	"github.com/alamane/outreach/pkg/submitx"
)

// SubmissionTemplate is the notifx template the mailer renders.
const SubmissionTemplate = "outreach-submission"

const submissionHTML = `<h2>{{.Subject}}</h2>
<p><strong>Formulaire :</strong> {{.Form}}</p>
{{if .SenderName}}<p><strong>Nom :</strong> {{.SenderName}}</p>{{end}}
<p><strong>Email :</strong> {{.SenderEmail}}</p>
<p>{{.Body}}</p>
`

var subjects = map[string]string{
	FormContact:    "Nouveau message de contact",
	FormNewsletter: "Nouvelle inscription à la newsletter",
	FormDonor:      "Demande de reçu fiscal",
}

// namedForms always carry from_name, even when the visitor left it blank.
var namedForms = map[string]bool{
	FormContact: true,
	FormDonor:   true,
}

// Parameter names read by the hosted email template.
const (
	paramToEmail   = "to_email"
	paramFromName  = "from_name"
	paramFromEmail = "from_email"
	paramMessage   = "message"
)

type submissionView struct {
	Subject     string
	Form        string
	SenderName  string
	SenderEmail string
	Body        string
}

// Mailer implements submitx.Sender on top of a notifx client.
type Mailer struct {
	client *notifx.Client
}

// NewMailer registers the submission template on client.
func NewMailer(client *notifx.Client) (*Mailer, error) {
	if err := client.RegisterTemplate(SubmissionTemplate, submissionHTML); err != nil {
		return nil, err
	}
	return &Mailer{client: client}, nil
}

// Send renders the request and hands it to the provider.
func (m *Mailer) Send(ctx context.Context, req submitx.Request) error {
	subject, ok := subjects[req.Form]
	if !ok {
		subject = req.Form
	}

	params := map[string]string{
		paramToEmail:   req.Recipient,
		paramFromEmail: req.SenderEmail,
		paramMessage:   req.Body,
	}
	if namedForms[req.Form] || req.SenderName != "" {
		params[paramFromName] = req.SenderName
	}

	msg := notifx.EmailMessage{
		To:          []string{req.Recipient},
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Subject:     subject,
		Params:      params,
	}
	view := submissionView{
		Subject:     subject,
		Form:        req.Form,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Body:        req.Body,
	}
	return m.client.SendTemplatedEmail(ctx, SubmissionTemplate, view, msg, notifx.WithTags(map[string]string{
		"form":       req.Form,
		"request_id": req.ID.String(),
	}))
}
