package outreach

import (
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/submitx"
)

// NewsletterForm registers an email address. No name is sent.
func NewsletterForm(recipient string) formx.Definition {
	return formx.Definition{
		Name:   FormNewsletter,
		Fields: []string{formx.FieldEmail},
		Build: func(f formx.Fields) submitx.Request {
			return submitx.Request{
				Recipient:   recipient,
				SenderEmail: f.Get(formx.FieldEmail),
				Body:        newsletterBody,
			}
		},
		Messages:     submitx.Messages{Success: newsletterSuccessText, Failure: newsletterFailureText},
		InvalidEmail: invalidEmailText,
	}
}
