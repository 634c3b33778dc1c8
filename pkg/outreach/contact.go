package outreach

import (
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/submitx"
)

// ContactForm sends the visitor's free-text message along with their name.
func ContactForm(recipient string) formx.Definition {
	return formx.Definition{
		Name:   FormContact,
		Fields: []string{formx.FieldName, formx.FieldEmail, formx.FieldMessage},
		Build: func(f formx.Fields) submitx.Request {
			return submitx.Request{
				Recipient:   recipient,
				SenderName:  f.Get(formx.FieldName),
				SenderEmail: f.Get(formx.FieldEmail),
				Body:        f.Get(formx.FieldMessage),
			}
		},
		Messages:     submitx.Messages{Success: contactSuccessText, Failure: contactFailureText},
		InvalidEmail: invalidEmailText,
	}
}
