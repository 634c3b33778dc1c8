package outreach

import (
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/submitx"
)

// DonorForm records who should receive a tax receipt. afterSuccess runs
// once the fields have been cleared; the modal passes its Close here.
func DonorForm(recipient string, afterSuccess func()) formx.Definition {
	return formx.Definition{
		Name:   FormDonor,
		Fields: []string{formx.FieldName, formx.FieldEmail},
		Build: func(f formx.Fields) submitx.Request {
			return submitx.Request{
				Recipient:   recipient,
				SenderName:  f.Get(formx.FieldName),
				SenderEmail: f.Get(formx.FieldEmail),
				Body:        donorBody,
			}
		},
		Messages:     submitx.Messages{Success: donorSuccessText, Failure: donorFailureText},
		InvalidEmail: invalidEmailText,
		AfterSuccess: afterSuccess,
	}
}
