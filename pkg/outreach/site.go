package outreach

import "github.com/alamane/outreach/pkg/formx"

// Site groups every form of one page. Forms share nothing but deps.
type Site struct {
	Contact    *formx.Controller
	Newsletter *formx.Controller
	Modal      *Modal
}

// NewSite builds the three forms addressed to recipient.
func NewSite(recipient string, deps formx.Deps) *Site {
	return &Site{
		Contact:    formx.New(ContactForm(recipient), deps),
		Newsletter: formx.New(NewsletterForm(recipient), deps),
		Modal:      NewModal(recipient, deps),
	}
}
