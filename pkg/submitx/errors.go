package submitx

import "github.com/alamane/outreach/pkg/errx"

var submitErrors = errx.NewRegistry("SUBMITX")

var (
	ErrBusy      = submitErrors.Register("BUSY", errx.TypeConflict, "A submission is already in progress")
	ErrTransport = submitErrors.Register("TRANSPORT", errx.TypeExternal, "The message could not be delivered")
	ErrTimeout   = submitErrors.Register("TIMEOUT", errx.TypeExternal, "The provider did not answer in time")
	ErrNoSender  = submitErrors.Register("NO_SENDER", errx.TypeInternal, "No sender configured")
)

// BusyError reports that form already has a request in flight.
func BusyError(form string) error {
	return submitErrors.New(ErrBusy).WithDetail("form", form)
}
