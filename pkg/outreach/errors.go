package outreach

import "github.com/alamane/outreach/pkg/errx"

var outreachErrors = errx.NewRegistry("OUTREACH")

var (
	ErrModalClosed = outreachErrors.Register("MODAL_CLOSED", errx.TypeConflict, "Donation form is not open")
	ErrContent     = outreachErrors.Register("CONTENT", errx.TypeInternal, "Failed to load site content")
)
