package formx

import "github.com/alamane/outreach/pkg/errx"

var formErrors = errx.NewRegistry("FORMX")

var (
	ErrInvalidEmail = formErrors.Register("INVALID_EMAIL", errx.TypeValidation, "Invalid email address")
	ErrUnknownField = formErrors.Register("UNKNOWN_FIELD", errx.TypeValidation, "Unknown form field")
)
