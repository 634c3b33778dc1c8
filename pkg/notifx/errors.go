package notifx

import "github.com/alamane/outreach/pkg/errx"

var notifxErrors = errx.NewRegistry("NOTIFX")

var (
	ErrSendFailed          = notifxErrors.Register("SEND_FAILED", errx.TypeExternal, "Failed to send email")
	ErrInvalidMessage      = notifxErrors.Register("INVALID_MESSAGE", errx.TypeValidation, "Invalid email message")
	ErrTemplateNotFound    = notifxErrors.Register("TEMPLATE_NOT_FOUND", errx.TypeInternal, "Email template not found")
	ErrTemplateParse       = notifxErrors.Register("TEMPLATE_PARSE", errx.TypeValidation, "Failed to parse email template")
	ErrTemplateRender      = notifxErrors.Register("TEMPLATE_RENDER", errx.TypeInternal, "Failed to render email template")
	ErrNoProvider          = notifxErrors.Register("NO_PROVIDER", errx.TypeInternal, "No email provider configured")
	ErrAlreadyInitialized  = notifxErrors.Register("ALREADY_INITIALIZED", errx.TypeInternal, "Email client already initialized")
	ErrNotInitialized      = notifxErrors.Register("NOT_INITIALIZED", errx.TypeInternal, "Email client not initialized")
	ErrInvalidProviderConf = notifxErrors.Register("INVALID_PROVIDER_CONFIG", errx.TypeInternal, "Invalid email provider configuration")
)

// Errors exposes the registry so provider packages share the NOTIFX prefix.
func Errors() *errx.Registry { return notifxErrors }
