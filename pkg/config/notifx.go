package config

import "time"

// NotifxConfig configures the notification system.
type NotifxConfig struct {
	Provider    string `validate:"oneof=emailjs ses console memory"`
	FromAddress string `validate:"omitempty,email"`
	FromName    string
	AWSRegion   string `validate:"required_if=Provider ses"`
	EmailJS     EmailJSConfig
}

// EmailJSConfig holds the hosted email service identifiers.
type EmailJSConfig struct {
	ServiceID  string `validate:"required"`
	TemplateID string `validate:"required"`
	PublicKey  string `validate:"required"`
	PrivateKey string
	Endpoint   string `validate:"omitempty,url"`
	Timeout    time.Duration
}

func loadNotifxConfig(r reader) NotifxConfig {
	return NotifxConfig{
		Provider:    r.getEnv("emailjs", "NOTIFX_PROVIDER"),
		FromAddress: r.getEnv("noreply@alamane.org", "NOTIFX_FROM_ADDRESS", "EMAIL_FROM_ADDRESS"),
		FromName:    r.getEnv("Al-Amane", "NOTIFX_FROM_NAME", "EMAIL_FROM_NAME"),
		AWSRegion:   r.getEnv("eu-west-3", "NOTIFX_AWS_REGION", "AWS_REGION"),
		EmailJS: EmailJSConfig{
			ServiceID:  r.getEnv("service_0c1f5z4", "EMAILJS_SERVICE_ID", "VITE_EMAILJS_SERVICE_ID"),
			TemplateID: r.getEnv("template_o877rum", "EMAILJS_TEMPLATE_ID", "VITE_EMAILJS_TEMPLATE_ID"),
			PublicKey:  r.getEnv("GTl-AWnAxGjC-wZxB", "EMAILJS_PUBLIC_KEY", "VITE_EMAILJS_PUBLIC_KEY"),
			PrivateKey: r.getEnv("", "EMAILJS_PRIVATE_KEY"),
			Endpoint:   r.getEnv("", "EMAILJS_ENDPOINT"),
			Timeout:    r.getEnvDuration("EMAILJS_HTTP_TIMEOUT", 0),
		},
	}
}
