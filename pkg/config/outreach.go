package config

import "time"

// OutreachConfig configures the forms and their feedback.
type OutreachConfig struct {
	Recipient string `validate:"required,email"`
	// SubmitTimeout bounds one submission. Zero disables the bound.
	SubmitTimeout   time.Duration `validate:"gte=0"`
	SuccessDuration time.Duration `validate:"gt=0"`
	ErrorDuration   time.Duration `validate:"gt=0"`
}

func loadOutreachConfig(r reader) OutreachConfig {
	return OutreachConfig{
		Recipient:       r.getEnv("asso-alamane@outlook.com", "OUTREACH_RECIPIENT"),
		SubmitTimeout:   r.getEnvDuration("SUBMIT_TIMEOUT", 30*time.Second),
		SuccessDuration: r.getEnvDuration("TOAST_SUCCESS_DURATION", 2*time.Second),
		ErrorDuration:   r.getEnvDuration("TOAST_ERROR_DURATION", 4*time.Second),
	}
}
