package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alamane/outreach/pkg/errx"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

var configErrors = errx.NewRegistry("CONFIG")

var (
	ErrLoad    = configErrors.Register("LOAD", errx.TypeInternal, "Failed to read configuration")
	ErrInvalid = configErrors.Register("INVALID", errx.TypeValidation, "Invalid configuration")
)

// Config is the full client configuration.
type Config struct {
	Notifx   NotifxConfig
	Outreach OutreachConfig
}

// Load reads the environment, after merging an optional .env file, and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, configErrors.NewWithCause(ErrLoad, err)
	}

	r := reader{k: k}
	cfg := &Config{
		Notifx:   loadNotifxConfig(r),
		Outreach: loadOutreachConfig(r),
	}
	cfg.Notifx.EmailJS.Timeout = boundHTTPTimeout(cfg.Notifx.EmailJS.Timeout, cfg.Outreach.SubmitTimeout)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint and reports the failing keys.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return configErrors.NewWithCause(ErrInvalid, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Namespace(), fe.Tag()))
	}
	return configErrors.NewWithCause(ErrInvalid, err).WithDetail("fields", fields)
}

// reader resolves keys against koanf with ordered fallbacks.
type reader struct {
	k *koanf.Koanf
}

// getEnv returns the first non-blank value among keys, or fallback.
func (r reader) getEnv(fallback string, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(r.k.String(key)); v != "" {
			return v
		}
	}
	return fallback
}

// getEnvDuration parses a duration. A bare integer is read as seconds.
// Unparseable values fall back.
func (r reader) getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := r.getEnv("", key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// boundHTTPTimeout keeps the provider call from outliving the submission
// that started it; an unset or longer value is clamped to submit.
func boundHTTPTimeout(http, submit time.Duration) time.Duration {
	if submit > 0 && (http <= 0 || http > submit) {
		return submit
	}
	return http
}
