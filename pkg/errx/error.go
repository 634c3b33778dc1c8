package errx

import (
	"errors"
	"fmt"
)

// Error is a coded error carrying a public message, a category and an optional cause.
// Message is safe to show to a user; the cause is for diagnostics only.
type Error struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Type    Type                   `json:"type"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches by code, so both registered codes and other errors carrying
// the same code work as errors.Is targets.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case *ErrorCode:
		return t.Code == e.Code
	case *Error:
		return t.Code == e.Code
	}
	return false
}

// WithDetail adds a detail to the error and returns the error for chaining
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Wrap wraps err, keeping the code and details of an existing *Error in the chain.
func Wrap(err error, message string, errType Type) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:    existing.Code,
			Message: message,
			Type:    errType,
			Details: existing.Details,
			Err:     err,
		}
	}

	return &Error{
		Code:    string(errType),
		Message: message,
		Type:    errType,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// IsType reports whether any *Error in err's chain has type t.
func IsType(err error, t Type) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Type == t {
			return true
		}
		err = e.Err
	}
	return false
}

// CodeOf returns the code of the outermost *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
