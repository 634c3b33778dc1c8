package errx

import (
	"fmt"
	"sync"
)

// ErrorCode is a registered error code. It can be used directly as an errors.Is target.
type ErrorCode struct {
	Code    string
	Type    Type
	Message string
}

// Error lets an ErrorCode act as a sentinel.
func (c *ErrorCode) Error() string {
	return fmt.Sprintf("[%s] %s", c.Code, c.Message)
}

// Registry manages error codes for a package
type Registry struct {
	prefix string
	codes  map[string]*ErrorCode
	mu     sync.RWMutex
}

// NewRegistry creates a new error registry with a prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]*ErrorCode),
	}
}

// Register registers a new error code. Registering the same code twice panics.
func (r *Registry) Register(code string, errType Type, message string) *ErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.codes[code]; dup {
		panic(fmt.Sprintf("errx: %s_%s registered twice", r.prefix, code))
	}
	errorCode := &ErrorCode{
		Code:    fmt.Sprintf("%s_%s", r.prefix, code),
		Type:    errType,
		Message: message,
	}
	r.codes[code] = errorCode
	return errorCode
}

// New creates a new error from a registered code
func (r *Registry) New(code *ErrorCode) *Error {
	return &Error{
		Code:    code.Code,
		Message: code.Message,
		Type:    code.Type,
		Details: make(map[string]interface{}),
	}
}

// NewWithCause creates a new error from a registered code wrapping cause
func (r *Registry) NewWithCause(code *ErrorCode, cause error) *Error {
	e := r.New(code)
	e.Err = cause
	return e
}
