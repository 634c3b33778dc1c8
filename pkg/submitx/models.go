package submitx

import (
	"context"

	"github.com/google/uuid"
)

// State is the lifecycle of one orchestrator.
type State int32

const (
	StateIdle State = iota
	StateInFlight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	default:
		return "unknown"
	}
}

// Request is one outbound message, built fresh for each attempt.
type Request struct {
	ID          uuid.UUID
	Form        string
	Recipient   string
	SenderName  string
	SenderEmail string
	Body        string
}

// Outcome is the terminal result of a submission. A nil Cause means success.
type Outcome struct {
	RequestID uuid.UUID
	Cause     error
}

// Succeeded reports whether the provider accepted the request.
func (o Outcome) Succeeded() bool { return o.Cause == nil }

// Messages are the user-facing texts for each terminal outcome.
type Messages struct {
	Success string
	Failure string
}

// Sender delivers a request to the email provider.
type Sender interface {
	Send(ctx context.Context, req Request) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, req Request) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, req Request) error { return f(ctx, req) }
