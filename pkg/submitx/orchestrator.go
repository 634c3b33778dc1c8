// Package submitx issues exactly one outbound request per user action and
// tracks it until the provider settles or the timeout fires.
package submitx

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alamane/outreach/pkg/asyncx"
	"github.com/alamane/outreach/pkg/errx"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/toastx"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single send.
const DefaultTimeout = 30 * time.Second

// Orchestrator guards one form: at most one request in flight at a time.
type Orchestrator struct {
	sender   Sender
	feedback toastx.Notifier
	messages Messages
	timeout  time.Duration
	log      *logx.Logger
	state    atomic.Int32
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithTimeout bounds how long a request may stay in flight. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d >= 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the diagnostic sink. Defaults to the process-wide logger.
func WithLogger(l *logx.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// New creates an idle orchestrator.
func New(sender Sender, feedback toastx.Notifier, messages Messages, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sender:   sender,
		feedback: feedback,
		messages: messages,
		timeout:  DefaultTimeout,
		log:      logx.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current state.
func (o *Orchestrator) State() State { return State(o.state.Load()) }

// Busy reports whether a request is in flight. Front ends disable the form while true.
func (o *Orchestrator) Busy() bool { return o.State() == StateInFlight }

// Submit sends req asynchronously. It returns ErrBusy, with no other effect,
// when a request from this orchestrator is still in flight.
//
// On acceptance it notifies success, runs onSuccess, then returns to idle.
// On any failure it logs the cause, notifies the generic failure text and
// returns to idle without running onSuccess. The future's error is always
// nil: failures are carried in Outcome.Cause.
//
// Cancelling ctx does not abort the send; only the timeout does.
func (o *Orchestrator) Submit(ctx context.Context, req Request, onSuccess func()) (*asyncx.Future[Outcome], error) {
	if !o.state.CompareAndSwap(int32(StateIdle), int32(StateInFlight)) {
		return nil, BusyError(req.Form)
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	sendCtx := context.WithoutCancel(ctx)
	fut := asyncx.Run(func() (Outcome, error) {
		defer o.state.Store(int32(StateIdle))

		entry := o.log.WithFields(logx.Fields{
			"form":       req.Form,
			"request_id": req.ID.String(),
		})
		entry.Debug("submission started")

		if err := o.send(sendCtx, req); err != nil {
			entry.WithError(err).WithField("cause_code", errx.CodeOf(errors.Unwrap(err))).Error("submission failed")
			o.feedback.Notify(toastx.Error(o.messages.Failure))
			return Outcome{RequestID: req.ID, Cause: err}, nil
		}

		entry.Info("submission accepted")
		o.feedback.Notify(toastx.Success(o.messages.Success))
		if onSuccess != nil {
			onSuccess()
		}
		return Outcome{RequestID: req.ID}, nil
	})
	return fut, nil
}

// send returns nil or an ErrTransport error; timeouts additionally match ErrTimeout.
// A panicking sender counts as a transport failure.
func (o *Orchestrator) send(ctx context.Context, req Request) error {
	if o.sender == nil {
		return submitErrors.New(ErrNoSender)
	}

	_, err := asyncx.WithTimeout(ctx, o.timeout, func(ctx context.Context) (_ struct{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("provider panic: %v", r)
			}
		}()
		return struct{}{}, o.sender.Send(ctx, req)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		timeout := submitErrors.NewWithCause(ErrTimeout, err).WithDetail("timeout", o.timeout.String())
		return submitErrors.NewWithCause(ErrTransport, timeout)
	default:
		return submitErrors.NewWithCause(ErrTransport, err)
	}
}
