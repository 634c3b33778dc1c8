// Package formx binds a set of form fields to the email validator and a
// submission orchestrator. One generic Controller serves every form; what
// differs between forms lives in a Definition.
package formx

import (
	"context"
	"sync"
	"time"

	"github.com/alamane/outreach/pkg/asyncx"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/submitx"
	"github.com/alamane/outreach/pkg/toastx"
)

// PayloadBuilder turns a snapshot of the fields into an outbound request.
type PayloadBuilder func(fields Fields) submitx.Request

// Definition describes one form.
type Definition struct {
	Name   string
	Fields []string
	Build  PayloadBuilder

	Messages     submitx.Messages
	InvalidEmail string

	// AfterSuccess runs after the fields have been reset, while the form is
	// still in flight.
	AfterSuccess func()
}

// Deps are the collaborators shared by all forms. Timeout bounds each send;
// zero disables the bound.
type Deps struct {
	Sender   submitx.Sender
	Feedback toastx.Notifier
	Timeout  time.Duration
	Logger   *logx.Logger
}

// Controller owns one field set and one orchestrator.
type Controller struct {
	def      Definition
	feedback toastx.Notifier
	orch     *submitx.Orchestrator
	log      *logx.Logger

	mu     sync.RWMutex
	fields Fields
}

// New creates a controller with every field empty.
func New(def Definition, deps Deps) *Controller {
	log := deps.Logger
	if log == nil {
		log = logx.GetDefaultLogger()
	}
	return &Controller{
		def:      def,
		feedback: deps.Feedback,
		orch: submitx.New(deps.Sender, deps.Feedback, def.Messages,
			submitx.WithTimeout(deps.Timeout),
			submitx.WithLogger(log)),
		log:    log,
		fields: emptyFields(def.Fields),
	}
}

// Name returns the form name.
func (c *Controller) Name() string { return c.def.Name }

// SetField updates one field. Edits are refused while a submission is in flight.
func (c *Controller) SetField(name, value string) error {
	if c.orch.Busy() {
		return submitx.BusyError(c.def.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fields[name]; !ok {
		return formErrors.New(ErrUnknownField).
			WithDetail("form", c.def.Name).
			WithDetail("field", name)
	}
	c.fields[name] = value
	return nil
}

// Fields returns a snapshot of the current values.
func (c *Controller) Fields() Fields {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fields.Clone()
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool { return c.orch.Busy() }

// State returns the orchestrator state.
func (c *Controller) State() submitx.State { return c.orch.State() }

// Submit validates the email field and hands a request to the orchestrator.
//
// While busy it returns submitx.ErrBusy and does nothing else. With an
// invalid email it shows the invalid-email notification and returns
// ErrInvalidEmail without contacting the provider.
func (c *Controller) Submit(ctx context.Context) (*asyncx.Future[submitx.Outcome], error) {
	if c.orch.Busy() {
		return nil, submitx.BusyError(c.def.Name)
	}

	snapshot := c.Fields()
	if !IsValidEmail(snapshot.Get(FieldEmail)) {
		c.log.WithField("form", c.def.Name).Debug("rejected invalid email")
		c.feedback.Notify(toastx.Error(c.def.InvalidEmail))
		return nil, formErrors.New(ErrInvalidEmail).WithDetail("form", c.def.Name)
	}

	req := c.def.Build(snapshot)
	req.Form = c.def.Name
	return c.orch.Submit(ctx, req, c.succeeded)
}

// Reset empties every field.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.fields = emptyFields(c.def.Fields)
	c.mu.Unlock()
}

func (c *Controller) succeeded() {
	c.Reset()
	if c.def.AfterSuccess != nil {
		c.def.AfterSuccess()
	}
}
