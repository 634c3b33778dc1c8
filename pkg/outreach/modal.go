package outreach

import (
	"context"
	"sync"

	"github.com/alamane/outreach/pkg/asyncx"
	"github.com/alamane/outreach/pkg/formx"
	"github.com/alamane/outreach/pkg/logx"
	"github.com/alamane/outreach/pkg/submitx"
)

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

func (s ModalState) String() string {
	if s == ModalOpen {
		return "open"
	}
	return "closed"
}

// Trigger names the control that opened the modal.
type Trigger string

const (
	TriggerHeaderButton Trigger = "header-button"
	TriggerMobileMenu   Trigger = "mobile-menu"
	TriggerHeroCTA      Trigger = "hero-cta"
)

// Modal hosts the donor form. Field values survive close and reopen; only a
// successful submission clears them, and it also closes the modal.
type Modal struct {
	mu      sync.RWMutex
	state   ModalState
	trigger Trigger

	form *formx.Controller
	log  *logx.Logger
}

// NewModal creates a closed modal with an empty donor form.
func NewModal(recipient string, deps formx.Deps) *Modal {
	m := &Modal{log: deps.Logger}
	if m.log == nil {
		m.log = logx.GetDefaultLogger()
	}
	m.form = formx.New(DonorForm(recipient, m.Close), deps)
	return m
}

// Open shows the modal. Opening an open modal only records the trigger.
func (m *Modal) Open(trigger Trigger) {
	m.mu.Lock()
	m.state = ModalOpen
	m.trigger = trigger
	m.mu.Unlock()
	m.log.WithField("trigger", string(trigger)).Debug("donation modal opened")
}

// Close hides the modal without touching the form.
func (m *Modal) Close() {
	m.mu.Lock()
	m.state = ModalClosed
	m.mu.Unlock()
}

func (m *Modal) State() ModalState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Modal) IsOpen() bool { return m.State() == ModalOpen }

// Trigger returns the control that last opened the modal.
func (m *Modal) Trigger() Trigger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trigger
}

// Form exposes the donor form controller.
func (m *Modal) Form() *formx.Controller { return m.form }

// Submit submits the donor form. A closed modal has no form to submit.
func (m *Modal) Submit(ctx context.Context) (*asyncx.Future[submitx.Outcome], error) {
	if !m.IsOpen() {
		return nil, outreachErrors.New(ErrModalClosed)
	}
	return m.form.Submit(ctx)
}
