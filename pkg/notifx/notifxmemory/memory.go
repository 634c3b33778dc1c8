// Package notifxmemory is an in-process provider that records what would
// have been sent. Failures and hangs can be injected.
package notifxmemory

import (
	"context"
	"sync"

	"github.com/alamane/outreach/pkg/notifx"
)

// Provider records every message it is asked to send.
type Provider struct {
	mu     sync.Mutex
	outbox []notifx.EmailMessage
	fail   error
	hold   chan struct{}
	next   []chan struct{}
}

// New returns an empty provider that accepts everything.
func New() *Provider { return &Provider{} }

// FailWith makes every following send return err. Pass nil to accept again.
func (p *Provider) FailWith(err error) {
	p.mu.Lock()
	p.fail = err
	p.mu.Unlock()
}

// Hold makes following sends block until Release is called or their
// context ends.
func (p *Provider) Hold() {
	p.mu.Lock()
	if p.hold == nil {
		p.hold = make(chan struct{})
	}
	p.mu.Unlock()
}

// Release unblocks sends waiting because of Hold.
func (p *Provider) Release() {
	p.mu.Lock()
	if p.hold != nil {
		close(p.hold)
		p.hold = nil
	}
	p.mu.Unlock()
}

// HoldNext makes only the next send block until the returned release is
// called or its context ends. Calls queue up: each one holds one send.
func (p *Provider) HoldNext() (release func()) {
	gate := make(chan struct{})
	p.mu.Lock()
	p.next = append(p.next, gate)
	p.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

// SendEmail implements notifx.EmailSender. Messages are recorded on
// arrival, whether or not the send then succeeds.
func (p *Provider) SendEmail(ctx context.Context, msg notifx.EmailMessage, _ ...notifx.Option) error {
	p.mu.Lock()
	p.outbox = append(p.outbox, msg)
	hold := p.hold
	if len(p.next) > 0 {
		hold = p.next[0]
		p.next = p.next[1:]
	}
	p.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return notifx.Errors().NewWithCause(notifx.ErrSendFailed, ctx.Err()).WithDetail("provider", "memory")
		}
	}

	p.mu.Lock()
	fail := p.fail
	p.mu.Unlock()
	if fail != nil {
		return notifx.Errors().NewWithCause(notifx.ErrSendFailed, fail).WithDetail("provider", "memory")
	}
	return nil
}

// Outbox returns a copy of every message seen so far.
func (p *Provider) Outbox() []notifx.EmailMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notifx.EmailMessage(nil), p.outbox...)
}
