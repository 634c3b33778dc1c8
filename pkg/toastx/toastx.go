// Package toastx is the feedback channel: short-lived success and error
// notifications, shown in arrival order and dismissed after a fixed duration.
package toastx

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes success from error notifications
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Default display durations, per kind.
const (
	DefaultSuccessDuration = 2 * time.Second
	DefaultErrorDuration   = 4 * time.Second
)

// Notification is one user-visible message.
type Notification struct {
	ID        uuid.UUID
	Kind      Kind
	Text      string
	CreatedAt time.Time
	Duration  time.Duration
}

// Success builds a success notification
func Success(text string) Notification {
	return Notification{Kind: KindSuccess, Text: text}
}

// Error builds an error notification
func Error(text string) Notification {
	return Notification{Kind: KindError, Text: text}
}

// Display renders notifications. Show and Dismiss are called from the
// channel's dispatcher goroutine and from dismissal timers.
type Display interface {
	Show(n Notification)
	Dismiss(n Notification)
}

// Notifier is what producers depend on.
type Notifier interface {
	Notify(n Notification)
}

// Channel queues notifications and hands them to a Display.
type Channel struct {
	display   Display
	durations map[Kind]time.Duration
	now       func() time.Time

	mu      sync.Mutex
	pending []Notification
	active  []Notification
	timers  map[uuid.UUID]*time.Timer
	wake    chan struct{}
}

// Option configures a Channel
type Option func(*Channel)

// WithDuration sets how long notifications of kind stay visible.
func WithDuration(kind Kind, d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.durations[kind] = d
		}
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Channel) {
		c.now = now
	}
}

// New creates a channel writing to display. Call Run to start dispatching.
func New(display Display, opts ...Option) *Channel {
	c := &Channel{
		display: display,
		durations: map[Kind]time.Duration{
			KindSuccess: DefaultSuccessDuration,
			KindError:   DefaultErrorDuration,
		},
		now:    time.Now,
		timers: make(map[uuid.UUID]*time.Timer),
		wake:   make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Notify queues n. It never blocks on the display and never drops.
func (c *Channel) Notify(n Notification) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = c.now()
	}
	if n.Duration <= 0 {
		n.Duration = c.durations[n.Kind]
		if n.Duration <= 0 {
			n.Duration = DefaultErrorDuration
		}
	}

	c.mu.Lock()
	c.pending = append(c.pending, n)
	c.mu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Run dispatches queued notifications until ctx is done. Pending
// notifications are flushed before returning.
func (c *Channel) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.flush()
			c.stopTimers()
			return nil
		case <-c.wake:
			c.flush()
		}
	}
}

// Active returns the notifications currently on screen, oldest first.
func (c *Channel) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

func (c *Channel) flush() {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, n := range batch {
		c.show(n)
	}
}

func (c *Channel) show(n Notification) {
	c.mu.Lock()
	c.active = append(c.active, n)
	c.mu.Unlock()

	c.display.Show(n)

	// The timer starts only once Show has returned, so Dismiss never overtakes it.
	c.mu.Lock()
	c.timers[n.ID] = time.AfterFunc(n.Duration, func() { c.dismiss(n.ID) })
	c.mu.Unlock()
}

func (c *Channel) dismiss(id uuid.UUID) {
	c.mu.Lock()
	var (
		gone  Notification
		found bool
	)
	for i, n := range c.active {
		if n.ID == id {
			gone, found = n, true
			c.active = append(c.active[:i], c.active[i+1:]...)
			break
		}
	}
	delete(c.timers, id)
	c.mu.Unlock()

	if found {
		c.display.Dismiss(gone)
	}
}

func (c *Channel) stopTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}
