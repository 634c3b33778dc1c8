package toastx

import "sync"

// Recorder is a Display and Notifier that keeps everything it sees. It is
// meant for tests and for headless runs.
type Recorder struct {
	mu        sync.Mutex
	shown     []Notification
	dismissed []Notification
}

// Notify records n as shown immediately, bypassing any queue.
func (r *Recorder) Notify(n Notification) { r.Show(n) }

// Show implements Display.
func (r *Recorder) Show(n Notification) {
	r.mu.Lock()
	r.shown = append(r.shown, n)
	r.mu.Unlock()
}

// Dismiss implements Display.
func (r *Recorder) Dismiss(n Notification) {
	r.mu.Lock()
	r.dismissed = append(r.dismissed, n)
	r.mu.Unlock()
}

// Shown returns a copy of everything shown so far.
func (r *Recorder) Shown() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.shown...)
}

// Dismissed returns a copy of everything dismissed so far.
func (r *Recorder) Dismissed() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.dismissed...)
}

// Texts returns the text of every shown notification, in order.
func (r *Recorder) Texts() []string {
	shown := r.Shown()
	out := make([]string, len(shown))
	for i, n := range shown {
		out[i] = n.Text
	}
	return out
}
