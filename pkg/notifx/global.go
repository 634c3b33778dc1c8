package notifx

import "sync"

var global struct {
	mu     sync.RWMutex
	client *Client
}

// Init installs the process-wide client. It must be called once at startup,
// before any form can submit; later calls return ErrAlreadyInitialized and
// leave the first client in place.
func Init(provider EmailSender) (*Client, error) {
	if provider == nil {
		return nil, notifxErrors.New(ErrNoProvider)
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if global.client != nil {
		return nil, notifxErrors.New(ErrAlreadyInitialized)
	}
	global.client = NewClient(provider)
	return global.client, nil
}

// Default returns the process-wide client installed by Init.
func Default() (*Client, error) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	if global.client == nil {
		return nil, notifxErrors.New(ErrNotInitialized)
	}
	return global.client, nil
}
