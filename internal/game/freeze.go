package game

import "sync"

// FreezeTracker remembers which connections have spent their one freeze.
// The set is keyed by connection id and spans rooms and rounds: the power-up
// is a per-connection lifetime allowance, not a per-match one.
type FreezeTracker struct {
	mu   sync.Mutex
	used map[string]struct{}
}

func NewFreezeTracker() *FreezeTracker {
	return &FreezeTracker{
		used: make(map[string]struct{}),
	}
}

// Use marks the connection's freeze as spent. Returns false if it already was.
func (f *FreezeTracker) Use(connID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, spent := f.used[connID]; spent {
		return false
	}
	f.used[connID] = struct{}{}
	return true
}

// Forget drops a connection's entry. Connection ids are never reused, so this
// only bounds memory; it cannot hand anyone a second freeze.
func (f *FreezeTracker) Forget(connID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.used, connID)
}
