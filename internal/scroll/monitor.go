package scroll

import "sync"

// monitor evaluates interrupt triggers at the top of every step. The
// driver's pending-input signal is always consulted; hosts may register
// additional sources (for example a window-focus change or a resize flag).
type monitor struct {
	mu      sync.RWMutex
	sources []func() bool
}

// add registers an extra interrupt source.
func (m *monitor) add(fn func() bool) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.sources = append(m.sources, fn)
	m.mu.Unlock()
}

// tripped reports whether any interrupt trigger fired.
func (m *monitor) tripped(d Driver) bool {
	if d.PendingInput() {
		return true
	}

	m.mu.RLock()
	sources := m.sources
	m.mu.RUnlock()

	for _, fn := range sources {
		if fn() {
			return true
		}
	}
	return false
}
