package hook

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Manager manages run hooks with priority-based ordering.
//
// A panicking hook is isolated: the panic is recovered, counted, and the
// remaining hooks still run. The scheduler must never be taken down by a
// misbehaving user hook.
type Manager struct {
	mu        sync.RWMutex
	preHooks  []PreRunHook
	postHooks []PostRunHook
	panics    atomic.Uint64
}

// NewManager creates a new hook manager.
func NewManager() *Manager {
	return &Manager{
		preHooks:  make([]PreRunHook, 0),
		postHooks: make([]PostRunHook, 0),
	}
}

// RegisterPre adds a pre-run hook.
// Hooks are sorted by priority (higher runs first).
func (m *Manager) RegisterPre(h PreRunHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Check for duplicate by name
	for i, existing := range m.preHooks {
		if existing.Name() == h.Name() {
			// Replace existing
			m.preHooks[i] = h
			m.sortPreHooks()
			return
		}
	}

	m.preHooks = append(m.preHooks, h)
	m.sortPreHooks()
}

// RegisterPost adds a post-run hook.
// Hooks are sorted by priority (higher runs last for post-hooks).
func (m *Manager) RegisterPost(h PostRunHook) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Check for duplicate by name
	for i, existing := range m.postHooks {
		if existing.Name() == h.Name() {
			// Replace existing
			m.postHooks[i] = h
			m.sortPostHooks()
			return
		}
	}

	m.postHooks = append(m.postHooks, h)
	m.sortPostHooks()
}

// Register adds a hook that implements both interfaces.
func (m *Manager) Register(h Hook) {
	if pre, ok := h.(PreRunHook); ok {
		m.RegisterPre(pre)
	}
	if post, ok := h.(PostRunHook); ok {
		m.RegisterPost(post)
	}
}

// UnregisterPre removes a pre-run hook by name.
func (m *Manager) UnregisterPre(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.preHooks {
		if h.Name() == name {
			m.preHooks = append(m.preHooks[:i], m.preHooks[i+1:]...)
			return true
		}
	}
	return false
}

// UnregisterPost removes a post-run hook by name.
func (m *Manager) UnregisterPost(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, h := range m.postHooks {
		if h.Name() == name {
			m.postHooks = append(m.postHooks[:i], m.postHooks[i+1:]...)
			return true
		}
	}
	return false
}

// Unregister removes a hook by name from both pre and post lists.
func (m *Manager) Unregister(name string) bool {
	pre := m.UnregisterPre(name)
	post := m.UnregisterPost(name)
	return pre || post
}

// RunPre runs all pre-run hooks in priority order.
func (m *Manager) RunPre(info RunInfo) {
	m.mu.RLock()
	hooks := make([]PreRunHook, len(m.preHooks))
	copy(hooks, m.preHooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		m.safePre(h, info)
	}
}

// RunPost runs all post-run hooks from lowest to highest priority.
// This ordering allows higher priority hooks to observe the final state.
func (m *Manager) RunPost(info RunInfo) {
	m.mu.RLock()
	hooks := make([]PostRunHook, len(m.postHooks))
	copy(hooks, m.postHooks)
	m.mu.RUnlock()

	for _, h := range hooks {
		m.safePost(h, info)
	}
}

// safePre invokes a pre-run hook with panic recovery.
func (m *Manager) safePre(h PreRunHook, info RunInfo) {
	defer func() {
		if r := recover(); r != nil {
			m.panics.Add(1)
		}
	}()
	h.PreRun(info)
}

// safePost invokes a post-run hook with panic recovery.
func (m *Manager) safePost(h PostRunHook, info RunInfo) {
	defer func() {
		if r := recover(); r != nil {
			m.panics.Add(1)
		}
	}()
	h.PostRun(info)
}

// PanicCount returns the number of recovered hook panics.
func (m *Manager) PanicCount() uint64 {
	return m.panics.Load()
}

// PreHookCount returns the number of registered pre-run hooks.
func (m *Manager) PreHookCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.preHooks)
}

// PostHookCount returns the number of registered post-run hooks.
func (m *Manager) PostHookCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.postHooks)
}

// PreHookNames returns the names of all pre-run hooks in order.
func (m *Manager) PreHookNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.preHooks))
	for i, h := range m.preHooks {
		names[i] = h.Name()
	}
	return names
}

// PostHookNames returns the names of all post-run hooks in order.
func (m *Manager) PostHookNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.postHooks))
	for i, h := range m.postHooks {
		names[i] = h.Name()
	}
	return names
}

// sortPreHooks sorts pre-hooks by priority descending (higher first).
func (m *Manager) sortPreHooks() {
	sort.Slice(m.preHooks, func(i, j int) bool {
		return m.preHooks[i].Priority() > m.preHooks[j].Priority()
	})
}

// sortPostHooks sorts post-hooks by priority ascending (lower first, higher last).
func (m *Manager) sortPostHooks() {
	sort.Slice(m.postHooks, func(i, j int) bool {
		return m.postHooks[i].Priority() < m.postHooks[j].Priority()
	})
}

// Clear removes all hooks.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preHooks = m.preHooks[:0]
	m.postHooks = m.postHooks[:0]
}
