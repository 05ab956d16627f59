// Package browser provides an in-process browser window: a location, a
// session history stack, a document title and popstate listeners.
//
// Memory is what the router talks to when there is no real browser: in
// tests, in the headless render command, during server-side rendering, and
// as the server-side mirror of a connected client's history.
package browser

import "sync"

type listener struct {
	id int
	fn func()
}

// Memory is an in-memory window. It is safe for concurrent use.
// Popstate listeners are invoked outside the internal lock, in registration
// order.
type Memory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	title     string
	pushes    int
	listeners []listener
	nextID    int
}

// NewMemory creates a window whose single history entry is path.
func NewMemory(path string) *Memory {
	return &Memory{entries: []string{path}}
}

// Location returns the current path. It may be empty; callers treat an
// empty path as "/".
func (m *Memory) Location() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

// PushState adds a history entry for path and makes it current, discarding
// any forward entries. Listeners are not notified, as in a browser.
func (m *Memory) PushState(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries[:m.index+1], path)
	m.index++
	m.pushes++
}

// SetTitle sets the document title.
func (m *Memory) SetTitle(title string) {
	m.mu.Lock()
	m.title = title
	m.mu.Unlock()
}

// Title returns the document title.
func (m *Memory) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// AddPopStateListener registers fn for back/forward navigation. The
// returned function removes this registration; registering the same
// function twice yields two independent registrations.
func (m *Memory) AddPopStateListener(fn func()) (remove func()) {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered popstate listeners.
func (m *Memory) ListenerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}

// Back moves one entry back and fires popstate. It reports false at the
// start of history.
func (m *Memory) Back() bool {
	m.mu.Lock()
	if m.index == 0 {
		m.mu.Unlock()
		return false
	}
	m.index--
	m.mu.Unlock()
	m.dispatch()
	return true
}

// Forward moves one entry forward and fires popstate. It reports false at
// the end of history.
func (m *Memory) Forward() bool {
	m.mu.Lock()
	if m.index+1 >= len(m.entries) {
		m.mu.Unlock()
		return false
	}
	m.index++
	m.mu.Unlock()
	m.dispatch()
	return true
}

// Visit applies a history traversal that happened elsewhere (a real
// browser reporting popstate) and fires popstate. An adjacent entry equal
// to path is reused; otherwise path becomes a new entry.
func (m *Memory) Visit(path string) {
	m.mu.Lock()
	switch {
	case m.index > 0 && m.entries[m.index-1] == path:
		m.index--
	case m.index+1 < len(m.entries) && m.entries[m.index+1] == path:
		m.index++
	case m.entries[m.index] == path:
	default:
		m.entries = append(m.entries[:m.index+1], path)
		m.index++
	}
	m.mu.Unlock()
	m.dispatch()
}

// History returns a copy of the history entries and the current index.
func (m *Memory) History() ([]string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out, m.index
}

// Pushes returns how many times PushState was called.
func (m *Memory) Pushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pushes
}

func (m *Memory) dispatch() {
	m.mu.Lock()
	ls := make([]listener, len(m.listeners))
	copy(ls, m.listeners)
	m.mu.Unlock()

	for _, l := range ls {
		l.fn()
	}
}
