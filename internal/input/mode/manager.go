package mode

import (
	"fmt"
	"sync"

	"github.com/dshills/ares/internal/input/key"
)

// ChangeCallback is called when the active mode changes. Either argument
// may be nil.
type ChangeCallback func(from, to Mode)

// Manager holds the registered modes and dispatches keystrokes to the
// active one.
type Manager struct {
	mu sync.RWMutex

	host      Host
	modes     map[string]Mode
	current   Mode
	callbacks []ChangeCallback
}

// NewManager creates a manager with the four prompt modes registered.
func NewManager(h Host) *Manager {
	m := &Manager{
		host:  h,
		modes: make(map[string]Mode),
	}
	for _, md := range []Mode{NewSaveAs(), NewSearch(), NewGotoLine(), NewCommitMessage()} {
		m.Register(md)
	}
	return m
}

// Register adds a mode. A mode with the same name is replaced.
func (m *Manager) Register(md Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[md.Name()] = md
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modes[name]
}

// Current returns the active mode, or nil while editing.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Active returns true while a prompt mode is running.
func (m *Manager) Active() bool {
	return m.Current() != nil
}

// OnChange registers a callback for mode changes.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// Start activates the named mode and shows its prompt.
func (m *Manager) Start(name string) error {
	m.mu.Lock()
	md, ok := m.modes[name]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown mode: %s", name)
	}
	prev := m.current
	m.current = md
	callbacks := append([]ChangeCallback(nil), m.callbacks...)
	m.mu.Unlock()

	md.Enter(m.host)
	m.host.SetStatus("%s", md.Prompt())
	notify(callbacks, prev, md)
	return nil
}

// HandleKey routes ev to the active mode. It returns false if no mode is
// active and the key was not consumed.
func (m *Manager) HandleKey(ev key.Event) bool {
	md := m.Current()
	if md == nil {
		return false
	}

	if md.HandleKey(ev, m.host) == Stay {
		m.host.SetStatus("%s", md.Prompt())
		return true
	}

	m.mu.Lock()
	if m.current == md {
		m.current = nil
	}
	callbacks := append([]ChangeCallback(nil), m.callbacks...)
	m.mu.Unlock()

	notify(callbacks, md, nil)
	return true
}

func notify(callbacks []ChangeCallback, from, to Mode) {
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}
