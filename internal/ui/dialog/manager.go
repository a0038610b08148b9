// Package dialog drives the modal layer: at most one dialog is active
// at a time, definitions are registered once and opened by name, and
// confirm/prompt hand back a deferred result instead of a shared
// global callback.
package dialog

import (
	"sync"
	"time"

	"github.com/mindspace-care/mindspace-api/internal/httperr"
)

// Detachment after a close waits this long so clients can animate.
const exitDelay = 200 * time.Millisecond

type Button struct {
	Label   string
	Role    string // "confirm", "cancel", or free-form
	Handler func(m *Manager)

	// KeepOpen inverts the close-on-click default.
	KeepOpen bool
}

type Config struct {
	Title   string
	Content string
	Size    string
	Buttons []Button

	HideHeader bool
	HideFooter bool

	// Both close paths are allowed unless explicitly disabled.
	DisableBackdropClose bool
	DisableEscapeClose   bool

	OnOpen  func(data map[string]any)
	OnClose func()
}

// ActiveDialog is the rendered state of the open modal.
type ActiveDialog struct {
	Name        string
	Config      Config
	Data        map[string]any
	InlineError string
	Closing     bool
}

type Manager struct {
	mu       sync.Mutex
	registry map[string]Config
	active   *ActiveDialog
	gen      int // guards delayed detach against a newer open
}

func NewManager() *Manager {
	return &Manager{registry: map[string]Config{}}
}

// Register stores a reusable dialog definition.
func (m *Manager) Register(name string, cfg Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registry[name] = cfg
}

// Open activates a registered dialog, closing any current one first.
// The outgoing dialog's OnClose always runs before the incoming
// OnOpen.
func (m *Manager) Open(name string, data map[string]any) error {
	m.mu.Lock()
	cfg, ok := m.registry[name]
	if !ok {
		m.mu.Unlock()
		return httperr.ErrBusiness("dialog_not_registered")
	}

	prev := m.active
	m.active = nil
	m.mu.Unlock()

	if prev != nil && prev.Config.OnClose != nil {
		prev.Config.OnClose()
	}

	m.mu.Lock()
	m.gen++
	m.active = &ActiveDialog{
		Name:   name,
		Config: cfg,
		Data:   data,
	}
	m.mu.Unlock()

	if cfg.OnOpen != nil {
		cfg.OnOpen(data)
	}
	return nil
}

// Close dismisses the active dialog. OnClose fires immediately; the
// state detaches after the exit delay unless a newer dialog replaced
// it meanwhile.
func (m *Manager) Close() {
	m.mu.Lock()
	cur := m.active
	if cur == nil || cur.Closing {
		m.mu.Unlock()
		return
	}
	cur.Closing = true
	gen := m.gen
	m.mu.Unlock()

	if cur.Config.OnClose != nil {
		cur.Config.OnClose()
	}

	time.AfterFunc(exitDelay, func() {
		m.mu.Lock()
		if m.gen == gen && m.active == cur {
			m.active = nil
		}
		m.mu.Unlock()
	})
}

// BackdropClick closes only when the dialog allows it.
func (m *Manager) BackdropClick() {
	m.mu.Lock()
	allowed := m.active != nil && !m.active.Config.DisableBackdropClose
	m.mu.Unlock()

	if allowed {
		m.Close()
	}
}

// EscapePressed closes only when the dialog allows it.
func (m *Manager) EscapePressed() {
	m.mu.Lock()
	allowed := m.active != nil && !m.active.Config.DisableEscapeClose
	m.mu.Unlock()

	if allowed {
		m.Close()
	}
}

// Press triggers the button with the given role on the active dialog.
func (m *Manager) Press(role string) {
	m.mu.Lock()
	cur := m.active
	m.mu.Unlock()
	if cur == nil || cur.Closing {
		return
	}

	for _, b := range cur.Config.Buttons {
		if b.Role != role {
			continue
		}
		if b.Handler != nil {
			b.Handler(m)
		}
		if !b.KeepOpen {
			m.Close()
		}
		return
	}
}

// Active returns a snapshot of the open dialog, or nil. A dialog in
// its exit transition no longer counts as active.
func (m *Manager) Active() *ActiveDialog {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active == nil || m.active.Closing {
		return nil
	}
	snap := *m.active
	return &snap
}

func (m *Manager) setInlineError(msg string) {
	m.mu.Lock()
	if m.active != nil {
		m.active.InlineError = msg
	}
	m.mu.Unlock()
}
