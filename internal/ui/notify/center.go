// Package notify keeps the transient on-screen message state: an
// ordered, capped list of notifications with timer-driven dismissal.
// Transports (SSE, polling, a TUI) read snapshots; the center owns the
// lifecycle.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

const (
	DefaultDuration = 5 * time.Second
	DefaultMax      = 5

	// A dismissed entry lingers briefly so clients can animate it out.
	dismissDelay = 300 * time.Millisecond
)

type Notification struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Message    string    `json:"message"`
	Persistent bool      `json:"persistent"`
	Dismissing bool      `json:"dismissing"`
	CreatedAt  time.Time `json:"created_at"`
}

type Options struct {
	Duration   time.Duration
	Persistent bool
}

type Center struct {
	mu     sync.Mutex
	max    int
	items  []*Notification // newest first
	timers map[string]*time.Timer

	// onChange, when set, fires after every visible-state change.
	onChange func([]Notification)
}

func NewCenter(max int) *Center {
	if max <= 0 {
		max = DefaultMax
	}
	return &Center{
		max:    max,
		timers: map[string]*time.Timer{},
	}
}

// OnChange registers a single listener for state changes.
func (c *Center) OnChange(fn func([]Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Show adds a notification and returns its id. Inserting past the cap
// evicts the oldest visible entry.
func (c *Center) Show(message string, typ Type, opts Options) string {
	n := &Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	n.Persistent = opts.Persistent

	c.mu.Lock()

	c.items = append([]*Notification{n}, c.items...)
	if len(c.items) > c.max {
		oldest := c.items[len(c.items)-1]
		c.items = c.items[:len(c.items)-1]
		c.cancelTimerLocked(oldest.ID)
	}

	if !n.Persistent {
		id := n.ID
		c.timers[id] = time.AfterFunc(duration, func() {
			c.Remove(id)
		})
	}

	c.mu.Unlock()
	c.notifyChanged()

	return n.ID
}

// Remove dismisses one notification. Detachment happens after the
// fade-out delay; until then the entry is visible as dismissing.
func (c *Center) Remove(id string) {
	c.mu.Lock()

	var target *Notification
	for _, n := range c.items {
		if n.ID == id && !n.Dismissing {
			target = n
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return
	}

	target.Dismissing = true
	c.cancelTimerLocked(id)

	time.AfterFunc(dismissDelay, func() {
		c.detach(id)
	})

	c.mu.Unlock()
	c.notifyChanged()
}

// Clear dismisses everything currently shown.
func (c *Center) Clear() {
	c.mu.Lock()
	ids := make([]string, 0, len(c.items))
	for _, n := range c.items {
		if !n.Dismissing {
			ids = append(ids, n.ID)
		}
	}
	c.mu.Unlock()

	for _, id := range ids {
		c.Remove(id)
	}
}

// List returns the visible notifications, newest first.
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	for i, n := range c.items {
		out[i] = *n
	}
	return out
}

func (c *Center) detach(id string) {
	c.mu.Lock()
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.notifyChanged()
}

func (c *Center) cancelTimerLocked(id string) {
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
}

func (c *Center) notifyChanged() {
	c.mu.Lock()
	fn := c.onChange
	var snap []Notification
	if fn != nil {
		snap = make([]Notification, len(c.items))
		for i, n := range c.items {
			snap[i] = *n
		}
	}
	c.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}
