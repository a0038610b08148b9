// Package session holds the per-process application state: the
// authenticated identity, cached listings, and UI preferences. It is a
// keyed store with dotted-path access and change subscriptions; it is
// never the source of truth for booking decisions, only a projection
// refreshed after each mutating call.
package session

import (
	"strings"
	"sync"
)

// WildcardKey subscribers receive every change.
const WildcardKey = "*"

type Callback func(key string, value any)

type subscriber struct {
	id int
	fn Callback
}

type Store struct {
	mu     sync.RWMutex
	state  map[string]any
	subs   map[string][]subscriber
	nextID int
}

func NewStore() *Store {
	return &Store{
		state: map[string]any{
			"currentUser": nil,
			"therapists":  []any{},
			"bookings":    []any{},
			"loading":     false,
		},
		subs: map[string][]subscriber{},
	}
}

// Get resolves a dotted key path ("preferences.theme"). A missing
// segment yields nil.
func (s *Store) Get(path string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cur any = s.state
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

// Set writes a dotted key path, creating intermediate maps as needed.
// Last writer wins.
func (s *Store) Set(path string, value any) {
	s.mu.Lock()

	parts := strings.Split(path, ".")
	m := s.state
	for _, part := range parts[:len(parts)-1] {
		next, ok := m[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[part] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value

	// Copy subscriber lists so callbacks run without the lock held.
	// Both exact-path and root-key subscribers hear about nested
	// writes, plus the wildcard.
	root := parts[0]
	var targets []subscriber
	targets = append(targets, s.subs[path]...)
	if root != path {
		targets = append(targets, s.subs[root]...)
	}
	targets = append(targets, s.subs[WildcardKey]...)
	s.mu.Unlock()

	for _, sub := range targets {
		sub.fn(path, value)
	}
}

// SetUser stores the authenticated identity.
func (s *Store) SetUser(user any) {
	s.Set("currentUser", user)
}

// ClearIdentity drops everything tied to the signed-in user.
func (s *Store) ClearIdentity() {
	s.Set("currentUser", nil)
	s.Set("bookings", []any{})
}

// Subscribe registers fn for changes under the given root key (or the
// wildcard). The returned func unsubscribes.
func (s *Store) Subscribe(key string, fn Callback) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs[key] = append(s.subs[key], subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		list := s.subs[key]
		for i, sub := range list {
			if sub.id == id {
				s.subs[key] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a shallow copy of the chosen top-level keys,
// used by the persistor to build its whitelisted subset.
func (s *Store) Snapshot(keys []string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := s.state[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Merge lays loaded values over the current state without notifying;
// used once at startup.
func (s *Store) Merge(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.state[k] = v
	}
}
