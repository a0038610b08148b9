package session

import (
	"sync"
	"time"
)

const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces a burst of calls into one, firing the latest fn
// after a quiet period. Used to keep rapid-fire search input from
// turning into a query per keystroke.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultDebounce
	}
	return &Debouncer{quiet: quiet}
}

// Do schedules fn, replacing any still-pending call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Cancel drops any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
