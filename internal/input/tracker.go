package input

import (
	"sync"
	"time"
)

// Tracker turns key presses into held key state. Terminals only report presses (and
// auto-repeat while a key stays down), so a key is held until window has passed
// since its last press.
type Tracker struct {
	mu     sync.Mutex
	window time.Duration
	last   map[Key]time.Time
}

func NewTracker(window time.Duration) *Tracker {
	return &Tracker{
		window: window,
		last:   make(map[Key]time.Time),
	}
}

func (t *Tracker) Press(at time.Time, keys ...Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, k := range keys {
		t.last[k] = at
	}
}

// Held returns the keys pressed within the hold window before now.
func (t *Tracker) Held(now time.Time) KeySet {
	t.mu.Lock()
	defer t.mu.Unlock()

	held := make(KeySet, len(t.last))
	for k, at := range t.last {
		if now.Sub(at) > t.window {
			delete(t.last, k)
			continue
		}
		held[k] = struct{}{}
	}
	return held
}
