package board

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultHighlightDuration is how long a randomly picked name stays
// highlighted.
const DefaultHighlightDuration = 3 * time.Second

// highlighter owns the single pending "clear highlight" task. Scheduling a
// new one stops the previous timer, and a timer that fires after being
// superseded does nothing.
type highlighter struct {
	clock clock.Clock
	delay time.Duration

	mu      sync.Mutex
	pending *clock.Timer
	seq     uint64
}

func newHighlighter(clk clock.Clock, delay time.Duration) *highlighter {
	return &highlighter{clock: clk, delay: delay}
}

// schedule arranges for clear(id, seq) to run after the delay. clear must
// call current(seq) under the same lock that guards the highlighted id.
func (h *highlighter) schedule(id string, clear func(id string, seq uint64)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending != nil {
		h.pending.Stop()
	}
	h.seq++
	seq := h.seq
	h.pending = h.clock.AfterFunc(h.delay, func() { clear(id, seq) })
}

// current reports whether seq is the latest scheduled clear, and if so
// forgets its timer.
func (h *highlighter) current(seq uint64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.seq != seq {
		return false
	}
	h.pending = nil
	return true
}

// stop cancels the pending clear, if any.
func (h *highlighter) stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
	h.seq++
}
