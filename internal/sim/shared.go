package sim

import (
	"sync"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// Shared is the latest-snapshot cell between a stepping goroutine and a
// render loop. The producer replaces the contents wholesale, the
// consumer copies them out; most recent wins and intermediate steps are
// never queued. Both critical sections are pure copies, so neither side
// ever holds the lock through force math or drawing.
//
// The zero value is ready to use and snapshots as empty until the first
// Publish.
type Shared struct {
	mu    sync.Mutex
	stars []stars.Star
	step  uint64
	time  float64
}

// Publish replaces the cell contents with a copy of ss.
func (sh *Shared) Publish(ss []stars.Star, step uint64, t float64) {
	sh.mu.Lock()
	sh.stars = append(sh.stars[:0], ss...)
	sh.step = step
	sh.time = t
	sh.mu.Unlock()
}

// Snapshot copies the latest published stars into dst and returns the
// filled slice with the step count and simulation time it was taken
// at. Every star in the result belongs to one fully-completed step.
func (sh *Shared) Snapshot(dst []stars.Star) ([]stars.Star, uint64, float64) {
	sh.mu.Lock()
	dst = append(dst[:0], sh.stars...)
	step, t := sh.step, sh.time
	sh.mu.Unlock()
	return dst, step, t
}
