// Package haptics renders vibration requests in a terminal: an audible beep and a
// screen shake that lasts until the stop arrives.
package haptics

import (
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// maxShakeColumns is the widest shake offset, reached at full high-motor intensity.
const maxShakeColumns = 4

// BeepFunc plays a tone of freq Hz for ms milliseconds.
type BeepFunc func(freq float64, ms int) error

// Rumble is the terminal vibration device.
type Rumble struct {
	mu        sync.Mutex
	beep      BeepFunc
	logger    *slog.Logger
	active    bool
	low, high float64
}

// New returns a Rumble. When beep is false no tone is played.
func New(beep bool, logger *slog.Logger) *Rumble {
	r := &Rumble{logger: logger}
	if beep {
		r.beep = beeep.Beep
	}
	return r
}

// NewWithBeeper returns a Rumble using a custom tone player.
func NewWithBeeper(fn BeepFunc, logger *slog.Logger) *Rumble {
	return &Rumble{beep: fn, logger: logger}
}

// Vibrate starts the shake and fires the beep without waiting for it.
func (r *Rumble) Vibrate(low, high float64, d time.Duration) {
	r.mu.Lock()
	r.active = true
	r.low = low
	r.high = high
	beep := r.beep
	r.mu.Unlock()

	if beep == nil || d <= 0 {
		return
	}
	go func() {
		if err := beep(beeep.DefaultFreq, int(d.Milliseconds())); err != nil && r.logger != nil {
			r.logger.Warn("beep failed", "error", err)
		}
	}()
}

// Stop ends the shake.
func (r *Rumble) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = false
	r.low = 0
	r.high = 0
}

// Active reports whether a vibration is in progress.
func (r *Rumble) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Offset returns a random horizontal shake offset in columns, 0 when idle.
func (r *Rumble) Offset(rnd *rand.Rand) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return 0
	}
	magnitude := int(math.Ceil(math.Max(r.low, r.high) * maxShakeColumns))
	if magnitude <= 0 {
		return 0
	}
	return rnd.Intn(2*magnitude+1) - magnitude
}
