package window

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/Carmen-Shannon/oxy-cam/rig/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Collector accumulates window input events between ticks and drains them
// into per-tick snapshots for the camera rig. Events arrive from the window's
// callbacks; Collect is called once per update iteration.
//
// The first mouse move after attach primes the reference position so windows
// that spawn with the cursor mid-surface do not produce a spurious delta.
type Collector struct {
	mu sync.Mutex

	primaryHeld   bool
	secondaryHeld bool
	primaryDown   bool
	primaryUp     bool
	secondaryDown bool
	secondaryUp   bool

	lastX, lastY int32
	primed       bool
	dx, dy       float32

	scroll float32
	escape bool
}

// NewCollector creates a collector wired to the window's input callbacks.
// The window's scroll, mouse button, mouse move, and key down callbacks are
// claimed by the collector; hosts that need them too should layer their own
// dispatch in front.
//
// Parameters:
//   - w: the window to listen to
//
// Returns:
//   - *Collector: the attached collector
func NewCollector(w Window) *Collector {
	c := &Collector{}

	w.SetPrimaryMouseDownCallback(func(x, y int32) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.primaryDown = true
		c.primaryHeld = true
		c.mark(x, y)
	})
	w.SetPrimaryMouseUpCallback(func(x, y int32) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.primaryUp = true
		c.primaryHeld = false
		c.mark(x, y)
	})
	w.SetSecondaryMouseDownCallback(func(x, y int32) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.secondaryDown = true
		c.secondaryHeld = true
		c.mark(x, y)
	})
	w.SetSecondaryMouseUpCallback(func(x, y int32) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.secondaryUp = true
		c.secondaryHeld = false
		c.mark(x, y)
	})
	w.SetMouseMoveCallback(func(x, y int32) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.primed {
			c.dx += float32(x - c.lastX)
			c.dy += float32(y - c.lastY)
		}
		c.mark(x, y)
	})
	w.SetScrollCallback(func(delta float32) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.scroll += delta
	})
	w.SetKeyDownCallback(c.KeyDown)

	return c
}

// KeyDown records a key press. NewCollector registers it as the window's key
// down callback; hosts that claim that callback for their own bindings should
// forward events here so Escape keeps reaching the rig.
//
// Parameters:
//   - keyCode: the virtual key code
func (c *Collector) KeyDown(keyCode uint32) {
	if keyCode != common.KeyEsc {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.escape = true
}

// mark records the latest cursor position. Caller must hold the mutex.
func (c *Collector) mark(x, y int32) {
	c.lastX = x
	c.lastY = y
	c.primed = true
}

// Collect drains the events accumulated since the previous call into a
// snapshot. Edge flags, pointer deltas, scroll, and the escape flag reset;
// held state persists across ticks.
//
// Returns:
//   - input.Snapshot: everything that happened since the last Collect
func (c *Collector) Collect() input.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := input.Snapshot{
		PrimaryDown:   c.primaryDown,
		PrimaryHeld:   c.primaryHeld,
		PrimaryUp:     c.primaryUp,
		SecondaryDown: c.secondaryDown,
		SecondaryHeld: c.secondaryHeld,
		SecondaryUp:   c.secondaryUp,
		PointerDelta:  mgl32.Vec2{c.dx, c.dy},
		ScrollDelta:   c.scroll,
		EscapePressed: c.escape,
	}

	c.primaryDown, c.primaryUp = false, false
	c.secondaryDown, c.secondaryUp = false, false
	c.dx, c.dy = 0, 0
	c.scroll = 0
	c.escape = false

	return snap
}
