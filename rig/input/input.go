// Package input translates raw per-tick pointer/scroll/key snapshots into
// camera parameter deltas and mode requests, and tracks the idle timer that
// gates auto-rotation.
package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Snapshot is one tick's worth of raw input state, assembled by a host
// adapter (window.Collector, SnapshotSource) and consumed by the Translator.
// Down/Up are edge flags for this tick; Held is level state.
type Snapshot struct {
	PrimaryDown   bool
	PrimaryHeld   bool
	PrimaryUp     bool
	SecondaryDown bool
	SecondaryHeld bool
	SecondaryUp   bool

	PointerDelta mgl32.Vec2
	ScrollDelta  float32

	EscapePressed bool
}

// AnyButtonHeld reports whether either drag button is held this tick.
func (s Snapshot) AnyButtonHeld() bool {
	return s.PrimaryHeld || s.SecondaryHeld
}

// Command is the translated result of one tick of input: parameter deltas to
// apply to smoothing targets plus mode-change requests. Requests are only
// ever requests; the state machine arbitrates them.
type Command struct {
	// OrbitDelta holds (horizontal, vertical) angle deltas in degrees.
	OrbitDelta mgl32.Vec2
	// PivotDelta is a world-space pan translation projected onto the ground plane.
	PivotDelta mgl32.Vec3
	// ZoomDelta is a distance change (positive moves away from the pivot).
	ZoomDelta float32

	HomeRequested      bool
	ExitFocusRequested bool
}

// hasMotion reports whether the command carries any non-zero parameter delta.
func (c Command) hasMotion() bool {
	return c.OrbitDelta != (mgl32.Vec2{}) || c.PivotDelta != (mgl32.Vec3{}) || c.ZoomDelta != 0
}

// Context is the per-tick camera state the translation depends on.
type Context struct {
	// Focused disables panning and zooming and routes Escape to exit-focus.
	Focused bool
	// Right is the camera's world-space right axis (perpendicular to world up
	// for look-at cameras), used to project pan input onto the ground plane.
	Right mgl32.Vec3
}

// Sensitivities scales raw input units into parameter deltas. All must be
// positive.
type Sensitivities struct {
	Orbit float32
	Pan   float32
	Zoom  float32
}

// Validate checks that every sensitivity is positive.
//
// Returns:
//   - error: description of the first invalid sensitivity, or nil
func (s Sensitivities) Validate() error {
	if s.Orbit <= 0 || s.Pan <= 0 || s.Zoom <= 0 {
		return fmt.Errorf("input: sensitivities must be positive, got orbit=%v pan=%v zoom=%v", s.Orbit, s.Pan, s.Zoom)
	}
	return nil
}

// Translator maps input snapshots to commands. It owns the idle timer: any
// tick that produces motion (or a button/escape edge) resets it to zero,
// otherwise it accumulates by dt. Merely holding a button without moving
// does not reset the timer.
type Translator struct {
	sensitivities Sensitivities
	idleTime      float32
}

// NewTranslator creates a translator with the given sensitivities. The caller
// validates them (the rig does so at construction).
//
// Parameters:
//   - sensitivities: input scaling factors
//
// Returns:
//   - *Translator: the translator with a zeroed idle timer
func NewTranslator(sensitivities Sensitivities) *Translator {
	return &Translator{sensitivities: sensitivities}
}

// IdleTime returns the seconds elapsed since the last input activity.
func (t *Translator) IdleTime() float32 {
	return t.idleTime
}

// ResetIdle zeroes the idle timer. The rig calls this when it changes mode on
// the host's behalf so auto-rotation does not kick in mid-interaction.
func (t *Translator) ResetIdle() {
	t.idleTime = 0
}

// Translate converts one tick of raw input into a command.
//
// Orbit drag (primary button held) converts pointer motion to angle deltas
// with an intentionally inverted Y for the grab-the-world feel. Pan drag
// (secondary button held, disabled while focused) translates the pivot along
// the ground plane regardless of camera pitch. Scroll zooms (disabled while
// focused; focus mode pins the distance). Escape requests exit-focus while
// focused, otherwise a home transition.
//
// Parameters:
//   - snap: this tick's raw input snapshot
//   - dt: elapsed seconds since the previous tick
//   - ctx: current camera state relevant to translation
//
// Returns:
//   - Command: parameter deltas and mode requests for this tick
func (t *Translator) Translate(snap Snapshot, dt float32, ctx Context) Command {
	var cmd Command

	if snap.PrimaryHeld {
		cmd.OrbitDelta = mgl32.Vec2{
			snap.PointerDelta.X() * t.sensitivities.Orbit,
			-snap.PointerDelta.Y() * t.sensitivities.Orbit,
		}
	}

	if snap.SecondaryHeld && !ctx.Focused {
		groundForward := mgl32.Vec3{0, 1, 0}.Cross(ctx.Right)
		if groundForward.Len() > 1e-6 {
			groundForward = groundForward.Normalize()
		}
		cmd.PivotDelta = ctx.Right.Mul(-snap.PointerDelta.X() * t.sensitivities.Pan).
			Add(groundForward.Mul(snap.PointerDelta.Y() * t.sensitivities.Pan))
	}

	if !ctx.Focused {
		cmd.ZoomDelta = -snap.ScrollDelta * t.sensitivities.Zoom
	}

	if snap.EscapePressed {
		if ctx.Focused {
			cmd.ExitFocusRequested = true
		} else {
			cmd.HomeRequested = true
		}
	}

	edge := snap.PrimaryDown || snap.PrimaryUp || snap.SecondaryDown || snap.SecondaryUp || snap.EscapePressed
	if cmd.hasMotion() || edge {
		t.idleTime = 0
	} else {
		t.idleTime += dt
	}

	return cmd
}
