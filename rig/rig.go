// Package rig is the top-level camera controller: it owns the current mode,
// dispatches per-tick updates to the smoothing set, transition player, or
// focus coordinator, and serializes transition requests so at most one
// transition runs at a time.
package rig

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-cam/rig/focus"
	"github.com/Carmen-Shannon/oxy-cam/rig/input"
	"github.com/Carmen-Shannon/oxy-cam/rig/orbital"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrBusy signals that a transition or focus request arrived while a
// transition is already in flight. It is normal flow control, not a failure:
// the request is dropped, the in-flight transition is untouched, and callers
// should tolerate it silently.
var ErrBusy = errors.New("rig: transition in flight")

// Mode is the rig's top-level state. Exactly one mode is active at a time;
// protecting that invariant is the whole point of this package.
type Mode int

const (
	// ModeIdle allows free orbit/pan/zoom and is the only mode eligible for
	// auto-rotation.
	ModeIdle Mode = iota

	// ModeTransitioning means a home or focus entry/exit transition owns all
	// pose writes. Input is still drained so the idle timer stays meaningful,
	// but parameter deltas are discarded.
	ModeTransitioning

	// ModeFocused delegates pose resolution to the focus coordinator.
	ModeFocused
)

// PoseSink receives the final resolved pose once per tick, typically the
// render host's camera node.
type PoseSink interface {
	SetPose(position mgl32.Vec3, orientation mgl32.Quat)
}

// Rig is the camera state machine and per-tick update entry point.
// Construct with New; collaborators are injected at construction, never
// looked up through globals.
type Rig interface {
	// Update advances the rig by one tick: translates the input snapshot,
	// dispatches to the active mode, resolves the display pose, and pushes
	// it to the pose sink.
	//
	// Parameters:
	//   - dt: elapsed seconds since the previous tick
	//   - snap: this tick's raw input snapshot
	//
	// Returns:
	//   - orbital.Pose: the pose pushed to the sink this tick
	Update(dt float32, snap input.Snapshot) orbital.Pose

	// ReturnHome requests a timed transition back to the home configuration.
	//
	// Returns:
	//   - error: ErrBusy unless the rig is idle
	ReturnHome() error

	// EnterFocus requests a focus transition onto the target.
	//
	// Parameters:
	//   - target: the entity to focus
	//
	// Returns:
	//   - error: ErrBusy unless idle; focus.ErrMissingDockPose or a wrapped
	//     orbital.ErrDegenerateGeometry when the target is unfocusable
	EnterFocus(target focus.Target) error

	// ExitFocus requests leaving focus. A silent no-op (nil) when idle;
	// ErrBusy while a transition is in flight.
	//
	// Returns:
	//   - error: ErrBusy while transitioning, otherwise nil
	ExitFocus() error

	// Mode returns the active top-level mode.
	Mode() Mode

	// IsTransitioning reports whether a transition owns pose writes.
	IsTransitioning() bool

	// IsFocused reports whether focus is held.
	IsFocused() bool

	// CurrentPivot returns the smoothed orbit pivot.
	CurrentPivot() mgl32.Vec3

	// CurrentDistance returns the smoothed orbit distance.
	CurrentDistance() float32

	// Parameters returns the smoothed orbital parameters.
	Parameters() orbital.Parameters

	// Pose returns the most recently resolved display pose.
	Pose() orbital.Pose
}

// rigImpl is the single implementation of Rig.
type rigImpl struct {
	mu *sync.Mutex

	// configuration, fixed after New
	homePosition    mgl32.Vec3
	homePivot       mgl32.Vec3
	sensitivities   input.Sensitivities
	rates           orbital.Rates
	bounds          orbital.Bounds
	homeDuration    float32
	focusDuration   float32
	autoRotate      bool
	autoRotateSpeed float32
	idleThreshold   float32
	exitStyle       focus.ExitStyle

	sink  PoseSink
	fader focus.SceneFader
	mood  focus.MoodLighting

	home        orbital.Parameters
	translator  *input.Translator
	smoothed    *orbital.SmoothedSet
	player      orbital.TransitionPlayer
	coordinator *focus.Coordinator

	mode Mode
	// pendingMode is the mode entered when the active transition completes.
	pendingMode Mode
	// exitInFlight marks the active transition as a focus exit so the
	// coordinator's target reference is released on completion.
	exitInFlight bool

	lastPose orbital.Pose
}

var _ Rig = &rigImpl{}

// New creates a camera rig resting at its home configuration.
// All configuration is validated up front: invalid sensitivities, rates,
// bounds, durations, or a home pose that coincides with its pivot fail
// construction instead of propagating into per-tick math.
//
// Parameters:
//   - options: functional options configuring the rig and its collaborators
//
// Returns:
//   - Rig: the rig in ModeIdle at the home pose
//   - error: the first validation failure
func New(options ...Option) (Rig, error) {
	r := &rigImpl{
		mu: &sync.Mutex{},

		homePosition: mgl32.Vec3{0, 10, 10},
		homePivot:    mgl32.Vec3{0, 0, 0},

		sensitivities: input.Sensitivities{Orbit: 0.25, Pan: 0.01, Zoom: 1.5},
		rates:         orbital.Rates{Rotate: 8, Pan: 6, Zoom: 10},
		bounds:        orbital.Bounds{MinVertical: -85, MaxVertical: 85, MinDistance: 1, MaxDistance: 100},

		homeDuration:    1.2,
		focusDuration:   1.5,
		autoRotate:      true,
		autoRotateSpeed: 12,
		idleThreshold:   5,
		exitStyle:       focus.ExitSmooth,
	}

	for _, option := range options {
		option(r)
	}

	if err := r.sensitivities.Validate(); err != nil {
		return nil, err
	}
	if err := r.rates.Validate(); err != nil {
		return nil, err
	}
	if err := r.bounds.Validate(); err != nil {
		return nil, err
	}
	if r.homeDuration <= 0 || r.focusDuration <= 0 {
		return nil, fmt.Errorf("rig: transition durations must be positive, got home=%v focus=%v", r.homeDuration, r.focusDuration)
	}
	if r.idleThreshold < 0 {
		return nil, fmt.Errorf("rig: idle threshold must be non-negative, got %v", r.idleThreshold)
	}

	home, err := orbital.FromCartesian(r.homePosition, r.homePivot)
	if err != nil {
		return nil, fmt.Errorf("rig: home pose: %w", err)
	}

	r.home = home
	r.translator = input.NewTranslator(r.sensitivities)
	r.smoothed = orbital.NewSmoothedSet(home, r.rates, r.bounds)
	r.coordinator = focus.NewCoordinator(r.fader, r.mood, r.focusDuration, r.exitStyle)
	r.home = r.smoothed.Current() // clamped into bounds
	r.lastPose = orbital.ToCartesian(r.smoothed.Current())

	return r, nil
}

func (r *rigImpl) Update(dt float32, snap input.Snapshot) orbital.Pose {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := r.translator.Translate(snap, dt, input.Context{
		Focused: r.mode == ModeFocused,
		Right:   r.lastPose.Orientation.Rotate(mgl32.Vec3{1, 0, 0}),
	})

	// Arbitrate requests before dispatching so a transition started this tick
	// begins advancing this tick. Rejections (ErrBusy) are normal flow
	// control and intentionally dropped.
	if cmd.HomeRequested {
		_ = r.returnHomeLocked()
	}
	if cmd.ExitFocusRequested {
		_ = r.exitFocusLocked()
	}

	switch r.mode {
	case ModeTransitioning:
		pose, done := r.player.Tick(dt)
		r.lastPose = pose
		if done {
			r.finishTransitionLocked()
		}

	case ModeFocused:
		r.smoothed.AddOrbitDelta(cmd.OrbitDelta.X(), cmd.OrbitDelta.Y())
		r.smoothed.Advance(dt)
		r.lastPose = r.coordinator.HeldPose(r.smoothed.Current())

	default: // ModeIdle
		r.smoothed.AddOrbitDelta(cmd.OrbitDelta.X(), cmd.OrbitDelta.Y())
		r.smoothed.AddPivotDelta(cmd.PivotDelta)
		r.smoothed.AddZoomDelta(cmd.ZoomDelta)
		if r.autoRotate && !snap.AnyButtonHeld() && r.translator.IdleTime() > r.idleThreshold {
			// Layered on top of user-driven targets, not replacing them.
			r.smoothed.AddOrbitDelta(r.autoRotateSpeed*dt, 0)
		}
		r.smoothed.Advance(dt)
		r.lastPose = orbital.ToCartesian(r.smoothed.Current())
	}

	if r.sink != nil {
		r.sink.SetPose(r.lastPose.Position, r.lastPose.Orientation)
	}
	return r.lastPose
}

// finishTransitionLocked hands the exact end configuration over to the mode
// that follows the completed transition. Caller must hold the mutex.
func (r *rigImpl) finishTransitionLocked() {
	if r.pendingMode == ModeFocused {
		r.smoothed.Snap(r.coordinator.Arrived())
		r.mode = ModeFocused
		return
	}
	if endParams, ok := r.player.End().Params(); ok {
		r.smoothed.Snap(endParams)
	}
	if r.exitInFlight {
		r.coordinator.Cleared()
		r.exitInFlight = false
	}
	r.mode = ModeIdle
}

func (r *rigImpl) ReturnHome() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.returnHomeLocked()
}

// returnHomeLocked starts a home transition. Caller must hold the mutex.
func (r *rigImpl) returnHomeLocked() error {
	if r.mode != ModeIdle {
		return ErrBusy
	}
	if err := r.player.Start(orbital.TransitionSpec{
		Start:    orbital.ParamsEndpoint(r.smoothed.Current()),
		End:      orbital.ParamsEndpoint(r.home),
		Duration: r.homeDuration,
	}); err != nil {
		return err
	}
	r.pendingMode = ModeIdle
	r.mode = ModeTransitioning
	r.translator.ResetIdle()
	return nil
}

func (r *rigImpl) EnterFocus(target focus.Target) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeIdle {
		return ErrBusy
	}
	spec, err := r.coordinator.Begin(r.smoothed.Current(), r.lastPose, target)
	if err != nil {
		return err
	}
	if err := r.player.Start(spec); err != nil {
		return err
	}
	r.pendingMode = ModeFocused
	r.mode = ModeTransitioning
	r.translator.ResetIdle()
	return nil
}

func (r *rigImpl) ExitFocus() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.exitFocusLocked()
}

// exitFocusLocked leaves held focus per the configured exit style. Caller
// must hold the mutex.
func (r *rigImpl) exitFocusLocked() error {
	if r.mode == ModeTransitioning {
		return ErrBusy
	}
	if r.mode != ModeFocused {
		return nil
	}

	result, ok := r.coordinator.End(r.lastPose)
	if !ok {
		return nil
	}
	if result.Transition == nil {
		r.smoothed.Snap(result.Restore)
		r.mode = ModeIdle
		r.lastPose = orbital.ToCartesian(r.smoothed.Current())
		return nil
	}
	if err := r.player.Start(*result.Transition); err != nil {
		return err
	}
	r.pendingMode = ModeIdle
	r.exitInFlight = true
	r.mode = ModeTransitioning
	r.translator.ResetIdle()
	return nil
}

func (r *rigImpl) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *rigImpl) IsTransitioning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode == ModeTransitioning
}

func (r *rigImpl) IsFocused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode == ModeFocused
}

func (r *rigImpl) CurrentPivot() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.smoothed.Current().Pivot
}

func (r *rigImpl) CurrentDistance() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.smoothed.Current().Distance
}

func (r *rigImpl) Parameters() orbital.Parameters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.smoothed.Current()
}

func (r *rigImpl) Pose() orbital.Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastPose
}
