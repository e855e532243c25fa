package orbital

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadyRunning indicates Start was called on a player that is mid-flight.
// The state machine serializes transitions so this is a caller-side bug, not a
// condition users can trigger.
var ErrAlreadyRunning = errors.New("orbital: transition already running")

// Endpoint is one end of a transition: either orbital parameters or a raw
// pose. When both ends of a spec are orbital, the transition interpolates in
// orbital space (shortest-path angles, linear distance and pivot); any raw
// end forces pose-space interpolation (linear position, slerp orientation).
type Endpoint struct {
	params *Parameters
	pose   *Pose
}

// ParamsEndpoint wraps orbital parameters as a transition endpoint.
func ParamsEndpoint(p Parameters) Endpoint {
	return Endpoint{params: &p}
}

// PoseEndpoint wraps a raw pose as a transition endpoint.
func PoseEndpoint(p Pose) Endpoint {
	return Endpoint{pose: &p}
}

// Params returns the orbital parameters and true when the endpoint is
// orbital, or the zero value and false for a raw-pose endpoint.
func (e Endpoint) Params() (Parameters, bool) {
	if e.params == nil {
		return Parameters{}, false
	}
	return *e.params, true
}

// Pose resolves the endpoint to a cartesian pose, converting orbital
// endpoints through ToCartesian.
func (e Endpoint) Pose() Pose {
	if e.pose != nil {
		return *e.pose
	}
	return ToCartesian(*e.params)
}

// TransitionSpec describes a fixed-duration eased interpolation between two
// full camera configurations. Easing is always smoothstep. A spec is created
// when a transition is requested, consumed tick by tick, and discarded on
// completion; while active it exclusively owns pose writes.
type TransitionSpec struct {
	Start    Endpoint
	End      Endpoint
	Duration float32
}

// TransitionPlayer drives one TransitionSpec at a time. It has two states,
// idle and running; a transition always runs to completion once started
// (no cancellation), and requests arriving while running are dropped by the
// state machine, never queued.
type TransitionPlayer struct {
	spec    TransitionSpec
	elapsed float32
	running bool

	// endPose is resolved once at Start so the final tick can hand back the
	// exact end configuration instead of a t=1 interpolation.
	endPose Pose
}

// Start begins playing a transition from its beginning.
//
// Parameters:
//   - spec: the transition to play (Duration must be positive)
//
// Returns:
//   - error: ErrAlreadyRunning when a transition is mid-flight
func (tp *TransitionPlayer) Start(spec TransitionSpec) error {
	if tp.running {
		return ErrAlreadyRunning
	}
	tp.spec = spec
	tp.elapsed = 0
	tp.running = true
	tp.endPose = spec.End.Pose()
	return nil
}

// Running reports whether a transition is mid-flight.
func (tp *TransitionPlayer) Running() bool {
	return tp.running
}

// End returns the end configuration of the active (or most recent) spec.
// The state machine reads it on completion to hand exact parameters back to
// the smoothing set.
func (tp *TransitionPlayer) End() Endpoint {
	return tp.spec.End
}

// Tick advances the transition by dt and returns the interpolated pose.
// done is true exactly on the tick where elapsed reaches the duration, at
// which point the returned pose is the exact end configuration and the
// player returns to idle.
//
// Parameters:
//   - dt: elapsed time in seconds since the previous tick
//
// Returns:
//   - Pose: the pose to display this tick
//   - bool: true once, when the transition completes
func (tp *TransitionPlayer) Tick(dt float32) (Pose, bool) {
	if !tp.running {
		return tp.endPose, false
	}

	tp.elapsed += dt
	if tp.elapsed >= tp.spec.Duration {
		tp.running = false
		return tp.endPose, true
	}

	eased := common.SmoothStep(tp.elapsed / tp.spec.Duration)

	if sp, ok := tp.spec.Start.Params(); ok {
		if ep, ok := tp.spec.End.Params(); ok {
			return ToCartesian(Parameters{
				Horizontal: common.LerpAngleDeg(sp.Horizontal, ep.Horizontal, eased),
				Vertical:   common.Lerp(sp.Vertical, ep.Vertical, eased),
				Distance:   common.Lerp(sp.Distance, ep.Distance, eased),
				Pivot:      sp.Pivot.Add(ep.Pivot.Sub(sp.Pivot).Mul(eased)),
			}), false
		}
	}

	start := tp.spec.Start.Pose()
	return Pose{
		Position:    start.Position.Add(tp.endPose.Position.Sub(start.Position).Mul(eased)),
		Orientation: mgl32.QuatSlerp(start.Orientation, tp.endPose.Orientation, eased),
	}, false
}
