// Package focus owns the focus sub-state machine: entering focus on a target,
// holding it (free-look or locked look-at), and exiting back to the pre-focus
// orbital state, coordinating the fade and lighting collaborators along the way.
package focus

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/rig/orbital"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// ErrMissingDockPose is returned when a focus target exposes no dock pose.
// The focus request is refused with no state change; the caller may retry
// with a different target.
var ErrMissingDockPose = errors.New("focus: target has no dock pose")

// Target is the capability set a focusable entity exposes to the camera.
// The camera holds a non-owning reference to it only while focus is active.
type Target interface {
	// ID identifies the target's fade group so the fade collaborator can
	// spare its subtree.
	ID() uuid.UUID

	// FocusPivot is the point the camera orbits while focus is held.
	FocusPivot() mgl32.Vec3

	// DockPose returns the exact pose the camera assumes on arrival.
	// The bool is false when the target does not specify one, which makes
	// the target unfocusable.
	DockPose() (orbital.Pose, bool)

	// LockedLookAt optionally forces the held-focus orientation to track a
	// point, overriding free-look angles entirely.
	LockedLookAt() (mgl32.Vec3, bool)
}

// SceneFader receives fire-and-forget fade commands. The camera never awaits
// completion.
type SceneFader interface {
	// FadeAllExcept fades out every registered object outside the given group.
	FadeAllExcept(group uuid.UUID)

	// RestoreAll brings every registered object back to full visibility.
	RestoreAll()
}

// MoodLighting receives fire-and-forget focus notifications from the camera.
type MoodLighting interface {
	OnFocusEntered(target Target)
	OnFocusExited()
}

// ExitStyle selects how leaving focus returns to the pre-focus orbital state.
type ExitStyle int

const (
	// ExitSmooth replays a timed transition back to the pre-focus parameters.
	ExitSmooth ExitStyle = iota

	// ExitInstant snaps straight back with no interpolation.
	ExitInstant
)

type coordinatorState int

const (
	stateInactive coordinatorState = iota
	stateEntering
	stateHeld
	stateExiting
)

// Coordinator drives the focus lifecycle. The camera state machine is the
// only caller and serializes all requests, so the coordinator carries no lock
// and assumes Begin is never called while a previous focus is still winding
// down.
type Coordinator struct {
	fader SceneFader
	mood  MoodLighting

	duration  float32
	exitStyle ExitStyle

	state      coordinatorState
	target     Target
	preFocus   orbital.Parameters
	dockParams orbital.Parameters
	dockPose   orbital.Pose
}

// NewCoordinator creates a focus coordinator.
//
// Parameters:
//   - fader: fade collaborator (nil disables fade commands)
//   - mood: lighting collaborator (nil disables mood notifications)
//   - duration: focus transition duration in seconds (both directions)
//   - exitStyle: smooth transition or instant snap on exit
//
// Returns:
//   - *Coordinator: the coordinator, inactive
func NewCoordinator(fader SceneFader, mood MoodLighting, duration float32, exitStyle ExitStyle) *Coordinator {
	return &Coordinator{
		fader:     fader,
		mood:      mood,
		duration:  duration,
		exitStyle: exitStyle,
	}
}

// Focused reports whether focus is currently held (arrival complete, exit not
// yet requested).
func (c *Coordinator) Focused() bool {
	return c.state == stateHeld
}

// Target returns the active focus target, or nil outside the focus lifecycle.
func (c *Coordinator) Target() Target {
	return c.target
}

// Begin starts a focus entry: snapshots the pre-focus parameters for later
// restoration, derives post-arrival orbital parameters from the dock pose so
// free-look orbiting is continuous with the camera's arrival orientation, and
// notifies the fade and lighting collaborators. The returned spec interpolates
// from the current pose to the dock pose.
//
// Parameters:
//   - currentParams: the orbital parameters to restore on exit
//   - currentPose: the pose the transition starts from
//   - target: the entity to focus (non-owning reference, held until exit completes)
//
// Returns:
//   - orbital.TransitionSpec: the entry transition for the state machine to play
//   - error: ErrMissingDockPose, or a wrapped orbital.ErrDegenerateGeometry
//     when the dock pose coincides with the focus pivot
func (c *Coordinator) Begin(currentParams orbital.Parameters, currentPose orbital.Pose, target Target) (orbital.TransitionSpec, error) {
	dock, ok := target.DockPose()
	if !ok {
		return orbital.TransitionSpec{}, ErrMissingDockPose
	}

	dockParams, err := orbital.FromCartesian(dock.Position, target.FocusPivot())
	if err != nil {
		return orbital.TransitionSpec{}, fmt.Errorf("focus: dock pose unusable: %w", err)
	}

	c.state = stateEntering
	c.target = target
	c.preFocus = currentParams
	c.dockParams = dockParams
	c.dockPose = dock

	if c.fader != nil {
		c.fader.FadeAllExcept(target.ID())
	}
	if c.mood != nil {
		c.mood.OnFocusEntered(target)
	}

	return orbital.TransitionSpec{
		Start:    orbital.PoseEndpoint(currentPose),
		End:      orbital.PoseEndpoint(dock),
		Duration: c.duration,
	}, nil
}

// Arrived marks the entry transition complete and hands back the dock-derived
// orbital parameters the smoothing set should rest at.
//
// Returns:
//   - orbital.Parameters: angles/distance re-derived from the dock pose
func (c *Coordinator) Arrived() orbital.Parameters {
	c.state = stateHeld
	return c.dockParams
}

// HeldPose resolves the displayed pose while focus is held. The position is
// pinned to the dock pose; only the look direction rotates. With a locked
// look-at the orientation tracks that point every tick, ignoring the angle
// targets entirely; otherwise the angles free-orbit the focus pivot.
//
// Parameters:
//   - params: the smoothed orbital parameters (pivot = focus pivot)
//
// Returns:
//   - orbital.Pose: pinned position plus resolved orientation
func (c *Coordinator) HeldPose(params orbital.Parameters) orbital.Pose {
	if c.target != nil {
		if lookAt, ok := c.target.LockedLookAt(); ok {
			return orbital.Pose{
				Position:    c.dockPose.Position,
				Orientation: orbital.LookAtOrientation(c.dockPose.Position, lookAt),
			}
		}
	}
	virtual := orbital.ToCartesian(params)
	return orbital.Pose{
		Position:    c.dockPose.Position,
		Orientation: virtual.Orientation,
	}
}

// ExitResult describes how the state machine should leave focus. A nil
// Transition means an instant snap to Restore.
type ExitResult struct {
	Transition *orbital.TransitionSpec
	Restore    orbital.Parameters
}

// End requests an exit from held focus. It is a silent no-op when focus is
// not held. Fade and lighting restoration fire immediately in both styles;
// the target reference is cleared immediately on an instant exit, or by
// Cleared when a smooth exit transition completes.
//
// Parameters:
//   - currentPose: the pose a smooth exit transition starts from
//
// Returns:
//   - ExitResult: transition or snap restoration data
//   - bool: false when not focused (no-op)
func (c *Coordinator) End(currentPose orbital.Pose) (ExitResult, bool) {
	if c.state != stateHeld {
		return ExitResult{}, false
	}

	if c.fader != nil {
		c.fader.RestoreAll()
	}
	if c.mood != nil {
		c.mood.OnFocusExited()
	}

	if c.exitStyle == ExitInstant {
		restore := c.preFocus
		c.state = stateInactive
		c.target = nil
		return ExitResult{Restore: restore}, true
	}

	c.state = stateExiting
	return ExitResult{
		Transition: &orbital.TransitionSpec{
			Start:    orbital.PoseEndpoint(currentPose),
			End:      orbital.ParamsEndpoint(c.preFocus),
			Duration: c.duration,
		},
		Restore: c.preFocus,
	}, true
}

// Cleared finishes a smooth exit: the state machine calls it when the exit
// transition completes, releasing the target reference.
func (c *Coordinator) Cleared() {
	c.state = stateInactive
	c.target = nil
}
