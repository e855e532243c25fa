package rig

import (
	"github.com/Carmen-Shannon/oxy-cam/rig/focus"
	"github.com/Carmen-Shannon/oxy-cam/rig/input"
	"github.com/Carmen-Shannon/oxy-cam/rig/orbital"
	"github.com/go-gl/mathgl/mgl32"
)

// Option configures a Rig during New.
type Option func(*rigImpl)

// WithHomePose sets the home camera position and orbit pivot. The home
// configuration is derived from these at construction and is the end state
// of every ReturnHome transition.
//
// Parameters:
//   - position: world-space home camera position
//   - pivot: world-space point the home camera looks at and orbits
//
// Returns:
//   - Option: the configured option
func WithHomePose(position, pivot mgl32.Vec3) Option {
	return func(r *rigImpl) {
		r.homePosition = position
		r.homePivot = pivot
	}
}

// WithSensitivities sets the pixel/step to degrees/units scaling applied to
// raw input deltas.
//
// Parameters:
//   - s: orbit, pan, and zoom sensitivities, all positive
//
// Returns:
//   - Option: the configured option
func WithSensitivities(s input.Sensitivities) Option {
	return func(r *rigImpl) {
		r.sensitivities = s
	}
}

// WithSmoothingRates sets the exponential approach rates used when easing
// current parameters toward their targets.
//
// Parameters:
//   - rates: rotate, pan, and zoom rates in 1/seconds, all positive
//
// Returns:
//   - Option: the configured option
func WithSmoothingRates(rates orbital.Rates) Option {
	return func(r *rigImpl) {
		r.rates = rates
	}
}

// WithVerticalBounds sets the inclusive vertical angle range in degrees.
// Both values must lie within [-90, 90] with min strictly below max.
//
// Parameters:
//   - minDeg: lowest allowed vertical angle
//   - maxDeg: highest allowed vertical angle
//
// Returns:
//   - Option: the configured option
func WithVerticalBounds(minDeg, maxDeg float32) Option {
	return func(r *rigImpl) {
		r.bounds.MinVertical = minDeg
		r.bounds.MaxVertical = maxDeg
	}
}

// WithZoomBounds sets the inclusive orbit distance range. Both values must
// be positive with min strictly below max.
//
// Parameters:
//   - minDistance: closest allowed orbit distance
//   - maxDistance: farthest allowed orbit distance
//
// Returns:
//   - Option: the configured option
func WithZoomBounds(minDistance, maxDistance float32) Option {
	return func(r *rigImpl) {
		r.bounds.MinDistance = minDistance
		r.bounds.MaxDistance = maxDistance
	}
}

// WithHomeDuration sets the length of ReturnHome transitions in seconds.
//
// Parameters:
//   - seconds: transition duration, must be positive
//
// Returns:
//   - Option: the configured option
func WithHomeDuration(seconds float32) Option {
	return func(r *rigImpl) {
		r.homeDuration = seconds
	}
}

// WithFocusDuration sets the length of focus entry and smooth focus exit
// transitions in seconds.
//
// Parameters:
//   - seconds: transition duration, must be positive
//
// Returns:
//   - Option: the configured option
func WithFocusDuration(seconds float32) Option {
	return func(r *rigImpl) {
		r.focusDuration = seconds
	}
}

// WithAutoRotate enables or disables idle auto-rotation and sets its speed.
// Auto-rotation only runs while idle with no button held, after the idle
// timer passes the configured threshold.
//
// Parameters:
//   - enabled: whether auto-rotation runs at all
//   - degreesPerSecond: horizontal drift speed, sign sets direction
//
// Returns:
//   - Option: the configured option
func WithAutoRotate(enabled bool, degreesPerSecond float32) Option {
	return func(r *rigImpl) {
		r.autoRotate = enabled
		r.autoRotateSpeed = degreesPerSecond
	}
}

// WithIdleThreshold sets how long input must stay quiet before auto-rotation
// kicks in.
//
// Parameters:
//   - seconds: idle time threshold, must be non-negative
//
// Returns:
//   - Option: the configured option
func WithIdleThreshold(seconds float32) Option {
	return func(r *rigImpl) {
		r.idleThreshold = seconds
	}
}

// WithExitStyle selects how leaving focus returns the camera to its
// pre-focus configuration.
//
// Parameters:
//   - style: focus.ExitSmooth for a timed transition, focus.ExitInstant for
//     an immediate snap
//
// Returns:
//   - Option: the configured option
func WithExitStyle(style focus.ExitStyle) Option {
	return func(r *rigImpl) {
		r.exitStyle = style
	}
}

// WithPoseSink attaches the render host's camera receiver. The sink is
// called exactly once per Update with the resolved pose.
//
// Parameters:
//   - sink: the pose receiver, may be nil
//
// Returns:
//   - Option: the configured option
func WithPoseSink(sink PoseSink) Option {
	return func(r *rigImpl) {
		r.sink = sink
	}
}

// WithSceneFader attaches the fader notified when focus is gained or lost.
//
// Parameters:
//   - fader: the scene fader, may be nil
//
// Returns:
//   - Option: the configured option
func WithSceneFader(fader focus.SceneFader) Option {
	return func(r *rigImpl) {
		r.fader = fader
	}
}

// WithMoodLighting attaches the lighting controller notified when focus is
// gained or lost.
//
// Parameters:
//   - mood: the lighting controller, may be nil
//
// Returns:
//   - Option: the configured option
func WithMoodLighting(mood focus.MoodLighting) Option {
	return func(r *rigImpl) {
		r.mood = mood
	}
}
