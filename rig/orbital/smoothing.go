package orbital

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-cam/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Rates holds independent exponential-smoothing rates (per second) for the
// three input concerns. Higher rates converge faster; all must be positive.
type Rates struct {
	Rotate float32
	Pan    float32
	Zoom   float32
}

// Validate checks that every rate is positive.
//
// Returns:
//   - error: description of the first invalid rate, or nil
func (r Rates) Validate() error {
	if r.Rotate <= 0 || r.Pan <= 0 || r.Zoom <= 0 {
		return fmt.Errorf("orbital: smoothing rates must be positive, got rotate=%v pan=%v zoom=%v", r.Rotate, r.Pan, r.Zoom)
	}
	return nil
}

// Bounds constrains the vertical angle (degrees) and zoom distance of a
// smoothed parameter set. Targets are clamped on every mutation, before
// smoothing, so the visual approach to a limit is smooth but never overshoots.
type Bounds struct {
	MinVertical float32
	MaxVertical float32
	MinDistance float32
	MaxDistance float32
}

// Validate checks the bounds for fail-fast construction: vertical limits must
// lie within [-90, 90] with min < max, and distance limits must satisfy
// 0 < min < max.
//
// Returns:
//   - error: description of the violated constraint, or nil
func (b Bounds) Validate() error {
	if b.MinVertical < -90 || b.MaxVertical > 90 {
		return fmt.Errorf("orbital: vertical bounds must lie within [-90, 90], got [%v, %v]", b.MinVertical, b.MaxVertical)
	}
	if b.MinVertical >= b.MaxVertical {
		return fmt.Errorf("orbital: min vertical %v must be below max vertical %v", b.MinVertical, b.MaxVertical)
	}
	if b.MinDistance <= 0 {
		return errors.New("orbital: min distance must be positive")
	}
	if b.MinDistance >= b.MaxDistance {
		return fmt.Errorf("orbital: min distance %v must be below max distance %v", b.MinDistance, b.MaxDistance)
	}
	return nil
}

// clampParams returns p with vertical angle and distance forced inside b.
func (b Bounds) clampParams(p Parameters) Parameters {
	p.Vertical = common.Clamp(p.Vertical, b.MinVertical, b.MaxVertical)
	p.Distance = common.Clamp(p.Distance, b.MinDistance, b.MaxDistance)
	return p
}

// SmoothedSet holds current and target orbital parameters and advances
// current toward target each tick with independent per-concern rates.
// Input deltas mutate only the target; the current values follow on Advance.
// Repeated Advance calls with target == current are no-ops.
type SmoothedSet struct {
	current Parameters
	target  Parameters

	rates  Rates
	bounds Bounds
}

// NewSmoothedSet creates a smoothed parameter set starting at rest: current
// and target both equal the clamped initial parameters.
//
// Parameters:
//   - initial: starting orbital parameters (clamped into bounds)
//   - rates: per-concern smoothing rates (must be validated by the caller)
//   - bounds: vertical/zoom clamp ranges (must be validated by the caller)
//
// Returns:
//   - *SmoothedSet: the set, at its fixed point
func NewSmoothedSet(initial Parameters, rates Rates, bounds Bounds) *SmoothedSet {
	clamped := bounds.clampParams(initial)
	return &SmoothedSet{
		current: clamped,
		target:  clamped,
		rates:   rates,
		bounds:  bounds,
	}
}

// Current returns the smoothed (displayed) parameters.
func (s *SmoothedSet) Current() Parameters {
	return s.current
}

// Target returns the parameters the set is converging toward.
func (s *SmoothedSet) Target() Parameters {
	return s.target
}

// Bounds returns the configured clamp ranges.
func (s *SmoothedSet) Bounds() Bounds {
	return s.bounds
}

// AddOrbitDelta applies an orbit input delta to the target angles.
// The target vertical angle is clamped immediately; the horizontal angle is
// unbounded and wraps during interpolation.
//
// Parameters:
//   - dh: horizontal delta in degrees
//   - dv: vertical delta in degrees
func (s *SmoothedSet) AddOrbitDelta(dh, dv float32) {
	s.target.Horizontal += dh
	s.target.Vertical = common.Clamp(s.target.Vertical+dv, s.bounds.MinVertical, s.bounds.MaxVertical)
}

// AddPivotDelta translates the target pivot.
//
// Parameters:
//   - delta: world-space pivot offset
func (s *SmoothedSet) AddPivotDelta(delta mgl32.Vec3) {
	s.target.Pivot = s.target.Pivot.Add(delta)
}

// AddZoomDelta adjusts the target distance, clamped to the zoom bounds.
//
// Parameters:
//   - delta: distance change (positive moves away from the pivot)
func (s *SmoothedSet) AddZoomDelta(delta float32) {
	s.target.Distance = common.Clamp(s.target.Distance+delta, s.bounds.MinDistance, s.bounds.MaxDistance)
}

// SetTarget replaces the target parameters, clamped into bounds. The current
// parameters keep converging from wherever they are.
//
// Parameters:
//   - p: the new target
func (s *SmoothedSet) SetTarget(p Parameters) {
	s.target = s.bounds.clampParams(p)
}

// Snap forces both current and target to the clamped parameters, with no
// interpolation. Used when a transition hands the exact end configuration
// back to free-orbit control.
//
// Parameters:
//   - p: the parameters to rest at
func (s *SmoothedSet) Snap(p Parameters) {
	clamped := s.bounds.clampParams(p)
	s.current = clamped
	s.target = clamped
}

// Advance moves current toward target by one tick. The horizontal angle
// interpolates along the shortest signed arc, never the long way around the
// 0/360 boundary; vertical, distance, and pivot interpolate linearly, each
// with its own rate.
//
// Parameters:
//   - dt: elapsed time in seconds since the previous tick
func (s *SmoothedSet) Advance(dt float32) {
	tRot := common.Clamp(s.rates.Rotate*dt, 0, 1)
	tPan := common.Clamp(s.rates.Pan*dt, 0, 1)
	tZoom := common.Clamp(s.rates.Zoom*dt, 0, 1)

	s.current.Horizontal = common.LerpAngleDeg(s.current.Horizontal, s.target.Horizontal, tRot)
	s.current.Vertical = common.Lerp(s.current.Vertical, s.target.Vertical, tRot)
	s.current.Distance = common.Lerp(s.current.Distance, s.target.Distance, tZoom)
	s.current.Pivot = s.current.Pivot.Add(s.target.Pivot.Sub(s.current.Pivot).Mul(tPan))
}
