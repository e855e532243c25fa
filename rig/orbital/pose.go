// Package orbital holds the spherical-coordinate camera model: conversion
// between orbital parameters and cartesian poses, exponential smoothing of
// parameter sets, and fixed-duration eased transitions between configurations.
package orbital

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateGeometry is returned when a position coincides with its pivot,
// leaving the orbital direction undefined. Callers must guard against
// zero-length offsets instead of letting NaN propagate into the pose.
var ErrDegenerateGeometry = errors.New("orbital: position coincides with pivot, direction is undefined")

// DegenerateEpsilon is the minimum pivot-to-position distance treated as a
// valid orbital frame.
const DegenerateEpsilon = 1e-6

// WorldUp is the fixed up axis for all look-at orientations.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Parameters is the spherical-coordinate description of a camera placement
// relative to a pivot point. Horizontal and Vertical are in degrees;
// Horizontal is unbounded (interpolation wraps mod 360), Vertical is expected
// to stay inside the configured clamp, Distance must be positive.
type Parameters struct {
	Horizontal float32
	Vertical   float32
	Distance   float32
	Pivot      mgl32.Vec3
}

// Pose is a resolved camera placement: world-space position plus a unit
// quaternion orientation. Poses are always derived, either from Parameters
// via ToCartesian or by interpolating two Pose snapshots during a raw-pose
// transition; they are never independently mutated.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// Direction returns the unit vector pointing from the pivot toward a camera
// placed at the given angles.
//
// Parameters:
//   - horizontalDeg: horizontal angle around the Y axis in degrees (0 = +Z)
//   - verticalDeg: vertical angle from the horizontal plane in degrees
//
// Returns:
//   - mgl32.Vec3: unit offset direction from pivot to camera
func Direction(horizontalDeg, verticalDeg float32) mgl32.Vec3 {
	h := float64(mgl32.DegToRad(horizontalDeg))
	v := float64(mgl32.DegToRad(verticalDeg))
	cosV := float32(math.Cos(v))
	return mgl32.Vec3{
		cosV * float32(math.Sin(h)),
		float32(math.Sin(v)),
		cosV * float32(math.Cos(h)),
	}
}

// ToCartesian converts orbital parameters to a cartesian pose. The position
// is the pivot pushed backward along the spherical direction by Distance; the
// orientation looks at the pivot with WorldUp as the up reference.
//
// Parameters:
//   - p: the orbital parameters to convert
//
// Returns:
//   - Pose: the derived position and orientation
func ToCartesian(p Parameters) Pose {
	position := p.Pivot.Add(Direction(p.Horizontal, p.Vertical).Mul(p.Distance))
	return Pose{
		Position:    position,
		Orientation: LookAtOrientation(position, p.Pivot),
	}
}

// FromCartesian derives angles and distance from a camera position relative
// to a pivot. Used at initialization from a designer-placed home pose and
// after a focus transition lands on a dock pose, so that subsequent orbiting
// is continuous with the camera's actual placement.
//
// Parameters:
//   - position: world-space camera position
//   - pivot: world-space orbit pivot
//
// Returns:
//   - Parameters: horizontal/vertical angles in degrees, distance, and the pivot
//   - error: ErrDegenerateGeometry when position and pivot coincide
func FromCartesian(position, pivot mgl32.Vec3) (Parameters, error) {
	offset := position.Sub(pivot)
	distance := offset.Len()
	if distance < DegenerateEpsilon {
		return Parameters{}, ErrDegenerateGeometry
	}
	normalizedY := offset.Y() / distance
	if normalizedY > 1 {
		normalizedY = 1
	}
	if normalizedY < -1 {
		normalizedY = -1
	}
	return Parameters{
		Horizontal: mgl32.RadToDeg(float32(math.Atan2(float64(offset.X()), float64(offset.Z())))),
		Vertical:   mgl32.RadToDeg(float32(math.Asin(float64(normalizedY)))),
		Distance:   distance,
		Pivot:      pivot,
	}, nil
}

// LookAtOrientation returns the unit quaternion orienting a camera at eye
// toward center with WorldUp as the up reference: rotating the camera-local
// forward (0,0,-1) by the result yields the normalized eye-to-center
// direction. When the view direction is parallel to WorldUp the up reference
// falls back to +Z so the basis stays a valid rotation instead of collapsing.
//
// Parameters:
//   - eye: camera position
//   - center: point to look at
//
// Returns:
//   - mgl32.Quat: the look-at orientation
func LookAtOrientation(eye, center mgl32.Vec3) mgl32.Quat {
	backward := eye.Sub(center)
	if backward.Len() < DegenerateEpsilon {
		return mgl32.QuatIdent()
	}
	backward = backward.Normalize()

	up := WorldUp
	if backward.Cross(up).Len() < DegenerateEpsilon {
		up = mgl32.Vec3{0, 0, 1}
	}

	right := up.Cross(backward).Normalize()
	camUp := backward.Cross(right)

	// Basis columns (right, up, backward) form the camera's world rotation;
	// the camera looks down its local -Z.
	return mgl32.Mat4ToQuat(mgl32.Mat4{
		right.X(), right.Y(), right.Z(), 0,
		camUp.X(), camUp.Y(), camUp.Z(), 0,
		backward.X(), backward.Y(), backward.Z(), 0,
		0, 0, 0, 1,
	}).Normalize()
}
