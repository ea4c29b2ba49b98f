package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Lerp returns the intermediate pose between a and b at parameter t, where t is
// rescaled from the range [min, max] into [0, 1]. A degenerate range
// (min == max) pins the progress to the start, yielding a rather than a NaN pose.
//
// The origin is interpolated linearly. The orientation is interpolated by
// extracting the angle and axis of the relative rotation from a to b, folding
// the angle onto the shortest signed path when it exceeds π, and rotating a by
// the fraction t of that angle about the axis, pivoting at a's original origin.
// This reproduces the single-step axis-angle interpolation used for authored
// planes and is not a true spherical lerp.
func Lerp(a, b Pose, t, min, max float64) Pose {
	t = (t - min) / (max - min)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}

	newOrigin := a.Point().Mul(1 - t).Add(b.Point().Mul(t))

	rel := quat.Mul(b.Orientation(), quat.Conj(a.Orientation()))
	aa := quatToFullR4AA(rel)
	if Norm(rel) < 1e-6 {
		// No measurable rotation between the two orientations.
		return a.WithPoint(newOrigin)
	}
	angle := aa.Theta
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}

	rot := R4AA{Theta: t * angle, RX: aa.RX, RY: aa.RY, RZ: aa.RZ}
	rotated := a.RotatedAround(rot.ToQuat(), a.Point())
	return rotated.WithPoint(newOrigin)
}
