// Package spatialmath defines the spatial math used to express robot targets:
// rigid poses backed by dual quaternions, axis angle conversions, pose
// interpolation and the sphere fit used for tool calibration.
package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose represents a position and orientation in 3D space, backed by a unit dual
// quaternion. The zero value is not a valid pose, use NewZeroPose instead.
type Pose struct {
	dq dualquat.Number
}

// NewZeroPose returns a pose at the origin with an identity orientation.
func NewZeroPose() Pose {
	return Pose{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// NewPose returns a pose at the given point with the given orientation. The
// rotation quaternion is normalized if it is not already a unit quaternion.
func NewPose(point r3.Vector, o quat.Number) Pose {
	if vecLen := quat.Abs(o); vecLen != 1 {
		o = quat.Scale(1/vecLen, o)
	}
	p := Pose{dualquat.Number{Real: o}}
	p.dq.Dual = quat.Mul(quat.Number{Real: 0, Imag: point.X / 2, Jmag: point.Y / 2, Kmag: point.Z / 2}, o)
	return p
}

// NewPoseFromPoint returns a pose at the given point with an identity orientation.
func NewPoseFromPoint(point r3.Vector) Pose {
	return NewPose(point, quat.Number{Real: 1})
}

// NewPoseFromAxes returns the pose whose orientation has the given (not
// necessarily normalized) x and y axes, the way a plane is authored from an
// origin and two in-plane directions. The y axis is re-orthogonalized against x.
func NewPoseFromAxes(origin, xAxis, yAxis r3.Vector) Pose {
	x := xAxis.Normalize()
	z := x.Cross(yAxis).Normalize()
	y := z.Cross(x)

	m := mgl64.Ident4()
	m.Set(0, 0, x.X)
	m.Set(1, 0, x.Y)
	m.Set(2, 0, x.Z)
	m.Set(0, 1, y.X)
	m.Set(1, 1, y.Y)
	m.Set(2, 1, y.Z)
	m.Set(0, 2, z.X)
	m.Set(1, 2, z.Y)
	m.Set(2, 2, z.Z)

	qRot := mgl64.Mat4ToQuat(m)
	return NewPose(origin, quat.Number{Real: qRot.W, Imag: qRot.X(), Jmag: qRot.Y(), Kmag: qRot.Z()})
}

// Point returns the position component of the pose.
func (p Pose) Point() r3.Vector {
	t := dualquat.Mul(p.dq, dualquat.Conj(p.dq))
	return r3.Vector{X: t.Dual.Imag, Y: t.Dual.Jmag, Z: t.Dual.Kmag}
}

// Orientation returns the rotation quaternion of the pose.
func (p Pose) Orientation() quat.Number {
	return p.dq.Real
}

// WithPoint returns a pose with the same orientation as p but located at point.
func (p Pose) WithPoint(point r3.Vector) Pose {
	return NewPose(point, p.dq.Real)
}

// Compose returns the pose equivalent to applying transform a followed by b,
// i.e. b expressed relative to a is mapped into a's reference space.
func Compose(a, b Pose) Pose {
	return Pose{dualquat.Mul(a.dq, b.dq)}
}

// PoseInverse returns the pose that undoes p. For unit dual quaternions this is
// the dual quaternion conjugate.
func PoseInverse(p Pose) Pose {
	return Pose{dualquat.Conj(p.dq)}
}

// PoseBetween returns the pose of b relative to a, such that
// Compose(a, PoseBetween(a, b)) equals b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseBetweenInverse returns the transform that maps geometry expressed
// relative to b onto a, such that Compose(PoseBetweenInverse(a, b), b) equals a.
// It is the plane-to-plane mapping used when re-expressing a pose authored
// against one reference frame under another.
func PoseBetweenInverse(a, b Pose) Pose {
	return Compose(a, PoseInverse(b))
}

// TransformPoint rotates and translates the given point by the pose.
func (p Pose) TransformPoint(point r3.Vector) r3.Vector {
	pt := quat.Number{Real: 0, Imag: point.X, Jmag: point.Y, Kmag: point.Z}
	rotated := quat.Mul(quat.Mul(p.dq.Real, pt), quat.Conj(p.dq.Real))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}.Add(p.Point())
}

// RotatedAround returns the pose rotated by the rotation quaternion rot about
// the given pivot point.
func (p Pose) RotatedAround(rot quat.Number, pivot r3.Vector) Pose {
	newOrientation := quat.Mul(rot, p.dq.Real)
	offset := p.Point().Sub(pivot)
	off := quat.Number{Real: 0, Imag: offset.X, Jmag: offset.Y, Kmag: offset.Z}
	rotated := quat.Mul(quat.Mul(rot, off), quat.Conj(rot))
	newPoint := pivot.Add(r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag})
	return NewPose(newPoint, newOrientation)
}

// PoseAlmostEqual returns whether both the position and orientation of poses
// a and b are within epsilon of each other. Orientation is compared via the
// angular magnitude of the relative rotation, so q and -q compare equal.
func PoseAlmostEqual(a, b Pose, epsilon float64) bool {
	if a.Point().Sub(b.Point()).Norm() > epsilon {
		return false
	}
	rel := quat.Mul(b.dq.Real, quat.Conj(a.dq.Real))
	aa := QuatToR4AA(rel)
	theta := aa.Theta
	if theta < 0 {
		theta = -theta
	}
	return theta < epsilon
}
