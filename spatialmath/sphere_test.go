package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestCircumsphere(t *testing.T) {
	center := r3.Vector{X: 12, Y: -7, Z: 3}
	radius := 25.0

	onSphere := func(x, y, z float64) r3.Vector {
		dir := r3.Vector{X: x, Y: y, Z: z}.Normalize()
		return center.Add(dir.Mul(radius))
	}

	p1 := onSphere(1, 0, 0)
	p2 := onSphere(0, 1, 0)
	p3 := onSphere(0, 0, 1)
	p4 := onSphere(-1, -1, -1)

	got, gotRadius := Circumsphere(p1, p2, p3, p4)
	test.That(t, got.X, test.ShouldAlmostEqual, center.X, 1e-6)
	test.That(t, got.Y, test.ShouldAlmostEqual, center.Y, 1e-6)
	test.That(t, got.Z, test.ShouldAlmostEqual, center.Z, 1e-6)
	test.That(t, gotRadius, test.ShouldAlmostEqual, radius, 1e-6)
}

func TestCircumsphereUnitTetrahedron(t *testing.T) {
	// regular tetrahedron on the unit sphere around the origin
	p1 := r3.Vector{X: 1, Y: 1, Z: 1}.Normalize()
	p2 := r3.Vector{X: 1, Y: -1, Z: -1}.Normalize()
	p3 := r3.Vector{X: -1, Y: 1, Z: -1}.Normalize()
	p4 := r3.Vector{X: -1, Y: -1, Z: 1}.Normalize()

	center, radius := Circumsphere(p1, p2, p3, p4)
	test.That(t, center.Norm(), test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, radius, test.ShouldAlmostEqual, 1, 1e-9)
}

func TestCircumsphereCoplanar(t *testing.T) {
	// four coplanar points are degenerate; no division error, zero result
	p1 := r3.Vector{X: 0, Y: 0, Z: 5}
	p2 := r3.Vector{X: 1, Y: 0, Z: 5}
	p3 := r3.Vector{X: 0, Y: 1, Z: 5}
	p4 := r3.Vector{X: 1, Y: 1, Z: 5}

	center, radius := Circumsphere(p1, p2, p3, p4)
	test.That(t, center, test.ShouldResemble, r3.Vector{})
	test.That(t, radius, test.ShouldEqual, 0)
	test.That(t, math.IsNaN(radius), test.ShouldBeFalse)
}
