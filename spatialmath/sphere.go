package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Determinants smaller than this are treated as zero when fitting a sphere;
// the four sample points are then considered coplanar.
const circumsphereTol = 1e-9

// Circumsphere computes the center and radius of the sphere passing through
// four points, using the closed-form Cramer style solution built from 4x4
// determinants. If the points are (numerically) coplanar the fit is degenerate
// and the zero vector with a zero radius is returned instead of dividing by zero.
func Circumsphere(p1, p2, p3, p4 r3.Vector) (r3.Vector, float64) {
	points := []r3.Vector{p1, p2, p3, p4}

	rows := func(fill func(p r3.Vector) [4]float64) *mat.Dense {
		m := mat.NewDense(4, 4, nil)
		for i, p := range points {
			r := fill(p)
			m.SetRow(i, r[:])
		}
		return m
	}

	m11 := mat.Det(rows(func(p r3.Vector) [4]float64 {
		return [4]float64{p.X, p.Y, p.Z, 1}
	}))
	if math.Abs(m11) < circumsphereTol {
		return r3.Vector{}, 0
	}

	m12 := mat.Det(rows(func(p r3.Vector) [4]float64 {
		return [4]float64{p.Norm2(), p.Y, p.Z, 1}
	}))
	m13 := mat.Det(rows(func(p r3.Vector) [4]float64 {
		return [4]float64{p.Norm2(), p.X, p.Z, 1}
	}))
	m14 := mat.Det(rows(func(p r3.Vector) [4]float64 {
		return [4]float64{p.Norm2(), p.X, p.Y, 1}
	}))
	m15 := mat.Det(rows(func(p r3.Vector) [4]float64 {
		return [4]float64{p.Norm2(), p.X, p.Y, p.Z}
	}))

	center := r3.Vector{
		X: 0.5 * m12 / m11,
		Y: -0.5 * m13 / m11,
		Z: 0.5 * m14 / m11,
	}
	radius := math.Sqrt(math.Max(0, center.Norm2()-m15/m11))
	return center, radius
}
