package program

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/TezChan/Robots/utils"
)

func TestNormalizeAngle(t *testing.T) {
	cases := []float64{0, 1, -1, math.Pi / 2, 3, -3, 5, -5, 7, -7, 20, -20, 100.5}
	for _, j := range cases {
		n := NormalizeAngle(j)
		test.That(t, math.Abs(n), test.ShouldBeLessThanOrEqualTo, math.Pi)
		// idempotent
		test.That(t, NormalizeAngle(n), test.ShouldAlmostEqual, n)
		// congruent mod 2π with the input
		test.That(t, math.Remainder(n-j, 2*math.Pi), test.ShouldAlmostEqual, 0, 1e-9)
	}

	test.That(t, NormalizeAngle(2*math.Pi), test.ShouldAlmostEqual, 0)
	test.That(t, NormalizeAngle(utils.DegToRad(350)), test.ShouldAlmostEqual, utils.DegToRad(-10))
	test.That(t, NormalizeAngle(utils.DegToRad(-350)), test.ShouldAlmostEqual, utils.DegToRad(10))
}

func TestContinuousJoints(t *testing.T) {
	joints := []float64{0, 0}
	prev := []float64{utils.DegToRad(350), 0}

	resolved := ContinuousJoints(joints, prev)

	// shortest step from 350 degrees to a joint congruent with 0 is +10
	// degrees: the axis continues past a full turn instead of jumping back
	test.That(t, resolved[0], test.ShouldAlmostEqual, 2*math.Pi, 1e-9)
	test.That(t, resolved[1], test.ShouldAlmostEqual, 0)
}

func TestContinuousJointsPreservesDrift(t *testing.T) {
	// an axis that has already wound up two full turns keeps that winding
	prev := []float64{4*math.Pi + 0.1}
	joints := []float64{0.3}

	resolved := ContinuousJoints(joints, prev)
	test.That(t, resolved[0], test.ShouldAlmostEqual, 4*math.Pi+0.3, 1e-9)
	test.That(t, NormalizeAngle(resolved[0]), test.ShouldAlmostEqual, NormalizeAngle(joints[0]), 1e-9)
}

func TestContinuousJointsShortStep(t *testing.T) {
	for _, tc := range []struct {
		joints, prev float64
	}{
		{0.5, 0.2},
		{-3, 3},
		{3, -3},
		{6, 0.1},
		{-6, -0.1},
		{10, 9},
	} {
		resolved := ContinuousJoints([]float64{tc.joints}, []float64{tc.prev})[0]
		// never steps more than π from the previous value
		test.That(t, math.Abs(resolved-tc.prev), test.ShouldBeLessThanOrEqualTo, math.Pi+1e-9)
		// congruent mod 2π with the freshly resolved value
		test.That(t, NormalizeAngle(resolved), test.ShouldAlmostEqual, NormalizeAngle(tc.joints), 1e-9)
	}
}
