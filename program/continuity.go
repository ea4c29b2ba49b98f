// Package program holds the runtime side of a target: the resolved program
// target that binds an authored target to a kinematics solution, the joint
// continuity resolver and the interpolation entry point used to synthesize
// intermediate states between two resolved targets.
package program

import (
	"math"
)

// NormalizeAngle reduces an angle in radians to the principal range (-π, π]
// by normalizing its magnitude and reapplying the sign of the original value.
func NormalizeAngle(joint float64) float64 {
	abs := math.Abs(joint)
	result := math.Mod(abs, 2*math.Pi)
	if result > math.Pi {
		result -= 2 * math.Pi
	}
	if joint < 0 {
		result = -result
	}
	return result
}

// ContinuousJoints returns, for each axis, the previous joint value plus the
// shortest angular step towards the newly resolved value. Solver output is
// only meaningful modulo a full turn per axis; adding the shortest step to
// the unnormalized previous value keeps multi turn drift accumulated over
// many samples instead of resetting it every step. A difference of exactly π
// is kept as is rather than folded. Both slices must have the same length.
func ContinuousJoints(joints, prevJoints []float64) []float64 {
	result := make([]float64, len(joints))
	for i := range joints {
		difference := NormalizeAngle(joints[i]) - NormalizeAngle(prevJoints[i])
		if math.Abs(difference) > math.Pi {
			difference = (math.Abs(difference) - 2*math.Pi) * math.Copysign(1, difference)
		}
		result[i] = prevJoints[i] + difference
	}
	return result
}
