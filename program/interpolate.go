package program

import (
	"math"

	"github.com/edaniels/golog"
	"gonum.org/v1/gonum/floats"

	"github.com/TezChan/Robots/spatialmath"
	"github.com/TezChan/Robots/target"
	"github.com/TezChan/Robots/utils"
)

// Interpolation parameters within this tolerance of a segment boundary time
// are treated as exactly on the boundary.
const timeTol = 1e-6

// externalAxisStart is the joint array index at which external axis values
// begin. The first six entries always belong to the robot itself.
const externalAxisStart = 6

// JointLerp linearly interpolates two joint arrays at parameter t, where t is
// rescaled from the range [min, max] into [0, 1]. A degenerate range yields a.
// Both slices must have the same length. No angle wrapping happens here;
// continuity is resolved upstream when the solution is bound.
func JointLerp(a, b []float64, t, min, max float64) []float64 {
	t = (t - min) / (max - min)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}
	result := make([]float64, len(a))
	for i := range a {
		result[i] = a[i]*(1-t) + b[i]*t
	}
	return result
}

// JointDistance returns the two-norm of the difference between two joint
// arrays, or +Inf when their lengths differ.
func JointDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	diff := make([]float64, 0, len(a))
	for i := range a {
		diff = append(diff, a[i]-b[i])
	}
	return floats.Norm(diff, 2)
}

// prevPlane returns the previous target's frame local pose re-expressed under
// this target's tool and frame: first the mapping from the previous tool's
// TCP onto the current tool's TCP, then the mapping from the previous frame's
// pose onto the current frame's pose. Each mapping is skipped when the
// attribute reference is unchanged, so consecutive targets sharing tool and
// frame incur no floating point drift.
func (pt *ProgramTarget) prevPlane(prev *ProgramTarget) spatialmath.Pose {
	plane := prev.plane
	if prev.target.Tool() != pt.target.Tool() {
		toolDelta := spatialmath.PoseBetweenInverse(pt.target.Tool().Tcp, prev.target.Tool().Tcp)
		plane = spatialmath.Compose(toolDelta, plane)
	}
	if prev.target.Frame() != pt.target.Frame() {
		frameDelta := spatialmath.PoseBetweenInverse(pt.target.Frame().Pose, prev.target.Frame().Pose)
		plane = spatialmath.Compose(frameDelta, plane)
	}
	return plane
}

// Lerp synthesizes the authored-style target at parameter t between the
// previous resolved target and this one, with t rescaled from the segment
// range [start, end]. Joint interpolation always runs between the two
// resolved joint arrays; external axis values are taken from the tail of that
// interpolated array so they stay consistent with the chosen joint path. A
// joint motion yields a joint target from the interpolated joints; a linear
// Cartesian motion yields a Cartesian target interpolated between the
// previous pose, re-expressed under this target's tool and frame, and this
// target's pose. Exactly at the previous target's cumulative end time the
// emitted configuration sticks with the segment just completed. Circular and
// spline motions are not interpolated and return an error.
func (pt *ProgramTarget) Lerp(logger golog.Logger, prev *ProgramTarget, t, start, end float64) (target.Target, error) {
	if prev == nil {
		return nil, NewMissingPreviousTargetError()
	}
	if !pt.resolved || !prev.resolved {
		return nil, NewUnresolvedTargetError()
	}

	allJoints := JointLerp(prev.joints, pt.joints, t, start, end)
	robotJoints := allJoints
	var external []float64
	if len(allJoints) > externalAxisStart {
		robotJoints = allJoints[:externalAxisStart]
		external = allJoints[externalAxisStart:]
	}

	if pt.IsJointMotion() {
		return target.NewJointTargetFrom(pt.target, robotJoints, external), nil
	}

	ct, ok := pt.target.(*target.CartesianTarget)
	if !ok || ct.Motion() != target.MotionLinear {
		return nil, NewUnsupportedMotionError(motionOf(pt.target))
	}

	plane := spatialmath.Lerp(pt.prevPlane(prev), ct.Plane(), t, start, end)
	configuration := pt.configuration
	if utils.Float64AlmostEqual(t, prev.totalTime, timeTol) {
		// At the segment boundary, continuity with the segment just
		// completed wins over the nominal target configuration.
		configuration = prev.configuration
		logger.Debugf("target %d: pinning configuration to previous target at t=%f", pt.index, t)
	}
	return target.NewCartesianTargetFrom(pt.target, plane, &configuration, target.MotionLinear, external), nil
}

func motionOf(t target.Target) target.Motion {
	if ct, ok := t.(*target.CartesianTarget); ok {
		return ct.Motion()
	}
	return target.MotionJoint
}
