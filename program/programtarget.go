package program

import (
	"github.com/TezChan/Robots/kinematics"
	"github.com/TezChan/Robots/spatialmath"
	"github.com/TezChan/Robots/target"
)

// ProgramTarget is the runtime state of one authored target inside a
// scheduled program: the target itself, the kinematic solution bound to it,
// the pose both in the target's frame space and in world space, and the
// scheduling metadata accumulated by the surrounding pipeline.
//
// A program target is built in two phases: construction from the authored
// target, then exactly one SetKinematics call. After that it is treated as
// immutable for interpolation purposes; only scheduling metadata may still be
// set.
type ProgramTarget struct {
	target        target.Target
	index         int
	group         int
	isJointTarget bool

	joints              []float64
	configuration       target.RobotConfigurations
	forcedConfiguration bool
	plane               spatialmath.Pose
	worldPlane          spatialmath.Pose
	resolved            bool

	time                 float64
	totalTime            float64
	changesConfiguration bool
	warnings             []string
}

// NewProgramTarget wraps an authored target for scheduling at the given
// sequence index within the given mechanical group.
func NewProgramTarget(t target.Target, index, group int) *ProgramTarget {
	_, isJoint := t.(*target.JointTarget)
	return &ProgramTarget{
		target:        t,
		index:         index,
		group:         group,
		isJointTarget: isJoint,
		plane:         spatialmath.NewZeroPose(),
		worldPlane:    spatialmath.NewZeroPose(),
	}
}

// SetKinematics binds a kinematic solution to the target. For a joint target
// the world pose is the solution's final link pose and the frame local pose
// is derived from it; for a Cartesian target the authored pose is kept as the
// frame local pose and the world pose derived from it. When prev is given,
// the resolved joints are unwrapped against the previous target's joints so
// that multi turn continuity is preserved.
//
// Binding happens exactly once; binding an already resolved target is an
// error, duplicate it with Copy instead.
func (pt *ProgramTarget) SetKinematics(solution *kinematics.Solution, prev *ProgramTarget) error {
	if pt.resolved {
		return NewAlreadyResolvedError()
	}
	if prev != nil && !prev.resolved {
		return NewUnresolvedTargetError()
	}

	joints := make([]float64, len(solution.Joints))
	copy(joints, solution.Joints)
	if prev != nil {
		joints = ContinuousJoints(joints, prev.joints)
	}
	pt.joints = joints
	pt.configuration = solution.Configuration
	pt.warnings = append(pt.warnings, solution.Warnings...)

	framePose := pt.target.Frame().Pose
	switch tt := pt.target.(type) {
	case *target.JointTarget:
		pt.worldPlane = solution.EndPlane()
		pt.plane = spatialmath.PoseBetween(framePose, pt.worldPlane)
	case *target.CartesianTarget:
		pt.plane = tt.Plane()
		pt.worldPlane = spatialmath.Compose(framePose, pt.plane)
		pt.forcedConfiguration = tt.Configuration() != nil
	}

	pt.resolved = true
	return nil
}

// Copy returns a duplicate of the program target with its own copies of the
// joint array and warnings. This is the supported way to reuse a resolved
// target at another place in a program.
func (pt *ProgramTarget) Copy() *ProgramTarget {
	dup := *pt
	if pt.joints != nil {
		dup.joints = make([]float64, len(pt.joints))
		copy(dup.joints, pt.joints)
	}
	if pt.warnings != nil {
		dup.warnings = make([]string, len(pt.warnings))
		copy(dup.warnings, pt.warnings)
	}
	return &dup
}

// Target returns the authored target.
func (pt *ProgramTarget) Target() target.Target { return pt.target }

// Index returns the sequence index of the target within its program.
func (pt *ProgramTarget) Index() int { return pt.index }

// Group returns the mechanical group the target belongs to.
func (pt *ProgramTarget) Group() int { return pt.group }

// IsJointTarget returns whether the authored target is a joint space goal.
// The flag is fixed at construction.
func (pt *ProgramTarget) IsJointTarget() bool { return pt.isJointTarget }

// IsJointMotion returns whether the target moves in joint space: either a
// joint target, or a Cartesian target authored with joint interpolated motion.
func (pt *ProgramTarget) IsJointMotion() bool {
	if pt.isJointTarget {
		return true
	}
	ct, ok := pt.target.(*target.CartesianTarget)
	return ok && ct.Motion() == target.MotionJoint
}

// Resolved returns whether a kinematic solution has been bound.
func (pt *ProgramTarget) Resolved() bool { return pt.resolved }

// Joints returns the resolved, continuity unwrapped joint values. The
// returned slice must not be modified.
func (pt *ProgramTarget) Joints() []float64 { return pt.joints }

// Configuration returns the resolved configuration branch.
func (pt *ProgramTarget) Configuration() target.RobotConfigurations { return pt.configuration }

// ForcedConfiguration returns whether the authored target forced the
// configuration rather than leaving it to the solver.
func (pt *ProgramTarget) ForcedConfiguration() bool { return pt.forcedConfiguration }

// Plane returns the resolved pose in the target's tool and frame space.
func (pt *ProgramTarget) Plane() spatialmath.Pose { return pt.plane }

// WorldPlane returns the resolved pose in world space.
func (pt *ProgramTarget) WorldPlane() spatialmath.Pose { return pt.worldPlane }

// Time returns the duration of the motion segment ending at this target, in
// seconds.
func (pt *ProgramTarget) Time() float64 { return pt.time }

// TotalTime returns the cumulative program time at which this target is
// reached, in seconds.
func (pt *ProgramTarget) TotalTime() float64 { return pt.totalTime }

// SetTime records the segment duration and cumulative end time computed by
// the scheduling pipeline.
func (pt *ProgramTarget) SetTime(time, totalTime float64) {
	pt.time = time
	pt.totalTime = totalTime
}

// ChangesConfiguration returns whether the configuration branch changes on
// the segment ending at this target.
func (pt *ProgramTarget) ChangesConfiguration() bool { return pt.changesConfiguration }

// SetChangesConfiguration records a configuration change detected by the
// scheduling pipeline.
func (pt *ProgramTarget) SetChangesConfiguration(changes bool) {
	pt.changesConfiguration = changes
}

// Warnings returns the warnings accumulated for this target.
func (pt *ProgramTarget) Warnings() []string { return pt.warnings }

// AddWarning records a warning produced while scheduling this target.
func (pt *ProgramTarget) AddWarning(warning string) {
	pt.warnings = append(pt.warnings, warning)
}
