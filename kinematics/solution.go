// Package kinematics defines the boundary contract with the external forward
// and inverse kinematics solvers. No solving happens in this library; the
// scheduling pipeline invokes a Solver and binds the resulting Solution onto
// a program target.
package kinematics

import (
	"context"

	"github.com/TezChan/Robots/spatialmath"
	"github.com/TezChan/Robots/target"
)

// Solution is the result bundle produced by a kinematics solver for one
// target: the resolved joint angles in radians, the world space pose of each
// link with the end effector last, and the configuration branch the solver
// settled on. Warnings carry non-fatal solver notes, e.g. a joint close to a
// limit.
type Solution struct {
	Joints        []float64
	Planes        []spatialmath.Pose
	Configuration target.RobotConfigurations
	Warnings      []string
}

// EndPlane returns the world space pose of the final link, i.e. the end
// effector.
func (s *Solution) EndPlane() spatialmath.Pose {
	return s.Planes[len(s.Planes)-1]
}

// Solver turns a target into a kinematic solution. prevJoints, when not nil,
// gives the joint state of the previous target so the solver can pick the
// closest branch.
type Solver interface {
	Solve(ctx context.Context, t target.Target, prevJoints []float64) (*Solution, error)
}
