package program

import (
	"github.com/pkg/errors"

	"github.com/TezChan/Robots/target"
)

// NewAlreadyResolvedError is used when kinematics are bound to a program
// target that already has a solution; duplicate via an explicit Copy instead.
func NewAlreadyResolvedError() error {
	return errors.New("cannot bind kinematics to an already resolved target, duplicate via an explicit copy instead")
}

// NewUnresolvedTargetError is used when an operation needs a kinematic
// solution that has not been bound yet.
func NewUnresolvedTargetError() error {
	return errors.New("target has no kinematics bound yet")
}

// NewUnsupportedMotionError is used when interpolation is requested for a
// motion kind other than joint or linear.
func NewUnsupportedMotionError(motion target.Motion) error {
	return errors.Errorf("cannot interpolate a %s motion, only joint and linear motions are supported", motion)
}

// NewMissingPreviousTargetError is used when interpolation is requested
// without a previous resolved target to interpolate from.
func NewMissingPreviousTargetError() error {
	return errors.New("interpolation requires a previous resolved target")
}
