package camera

import "github.com/go-gl/mathgl/mgl32"

// ControllerBuilderOption is a functional option for configuring a controllerImpl.
// Use the With* functions to create options.
type ControllerBuilderOption func(c *controllerImpl)

// WithTransform sets the initial camera placement.
//
// Parameters:
//   - t: the initial transform
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithTransform(t Transform) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.transform = t
	}
}

// WithOrbitAxis sets the direction from the world origin along which the automatic orbit moves.
// The axis is normalized; a zero axis is ignored.
//
// Parameters:
//   - axis: the orbit direction
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithOrbitAxis(axis mgl32.Vec3) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if axis.Len() > 0 {
			c.orbitAxis = axis.Normalize()
		}
	}
}

// WithUp sets the up direction used when facing the look-at point.
//
// Parameters:
//   - up: the up direction
//
// Returns:
//   - ControllerBuilderOption: option function to apply
func WithUp(up mgl32.Vec3) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if up.Len() > 0 {
			c.up = up.Normalize()
		}
	}
}
