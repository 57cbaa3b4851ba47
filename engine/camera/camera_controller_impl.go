package camera

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type controllerImpl struct {
	mu *sync.Mutex

	mode      Mode
	transform Transform

	orbitAxis mgl32.Vec3
	up        mgl32.Vec3
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller in ModeAutoOrbit.
// The default placement is at (5, 5, 5) facing (1.5, 0, 0), the orbit axis is +Z and up is +Y.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:        &sync.Mutex{},
		mode:      ModeAutoOrbit,
		orbitAxis: mgl32.Vec3{0, 0, 1},
		up:        mgl32.Vec3{0, 1, 0},
	}
	c.transform = LookingAt(mgl32.Vec3{5, 5, 5}, mgl32.Vec3{1.5, 0, 0}, c.up)
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *controllerImpl) Update(in FrameInput) {
	if in.Settings == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	mode := ModeAutoOrbit
	if in.Captured {
		mode = ModeFreeLook
	}
	entering := false
	if mode != c.mode {
		log.Printf("[Camera] mode %s -> %s", c.mode, mode)
		c.mode = mode
		entering = true
	}

	switch c.mode {
	case ModeAutoOrbit:
		if in.Pointer != nil {
			in.Pointer.Discard()
		}
		distance := OrbitDistance(in.Elapsed, in.Settings.MinDistance, in.Settings.MaxDistance)
		c.transform.Position = c.orbitAxis.Mul(distance)
		c.transform.LookAt(in.Settings.LookAt, c.up)
	case ModeFreeLook:
		if in.Pointer == nil {
			return
		}
		// Motion gathered before this frame belongs to the orbit or to loading.
		if entering {
			in.Pointer.Discard()
			return
		}
		delta := in.Pointer.Drain()
		if delta.X() == 0 && delta.Y() == 0 {
			return
		}
		yaw := mgl32.QuatRotate(-delta.X()*in.Settings.MouseSpeed, mgl32.Vec3{0, 1, 0})
		pitch := mgl32.QuatRotate(-delta.Y()*in.Settings.MouseSpeed, mgl32.Vec3{1, 0, 0})
		c.transform.Rotation = c.transform.Rotation.Mul(yaw).Mul(pitch).Normalize()
	}
}

func (c *controllerImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *controllerImpl) Transform() Transform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transform
}

func (c *controllerImpl) SetTransform(t Transform) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transform = t
}
