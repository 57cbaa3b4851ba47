package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
	"github.com/chewxy/math32"
)

// Mode is the camera controller's behaviour for a frame.
type Mode int

const (
	// ModeAutoOrbit moves the camera along the orbit axis on a sinusoidal schedule while facing the look-at point.
	ModeAutoOrbit Mode = iota
	// ModeFreeLook rotates the camera in place from pointer motion.
	ModeFreeLook
)

func (m Mode) String() string {
	switch m {
	case ModeAutoOrbit:
		return "auto-orbit"
	case ModeFreeLook:
		return "free-look"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// FrameInput is everything the controller reads in one frame.
type FrameInput struct {
	// Settings is the loaded settings record, or nil while it is still loading.
	Settings *settings.Settings

	// Captured selects ModeFreeLook when true and ModeAutoOrbit otherwise.
	Captured bool

	// Elapsed is the time since startup in seconds.
	Elapsed float32

	// Pointer holds the motion accumulated since the previous frame. May be nil.
	Pointer *input.PointerAccumulator
}

// Controller drives the camera transform from the capture flag, elapsed time and pointer motion.
type Controller interface {
	// Update advances the controller by one frame.
	// Does nothing when in.Settings is nil.
	//
	// Parameters:
	//   - in: this frame's inputs
	Update(in FrameInput)

	// Mode returns the mode selected by the most recent update.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// Transform returns the current camera placement.
	//
	// Returns:
	//   - Transform: the camera transform
	Transform() Transform

	// SetTransform replaces the camera placement.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t Transform)
}

// OrbitDistance is the automatic orbit's distance schedule:
// min + (max-min) * (0.5 + 0.5*sin(0.5*t)). It has period 4π and stays within [min, max].
//
// Parameters:
//   - t: elapsed time in seconds
//   - min, max: the distance bounds
//
// Returns:
//   - float32: the distance at t
func OrbitDistance(t, min, max float32) float32 {
	return min + (max-min)*(0.5+0.5*math32.Sin(0.5*t))
}
