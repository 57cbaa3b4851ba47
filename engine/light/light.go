// Package light defines the scene's directional sun light.
package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

type directionalLightImpl struct {
	position     mgl32.Vec3
	target       mgl32.Vec3
	color        mgl32.Vec3
	illuminance  float32
	castsShadows bool
}

// DirectionalLight is a light with parallel rays, like the sun. Its placement only matters
// for the direction from Position toward Target.
type DirectionalLight interface {
	// Position returns the point the light is placed at.
	//
	// Returns:
	//   - mgl32.Vec3: the placement
	Position() mgl32.Vec3

	// Direction returns the normalized direction the light travels in.
	//
	// Returns:
	//   - mgl32.Vec3: unit direction from Position toward Target
	Direction() mgl32.Vec3

	// Color returns the linear RGB color.
	//
	// Returns:
	//   - mgl32.Vec3: the color
	Color() mgl32.Vec3

	// Illuminance returns the light's strength in lux.
	//
	// Returns:
	//   - float32: the illuminance
	Illuminance() float32

	// CastsShadows reports whether the light produces shadows.
	//
	// Returns:
	//   - bool: true if shadows are enabled
	CastsShadows() bool

	// GPU returns the packed GPU representation.
	//
	// Returns:
	//   - GPUDirectionalLight: the uniform data
	GPU() GPUDirectionalLight
}

var _ DirectionalLight = &directionalLightImpl{}

// NewDirectionalLight creates the sun: white, 10000 lux, placed at (3, 2, 1) and aimed at the origin.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - DirectionalLight: the light
func NewDirectionalLight(options ...DirectionalLightBuilderOption) DirectionalLight {
	l := &directionalLightImpl{
		position:    mgl32.Vec3{3, 2, 1},
		color:       mgl32.Vec3{1, 1, 1},
		illuminance: 10000,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *directionalLightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *directionalLightImpl) Direction() mgl32.Vec3 {
	dir := l.target.Sub(l.position)
	if dir.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return dir.Normalize()
}

func (l *directionalLightImpl) Color() mgl32.Vec3 {
	return l.color
}

func (l *directionalLightImpl) Illuminance() float32 {
	return l.illuminance
}

func (l *directionalLightImpl) CastsShadows() bool {
	return l.castsShadows
}

func (l *directionalLightImpl) GPU() GPUDirectionalLight {
	g := GPUDirectionalLight{
		Direction:   l.Direction(),
		Illuminance: l.illuminance,
		Color:       l.color,
	}
	if l.castsShadows {
		g.CastsShadows = 1
	}
	return g
}
