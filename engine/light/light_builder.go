package light

import "github.com/go-gl/mathgl/mgl32"

// DirectionalLightBuilderOption is a functional option for configuring a directionalLightImpl.
// Use the With* functions to create options.
type DirectionalLightBuilderOption func(l *directionalLightImpl)

// WithPosition sets where the light is placed.
//
// Parameters:
//   - position: the light's placement
//
// Returns:
//   - DirectionalLightBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) DirectionalLightBuilderOption {
	return func(l *directionalLightImpl) {
		l.position = position
	}
}

// WithTarget sets the point the light is aimed at.
//
// Parameters:
//   - target: the aim point
//
// Returns:
//   - DirectionalLightBuilderOption: option function to apply
func WithTarget(target mgl32.Vec3) DirectionalLightBuilderOption {
	return func(l *directionalLightImpl) {
		l.target = target
	}
}

// WithColor sets the linear RGB color.
//
// Parameters:
//   - color: the color
//
// Returns:
//   - DirectionalLightBuilderOption: option function to apply
func WithColor(color mgl32.Vec3) DirectionalLightBuilderOption {
	return func(l *directionalLightImpl) {
		l.color = color
	}
}

// WithIlluminance sets the strength in lux.
//
// Parameters:
//   - lux: the illuminance
//
// Returns:
//   - DirectionalLightBuilderOption: option function to apply
func WithIlluminance(lux float32) DirectionalLightBuilderOption {
	return func(l *directionalLightImpl) {
		l.illuminance = lux
	}
}

// WithShadows enables or disables shadow casting.
//
// Parameters:
//   - enabled: whether the light casts shadows
//
// Returns:
//   - DirectionalLightBuilderOption: option function to apply
func WithShadows(enabled bool) DirectionalLightBuilderOption {
	return func(l *directionalLightImpl) {
		l.castsShadows = enabled
	}
}
