package renderer

import "github.com/cogentcore/webgpu/wgpu"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*rendererImpl)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.presentMode = mode
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.forceFallbackAdapter = force
	}
}

// WithClearColors sets the background colors used with the atmosphere off and on.
//
// Parameters:
//   - space: the background without atmosphere
//   - atmosphere: the background with atmosphere
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear colors to a renderer
func WithClearColors(space, atmosphere wgpu.Color) RendererBuilderOption {
	return func(r *rendererImpl) {
		r.clearColor = space
		r.atmosphereClearColor = atmosphere
	}
}
