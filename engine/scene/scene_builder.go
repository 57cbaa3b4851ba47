package scene

import (
	"github.com/Carmen-Shannon/oxy-planet/engine/asset"
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
	"github.com/Carmen-Shannon/oxy-planet/engine/terrain"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *sceneImpl)

// WithSettings sets the settings handle polled each frame until it loads.
//
// Parameters:
//   - h: the settings handle
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSettings(h *asset.Handle[*settings.Settings]) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.settingsHandle = h
	}
}

// WithTexture sets the stacked terrain texture handle. Generation waits for it to load.
//
// Parameters:
//   - h: the texture handle
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTexture(h *asset.Handle[*texture.Image]) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.textureHandle = h
	}
}

// WithRenderer sets the renderer receiving submissions. Without one the scene only simulates.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithRenderer(r Renderer) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.renderer = r
	}
}

// WithController replaces the default camera controller.
//
// Parameters:
//   - c: the controller
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithController(c camera.Controller) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.controller = c
	}
}

// WithCamera replaces the default camera. A camera without a controller gets the scene's controller.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCamera(c camera.Camera) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.cam = c
	}
}

// WithLight replaces the default sun.
//
// Parameters:
//   - l: the directional light
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLight(l light.DirectionalLight) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.sun = l
	}
}

// WithDisplacer sets the terrain displacer. The default is terrain.NewDisplacer().
//
// Parameters:
//   - d: the displacer
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDisplacer(d terrain.Displacer) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.displacer = d
	}
}

// WithPlanetConfig sets the base sphere resolutions. The scale always comes from the settings.
//
// Parameters:
//   - cfg: the planet configuration
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithPlanetConfig(cfg terrain.PlanetConfig) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.planetConfig = cfg
	}
}

// WithInput supplies externally owned input state, typically wired to window callbacks.
// Nil arguments keep the defaults.
//
// Parameters:
//   - capture: the capture flag
//   - pointer: the pointer accumulator
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithInput(capture *input.Capture, pointer *input.PointerAccumulator) SceneBuilderOption {
	return func(s *sceneImpl) {
		if capture != nil {
			s.capture = capture
		}
		if pointer != nil {
			s.pointer = pointer
		}
	}
}
