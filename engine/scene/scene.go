// Package scene assembles the planet demo. A Scene owns the camera, input state and generated
// meshes and advances them in a fixed order once per frame: input polling, camera update,
// terrain generation while pending, render submission.
package scene

import (
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/asset"
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/overlay"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
	"github.com/Carmen-Shannon/oxy-planet/engine/terrain"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// GenerationState tracks the one-shot terrain generation.
type GenerationState int

const (
	// GenerationPending waits for the settings and texture to load.
	GenerationPending GenerationState = iota
	// GenerationReady means every input is available; generation runs on the current frame.
	GenerationReady
	// GenerationDone is terminal. Generation never runs again.
	GenerationDone
)

func (g GenerationState) String() string {
	switch g {
	case GenerationPending:
		return "pending"
	case GenerationReady:
		return "ready"
	case GenerationDone:
		return "done"
	}
	return fmt.Sprintf("GenerationState(%d)", int(g))
}

// WaterColor is the flat color of the water shell.
var WaterColor = mgl32.Vec4{0.1, 0.3, 0.7, 0.6}

// Scene is the demo's per-frame orchestrator. It is driven from a single goroutine.
type Scene interface {
	// Frame advances the scene by one frame.
	//
	// Parameters:
	//   - elapsed: seconds since startup
	//
	// Returns:
	//   - error: error if a resource failed to load or generation failed
	Frame(elapsed float32) error

	// PressKey queues a key press for the next frame's input polling.
	//
	// Parameters:
	//   - key: the virtual key code
	PressKey(key uint32)

	// Capture returns the pointer capture flag the window drives.
	//
	// Returns:
	//   - *input.Capture: the capture flag
	Capture() *input.Capture

	// Pointer returns the pointer motion accumulator the window feeds.
	//
	// Returns:
	//   - *input.PointerAccumulator: the accumulator
	Pointer() *input.PointerAccumulator

	// Toggles returns the atmosphere and star switches.
	//
	// Returns:
	//   - *input.Toggles: the switches
	Toggles() *input.Toggles

	// Camera returns the scene camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Overlay returns the hint overlay.
	//
	// Returns:
	//   - *overlay.Overlay: the overlay
	Overlay() *overlay.Overlay

	// Generation returns the generation state.
	//
	// Returns:
	//   - GenerationState: the current state
	Generation() GenerationState

	// Generations returns how many times terrain generation has run.
	//
	// Returns:
	//   - int: 0 before generation, 1 after
	Generations() int

	// Planet returns the generated planet, or nil before generation.
	//
	// Returns:
	//   - *terrain.Planet: the planet
	Planet() *terrain.Planet
}

type sceneImpl struct {
	settingsHandle *asset.Handle[*settings.Settings]
	textureHandle  *asset.Handle[*texture.Image]
	settings       *settings.Settings

	renderer   Renderer
	controller camera.Controller
	cam        camera.Camera
	sun        light.DirectionalLight

	capture  *input.Capture
	pointer  *input.PointerAccumulator
	bindings *input.Bindings
	toggles  *input.Toggles
	keys     []uint32
	overlay  *overlay.Overlay

	displacer    terrain.Displacer
	planetConfig terrain.PlanetConfig
	planet       *terrain.Planet
	generation   GenerationState
	generations  int

	started bool
}

var _ Scene = &sceneImpl{}

// NewScene creates a Scene. Without WithSettings the scene never leaves its idle state;
// without WithTexture the terrain is generated untextured as soon as settings are available.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - Scene: the scene
func NewScene(options ...SceneBuilderOption) Scene {
	s := &sceneImpl{
		pointer:      input.NewPointerAccumulator(),
		bindings:     input.NewBindings(),
		toggles:      input.NewToggles(nil),
		planetConfig: terrain.DefaultPlanetConfig(),
		sun:          light.NewDirectionalLight(),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.capture == nil {
		s.capture = input.NewCapture(nil)
	}
	if s.controller == nil {
		s.controller = camera.NewController()
	}
	if s.cam == nil {
		s.cam = camera.NewCamera(camera.WithController(s.controller))
	} else if s.cam.Controller() == nil {
		s.cam.SetController(s.controller)
	}
	s.toggles.Bind(s.bindings)
	s.overlay = overlay.New(s.bindings, overlay.DefaultStyle)
	return s
}

func (s *sceneImpl) Frame(elapsed float32) error {
	if err := s.pollInput(); err != nil {
		return err
	}

	s.controller.Update(camera.FrameInput{
		Settings: s.settings,
		Captured: s.capture.Captured(),
		Elapsed:  elapsed,
		Pointer:  s.pointer,
	})
	s.cam.Update()

	if err := s.advanceGeneration(); err != nil {
		return err
	}

	s.submit()
	return nil
}

// pollInput resolves the settings handle and applies queued key presses.
func (s *sceneImpl) pollInput() error {
	if s.settings == nil && s.settingsHandle != nil {
		switch s.settingsHandle.State() {
		case asset.StateLoaded:
			s.settings, _ = s.settingsHandle.Get()
			s.toggles.Atmosphere = s.settings.EnableAtmosphere
			s.toggles.Stars = s.settings.EnableStars
			s.overlay.Show()
			log.Printf("[Scene] settings loaded: %s", s.settingsHandle.Name())
		case asset.StateFailed:
			return s.settingsHandle.Err()
		}
	}

	keys := s.keys
	s.keys = nil
	if s.settings == nil {
		return nil
	}
	for _, key := range keys {
		s.bindings.Handle(key)
	}
	return nil
}

func (s *sceneImpl) advanceGeneration() error {
	if s.generation == GenerationPending {
		ready, err := s.inputsReady()
		if err != nil {
			return err
		}
		if !ready {
			return nil
		}
		s.generation = GenerationReady
	}
	if s.generation != GenerationReady {
		return nil
	}

	// Latched before running so a failure can never trigger a second attempt.
	s.generation = GenerationDone
	return s.generate()
}

func (s *sceneImpl) inputsReady() (bool, error) {
	if s.settings == nil {
		return false, nil
	}
	if s.textureHandle == nil {
		return true, nil
	}
	switch s.textureHandle.State() {
	case asset.StateLoaded:
		return true, nil
	case asset.StateFailed:
		return false, s.textureHandle.Err()
	}
	return false, nil
}

func (s *sceneImpl) generate() error {
	start := time.Now()

	var img *texture.Image
	if s.textureHandle != nil {
		img, _ = s.textureHandle.Get()
		if err := img.ReinterpretStacked2DAsArray(texture.DefaultArrayLayers); err != nil {
			return fmt.Errorf("scene: terrain texture: %w", err)
		}
	}

	if s.displacer == nil {
		d, err := terrain.NewDisplacer()
		if err != nil {
			return fmt.Errorf("scene: %w", err)
		}
		s.displacer = d
	}

	cfg := s.planetConfig
	cfg.Scale = s.settings.PlanetScale
	planet, err := terrain.GeneratePlanet(s.displacer, cfg)
	s.generations++
	if err != nil {
		return fmt.Errorf("scene: generate planet: %w", err)
	}
	s.planet = planet
	log.Printf("[Scene] planet generated: terrain %d vertices, water %d vertices in %v",
		planet.Terrain.VertexCount(), planet.Water.VertexCount(), time.Since(start))

	if s.renderer == nil {
		return nil
	}
	if err := s.renderer.SubmitMesh(MeshSubmission{
		Name:         "terrain",
		Mesh:         planet.Terrain,
		Scale:        planet.Scale,
		Texture:      img,
		BaseColor:    mgl32.Vec4{1, 1, 1, 1},
		CastsShadows: true,
	}); err != nil {
		return fmt.Errorf("scene: submit terrain: %w", err)
	}
	if err := s.renderer.SubmitMesh(MeshSubmission{
		Name:       "water",
		Mesh:       planet.Water,
		Scale:      planet.Scale,
		BaseColor:  WaterColor,
		AlphaBlend: true,
	}); err != nil {
		return fmt.Errorf("scene: submit water: %w", err)
	}
	return nil
}

func (s *sceneImpl) submit() {
	if s.renderer == nil {
		return
	}
	if !s.started {
		s.renderer.SubmitLight(s.sun)
		s.started = true
	}
	s.renderer.SubmitCamera(CameraSubmission{
		Transform:  s.controller.Transform(),
		Uniform:    s.cam.Uniform(),
		Atmosphere: s.toggles.Atmosphere,
		Stars:      s.toggles.Stars,
	})
	text := ""
	if s.overlay.Visible() {
		text = s.overlay.Text()
	}
	s.renderer.SubmitOverlay(text, s.overlay.Style())
}

func (s *sceneImpl) PressKey(key uint32) {
	s.keys = append(s.keys, key)
}

func (s *sceneImpl) Capture() *input.Capture {
	return s.capture
}

func (s *sceneImpl) Pointer() *input.PointerAccumulator {
	return s.pointer
}

func (s *sceneImpl) Toggles() *input.Toggles {
	return s.toggles
}

func (s *sceneImpl) Camera() camera.Camera {
	return s.cam
}

func (s *sceneImpl) Overlay() *overlay.Overlay {
	return s.overlay
}

func (s *sceneImpl) Generation() GenerationState {
	return s.generation
}

func (s *sceneImpl) Generations() int {
	return s.generations
}

func (s *sceneImpl) Planet() *terrain.Planet {
	return s.planet
}
