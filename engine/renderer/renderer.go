// Package renderer uploads the scene's submissions to the GPU through WebGPU and presents
// the window surface each frame. Drawing pipelines are supplied elsewhere; this package owns
// the device, the surface and every buffer and texture the scene hands over.
package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/overlay"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/elliotchance/orderedmap/v2"
)

// SurfaceSource is the window surface the renderer presents to. window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// Renderer is the GPU side of the demo. It accepts scene submissions and presents one frame per Render call.
// Frames are cleared and presented without draw calls: meshes, textures and uniforms are uploaded,
// and the overlay hint text is only stored (see OverlayText) and logged when it changes. No text is drawn.
type Renderer interface {
	scene.Renderer

	// Resize reconfigures the surface. Zero sizes (a minimized window) are ignored.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	//
	// Returns:
	//   - error: error if the surface cannot be reconfigured
	Resize(width, height int) error

	// Render presents the current frame.
	//
	// Returns:
	//   - error: error if the surface image cannot be acquired or submitted
	Render() error

	// Meshes returns the names of the uploaded meshes in submission order.
	//
	// Returns:
	//   - []string: mesh names
	Meshes() []string

	// OverlayText returns the most recent overlay text. The text is kept for inspection, not drawn.
	//
	// Returns:
	//   - string: the hint line, or "" when hidden
	OverlayText() string

	// Release frees every GPU resource. The renderer must not be used afterwards.
	Release()
}

type gpuMesh struct {
	submission scene.MeshSubmission
	buffers    meshBuffers
	texture    *textureResources
}

type rendererImpl struct {
	mu *sync.Mutex

	backend rendererBackend

	meshes        *orderedmap.OrderedMap[string, *gpuMesh]
	cameraUniform *wgpu.Buffer
	lightUniform  *wgpu.Buffer
	overlayText   string
	atmosphere    bool
	paused        bool

	clearColor           wgpu.Color
	atmosphereClearColor wgpu.Color

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
}

var _ Renderer = &rendererImpl{}

// NewRenderer creates a WebGPU renderer presenting to surface.
//
// Parameters:
//   - surface: the window to present to
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: error if no adapter, device or surface configuration is available
func NewRenderer(surface SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := newRendererImpl(options...)
	b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
	if err != nil {
		return nil, err
	}
	if err := r.attach(b, surface.Width(), surface.Height()); err != nil {
		b.Release()
		return nil, err
	}
	return r, nil
}

func newRendererImpl(options ...RendererBuilderOption) *rendererImpl {
	r := &rendererImpl{
		mu:                   &sync.Mutex{},
		meshes:               orderedmap.NewOrderedMap[string, *gpuMesh](),
		clearColor:           wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		atmosphereClearColor: wgpu.Color{R: 0.05, G: 0.08, B: 0.16, A: 1},
		presentMode:          PresentModeVSync,
	}
	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *rendererImpl) attach(b rendererBackend, width, height int) error {
	r.backend = b
	r.backend.SetPresentMode(r.presentMode)
	if err := r.Resize(width, height); err != nil {
		return err
	}

	var err error
	cam := camera.GPUCameraUniform{}
	if r.cameraUniform, err = b.CreateUniformBuffer("Camera", uint64(cam.Size())); err != nil {
		return fmt.Errorf("renderer: camera uniform: %w", err)
	}
	sun := light.GPUDirectionalLight{}
	if r.lightUniform, err = b.CreateUniformBuffer("Light", uint64(sun.Size())); err != nil {
		return fmt.Errorf("renderer: light uniform: %w", err)
	}
	return nil
}

func (r *rendererImpl) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if width <= 0 || height <= 0 {
		r.paused = true
		return nil
	}
	r.paused = false
	return r.backend.ConfigureSurface(width, height)
}

func (r *rendererImpl) SubmitMesh(m scene.MeshSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.Mesh == nil {
		return fmt.Errorf("renderer: mesh %q has no data", m.Name)
	}
	if _, ok := r.meshes.Get(m.Name); ok {
		return fmt.Errorf("renderer: mesh %q already submitted", m.Name)
	}

	buffers, err := r.backend.CreateMeshBuffers(m.Name, m.Mesh.VertexData(), m.Mesh.IndexData(), len(m.Mesh.Indices()))
	if err != nil {
		return fmt.Errorf("renderer: upload mesh %q: %w", m.Name, err)
	}
	gm := &gpuMesh{submission: m, buffers: buffers}

	if m.Texture != nil {
		tex, err := r.backend.CreateArrayTexture(m.Texture)
		if err != nil {
			return fmt.Errorf("renderer: upload texture for %q: %w", m.Name, err)
		}
		gm.texture = &tex
	}

	r.meshes.Set(m.Name, gm)
	log.Printf("[Renderer] uploaded %s: %d vertices, %d triangles, fingerprint %016x",
		m.Name, m.Mesh.VertexCount(), m.Mesh.TriangleCount(), m.Mesh.Fingerprint())
	return nil
}

func (r *rendererImpl) SubmitCamera(c scene.CameraSubmission) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.atmosphere = c.Atmosphere
	r.backend.WriteBuffer(r.cameraUniform, c.Uniform.Marshal())
}

func (r *rendererImpl) SubmitLight(l light.DirectionalLight) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g := l.GPU()
	r.backend.WriteBuffer(r.lightUniform, g.Marshal())
}

// SubmitOverlay records the hint text. There is no text pipeline, so style is ignored.
func (r *rendererImpl) SubmitOverlay(text string, _ overlay.Style) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if text != r.overlayText {
		log.Printf("[Renderer] overlay: %q", text)
	}
	r.overlayText = text
}

func (r *rendererImpl) Render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paused {
		return nil
	}
	color := r.clearColor
	if r.atmosphere {
		color = r.atmosphereClearColor
	}
	return r.backend.RenderFrame(color)
}

func (r *rendererImpl) Meshes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.meshes.Keys()
}

func (r *rendererImpl) OverlayText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlayText
}

func (r *rendererImpl) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
