package scene

import (
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/mesh"
	"github.com/Carmen-Shannon/oxy-planet/engine/overlay"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshSubmission hands a generated mesh to the renderer.
type MeshSubmission struct {
	// Name identifies the mesh across submissions ("terrain", "water").
	Name string

	// Mesh holds the vertex and index buffers. The renderer must not modify it.
	Mesh *mesh.Mesh

	// Scale is the uniform model scale.
	Scale float32

	// Texture is the layered array texture, or nil for untextured meshes.
	Texture *texture.Image

	// BaseColor is the flat RGBA color used when Texture is nil.
	BaseColor mgl32.Vec4

	// AlphaBlend draws the mesh blended over what is behind it.
	AlphaBlend bool

	// CastsShadows includes the mesh in the sun's shadow pass.
	CastsShadows bool
}

// CameraSubmission is the per-frame view state.
type CameraSubmission struct {
	// Transform is the camera placement.
	Transform camera.Transform

	// Uniform is the packed view-projection uniform.
	Uniform camera.GPUCameraUniform

	// Atmosphere enables the atmosphere effect.
	Atmosphere bool

	// Stars enables the star field backdrop.
	Stars bool
}

// Renderer receives the scene's output. Implementations upload and draw; the scene never
// reads anything back.
type Renderer interface {
	// SubmitMesh registers a mesh for drawing. Each name is submitted once.
	//
	// Parameters:
	//   - m: the mesh and its material parameters
	//
	// Returns:
	//   - error: error if the mesh cannot be uploaded
	SubmitMesh(m MeshSubmission) error

	// SubmitCamera sets this frame's view.
	//
	// Parameters:
	//   - c: the camera state
	SubmitCamera(c CameraSubmission)

	// SubmitLight sets the sun light.
	//
	// Parameters:
	//   - l: the directional light
	SubmitLight(l light.DirectionalLight)

	// SubmitOverlay sets this frame's hint line. An empty text hides it.
	//
	// Parameters:
	//   - text: the line to draw
	//   - style: how to draw it
	SubmitOverlay(text string, style overlay.Style)
}
