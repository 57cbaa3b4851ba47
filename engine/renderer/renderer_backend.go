package renderer

import (
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// meshBuffers are the GPU buffers of one submitted mesh.
type meshBuffers struct {
	vertex     *wgpu.Buffer
	index      *wgpu.Buffer
	indexCount uint32
}

// textureResources are the GPU objects of one array texture.
type textureResources struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
}

// rendererBackend is the GPU API the renderer drives. The WebGPU implementation lives in
// wgpu_renderer_backend.go.
type rendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and depth target for the given pixel size.
	ConfigureSurface(width, height int) error

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// CreateMeshBuffers uploads vertex and index data.
	CreateMeshBuffers(label string, vertexData, indexData []byte, indexCount int) (meshBuffers, error)

	// CreateArrayTexture uploads every layer of img and creates its view and sampler.
	CreateArrayTexture(img *texture.Image) (textureResources, error)

	// CreateUniformBuffer allocates a uniform buffer of size bytes.
	CreateUniformBuffer(label string, size uint64) (*wgpu.Buffer, error)

	// WriteBuffer queues a write of data at offset 0.
	WriteBuffer(buf *wgpu.Buffer, data []byte)

	// RenderFrame acquires the next surface image, clears it and presents it.
	RenderFrame(color wgpu.Color) error

	// Release frees every GPU object owned by the backend.
	Release()
}
