package mesh

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUVertex is the GPU-aligned representation of a single planet mesh vertex.
// Matches the WGSL vertex input:
//
//	struct VertexInput {
//	    @location(0) position: vec3<f32>,
//	    @location(1) normal: vec3<f32>,
//	    @location(2) uv: vec2<f32>,
//	}
//
// Size: 32 bytes, no padding required.
type GPUVertex struct {
	Position mgl32.Vec3 // offset  0: vertex position in model space (12 bytes)
	Normal   mgl32.Vec3 // offset 12: vertex normal for lighting (12 bytes)
	TexCoord mgl32.Vec2 // offset 24: UV texture coordinate (8 bytes)
}

// GPUVertexSize is the byte size of one packed GPUVertex.
const GPUVertexSize = 32

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a little-endian byte buffer.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, GPUVertexSize)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	binary.LittleEndian.PutUint32(buf[24:], math.Float32bits(g.TexCoord[0]))
	binary.LittleEndian.PutUint32(buf[28:], math.Float32bits(g.TexCoord[1]))
	return buf
}

// VertexBufferLayout returns the wgpu vertex buffer layout matching GPUVertex.
//
// Returns:
//   - wgpu.VertexBufferLayout: per-vertex layout with position, normal and uv attributes
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: GPUVertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}
}
