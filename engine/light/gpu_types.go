package light

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUDirectionalLight is the GPU-aligned representation of the sun light uniform.
// Size: 32 bytes (WGSL aligned).
type GPUDirectionalLight struct {
	Direction    mgl32.Vec3 // offset  0: normalized travel direction (vec3<f32>)
	Illuminance  float32    // offset 12: lux
	Color        mgl32.Vec3 // offset 16: linear RGB (vec3<f32>)
	CastsShadows uint32     // offset 28: 1 = casts shadows, 0 = does not
}

// Size returns the size of the GPUDirectionalLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPUDirectionalLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUDirectionalLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUDirectionalLight) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Direction[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Color[i]))
	}
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Illuminance))
	binary.LittleEndian.PutUint32(buf[28:32], g.CastsShadows)
	return buf
}
