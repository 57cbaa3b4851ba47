// Package mesh holds CPU-side triangle meshes and the base sphere provider used by the planet.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// ErrVertexCountMismatch is returned when a replacement attribute buffer does not match the mesh's vertex count.
var ErrVertexCountMismatch = errors.New("mesh: vertex count mismatch")

// Mesh is an indexed triangle list with per-vertex position, normal and UV attributes.
// Vertex indices are stable: attribute i of every buffer belongs to the same vertex.
type Mesh struct {
	name      string
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
	indices   []uint32
}

// NewMesh creates a mesh from raw attribute buffers. Normals and uvs may be nil;
// when present they must have the same length as positions.
//
// Parameters:
//   - name: the mesh identifier
//   - positions: vertex positions
//   - normals: vertex normals (or nil)
//   - uvs: texture coordinates (or nil)
//   - indices: triangle list indices into the vertex buffers
//
// Returns:
//   - *Mesh: the mesh
//   - error: ErrVertexCountMismatch if an attribute length differs, or an error for out of range indices
func NewMesh(name string, positions, normals []mgl32.Vec3, uvs []mgl32.Vec2, indices []uint32) (*Mesh, error) {
	if normals != nil && len(normals) != len(positions) {
		return nil, fmt.Errorf("%w: %d normals for %d positions", ErrVertexCountMismatch, len(normals), len(positions))
	}
	if uvs != nil && len(uvs) != len(positions) {
		return nil, fmt.Errorf("%w: %d uvs for %d positions", ErrVertexCountMismatch, len(uvs), len(positions))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh %q: index count %d is not a multiple of 3", name, len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("mesh %q: index %d out of range for %d vertices", name, idx, len(positions))
		}
	}
	return &Mesh{
		name:      name,
		positions: positions,
		normals:   normals,
		uvs:       uvs,
		indices:   indices,
	}, nil
}

// Name returns the mesh identifier.
func (m *Mesh) Name() string {
	return m.name
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.positions)
}

// TriangleCount returns the number of triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Positions returns the vertex position buffer. The slice is owned by the mesh and must not be modified;
// use SetPositions to replace it.
//
// Returns:
//   - []mgl32.Vec3: the positions in vertex index order
func (m *Mesh) Positions() []mgl32.Vec3 {
	return m.positions
}

// SetPositions replaces the vertex position buffer. The mesh takes ownership of the slice.
//
// Parameters:
//   - positions: new positions, one per existing vertex
//
// Returns:
//   - error: ErrVertexCountMismatch if the length differs from VertexCount
func (m *Mesh) SetPositions(positions []mgl32.Vec3) error {
	if len(positions) != len(m.positions) {
		return fmt.Errorf("%w: got %d positions, mesh %q has %d vertices", ErrVertexCountMismatch, len(positions), m.name, len(m.positions))
	}
	m.positions = positions
	return nil
}

// Normals returns the vertex normal buffer, or nil if the mesh has none.
func (m *Mesh) Normals() []mgl32.Vec3 {
	return m.normals
}

// UVs returns the texture coordinate buffer, or nil if the mesh has none.
func (m *Mesh) UVs() []mgl32.Vec2 {
	return m.uvs
}

// Indices returns the triangle list indices.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// Bounds computes the axis-aligned bounding box of the positions.
// An empty mesh returns two zero vectors.
//
// Returns:
//   - min: minimum corner
//   - max: maximum corner
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.positions) == 0 {
		return
	}
	min, max = m.positions[0], m.positions[0]
	for _, p := range m.positions[1:] {
		for i := range 3 {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Fingerprint hashes the position buffer. Two meshes with bit-identical positions share a fingerprint.
//
// Returns:
//   - uint64: the xxh3 hash of the raw position bytes
func (m *Mesh) Fingerprint() uint64 {
	return xxh3.Hash(common.SliceToBytes(m.positions))
}

// GPUVertices interleaves the attribute buffers into GPU vertices. Missing normals and uvs are zero.
//
// Returns:
//   - []GPUVertex: one packed vertex per mesh vertex
func (m *Mesh) GPUVertices() []GPUVertex {
	out := make([]GPUVertex, len(m.positions))
	for i, p := range m.positions {
		out[i].Position = p
		if m.normals != nil {
			out[i].Normal = m.normals[i]
		}
		if m.uvs != nil {
			out[i].TexCoord = m.uvs[i]
		}
	}
	return out
}

// VertexData returns the packed vertex buffer bytes ready for GPU upload.
func (m *Mesh) VertexData() []byte {
	return common.SliceToBytes(m.GPUVertices())
}

// IndexData returns the index buffer bytes ready for GPU upload.
func (m *Mesh) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}
