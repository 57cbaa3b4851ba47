package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcosphereCounts(t *testing.T) {
	tests := []struct {
		subdivisions int
		vertices     int
		triangles    int
	}{
		{0, 12, 20},
		{1, 42, 80},
		{4, 252, 500},
		{10, 1212, 2420},
		{15, 2562, 5120},
	}
	for _, tt := range tests {
		m, err := Icosphere(tt.subdivisions)
		require.NoError(t, err)
		assert.Equal(t, tt.vertices, m.VertexCount(), "subdivisions %d", tt.subdivisions)
		assert.Equal(t, tt.vertices, IcosphereVertexCount(tt.subdivisions))
		assert.Equal(t, tt.triangles, m.TriangleCount(), "subdivisions %d", tt.subdivisions)
		assert.Len(t, m.Normals(), tt.vertices)
		assert.Len(t, m.UVs(), tt.vertices)
	}
}

func TestIcosphereUnitRadius(t *testing.T) {
	m, err := Icosphere(6)
	require.NoError(t, err)
	for i, p := range m.Positions() {
		assert.InDelta(t, 1.0, p.Len(), 1e-5, "vertex %d", i)
		assert.Equal(t, p, m.Normals()[i])
		uv := m.UVs()[i]
		assert.True(t, uv.X() >= 0 && uv.X() <= 1 && uv.Y() >= 0 && uv.Y() <= 1, "uv %v", uv)
	}
}

func TestIcosphereOutwardWinding(t *testing.T) {
	m, err := Icosphere(3)
	require.NoError(t, err)
	pos := m.Positions()
	idx := m.Indices()
	for tri := 0; tri < len(idx); tri += 3 {
		a, b, c := pos[idx[tri]], pos[idx[tri+1]], pos[idx[tri+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d winds inward", tri/3)
	}
}

func TestIcosphereSharesEdgeVertices(t *testing.T) {
	m, err := Icosphere(5)
	require.NoError(t, err)
	pos := m.Positions()
	for i := range pos {
		for j := i + 1; j < len(pos); j++ {
			if pos[i].ApproxEqualThreshold(pos[j], 1e-6) {
				t.Fatalf("vertices %d and %d are duplicates at %v", i, j, pos[i])
			}
		}
	}
}

func TestIcosphereRejectsBadSubdivisions(t *testing.T) {
	_, err := Icosphere(MaxIcosphereSubdivisions)
	assert.ErrorIs(t, err, ErrTooManyVertices)

	_, err = Icosphere(-1)
	assert.Error(t, err)
}

func TestIcosphereDeterministic(t *testing.T) {
	a, err := Icosphere(8)
	require.NoError(t, err)
	b, err := Icosphere(8)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, a.Indices(), b.Indices())
}

func TestSetPositions(t *testing.T) {
	m, err := Icosphere(1)
	require.NoError(t, err)

	scaled := make([]mgl32.Vec3, m.VertexCount())
	for i, p := range m.Positions() {
		scaled[i] = p.Mul(2)
	}
	before := m.Fingerprint()
	require.NoError(t, m.SetPositions(scaled))
	assert.NotEqual(t, before, m.Fingerprint())
	assert.Equal(t, scaled, m.Positions())

	err = m.SetPositions(scaled[:3])
	assert.ErrorIs(t, err, ErrVertexCountMismatch)
}

func TestNewMeshValidation(t *testing.T) {
	pos := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, err := NewMesh("tri", pos, pos[:2], nil, []uint32{0, 1, 2})
	assert.ErrorIs(t, err, ErrVertexCountMismatch)

	_, err = NewMesh("tri", pos, nil, nil, []uint32{0, 1})
	assert.Error(t, err)

	_, err = NewMesh("tri", pos, nil, nil, []uint32{0, 1, 3})
	assert.Error(t, err)

	empty, err := NewMesh("empty", nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.VertexCount())
	lo, hi := empty.Bounds()
	assert.Equal(t, mgl32.Vec3{}, lo)
	assert.Equal(t, mgl32.Vec3{}, hi)
	assert.Nil(t, empty.VertexData())
}

func TestBounds(t *testing.T) {
	m, err := Icosphere(2)
	require.NoError(t, err)
	lo, hi := m.Bounds()
	for i := range 3 {
		assert.GreaterOrEqual(t, lo[i], float32(-1.00001))
		assert.Less(t, lo[i], float32(-0.8))
		assert.LessOrEqual(t, hi[i], float32(1.00001))
		assert.Greater(t, hi[i], float32(0.8))
	}
}

func TestGPUVertexPacking(t *testing.T) {
	v := GPUVertex{
		Position: mgl32.Vec3{1, 2, 3},
		Normal:   mgl32.Vec3{0, 1, 0},
		TexCoord: mgl32.Vec2{0.25, 0.75},
	}
	assert.Equal(t, GPUVertexSize, v.Size())

	m, err := NewMesh("one", []mgl32.Vec3{v.Position}, []mgl32.Vec3{v.Normal}, []mgl32.Vec2{v.TexCoord}, nil)
	require.NoError(t, err)
	assert.Equal(t, v.Marshal(), m.VertexData())

	layout := VertexBufferLayout()
	assert.EqualValues(t, GPUVertexSize, layout.ArrayStride)
	assert.Len(t, layout.Attributes, 3)
}
