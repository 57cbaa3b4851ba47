package mesh

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxIcosphereSubdivisions is the first subdivision level that is rejected (65,612 vertices).
const MaxIcosphereSubdivisions = 80

// ErrTooManyVertices is returned when an icosphere would exceed MaxIcosphereSubdivisions.
var ErrTooManyVertices = errors.New("mesh: icosphere has too many vertices")

// golden ratio, used for the icosahedron corner coordinates
var phi = (1 + math32.Sqrt(5)) / 2

var icosahedronCorners = [12]mgl32.Vec3{
	{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
	{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
	{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
}

// Faces wind counter-clockwise when viewed from outside the sphere.
var icosahedronFaces = [20][3]uint32{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// IcosphereVertexCount returns the number of unique vertices an icosphere with the given subdivisions has.
//
// Parameters:
//   - subdivisions: number of extra points inserted along each icosahedron edge
//
// Returns:
//   - int: 10*(subdivisions+1)^2 + 2
func IcosphereVertexCount(subdivisions int) int {
	s := subdivisions + 1
	return 10*s*s + 2
}

// latticeKey identifies a subdivision point by its integer barycentric weights over the
// icosahedron corners, so points on shared edges resolve to the same vertex on both faces.
type latticeKey struct {
	corners [3]uint32
	weights [3]uint32
}

func newLatticeKey(corners [3]uint32, weights [3]uint32) latticeKey {
	type cw struct{ c, w uint32 }
	pairs := []cw{{corners[0], weights[0]}, {corners[1], weights[1]}, {corners[2], weights[2]}}
	// zero weights carry no information and would make edge points face-dependent
	for i := range pairs {
		if pairs[i].w == 0 {
			pairs[i].c = 0
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].w != pairs[j].w {
			return pairs[i].w > pairs[j].w
		}
		return pairs[i].c < pairs[j].c
	})
	var k latticeKey
	for i, p := range pairs {
		k.corners[i] = p.c
		k.weights[i] = p.w
	}
	return k
}

// Icosphere builds a unit-radius icosphere. Each icosahedron edge is split into subdivisions+1
// segments, the resulting lattice points are projected onto the unit sphere, and shared points
// are emitted once. Normals equal positions and UVs are equirectangular.
//
// Parameters:
//   - subdivisions: number of extra points per edge (0 yields the plain icosahedron)
//
// Returns:
//   - *Mesh: the sphere mesh
//   - error: ErrTooManyVertices if subdivisions >= MaxIcosphereSubdivisions, or an error if negative
func Icosphere(subdivisions int) (*Mesh, error) {
	if subdivisions < 0 {
		return nil, fmt.Errorf("mesh: icosphere subdivisions must be >= 0, got %d", subdivisions)
	}
	if subdivisions >= MaxIcosphereSubdivisions {
		return nil, fmt.Errorf("%w: %d subdivisions would generate %d vertices",
			ErrTooManyVertices, subdivisions, IcosphereVertexCount(subdivisions))
	}

	segments := uint32(subdivisions + 1)
	count := IcosphereVertexCount(subdivisions)
	positions := make([]mgl32.Vec3, 0, count)
	lookup := make(map[latticeKey]uint32, count)
	indices := make([]uint32, 0, 20*segments*segments*3)

	rowOffsets := make([]int, segments+1)
	faceIDs := make([]uint32, 0, (segments+1)*(segments+2)/2)

	for _, face := range icosahedronFaces {
		a := icosahedronCorners[face[0]]
		b := icosahedronCorners[face[1]]
		c := icosahedronCorners[face[2]]

		faceIDs = faceIDs[:0]
		for i := uint32(0); i <= segments; i++ {
			rowOffsets[i] = len(faceIDs)
			for j := uint32(0); j <= segments-i; j++ {
				key := newLatticeKey(face, [3]uint32{segments - i - j, i, j})
				id, ok := lookup[key]
				if !ok {
					fi := float32(i) / float32(segments)
					fj := float32(j) / float32(segments)
					p := a.Add(b.Sub(a).Mul(fi)).Add(c.Sub(a).Mul(fj)).Normalize()
					id = uint32(len(positions))
					positions = append(positions, p)
					lookup[key] = id
				}
				faceIDs = append(faceIDs, id)
			}
		}

		at := func(i, j uint32) uint32 {
			return faceIDs[rowOffsets[i]+int(j)]
		}
		for i := uint32(0); i < segments; i++ {
			for j := uint32(0); j < segments-i; j++ {
				indices = append(indices, at(i, j), at(i+1, j), at(i, j+1))
				if j+1 < segments-i {
					indices = append(indices, at(i+1, j), at(i+1, j+1), at(i, j+1))
				}
			}
		}
	}

	normals := make([]mgl32.Vec3, len(positions))
	uvs := make([]mgl32.Vec2, len(positions))
	for i, p := range positions {
		normals[i] = p
		uvs[i] = sphereUV(p)
	}

	return NewMesh(fmt.Sprintf("icosphere_%d", subdivisions), positions, normals, uvs, indices)
}

// sphereUV maps a unit vector to equirectangular texture coordinates in [0, 1].
func sphereUV(p mgl32.Vec3) mgl32.Vec2 {
	u := 0.5 + math32.Atan2(p.Z(), p.X())/(2*math32.Pi)
	v := 0.5 - math32.Asin(mgl32.Clamp(p.Y(), -1, 1))/math32.Pi
	return mgl32.Vec2{u, v}
}
