// Package noise provides deterministic scalar noise fields sampled in 3D space.
package noise

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// DefaultSeed is the fixed seed used for the planet terrain so every run produces the same shape.
const DefaultSeed uint64 = 1

// Field is a pure 3D scalar noise function.
// Implementations must return the same value for bit-identical inputs.
type Field interface {
	// Sample evaluates the field at a point.
	//
	// Parameters:
	//   - x, y, z: sample coordinates
	//
	// Returns:
	//   - float64: noise value, conventionally within [-1, 1]
	Sample(x, y, z float64) float64
}

// Perlin is an improved gradient noise field (Perlin 2002) over a seeded permutation table.
// A Perlin value is immutable after construction and safe for concurrent use.
type Perlin struct {
	seed uint64
	perm [512]uint8
}

var _ Field = &Perlin{}

// NewPerlin creates a Perlin field whose permutation table is derived from seed.
// The table is a Fisher-Yates shuffle of 0..255 driven by xxh3 hashes of the
// shuffle step, so the same seed yields the same table on every platform.
//
// Parameters:
//   - seed: the seed selecting the permutation
//
// Returns:
//   - *Perlin: the noise field
func NewPerlin(seed uint64) *Perlin {
	p := &Perlin{seed: seed}

	var base [256]uint8
	for i := range base {
		base[i] = uint8(i)
	}

	var buf [8]byte
	for i := len(base) - 1; i > 0; i-- {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		j := xxh3.HashSeed(buf[:], seed) % uint64(i+1)
		base[i], base[j] = base[j], base[i]
	}

	for i := range p.perm {
		p.perm[i] = base[i&255]
	}
	return p
}

// Seed returns the seed the permutation table was built from.
//
// Returns:
//   - uint64: the seed
func (p *Perlin) Seed() uint64 {
	return p.seed
}

func (p *Perlin) Sample(x, y, z float64) float64 {
	xf, yf, zf := math.Floor(x), math.Floor(y), math.Floor(z)
	xi, yi, zi := int(xf)&255, int(yf)&255, int(zf)&255
	x, y, z = x-xf, y-yf, z-zf

	u, v, w := fade(x), fade(y), fade(z)

	a := int(p.perm[xi]) + yi
	aa := int(p.perm[a]) + zi
	ab := int(p.perm[a+1]) + zi
	b := int(p.perm[xi+1]) + yi
	ba := int(p.perm[b]) + zi
	bb := int(p.perm[b+1]) + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p.perm[aa], x, y, z), grad(p.perm[ba], x-1, y, z)),
			lerp(u, grad(p.perm[ab], x, y-1, z), grad(p.perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p.perm[aa+1], x, y, z-1), grad(p.perm[ba+1], x-1, y, z-1)),
			lerp(u, grad(p.perm[ab+1], x, y-1, z-1), grad(p.perm[bb+1], x-1, y-1, z-1))))
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad dots the offset with one of the 12 cube-edge gradient directions selected by hash.
func grad(hash uint8, x, y, z float64) float64 {
	switch hash & 15 {
	case 0, 12:
		return x + y
	case 1, 14:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x + z
	case 5:
		return -x + z
	case 6:
		return x - z
	case 7:
		return -x - z
	case 8:
		return y + z
	case 9, 13:
		return -y + z
	case 10:
		return y - z
	default: // 11, 15
		return -y - z
	}
}
