package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlin(DefaultSeed)
	b := NewPerlin(DefaultSeed)

	points := [][3]float64{
		{0.1, 0.2, 0.3},
		{-4.75, 2.5, 9.125},
		{5 * 0.57735, 5 * 0.57735, 5 * 0.57735},
		{123.456, -78.9, 0.001},
	}
	for _, p := range points {
		first := a.Sample(p[0], p[1], p[2])
		assert.Equal(t, math.Float64bits(first), math.Float64bits(a.Sample(p[0], p[1], p[2])), "same field, point %v", p)
		assert.Equal(t, math.Float64bits(first), math.Float64bits(b.Sample(p[0], p[1], p[2])), "same seed, point %v", p)
	}
}

func TestPerlinPermutationIsBijective(t *testing.T) {
	p := NewPerlin(42)
	seen := make(map[uint8]bool, 256)
	for i := range 256 {
		seen[p.perm[i]] = true
		assert.Equal(t, p.perm[i], p.perm[i+256])
	}
	assert.Len(t, seen, 256)
	assert.Equal(t, uint64(42), p.Seed())
}

func TestPerlinSeedsDiffer(t *testing.T) {
	a := NewPerlin(1)
	b := NewPerlin(2)

	differs := false
	for i := range 64 {
		x := float64(i)*0.37 + 0.11
		if a.Sample(x, x*0.5, x*0.25) != b.Sample(x, x*0.5, x*0.25) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}

func TestPerlinZeroAtLatticePoints(t *testing.T) {
	p := NewPerlin(DefaultSeed)
	for _, c := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-5, 7, -11}, {255, 256, 257}} {
		assert.Zero(t, p.Sample(c[0], c[1], c[2]), "lattice point %v", c)
	}
}

func TestPerlinBounded(t *testing.T) {
	p := NewPerlin(DefaultSeed)
	nonZero := false
	for i := range 20 {
		for j := range 20 {
			for k := range 20 {
				v := p.Sample(float64(i)*0.173-1.7, float64(j)*0.219-2.1, float64(k)*0.131+0.05)
				require.False(t, math.IsNaN(v))
				assert.LessOrEqual(t, math.Abs(v), 1.1)
				if v != 0 {
					nonZero = true
				}
			}
		}
	}
	assert.True(t, nonZero)
}

func TestPerlinContinuous(t *testing.T) {
	p := NewPerlin(DefaultSeed)
	const eps = 1e-6
	for _, c := range [][3]float64{{0.5, 0.5, 0.5}, {2.999999, 1.25, -0.75}, {10.1, -3.3, 4.4}} {
		a := p.Sample(c[0], c[1], c[2])
		b := p.Sample(c[0]+eps, c[1], c[2])
		assert.InDelta(t, a, b, 1e-4)
	}
}
