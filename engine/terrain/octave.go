package terrain

import (
	"math"

	"github.com/Carmen-Shannon/oxy-planet/engine/noise"
)

// DefaultBaseFrequency scales unit-sphere positions before the first noise octave.
const DefaultBaseFrequency = 5.0

// NoiseBound is the magnitude assumed for a single noise sample when bounding the radial factor.
// Improved Perlin noise stays within ±1; the extra margin covers gradient-noise overshoot.
const NoiseBound = 1.1

// Octave is one layer of fractal displacement: noise sampled at FrequencyMultiplier times the
// base-scaled point, contributing Weight to the radial factor.
type Octave struct {
	FrequencyMultiplier float64
	Weight              float64
}

// DefaultOctaves is the tuned three-layer terrain profile: continents, hills and surface roughness.
var DefaultOctaves = []Octave{
	{FrequencyMultiplier: 1, Weight: 0.2},
	{FrequencyMultiplier: 3, Weight: 0.05},
	{FrequencyMultiplier: 10, Weight: 0.01},
}

// SingleOctave is the one-layer profile: one sample at the base frequency weighted 0.2.
var SingleOctave = []Octave{
	{FrequencyMultiplier: 1, Weight: 0.2},
}

// Octaves is an ordered list of displacement layers.
type Octaves []Octave

// Sum evaluates Σ weight_i * field(freq_i * p) at an already base-scaled point.
//
// Parameters:
//   - field: the noise field to sample
//   - x, y, z: the base-scaled sample point
//
// Returns:
//   - float64: the weighted octave sum
func (o Octaves) Sum(field noise.Field, x, y, z float64) float64 {
	sum := 0.0
	for _, oct := range o {
		f := oct.FrequencyMultiplier
		sum += oct.Weight * field.Sample(x*f, y*f, z*f)
	}
	return sum
}

// MaxAmplitude returns Σ|weight_i|, the largest displacement the octaves can produce for unit noise.
func (o Octaves) MaxAmplitude() float64 {
	total := 0.0
	for _, oct := range o {
		total += math.Abs(oct.Weight)
	}
	return total
}
