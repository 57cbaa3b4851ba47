// Package terrain turns a unit base sphere into planetary relief by radially scaling each
// vertex with fractal noise, and builds the undisplaced water shell that sits below the peaks.
package terrain

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-planet/engine/mesh"
	"github.com/Carmen-Shannon/oxy-planet/engine/noise"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvertingOctaves is returned when an octave table could push a vertex through the sphere center.
var ErrInvertingOctaves = errors.New("terrain: octave weights allow a non-positive radial factor")

// DefaultChunkSize is the number of vertices each worker task displaces.
const DefaultChunkSize = 1024

// Displacer computes terrain relief for unit-sphere vertex positions.
type Displacer interface {
	// RadialFactor returns the scale applied to a unit-sphere position:
	// 1 + Σ weight_i * noise(freq_i * base_frequency * p).
	//
	// Parameters:
	//   - p: a unit-sphere vertex position
	//
	// Returns:
	//   - float64: the radial factor, always > 0
	RadialFactor(p mgl32.Vec3) float64

	// Displace returns a new position set where every input position is scaled by its radial factor.
	// The output has the same length and order as the input; an empty input yields an empty output.
	//
	// Parameters:
	//   - positions: unit-sphere vertex positions
	//
	// Returns:
	//   - []mgl32.Vec3: displaced positions
	Displace(positions []mgl32.Vec3) []mgl32.Vec3

	// DisplaceMesh replaces a mesh's position buffer with its displaced positions.
	//
	// Parameters:
	//   - m: the base sphere mesh
	//
	// Returns:
	//   - error: error if the mesh rejects the buffer
	DisplaceMesh(m *mesh.Mesh) error

	// BaseFrequency returns the spatial frequency applied before the octaves.
	//
	// Returns:
	//   - float64: the base frequency
	BaseFrequency() float64

	// Octaves returns a copy of the octave table.
	//
	// Returns:
	//   - Octaves: the displacement layers
	Octaves() Octaves

	// MinRadialFactor returns the guaranteed lower bound of RadialFactor.
	//
	// Returns:
	//   - float64: 1 - NoiseBound * Σ|weight_i|
	MinRadialFactor() float64
}

type displacerImpl struct {
	field         noise.Field
	baseFrequency float64
	octaves       Octaves

	chunkSize int
	workers   int
	pool      worker.DynamicWorkerPool
}

var _ Displacer = &displacerImpl{}

// NewDisplacer creates a Displacer with the default seed, base frequency and octave table.
// Inputs larger than one chunk are split across a worker pool; the result does not depend on
// how the work was chunked.
//
// Parameters:
//   - options: functional options to configure the displacer
//
// Returns:
//   - Displacer: the configured displacer
//   - error: ErrInvertingOctaves if the octaves could invert a vertex, or an error for a bad frequency
func NewDisplacer(options ...DisplacerOption) (Displacer, error) {
	d := &displacerImpl{
		baseFrequency: DefaultBaseFrequency,
		octaves:       append(Octaves(nil), DefaultOctaves...),
		chunkSize:     DefaultChunkSize,
		workers:       max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(d)
	}

	if d.field == nil {
		d.field = noise.NewPerlin(noise.DefaultSeed)
	}
	if d.baseFrequency <= 0 || math.IsNaN(d.baseFrequency) || math.IsInf(d.baseFrequency, 0) {
		return nil, fmt.Errorf("terrain: base frequency must be positive and finite, got %v", d.baseFrequency)
	}
	if d.MinRadialFactor() <= 0 {
		return nil, fmt.Errorf("%w: max amplitude %.3f", ErrInvertingOctaves, d.octaves.MaxAmplitude())
	}
	if d.chunkSize <= 0 {
		d.chunkSize = DefaultChunkSize
	}
	if d.workers > 1 {
		// Queue size of 256 holds every chunk of a 15-subdivision sphere with headroom.
		d.pool = worker.NewDynamicWorkerPool(d.workers, 256, 1*time.Second)
	}
	return d, nil
}

func (d *displacerImpl) RadialFactor(p mgl32.Vec3) float64 {
	f := d.baseFrequency
	return 1.0 + d.octaves.Sum(d.field, float64(p[0])*f, float64(p[1])*f, float64(p[2])*f)
}

func (d *displacerImpl) Displace(positions []mgl32.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(positions))
	if len(positions) == 0 {
		return out
	}

	if d.pool == nil || len(positions) <= d.chunkSize {
		d.displaceRange(positions, out, 0, len(positions))
		return out
	}

	// Each task writes a disjoint range of out; the WaitGroup is the barrier.
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(positions); start += d.chunkSize {
		end := min(start+d.chunkSize, len(positions))
		wg.Add(1)
		lo, hi := start, end
		d.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				d.displaceRange(positions, out, lo, hi)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
	return out
}

func (d *displacerImpl) displaceRange(in, out []mgl32.Vec3, lo, hi int) {
	for i := lo; i < hi; i++ {
		out[i] = in[i].Mul(float32(d.RadialFactor(in[i])))
	}
}

func (d *displacerImpl) DisplaceMesh(m *mesh.Mesh) error {
	if err := m.SetPositions(d.Displace(m.Positions())); err != nil {
		return fmt.Errorf("terrain: displace %q: %w", m.Name(), err)
	}
	return nil
}

func (d *displacerImpl) BaseFrequency() float64 {
	return d.baseFrequency
}

func (d *displacerImpl) Octaves() Octaves {
	return append(Octaves(nil), d.octaves...)
}

func (d *displacerImpl) MinRadialFactor() float64 {
	return 1 - NoiseBound*d.octaves.MaxAmplitude()
}
