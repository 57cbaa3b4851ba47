package terrain

import "github.com/Carmen-Shannon/oxy-planet/engine/noise"

// DisplacerOption is a functional option for configuring a Displacer.
type DisplacerOption func(*displacerImpl)

// WithField sets the noise field sampled by every octave.
//
// Parameters:
//   - field: the noise field (defaults to Perlin with noise.DefaultSeed)
//
// Returns:
//   - DisplacerOption: functional option to set the field
func WithField(field noise.Field) DisplacerOption {
	return func(d *displacerImpl) {
		d.field = field
	}
}

// WithBaseFrequency sets the spatial frequency applied to unit-sphere positions.
//
// Parameters:
//   - frequency: must be positive
//
// Returns:
//   - DisplacerOption: functional option to set the base frequency
func WithBaseFrequency(frequency float64) DisplacerOption {
	return func(d *displacerImpl) {
		d.baseFrequency = frequency
	}
}

// WithOctaves replaces the octave table.
//
// Parameters:
//   - octaves: displacement layers, evaluated in order
//
// Returns:
//   - DisplacerOption: functional option to set the octaves
func WithOctaves(octaves ...Octave) DisplacerOption {
	return func(d *displacerImpl) {
		d.octaves = append(Octaves(nil), octaves...)
	}
}

// WithWorkers sets the maximum number of pool workers. Values <= 1 displace on the calling goroutine.
//
// Parameters:
//   - workers: worker count
//
// Returns:
//   - DisplacerOption: functional option to set the worker count
func WithWorkers(workers int) DisplacerOption {
	return func(d *displacerImpl) {
		d.workers = workers
	}
}

// WithChunkSize sets how many vertices a single worker task displaces.
//
// Parameters:
//   - size: vertices per task
//
// Returns:
//   - DisplacerOption: functional option to set the chunk size
func WithChunkSize(size int) DisplacerOption {
	return func(d *displacerImpl) {
		d.chunkSize = size
	}
}
