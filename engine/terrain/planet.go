package terrain

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-planet/engine/mesh"
)

const (
	// DefaultTerrainSubdivisions is the icosphere level of the displaced terrain mesh.
	DefaultTerrainSubdivisions = 15

	// DefaultWaterSubdivisions is the coarser icosphere level of the water shell.
	DefaultWaterSubdivisions = 10
)

// PlanetConfig selects the base sphere resolutions and the uniform scale of the planet.
type PlanetConfig struct {
	// TerrainSubdivisions is the icosphere subdivision level of the terrain mesh.
	TerrainSubdivisions int

	// WaterSubdivisions is the icosphere subdivision level of the water shell.
	WaterSubdivisions int

	// Scale is the uniform model scale applied to both meshes at render time (settings planet_scale).
	Scale float32
}

// DefaultPlanetConfig returns the stock resolutions with unit scale.
//
// Returns:
//   - PlanetConfig: terrain level 15, water level 10, scale 1
func DefaultPlanetConfig() PlanetConfig {
	return PlanetConfig{
		TerrainSubdivisions: DefaultTerrainSubdivisions,
		WaterSubdivisions:   DefaultWaterSubdivisions,
		Scale:               1,
	}
}

// Planet holds the generated meshes. Positions are in unit-sphere model space; Scale is applied
// as the model transform so the terrain pattern is independent of planet size.
type Planet struct {
	// Terrain is the displaced sphere.
	Terrain *mesh.Mesh

	// Water is the undisplaced shell, rendered alpha blended and without casting shadows.
	Water *mesh.Mesh

	// Scale is the uniform model scale for both meshes.
	Scale float32
}

// GeneratePlanet builds the terrain and water meshes. It runs the displacement once; callers
// are expected to invoke it a single time per process.
//
// Parameters:
//   - d: the displacer producing terrain relief
//   - cfg: resolutions and scale
//
// Returns:
//   - *Planet: the generated meshes
//   - error: error if a base sphere cannot be built or displaced
func GeneratePlanet(d Displacer, cfg PlanetConfig) (*Planet, error) {
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("terrain: planet scale must be positive, got %v", cfg.Scale)
	}

	ground, err := mesh.Icosphere(cfg.TerrainSubdivisions)
	if err != nil {
		return nil, fmt.Errorf("terrain: base sphere: %w", err)
	}
	if err := d.DisplaceMesh(ground); err != nil {
		return nil, err
	}

	water, err := WaterShell(cfg.WaterSubdivisions)
	if err != nil {
		return nil, err
	}

	return &Planet{
		Terrain: ground,
		Water:   water,
		Scale:   cfg.Scale,
	}, nil
}

// WaterShell builds the liquid surface: the same base sphere with a radial factor of exactly 1.
//
// Parameters:
//   - subdivisions: icosphere level of the shell
//
// Returns:
//   - *mesh.Mesh: the unit sphere
//   - error: error if the sphere cannot be built
func WaterShell(subdivisions int) (*mesh.Mesh, error) {
	water, err := mesh.Icosphere(subdivisions)
	if err != nil {
		return nil, fmt.Errorf("terrain: water shell: %w", err)
	}
	return water, nil
}
