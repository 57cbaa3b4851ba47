// Package settings loads the demo's settings record from a TOML file.
//
// The record is read once at startup and is immutable afterwards; every consumer receives
// the same *Settings and must treat it as read-only.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the demo looks for its settings file.
const DefaultPath = "assets/config/settings.toml"

var (
	// ErrInvalidRange is returned when min_distance exceeds max_distance or planet_scale is not positive.
	ErrInvalidRange = errors.New("settings: invalid range")

	// ErrNotFinite is returned when a numeric setting is NaN or infinite.
	ErrNotFinite = errors.New("settings: value is not finite")

	// ErrMissingKey is returned when the file omits a key. Every key is required.
	ErrMissingKey = errors.New("settings: missing key")

	// ErrArity is returned when look_at does not hold exactly three numbers.
	ErrArity = errors.New("settings: wrong number of elements")
)

// Settings is the demo's configuration record.
type Settings struct {
	// MouseSpeed converts pointer motion in pixels to rotation in radians during free-look.
	MouseSpeed float32 `toml:"mouse_speed"`

	// PlanetScale is the uniform model scale of the planet meshes.
	PlanetScale float32 `toml:"planet_scale"`

	// LookAt is the orbit target the automatic camera faces.
	LookAt mgl32.Vec3 `toml:"look_at"`

	// MinDistance is the closest the automatic orbit gets to the target.
	MinDistance float32 `toml:"min_distance"`

	// MaxDistance is the farthest the automatic orbit gets from the target.
	MaxDistance float32 `toml:"max_distance"`

	// EnableAtmosphere is the initial state of the atmosphere toggle.
	EnableAtmosphere bool `toml:"enable_atmosphere"`

	// EnableStars is the initial state of the star field toggle.
	EnableStars bool `toml:"enable_stars"`
}

// document mirrors Settings with every field optional so absent keys can be told apart
// from zero values.
type document struct {
	MouseSpeed       *float32  `toml:"mouse_speed"`
	PlanetScale      *float32  `toml:"planet_scale"`
	LookAt           []float32 `toml:"look_at"`
	MinDistance      *float32  `toml:"min_distance"`
	MaxDistance      *float32  `toml:"max_distance"`
	EnableAtmosphere *bool     `toml:"enable_atmosphere"`
	EnableStars      *bool     `toml:"enable_stars"`
}

// settings converts the document, naming every absent key.
func (d *document) settings() (*Settings, error) {
	var missing []string
	f32 := func(key string, v *float32) float32 {
		if v == nil {
			missing = append(missing, key)
			return 0
		}
		return *v
	}
	flag := func(key string, v *bool) bool {
		if v == nil {
			missing = append(missing, key)
			return false
		}
		return *v
	}

	s := &Settings{
		MouseSpeed:       f32("mouse_speed", d.MouseSpeed),
		PlanetScale:      f32("planet_scale", d.PlanetScale),
		MinDistance:      f32("min_distance", d.MinDistance),
		MaxDistance:      f32("max_distance", d.MaxDistance),
		EnableAtmosphere: flag("enable_atmosphere", d.EnableAtmosphere),
		EnableStars:      flag("enable_stars", d.EnableStars),
	}
	if d.LookAt == nil {
		missing = append(missing, "look_at")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingKey, strings.Join(missing, ", "))
	}
	if len(d.LookAt) != 3 {
		return nil, fmt.Errorf("%w: look_at has %d, want 3", ErrArity, len(d.LookAt))
	}
	s.LookAt = mgl32.Vec3{d.LookAt[0], d.LookAt[1], d.LookAt[2]}
	return s, nil
}

// LoadError reports a settings file that could not be read, parsed or validated.
type LoadError struct {
	// Path is the settings file name.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *LoadError) Error() string {
	var decodeErr *toml.DecodeError
	if errors.As(e.Err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("settings %s:%d:%d: %v", e.Path, row, col, e.Err)
	}
	return fmt.Sprintf("settings %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and validates the settings file at path.
//
// Parameters:
//   - path: the TOML settings file
//
// Returns:
//   - *Settings: the loaded record
//   - error: a *LoadError identifying the file and the failure reason
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Decode(bytes.NewReader(data), path)
}

// Decode parses a settings record from r. Unknown and missing keys are rejected.
//
// Parameters:
//   - r: the TOML document
//   - name: the source name used in error messages
//
// Returns:
//   - *Settings: the decoded record
//   - error: a *LoadError identifying the source and the failure reason
func Decode(r io.Reader, name string) (*Settings, error) {
	var doc document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	s, err := doc.settings()
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if err := s.Validate(); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return s, nil
}

// Validate checks the record's numeric invariants.
//
// Returns:
//   - error: ErrNotFinite or ErrInvalidRange wrapped with the offending field, or nil
func (s *Settings) Validate() error {
	if !common.Finite32(s.MouseSpeed, s.PlanetScale, s.MinDistance, s.MaxDistance, s.LookAt[0], s.LookAt[1], s.LookAt[2]) {
		return ErrNotFinite
	}
	if s.MinDistance > s.MaxDistance {
		return fmt.Errorf("%w: min_distance %v > max_distance %v", ErrInvalidRange, s.MinDistance, s.MaxDistance)
	}
	if s.PlanetScale <= 0 {
		return fmt.Errorf("%w: planet_scale %v must be positive", ErrInvalidRange, s.PlanetScale)
	}
	return nil
}
