package input

import (
	"log"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
)

// Toggles holds the runtime visual feature switches. They start from the settings record,
// which itself is never modified.
type Toggles struct {
	Atmosphere bool
	Stars      bool
}

// NewToggles seeds the switches from s. A nil s leaves both off.
func NewToggles(s *settings.Settings) *Toggles {
	if s == nil {
		return &Toggles{}
	}
	return &Toggles{Atmosphere: s.EnableAtmosphere, Stars: s.EnableStars}
}

// Bind registers the atmosphere toggle on A and the star toggle on S.
//
// Parameters:
//   - b: the registry to add the bindings to
func (t *Toggles) Bind(b *Bindings) {
	b.Bind(Binding{Key: common.KeyA, Label: "toggle atmosphere", Action: func() {
		t.Atmosphere = !t.Atmosphere
		log.Printf("[Input] atmosphere: %v", t.Atmosphere)
	}})
	b.Bind(Binding{Key: common.KeyS, Label: "toggle stars", Action: func() {
		t.Stars = !t.Stars
		log.Printf("[Input] stars: %v", t.Stars)
	}})
}
