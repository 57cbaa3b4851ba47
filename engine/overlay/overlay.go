// Package overlay builds the on-screen hint line shown while the demo is playing.
package overlay

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// Separator joins individual hints on the overlay line.
const Separator = "   "

// Style describes how the overlay line is drawn. Positions are in pixels from the bottom edge.
type Style struct {
	FontSize float32
	Color    mgl32.Vec3
	Bottom   float32
}

// DefaultStyle is 15px light grey text 5px above the bottom edge.
var DefaultStyle = Style{FontSize: 15, Color: mgl32.Vec3{0.9, 0.9, 0.9}, Bottom: 5}

// Overlay renders key binding hints as a single line of text.
type Overlay struct {
	bindings *input.Bindings
	style    Style
	visible  bool
}

// New creates a hidden overlay that lists the hints of bindings.
//
// Parameters:
//   - bindings: the registry to describe
//   - style: the text style
//
// Returns:
//   - *Overlay: the overlay
func New(bindings *input.Bindings, style Style) *Overlay {
	return &Overlay{bindings: bindings, style: style}
}

// Text returns the hint line, e.g. "a - toggle atmosphere   s - toggle stars".
func (o *Overlay) Text() string {
	if o.bindings == nil {
		return ""
	}
	return strings.Join(o.bindings.Hints(), Separator)
}

// Style returns the text style.
func (o *Overlay) Style() Style {
	return o.style
}

// Show makes the overlay visible.
func (o *Overlay) Show() {
	o.visible = true
}

// Hide removes the overlay from the screen.
func (o *Overlay) Hide() {
	o.visible = false
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool {
	return o.visible
}
