package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// PointerAccumulator sums pointer motion between frames. Events may arrive at any
// granularity; the consumer drains once per frame. Safe for concurrent use.
type PointerAccumulator struct {
	mu      sync.Mutex
	sum     mgl32.Vec2
	events  int
	last    mgl32.Vec2
	hasLast bool
}

// NewPointerAccumulator creates an empty accumulator.
func NewPointerAccumulator() *PointerAccumulator {
	return &PointerAccumulator{}
}

// Push adds a relative motion event.
//
// Parameters:
//   - dx: horizontal motion in pixels, positive to the right
//   - dy: vertical motion in pixels, positive downwards
func (p *PointerAccumulator) Push(dx, dy float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sum = p.sum.Add(mgl32.Vec2{dx, dy})
	p.events++
}

// MoveTo records an absolute cursor position and pushes the motion since the previous one.
// The first position after construction or ResetOrigin only sets the origin.
//
// Parameters:
//   - x, y: cursor position in pixels
func (p *PointerAccumulator) MoveTo(x, y float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos := mgl32.Vec2{x, y}
	if p.hasLast {
		p.sum = p.sum.Add(pos.Sub(p.last))
		p.events++
	}
	p.last = pos
	p.hasLast = true
}

// ResetOrigin forgets the last absolute position so the next MoveTo does not produce a jump.
func (p *PointerAccumulator) ResetOrigin() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hasLast = false
}

// Drain returns the summed motion since the previous drain and clears it.
func (p *PointerAccumulator) Drain() mgl32.Vec2 {
	p.mu.Lock()
	defer p.mu.Unlock()
	sum := p.sum
	p.sum = mgl32.Vec2{}
	p.events = 0
	return sum
}

// Discard clears pending motion without returning it.
func (p *PointerAccumulator) Discard() {
	p.Drain()
}

// Pending returns the number of motion events waiting to be drained.
func (p *PointerAccumulator) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events
}
