// Package input holds the per-frame input state the camera and scene consume: the pointer
// capture flag, accumulated pointer motion and key bindings.
package input

import "log"

// Capture is the pointer capture flag. Captured selects free-look, released selects the
// automatic orbit. It is driven by window events and read once per frame.
type Capture struct {
	captured bool
	onChange func(captured bool)
}

// NewCapture creates a released Capture.
//
// Parameters:
//   - onChange: called after every transition, or nil
//
// Returns:
//   - *Capture: the capture flag
func NewCapture(onChange func(captured bool)) *Capture {
	return &Capture{onChange: onChange}
}

// Capture sets the flag. It reports whether the state changed.
func (c *Capture) Capture() bool {
	return c.set(true)
}

// Release clears the flag. It reports whether the state changed.
func (c *Capture) Release() bool {
	return c.set(false)
}

// Captured reports the current state.
func (c *Capture) Captured() bool {
	return c.captured
}

func (c *Capture) set(captured bool) bool {
	if c.captured == captured {
		return false
	}
	c.captured = captured
	log.Printf("[Input] pointer captured: %v", captured)
	if c.onChange != nil {
		c.onChange(captured)
	}
	return true
}
