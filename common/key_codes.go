package common

import "strconv"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA     = 65  // A key (ASCII), toggles the atmosphere
	KeyS     = 83  // S key (ASCII), toggles the star field
	KeyQ     = 81  // Q key (ASCII), quits the demo
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW), releases the captured pointer
)

// Mouse button codes, matching glfw.MouseButton values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonLeft   = 0 // captures the pointer for free-look
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// KeyName returns the lower-case display name of a key code as shown in on-screen hints.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - string: the key name, or "key <code>" for keys without a name
func KeyName(keyCode uint32) string {
	switch {
	case keyCode >= KeyA && keyCode <= KeyA+25:
		return string(rune('a' + keyCode - KeyA))
	case keyCode >= '0' && keyCode <= '9':
		return string(rune(keyCode))
	case keyCode == KeySpace:
		return "space"
	case keyCode == KeyEsc:
		return "esc"
	}
	return "key " + strconv.FormatUint(uint64(keyCode), 10)
}
