package input

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/elliotchance/orderedmap/v2"
)

// Binding maps a key press to an action with a human readable label.
type Binding struct {
	// Key is the virtual key code.
	Key uint32

	// Label describes the action in on-screen hints, e.g. "toggle stars".
	Label string

	// Action runs on key press.
	Action func()
}

// Bindings is a key binding registry that preserves registration order.
type Bindings struct {
	entries *orderedmap.OrderedMap[uint32, Binding]
}

// NewBindings creates an empty registry.
func NewBindings() *Bindings {
	return &Bindings{entries: orderedmap.NewOrderedMap[uint32, Binding]()}
}

// Bind registers binding. Rebinding a key replaces its entry in place.
//
// Parameters:
//   - binding: the binding to register
func (b *Bindings) Bind(binding Binding) {
	b.entries.Set(binding.Key, binding)
}

// Unbind removes the binding for key. It reports whether one existed.
func (b *Bindings) Unbind(key uint32) bool {
	return b.entries.Delete(key)
}

// Handle runs the action bound to key.
//
// Parameters:
//   - key: the pressed key code
//
// Returns:
//   - bool: true if a binding handled the key
func (b *Bindings) Handle(key uint32) bool {
	binding, ok := b.entries.Get(key)
	if !ok {
		return false
	}
	if binding.Action != nil {
		binding.Action()
	}
	return true
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	return b.entries.Len()
}

// Hints returns one "key - label" line per binding in registration order.
// Bindings without a label are omitted.
func (b *Bindings) Hints() []string {
	hints := make([]string, 0, b.entries.Len())
	for _, key := range b.entries.Keys() {
		binding, _ := b.entries.Get(key)
		if binding.Label == "" {
			continue
		}
		hints = append(hints, fmt.Sprintf("%s - %s", common.KeyName(key), binding.Label))
	}
	return hints
}
