package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyName(t *testing.T) {
	assert.Equal(t, "a", KeyName(KeyA))
	assert.Equal(t, "s", KeyName(KeyS))
	assert.Equal(t, "z", KeyName(90))
	assert.Equal(t, "7", KeyName('7'))
	assert.Equal(t, "space", KeyName(KeySpace))
	assert.Equal(t, "esc", KeyName(KeyEsc))
	assert.Equal(t, "key 300", KeyName(300))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 3, Coalesce(0, 0, 3, 4))
	assert.Equal(t, "", Coalesce("", ""))
}

func TestFinite32(t *testing.T) {
	var zero float32
	assert.True(t, Finite32(1, -2, 0))
	assert.False(t, Finite32(1, zero/zero))
	assert.True(t, ApproxEqual32(1, 1.0005, 0.001))
	assert.False(t, ApproxEqual32(1, 1.01, 0.001))
}
