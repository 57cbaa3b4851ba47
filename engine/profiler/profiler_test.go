package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestTickReportsOncePerInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second))

	for i := 0; i < 9; i++ {
		clock.advance(100 * time.Millisecond)
		assert.False(t, p.Tick(), "frame %d", i)
	}
	clock.advance(100 * time.Millisecond)
	require.True(t, p.Tick())

	s := p.Last()
	assert.Equal(t, 10, s.Frames)
	assert.InDelta(t, 10.0, s.FPS, 1e-9)
	assert.Equal(t, 100*time.Millisecond, s.MinFrame)
	assert.Equal(t, 100*time.Millisecond, s.MaxFrame)
}

func TestTickTracksFrameExtremes(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second))

	for _, d := range []time.Duration{200, 50, 750} {
		clock.advance(d * time.Millisecond)
		p.Tick()
	}

	s := p.Last()
	assert.Equal(t, 3, s.Frames)
	assert.Equal(t, 50*time.Millisecond, s.MinFrame)
	assert.Equal(t, 750*time.Millisecond, s.MaxFrame)
	assert.Contains(t, s.String(), "FPS: 3.00")
}

func TestIntervalResets(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second))

	clock.advance(time.Second)
	require.True(t, p.Tick())
	clock.advance(10 * time.Millisecond)
	assert.False(t, p.Tick())
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithClock(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.now)
}
