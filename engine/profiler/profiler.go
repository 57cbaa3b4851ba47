// Package profiler reports frame timing and memory statistics to the log and, optionally,
// serves a live runtime dashboard.
package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Stats is one reporting interval's summary.
type Stats struct {
	Frames   int
	FPS      float64
	MinFrame time.Duration
	MaxFrame time.Duration
	HeapMB   float64
	GCCount  uint32
}

// String formats the summary the way it is logged.
func (s Stats) String() string {
	return fmt.Sprintf("FPS: %.2f | Frame: %s min, %s max | Heap: %.2f MB | GC: %d",
		s.FPS, s.MinFrame, s.MaxFrame, s.HeapMB, s.GCCount)
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastFrame      time.Time
	minFrame       time.Duration
	maxFrame       time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	now            func() time.Time
	last           Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are reported.
//
// Parameters:
//   - interval: the reporting interval (ignored if <= 0)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithClock replaces the wall clock, mainly for tests.
//
// Parameters:
//   - now: the time source
//
// Returns:
//   - ProfilerOption: option function to apply
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options for the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	p.lastFrame = p.lastTime
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	currentTime := p.now()
	frame := currentTime.Sub(p.lastFrame)
	p.lastFrame = currentTime
	if p.frameCount == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.frameCount++

	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	p.last = Stats{
		Frames:   p.frameCount,
		FPS:      float64(p.frameCount) / elapsed.Seconds(),
		MinFrame: p.minFrame,
		MaxFrame: p.maxFrame,
		HeapMB:   float64(p.memStats.Alloc) / 1024 / 1024,
		GCCount:  p.memStats.NumGC,
	}
	log.Printf("[Profiler] %s", p.last)

	p.frameCount = 0
	p.minFrame = 0
	p.maxFrame = 0
	p.lastTime = currentTime
	return true
}

// Last returns the most recently reported interval.
func (p *Profiler) Last() Stats {
	return p.last
}

// StartStatsView serves the statsview runtime dashboard on addr in the background.
// Configuration must be set before statsview.New, so this should only be called once.
//
// Parameters:
//   - addr: listen address, e.g. "localhost:18066"
func StartStatsView(addr string) {
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()
	log.Printf("[Profiler] statsview listening on http://%s/debug/statsview", addr)
}
