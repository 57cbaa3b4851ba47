// Package engine drives the demo's frame loop: window events in, one scene frame and one
// presented image out per iteration.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/profiler"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/getsentry/sentry-go"
)

var (
	// ErrNoWindow is returned by Run when the engine was built without a window.
	ErrNoWindow = errors.New("engine has no window")

	// ErrPanic wraps a panic recovered from the frame loop.
	ErrPanic = errors.New("frame loop panicked")
)

// FrameRenderer is the part of the renderer the frame loop drives. renderer.Renderer satisfies it.
type FrameRenderer interface {
	Resize(width, height int) error
	Render() error
	Release()
}

// engine implements the Engine interface.
type engine struct {
	window   window.Window
	scene    scene.Scene
	renderer FrameRenderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameLimit time.Duration // minimum frame duration; 0 = uncapped
	clock      func() time.Time
	sleep      func(time.Duration)
	start      time.Time
	frames     uint64

	running  atomic.Bool
	quitOnce sync.Once
	stopOnce sync.Once
	failure  error
}

// Engine is the main entry point for the demo.
// It owns the frame loop and routes window input to the scene.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance, or nil when running headless
	Window() window.Window

	// Scene returns the scene advanced each frame.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Step runs a single frame: the scene frame with the time since startup, then a render.
	//
	// Returns:
	//   - error: error if the scene or the renderer failed
	Step() error

	// Frames returns how many frames have completed.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Run binds window input and runs the frame loop until the window closes or Quit is called.
	// Resources are released before it returns.
	//
	// Returns:
	//   - error: the first frame error, a recovered panic, or ErrNoWindow
	Run() error

	// Quit stops the loop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
		clock:    time.Now,
		sleep:    time.Sleep,
	}
	for _, opt := range options {
		opt(e)
	}
	e.start = e.clock()
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetFrameLimit(fps float64) {
	if fps <= 0 {
		e.frameLimit = 0
		return
	}
	e.frameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Frames() uint64 {
	return e.frames
}

func (e *engine) Step() error {
	frameStart := e.clock()
	elapsed := float32(frameStart.Sub(e.start).Seconds())

	if e.scene != nil {
		if err := e.scene.Frame(elapsed); err != nil {
			return fmt.Errorf("scene frame: %w", err)
		}
	}
	if e.renderer != nil {
		if err := e.renderer.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	e.frames++

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.clock().Sub(frameStart); remaining > 0 {
			e.sleep(remaining)
		}
	}
	return nil
}

func (e *engine) Run() (err error) {
	if e.window == nil {
		return ErrNoWindow
	}
	defer e.recoverFrameLoop(&err)

	e.bindWindow()
	e.running.Store(true)
	e.window.SetUpdateCallback(func() {
		if !e.running.Load() {
			return
		}
		if stepErr := e.Step(); stepErr != nil {
			log.Printf("[Engine] stopping: %v", stepErr)
			e.failure = stepErr
			e.Quit()
		}
	})

	log.Printf("[Engine] frame loop started")
	e.window.ProcessMessages()
	e.shutdown()
	log.Printf("[Engine] frame loop stopped after %d frames", e.frames)
	return e.failure
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// recoverFrameLoop reports a panic to sentry, releases resources and turns it into an error.
func (e *engine) recoverFrameLoop(err *error) {
	r := recover()
	if r == nil {
		return
	}
	hub := sentry.CurrentHub().Clone()
	hub.Recover(r)
	hub.Flush(5 * time.Second)
	log.Printf("[Engine] recovered from panic: %v", r)
	e.running.Store(false)
	e.shutdown()
	*err = fmt.Errorf("%w: %v", ErrPanic, r)
}

func (e *engine) shutdown() {
	e.stopOnce.Do(func() {
		if e.renderer != nil {
			e.renderer.Release()
		}
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				log.Printf("[Engine] failed to close window: %v", err)
			}
		}
	})
}

// bindWindow routes window events to the scene and renderer.
func (e *engine) bindWindow() {
	e.window.SetKeyDownCallback(e.handleKeyDown)
	e.window.SetMouseButtonCallback(e.handleMouseButton)
	e.window.SetMouseMoveCallback(func(x, y float32) {
		if e.scene != nil {
			e.scene.Pointer().MoveTo(x, y)
		}
	})
	e.window.SetResizeCallback(e.handleResize)
}

func (e *engine) handleKeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyQ:
		log.Printf("[Engine] quit requested")
		e.Quit()
	case common.KeyEsc:
		if e.scene != nil {
			e.scene.Capture().Release()
		}
	default:
		if e.scene != nil {
			e.scene.PressKey(keyCode)
		}
	}
}

func (e *engine) handleMouseButton(button int, pressed bool) {
	if button != common.MouseButtonLeft || !pressed || e.scene == nil {
		return
	}
	e.scene.Capture().Capture()
}

func (e *engine) handleResize(width, height int) {
	if e.renderer != nil {
		if err := e.renderer.Resize(width, height); err != nil {
			log.Printf("[Engine] resize to %dx%d failed: %v", width, height, err)
		}
	}
	if e.scene != nil && width > 0 && height > 0 {
		e.scene.Camera().SetAspect(float32(width) / float32(height))
	}
}
