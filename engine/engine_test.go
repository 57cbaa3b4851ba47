package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/asset"
	"github.com/Carmen-Shannon/oxy-planet/engine/light"
	"github.com/Carmen-Shannon/oxy-planet/engine/overlay"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
	"github.com/Carmen-Shannon/oxy-planet/engine/terrain"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow runs the update callback a bounded number of times and lets tests inject events
// from inside the loop.
type fakeWindow struct {
	maxIterations int
	iteration     int
	onIteration   func(w *fakeWindow, i int)

	closeRequested bool
	closed         bool

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(keyCode uint32)
	onKeyUp       func(keyCode uint32)
	onMouseButton func(button int, pressed bool)
	onMouseMove   func(x, y float32)
}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32))   { w.onKeyDown = cb }
func (w *fakeWindow) SetKeyUpCallback(cb func(keyCode uint32))     { w.onKeyUp = cb }
func (w *fakeWindow) SetMouseButtonCallback(cb func(int, bool))    { w.onMouseButton = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float32))   { w.onMouseMove = cb }
func (w *fakeWindow) SetCursorCaptured(bool)                       {}
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor   { return nil }
func (w *fakeWindow) IsRunning() bool                              { return !w.closeRequested && !w.closed }
func (w *fakeWindow) RequestClose()                                { w.closeRequested = true }
func (w *fakeWindow) Width() int                                   { return 1280 }
func (w *fakeWindow) Height() int                                  { return 720 }

func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for w.IsRunning() && w.iteration < w.maxIterations {
		if w.onIteration != nil {
			w.onIteration(w, w.iteration)
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		w.iteration++
	}
}

type fakeRenderer struct {
	renders   int
	resizes   [][2]int
	released  bool
	meshes    []scene.MeshSubmission
	overlays  []string
	renderErr error
	panicOn   int
}

func (r *fakeRenderer) SubmitMesh(m scene.MeshSubmission) error {
	r.meshes = append(r.meshes, m)
	return nil
}
func (r *fakeRenderer) SubmitCamera(scene.CameraSubmission)        {}
func (r *fakeRenderer) SubmitLight(light.DirectionalLight)         {}
func (r *fakeRenderer) SubmitOverlay(text string, _ overlay.Style) { r.overlays = append(r.overlays, text) }
func (r *fakeRenderer) Release()                                   { r.released = true }

func (r *fakeRenderer) Resize(width, height int) error {
	r.resizes = append(r.resizes, [2]int{width, height})
	return nil
}

func (r *fakeRenderer) Render() error {
	r.renders++
	if r.panicOn > 0 && r.renders == r.panicOn {
		panic("device lost")
	}
	return r.renderErr
}

type fakeClock struct {
	t      time.Time
	slept  []time.Duration
	frames time.Duration
}

func (c *fakeClock) now() time.Time {
	t := c.t
	c.t = c.t.Add(c.frames)
	return t
}

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
}

func newTestScene(t *testing.T, r scene.Renderer) scene.Scene {
	t.Helper()
	d, err := terrain.NewDisplacer(terrain.WithWorkers(1))
	require.NoError(t, err)
	cfg := &settings.Settings{MouseSpeed: 0.01, PlanetScale: 1, MinDistance: 3, MaxDistance: 8, EnableAtmosphere: true}
	return scene.NewScene(
		scene.WithSettings(asset.Loaded("settings", cfg)),
		scene.WithRenderer(r),
		scene.WithDisplacer(d),
		scene.WithPlanetConfig(terrain.PlanetConfig{TerrainSubdivisions: 2, WaterSubdivisions: 1}),
	)
}

func TestStepAdvancesSceneAndRenders(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestScene(t, r)
	e := NewEngine(WithScene(s), WithRenderer(r))

	require.NoError(t, e.Step())
	assert.Equal(t, uint64(1), e.Frames())
	assert.Equal(t, 1, r.renders)
	assert.Equal(t, scene.GenerationDone, s.Generation())
	assert.Len(t, r.meshes, 2)

	require.NoError(t, e.Step())
	assert.Equal(t, 1, s.Generations())
	assert.NotEmpty(t, r.overlays[len(r.overlays)-1])
}

func TestStepWrapsRenderError(t *testing.T) {
	boom := errors.New("surface lost")
	r := &fakeRenderer{renderErr: boom}
	e := NewEngine(WithRenderer(r))

	err := e.Step()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "render")
	assert.Equal(t, uint64(0), e.Frames())
}

func TestStepHonoursFrameLimit(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0), frames: 4 * time.Millisecond}
	e := NewEngine(WithClock(clock.now, clock.sleep), WithFrameLimit(100))

	require.NoError(t, e.Step())
	require.Len(t, clock.slept, 1)
	assert.Equal(t, 6*time.Millisecond, clock.slept[0])
}

func TestStepUncappedNeverSleeps(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	e := NewEngine(WithClock(clock.now, clock.sleep), WithFrameLimit(0))

	require.NoError(t, e.Step())
	assert.Empty(t, clock.slept)
}

func TestRunWithoutWindow(t *testing.T) {
	assert.ErrorIs(t, NewEngine().Run(), ErrNoWindow)
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	r := &fakeRenderer{}
	w := &fakeWindow{maxIterations: 5}
	e := NewEngine(WithWindow(w), WithScene(newTestScene(t, r)), WithRenderer(r))

	require.NoError(t, e.Run())
	assert.Equal(t, 5, r.renders)
	assert.True(t, r.released)
	assert.True(t, w.closed)
}

func TestRunQuitsOnQ(t *testing.T) {
	r := &fakeRenderer{}
	w := &fakeWindow{maxIterations: 100}
	w.onIteration = func(w *fakeWindow, i int) {
		if i == 2 {
			w.onKeyDown(common.KeyQ)
		}
	}
	e := NewEngine(WithWindow(w), WithScene(newTestScene(t, r)), WithRenderer(r))

	require.NoError(t, e.Run())
	assert.Equal(t, 2, r.renders)
	assert.True(t, w.closeRequested)
}

func TestRunStopsOnFrameError(t *testing.T) {
	boom := errors.New("surface lost")
	r := &fakeRenderer{renderErr: boom}
	w := &fakeWindow{maxIterations: 10}
	e := NewEngine(WithWindow(w), WithRenderer(r))

	require.ErrorIs(t, e.Run(), boom)
	assert.Equal(t, 1, r.renders)
	assert.True(t, r.released)
}

func TestRunRecoversPanic(t *testing.T) {
	r := &fakeRenderer{panicOn: 2}
	w := &fakeWindow{maxIterations: 10}
	e := NewEngine(WithWindow(w), WithRenderer(r))

	err := e.Run()
	require.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "device lost")
	assert.True(t, r.released)
	assert.True(t, w.closed)
}

func TestPointerCaptureRouting(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestScene(t, r)
	w := &fakeWindow{maxIterations: 4}
	w.onIteration = func(w *fakeWindow, i int) {
		switch i {
		case 0:
			w.onMouseButton(common.MouseButtonRight, true)
			assert.False(t, s.Capture().Captured(), "right button")
			w.onMouseButton(common.MouseButtonLeft, false)
			assert.False(t, s.Capture().Captured(), "left release")
			w.onMouseButton(common.MouseButtonLeft, true)
			assert.True(t, s.Capture().Captured())
		case 1:
			w.onMouseMove(10, 10)
			w.onMouseMove(13, 14)
			assert.Equal(t, 1, s.Pointer().Pending())
		case 2:
			w.onKeyDown(common.KeyEsc)
			assert.False(t, s.Capture().Captured())
		}
	}
	e := NewEngine(WithWindow(w), WithScene(s), WithRenderer(r))

	require.NoError(t, e.Run())
	assert.Equal(t, 4, r.renders)
}

func TestKeysReachScene(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestScene(t, r)
	w := &fakeWindow{maxIterations: 2}
	w.onIteration = func(w *fakeWindow, i int) {
		if i == 0 {
			w.onKeyDown(common.KeyA)
		}
	}
	e := NewEngine(WithWindow(w), WithScene(s), WithRenderer(r))

	require.NoError(t, e.Run())
	assert.False(t, s.Toggles().Atmosphere)
}

func TestResizeUpdatesRendererAndAspect(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestScene(t, r)
	w := &fakeWindow{maxIterations: 1}
	w.onIteration = func(w *fakeWindow, i int) {
		w.onResize(800, 400)
		w.onResize(0, 0)
	}
	e := NewEngine(WithWindow(w), WithScene(s), WithRenderer(r))

	require.NoError(t, e.Run())
	assert.Equal(t, [][2]int{{800, 400}, {0, 0}}, r.resizes)
	assert.InDelta(t, 2.0, s.Camera().Aspect(), 1e-6)
}

func TestQuitIsIdempotent(t *testing.T) {
	w := &fakeWindow{}
	e := NewEngine(WithWindow(w))
	e.Quit()
	e.Quit()
	assert.True(t, w.closeRequested)
}
