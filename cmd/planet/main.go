// Command planet opens a window showing a procedurally displaced planet with an orbiting camera.
//
// Environment:
//
//	OXY_SETTINGS   settings file (default assets/config/settings.toml)
//	OXY_TEXTURE    optional stacked array texture image; the planet is untextured without it
//	OXY_STATSVIEW  address for the statsview runtime dashboard, e.g. localhost:18066
//	OXY_PROFILE    any non-empty value logs frame statistics once per second
//	SENTRY_DSN     reports fatal errors and frame loop panics to Sentry
package main

import (
	"log"
	"os"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-planet/engine"
	"github.com/Carmen-Shannon/oxy-planet/engine/asset"
	"github.com/Carmen-Shannon/oxy-planet/engine/input"
	"github.com/Carmen-Shannon/oxy-planet/engine/profiler"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/scene"
	"github.com/Carmen-Shannon/oxy-planet/engine/settings"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/getsentry/sentry-go"
)

func init() {
	// GLFW and the surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Printf("[Main] sentry disabled: %v", err)
		}
	}
	defer sentry.Flush(2 * time.Second)

	if addr := os.Getenv("OXY_STATSVIEW"); addr != "" {
		profiler.StartStatsView(addr)
	}

	settingsPath := envOr("OXY_SETTINGS", settings.DefaultPath)
	cfg, err := settings.Load(settingsPath)
	if err != nil {
		fatal(err)
	}
	log.Printf("[Main] settings loaded from %s", settingsPath)

	pool := worker.NewDynamicWorkerPool(2, 16, 1*time.Second)

	var textureHandle *asset.Handle[*texture.Image]
	if path := os.Getenv("OXY_TEXTURE"); path != "" {
		textureHandle = asset.Load(pool, path, func() (*texture.Image, error) {
			return texture.LoadFile(path)
		})
	}

	win, err := window.NewWindow(window.WithTitle("oxy-planet"), window.WithSize(1280, 720))
	if err != nil {
		fatal(err)
	}

	pointer := input.NewPointerAccumulator()
	capture := input.NewCapture(func(captured bool) {
		win.SetCursorCaptured(captured)
		pointer.ResetOrigin()
		pointer.Discard()
	})

	r, err := renderer.NewRenderer(win)
	if err != nil {
		_ = win.Close()
		fatal(err)
	}

	opts := []scene.SceneBuilderOption{
		scene.WithSettings(asset.Loaded(settingsPath, cfg)),
		scene.WithRenderer(r),
		scene.WithInput(capture, pointer),
	}
	if textureHandle != nil {
		opts = append(opts, scene.WithTexture(textureHandle))
	}
	s := scene.NewScene(opts...)
	s.Camera().SetAspect(float32(win.Width()) / float32(win.Height()))

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(s),
		engine.WithRenderer(r),
		engine.WithProfiling(os.Getenv("OXY_PROFILE") != ""),
	)
	if err := e.Run(); err != nil {
		fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// fatal logs err, reports it when Sentry is configured and exits with status 1.
func fatal(err error) {
	log.Printf("[Main] fatal: %v", err)
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	os.Exit(1)
}
