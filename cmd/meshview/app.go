package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/gizmo"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/ui"
	"github.com/Faultbox/meshview/internal/ingest"
	"github.com/Faultbox/meshview/internal/interaction"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/internal/viewer"
)

const (
	panelWidth      = float32(300)
	statusBarHeight = float32(30)
	noticeDuration  = 2 * time.Second
)

// App is the viewer window and everything it drives.
type App struct {
	cfg     *config.Config
	variant interaction.Variant

	backend  *ui.Backend
	renderer *renderer.Renderer

	holder     *viewer.Holder
	controller *interaction.Controller
	sliders    interaction.Sliders
	camera     *camera.OrbitCamera
	input      *viewInput
	shots      *debug.ScreenshotCapture

	// Loads run on their own goroutines and stop when ctx is cancelled.
	ctx    context.Context
	cancel context.CancelFunc
	loads  sync.WaitGroup

	queue       loadQueue
	status      statusLine
	statusText  string
	unsubscribe func()
	dialogOpen  atomic.Bool

	screenshotRequested bool
	notice              string
	noticeTime          time.Time
}

// NewApp creates the window, the renderer and the viewer state.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:     cfg,
		variant: cfg.Variant(),
		shots:   debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "meshview"),
	}
	app.ctx, app.cancel = context.WithCancel(context.Background())

	var err error
	app.backend, err = ui.NewBackend(ui.Options{
		Title:    cfg.Window.Title,
		Width:    int32(cfg.Window.Width),
		Height:   int32(cfg.Window.Height),
		FontPath: cfg.UI.FontPath,
		FontSize: cfg.UI.FontSize,
	})
	if err != nil {
		return nil, err
	}

	version, gpu := ui.GLInfo()
	logger.Info("opengl ready", zap.String("version", version), zap.String("renderer", gpu))

	app.renderer, err = renderer.New(int32(cfg.Window.Width)-int32(panelWidth), int32(cfg.Window.Height))
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	app.holder = viewer.NewHolder(ingest.NewDispatcher(ingest.DefaultParsers()), logger.Named("viewer"))
	app.unsubscribe = app.holder.Subscribe(app.status.set)
	app.statusText = app.holder.Snapshot().Status.String()

	app.controller = interaction.NewController(app.variant.DefaultMode())
	app.camera = camera.NewOrbitCamera()
	app.camera.DragSensitivity = cfg.Camera.DragSensitivity
	app.camera.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	app.input = newViewInput(app.controller, gizmo.NewArcball(), app.camera)

	app.backend.OnDrop(app.onDrop)

	return app, nil
}

// Close cancels running loads and releases GPU resources.
func (app *App) Close() {
	app.cancel()
	app.loads.Wait()
	if app.unsubscribe != nil {
		app.unsubscribe()
	}
	if app.renderer != nil {
		app.renderer.Destroy()
		app.renderer = nil
	}
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Open queues a model file for loading on the next frame.
func (app *App) Open(path string) {
	app.queue.push(path)
}

func (app *App) onDrop(paths []string) {
	if path, ok := app.holder.FirstDropped(paths); ok {
		app.queue.push(path)
	}
}

// load starts loading path in the background. A newer load supersedes it.
func (app *App) load(path string) {
	logger.Debug("load requested", zap.String("path", path))
	app.loads.Add(1)
	go func() {
		defer app.loads.Done()
		app.holder.Load(app.ctx, ingest.NewDiskFile(path))
	}()
}

func (app *App) reload() {
	app.loads.Add(1)
	go func() {
		defer app.loads.Done()
		if !app.holder.Reload(app.ctx) {
			logger.Debug("nothing to reload")
		}
	}()
}

// resetRotation returns the model to its loaded orientation.
func (app *App) resetRotation() {
	if app.variant == interaction.VariantSimple {
		app.sliders.Reset()
	}
	app.controller.ResetRotation()
}

// render is called each frame to draw the UI.
func (app *App) render() {
	// Capture at start of frame to get the previous frame's viewport
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	if path, ok := app.queue.take(); ok {
		app.load(path)
	}

	if s, changed := app.status.take(); changed {
		app.statusText = s.String()
		app.backend.SetWindowTitle(windowTitle(app.cfg.Window.Title, s))
	}

	app.handleShortcuts()

	snap := app.holder.Snapshot()
	if app.controller.Sync(snap.Model) {
		app.onModelChanged(snap)
	}
	if app.variant == interaction.VariantSimple {
		app.controller.SetRotation(app.sliders.Rotation())
	}

	posX, posY, width, height := ui.GetViewport()
	contentHeight := height - statusBarHeight
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - controls and model info
	imgui.SetNextWindowPos(imgui.NewVec2(posX, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, contentHeight))
	if imgui.BeginV("Model", nil, flags) {
		app.renderPanel(snap)
	}
	imgui.End()

	// Viewport
	viewFlags := flags | imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoScrollWithMouse
	imgui.SetNextWindowPos(imgui.NewVec2(posX+panelWidth, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(width-panelWidth, contentHeight))
	if imgui.BeginV("Viewport", nil, viewFlags) {
		app.renderViewport(snap)
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(posX, posY+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(width, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar(snap)
	}
	imgui.End()

	app.renderNotice(posX+panelWidth, posY)
}

// onModelChanged frames a newly loaded model.
func (app *App) onModelChanged(snap viewer.Snapshot) {
	app.sliders.Reset()
	if snap.Model == nil {
		app.camera.FitToRadius(1)
		return
	}
	app.camera.FitToRadius(snap.Model.Bounds.Radius())
}

func (app *App) handleShortcuts() {
	if imgui.IsAnyItemActive() || ui.WantTextInput() {
		return
	}

	if ui.IsKeyPressed(imgui.KeyO) {
		app.openFileDialog()
	}
	if ui.IsKeyPressed(imgui.KeyG) && app.variant == interaction.VariantDual {
		app.controller.ToggleMode()
	}
	if ui.IsKeyPressed(imgui.KeyR) {
		app.resetRotation()
	}
	if ui.IsKeyPressed(imgui.KeyF5) {
		app.reload()
	}
	ctrlQ := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyQ)
	if imgui.IsKeyChordPressed(ctrlQ) {
		app.backend.Close()
	}
	// F12 = request screenshot (captured next frame to get rendered content)
	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}
}

// captureScreenshot saves the viewport texture to a PNG file.
func (app *App) captureScreenshot() {
	pixels, width, height := app.renderer.ReadPixels()
	path, err := app.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		app.showNotice("Screenshot failed")
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	app.showNotice("Saved " + path)
}

func (app *App) showNotice(msg string) {
	app.notice = msg
	app.noticeTime = time.Now()
}

// renderNotice shows the last notice over the viewport for a short while.
func (app *App) renderNotice(x, y float32) {
	if app.notice == "" {
		return
	}
	if time.Since(app.noticeTime) >= noticeDuration {
		app.notice = ""
		return
	}

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	imgui.SetNextWindowPos(imgui.NewVec2(x+10, y+30))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##Notice", nil, flags) {
		imgui.Text(app.notice)
	}
	imgui.End()
}
