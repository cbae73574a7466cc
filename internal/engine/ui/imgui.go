// Package ui provides the ImGui backend and widgets of the viewer window.
package ui

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// latinGlyphRanges covers the accented Latin file names most often dropped.
// Format: pairs of [start, end] values terminated by 0.
var latinGlyphRanges = []imgui.Wchar{
	0x0020, 0x00FF, // Basic Latin + Latin Supplement
	0x0100, 0x024F, // Latin Extended-A and B
	0,              // Terminator
}

// Options configures the window.
type Options struct {
	Title    string
	Width    int32
	Height   int32
	FontPath string // optional TTF; the built-in font is used when empty or missing
	FontSize float32
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	opts    Options
	title   string
}

// NewBackend creates the window and initializes OpenGL.
func NewBackend(opts Options) (*Backend, error) {
	b := &Backend{opts: opts, title: opts.Title}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Set up font loading hook before creating window
	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont()
	})

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(opts.Title, int(opts.Width), int(opts.Height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

// GLInfo returns the OpenGL version and renderer strings.
func GLInfo() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}

func (b *Backend) loadFont() {
	if b.opts.FontPath == "" {
		return
	}
	if _, err := os.Stat(b.opts.FontPath); err != nil {
		return
	}

	size := b.opts.FontSize
	if size <= 0 {
		size = 16
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	imgui.CurrentIO().Fonts().AddFontFromFileTTFV(b.opts.FontPath, size, fontCfg, &latinGlyphRanges[0])
}

// OnDrop registers fn to receive the paths of files dropped on the window.
func (b *Backend) OnDrop(fn func(paths []string)) {
	b.backend.SetDropCallback(func(paths []string) {
		fn(paths)
	})
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title if it changed.
func (b *Backend) SetWindowTitle(title string) {
	if title == b.title {
		return
	}
	b.title = title
	b.backend.SetWindowTitle(title)
}

// Close asks the main loop to exit.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// GetViewport returns the main viewport work area.
func GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// WantTextInput reports whether a widget is capturing the keyboard, in which
// case shortcuts are ignored.
func WantTextInput() bool {
	return imgui.CurrentIO().WantTextInput()
}
