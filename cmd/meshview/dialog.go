package main

import (
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/ingest"
	"github.com/Faultbox/meshview/internal/logger"
)

// openFileDialog shows a native file dialog to pick a model.
func (app *App) openFileDialog() {
	if !app.dialogOpen.CompareAndSwap(false, true) {
		return
	}

	// Run in goroutine to not block the UI. The window belongs to the main
	// thread, so the result only goes through the queue.
	go func() {
		defer app.dialogOpen.Store(false)

		filename, err := dialog.File().
			Filter("3D Models", modelExtensions()...).
			Filter("All Files", "*").
			Title("Open Model").
			Load()

		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("file dialog failed", zap.Error(err))
			}
			return
		}

		app.queue.push(filename)
	}()
}

// modelExtensions returns the picker filter for the supported formats.
func modelExtensions() []string {
	exts := ingest.SupportedExtensions()
	out := make([]string, len(exts))
	for i, ext := range exts {
		out[i] = string(ext)
	}
	return out
}
