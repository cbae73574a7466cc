// meshview - an interactive viewer for OBJ and STL models.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/logger"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "meshview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting meshview",
		zap.String("variant", cfg.Viewer.Variant),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if path := config.ModelPath(); path != "" {
		app.Open(path)
	}

	app.Run()
	return nil
}
