// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/meshview/internal/interaction"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Camera  CameraConfig  `yaml:"camera"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ViewerConfig holds interaction settings.
type ViewerConfig struct {
	Variant       string `yaml:"variant"`        // "simple" or "dual"
	ScreenshotDir string `yaml:"screenshot_dir"` // empty: working directory
}

// CameraConfig holds orbit camera sensitivities.
type CameraConfig struct {
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
}

// UIConfig holds font settings.
type UIConfig struct {
	FontPath string  `yaml:"font_path"`
	FontSize float32 `yaml:"font_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "meshview",
		},
		Viewer: ViewerConfig{
			Variant: string(interaction.VariantDual),
		},
		Camera: CameraConfig{
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.1,
		},
		UI: UIConfig{
			FontSize: 16,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings that the viewer cannot run without.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if _, err := interaction.ParseVariant(c.Viewer.Variant); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Camera.DragSensitivity <= 0 || c.Camera.ZoomSensitivity <= 0 {
		return fmt.Errorf("%w: camera sensitivity must be positive", ErrInvalidConfig)
	}
	if c.UI.FontSize < 0 {
		return fmt.Errorf("%w: font size %v", ErrInvalidConfig, c.UI.FontSize)
	}
	return nil
}

// Variant returns the validated interaction variant, falling back to dual.
func (c *Config) Variant() interaction.Variant {
	v, err := interaction.ParseVariant(c.Viewer.Variant)
	if err != nil {
		return interaction.VariantDual
	}
	return v
}
