package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/olimci/rayforge/pkg/kvconf"
)

// Tool preference keys, shared across tool versions.
const (
	keyVisualStyle     = "GUI_VISUAL_STYLE"
	keyShowWelcome     = "SHOW_WINDOW_WELCOME"
	keyWindowMaximized = "INIT_WINDOW_MAXIMIZED"
)

const appConfigName = "rayforge.ini"

// AppConfig holds tool preferences persisted across runs, loaded at
// startup and saved at shutdown. It is distinct from the per-project
// definition file but shares the same on-disk format.
type AppConfig struct {
	VisualStyle     int
	ShowWelcome     bool
	WindowMaximized bool
}

// DefaultAppConfig returns the preferences applied when no config file
// exists yet.
func DefaultAppConfig() AppConfig {
	return AppConfig{ShowWelcome: true}
}

// AppConfigPath returns the per-user location of the preferences file.
func AppConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rayforge", appConfigName), nil
}

// LoadAppConfig reads preferences from path. A missing file is not an
// error: defaults are returned.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	doc, err := kvconf.Load(path)
	if errors.Is(err, kvconf.ErrNotFound) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	cfg.VisualStyle = doc.Value(keyVisualStyle)
	cfg.ShowWelcome = doc.Value(keyShowWelcome) != 0
	cfg.WindowMaximized = doc.Value(keyWindowMaximized) != 0
	return cfg, nil
}

// Save writes the preferences to path.
func (a AppConfig) Save(path string) error {
	doc := kvconf.New(0)
	doc.SetComment("")
	doc.SetComment("rayforge initialization configuration options")
	doc.SetComment("")
	doc.SetComment("NOTE: This file is loaded at application startup,")
	doc.SetComment("if file is not found, default values are applied")
	doc.SetComment("")

	if err := doc.SetValue(keyShowWelcome, boolInt(a.ShowWelcome), "Show welcome message at initialization"); err != nil {
		return err
	}
	if err := doc.SetValue(keyWindowMaximized, boolInt(a.WindowMaximized), "Initialize window maximized"); err != nil {
		return err
	}
	if err := doc.SetValue(keyVisualStyle, a.VisualStyle, "UI visual style selected"); err != nil {
		return err
	}

	return doc.Save(path)
}
