package project

import (
	"os"
	"path/filepath"

	"github.com/olimci/rayforge/pkg/events"
)

// Marker files that prove a toolchain directory is what it claims to be.
const (
	raylibMarker   = "raylib.h"
	compilerMarker = "gcc.exe"
)

// CheckPaths warns through handler about toolchain paths that fail their
// sanity check: an engine source path without raylib.h, a compiler path
// without gcc.exe. The paths are kept as given either way; generation does
// not block on them.
func CheckPaths(cfg *Config, handler events.Handler) {
	if handler == nil {
		handler = events.NoopHandler{}
	}

	check := func(dir, marker, source, message string) {
		if dir == "" {
			return
		}
		if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
			handler.Handle(events.Event{
				Level:   events.Warning,
				Source:  source,
				Message: message,
			})
		}
	}

	check(cfg.Engine.SrcPath, raylibMarker,
		"RAYLIB_SRC_PATH", "raylib source path does not contain "+raylibMarker)
	check(cfg.Platform.Windows.W64DevkitPath, compilerMarker,
		"PLATFORM_WINDOWS_W64DEVKIT_PATH", "compiler path does not contain "+compilerMarker)
}
