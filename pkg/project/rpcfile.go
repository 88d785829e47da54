package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olimci/rayforge/pkg/events"
	"github.com/olimci/rayforge/pkg/fileutils"
	"github.com/olimci/rayforge/pkg/kvconf"
)

// LoadConfig reads a project definition file into a typed configuration.
// A missing file reports kvconf.ErrNotFound; callers treat that as "no
// file" and keep whatever configuration they already hold. Keys with an
// unrecognized category segment are flagged through handler but still kept
// in the underlying document, so saving does not lose them.
func LoadConfig(path string, handler events.Handler) (*Config, error) {
	cfg, _, err := LoadConfigDoc(path, handler)
	return cfg, err
}

// LoadConfigDoc is LoadConfig but also returns the raw document, for
// callers that need to edit entries in place and save them back.
func LoadConfigDoc(path string, handler events.Handler) (*Config, *kvconf.Doc, error) {
	if handler == nil {
		handler = events.NoopHandler{}
	}

	doc, err := kvconf.Load(path, kvconf.WithHandler(handler))
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range doc.Entries {
		if _, err := Classify(entry.Key, entry.IsText); err != nil {
			handler.Handle(events.Event{
				Level:   events.Warning,
				Source:  entry.Key,
				Message: "unrecognized key category",
				Error:   err,
			})
		}
	}

	return ParseStore(doc), doc, nil
}

var rpcHeader = []string{
	"",
	"raylib project configuration",
	"",
	"This file contains all required data to define a raylib C/C++ project",
	"and allow building it for multiple platforms",
	"",
	"Project configuration is organized in several categories, depending on usage requirements",
	"CATEGORIES:",
	"   - PROJECT: Project definition properties, required for project generation",
	"   - BUILD: Project build properties, required for project building, generic for all platforms",
	"   - PLATFORM: Platform-specific properties, required for building for that platform",
	"   - DEPLOY: Deployment properties, required to distribute the generated build",
	"   - IMAGERY: Project imagery properties, required for distribution on some stores and marketing",
	"",
	"This file follows certain conventions to display the information in",
	"an easy-configurable UI manner when loaded by supporting tools",
	"CONVENTIONS:",
	"   - ID containing [_FLAG_]: Value is considered a boolean, displayed as a checkbox",
	"   - ID with an unquoted value: Value is considered an integer",
	"   - ID ending with _FILE or _FILES: Value is considered a text file path",
	"   - ID ending with _PATH: Value is considered a text directory path",
	"",
	"NOTE: The description of each entry is used as tooltip when editing it",
}

var categorySections = []struct {
	category Category
	title    string
}{
	{CategoryProject, "Project settings"},
	{CategoryBuild, "Build settings"},
	{CategoryPlatform, "Platform settings"},
	{CategoryDeploy, "Deploy settings"},
	{CategoryImagery, "Imagery settings"},
	{CategoryEngine, "raylib settings"},
}

// SaveConfig writes cfg as a project definition file: the standard header
// comment block, then every mapped key grouped by category under a short
// section banner.
func SaveConfig(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating parent directory for %s: %w", path, err)
		}
	}

	gen := func(w io.Writer) error { return encodeConfig(cfg, w) }
	if err := fileutils.AtomicWrite(path, gen); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func encodeConfig(cfg *Config, w io.Writer) error {
	header := kvconf.New(0)
	for _, line := range rpcHeader {
		header.SetComment(line)
	}
	if err := header.Encode(w); err != nil {
		return err
	}

	for _, section := range categorySections {
		group := kvconf.New(0)
		group.SetComment(section.title)
		group.SetComment(strings.Repeat("-", 84))

		for i := range bindings {
			b := &bindings[i]

			class, err := Classify(b.key, b.text != nil)
			if err != nil || class.Category != section.category {
				continue
			}

			switch {
			case b.text != nil:
				err = group.SetText(b.key, *b.text(cfg), b.desc)
			case b.flag != nil:
				err = group.SetValue(b.key, boolInt(*b.flag(cfg)), b.desc)
			case b.num != nil:
				err = group.SetValue(b.key, *b.num(cfg), b.desc)
			}
			if err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := group.Encode(w); err != nil {
			return err
		}
	}

	return nil
}
