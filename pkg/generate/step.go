package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olimci/rayforge/pkg/events"
	"github.com/olimci/rayforge/pkg/fileutils"
	"github.com/olimci/rayforge/pkg/project"
)

// Result records what generation wrote, relative to the project root.
type Result struct {
	FilesCreated []string
	DirsCreated  []string
}

// Step is one unit of the generation pipeline, run in declaration order.
type Step struct {
	ID string
	Fn func(*StepContext) error
}

// StepContext carries the shared state each step operates on.
type StepContext struct {
	Ctx    context.Context
	Config *project.Config
	StepID string // for event attribution

	templateRoot string
	outRoot      string // <output>/<repoName>
	internal     string // lowercased internal name, used in file names
	repo         string

	manifest *Manifest
	extra    Chain // manifest-defined tokens, applied after each built-in chain
	handler  events.Handler
	result   *Result
}

func (sc *StepContext) report(level events.Level, source, message string, err error) {
	sc.handler.Handle(events.Event{
		Level:   level,
		Step:    sc.StepID,
		Source:  source,
		Message: message,
		Error:   err,
	})
}

// Infof reports step progress.
func (sc *StepContext) Infof(source, format string, args ...any) {
	sc.report(events.Info, source, fmt.Sprintf(format, args...), nil)
}

// Warn reports a recoverable problem; generation continues.
func (sc *StepContext) Warn(source, message string, err error) {
	sc.report(events.Warning, source, message, err)
}

// Error reports a fatal step failure and returns the error the step should
// propagate.
func (sc *StepContext) Error(source, message string, err error) error {
	sc.report(events.Error, source, message, err)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", source, message, err)
	}
	return fmt.Errorf("%s: %s", source, message)
}

// mkdirOut creates a directory under the project root, recording it.
func (sc *StepContext) mkdirOut(rel string) error {
	if err := os.MkdirAll(filepath.Join(sc.outRoot, rel), 0755); err != nil {
		return err
	}
	sc.result.DirsCreated = append(sc.result.DirsCreated, rel)
	return nil
}

// copyTemplate copies a template file verbatim into the project tree.
func (sc *StepContext) copyTemplate(srcRel, destRel string) error {
	src := filepath.Join(sc.templateRoot, filepath.FromSlash(srcRel))
	if err := sc.copyFile(src, destRel); err != nil {
		return err
	}
	return nil
}

// copyFile copies any file into the project tree, recording it.
func (sc *StepContext) copyFile(src, destRel string) error {
	if err := fileutils.Copy(src, filepath.Join(sc.outRoot, filepath.FromSlash(destRel))); err != nil {
		return err
	}
	sc.result.FilesCreated = append(sc.result.FilesCreated, destRel)
	return nil
}

// renderTemplate loads a template file, applies the substitution chain
// followed by any manifest-defined tokens, and writes the result into the
// project tree.
func (sc *StepContext) renderTemplate(srcRel, destRel string, chain Chain) error {
	src := filepath.Join(sc.templateRoot, filepath.FromSlash(srcRel))

	raw, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("loading template %s: %w", srcRel, err)
	}

	content := chain.Apply(string(raw))
	content = sc.extra.Apply(content)

	dest := filepath.Join(sc.outRoot, filepath.FromSlash(destRel))
	if err := fileutils.WriteText(dest, content); err != nil {
		return err
	}
	sc.result.FilesCreated = append(sc.result.FilesCreated, destRel)
	return nil
}
