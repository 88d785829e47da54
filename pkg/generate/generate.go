// Package generate expands a project template directory into a complete
// raylib project tree: sources, build system files, CI workflows, platform
// resources and docs, with placeholder substitution driven by the project
// configuration.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olimci/rayforge/pkg/project"
)

var (
	ErrTemplateMissing = fmt.Errorf("template missing required entries")
	ErrNoProjectName   = fmt.Errorf("project internal name is required")
)

// Generate expands templateRoot into a project tree at
// <outputRoot>/<repoName>. The repo name defaults to the internal name;
// file names use the lowercased internal name. Steps run in a fixed order;
// a failing step stops the pipeline, leaving earlier output in place.
func Generate(cfg *project.Config, templateRoot, outputRoot string, opts ...Option) (*Result, error) {
	o := defaultOptions().apply(opts...)

	internal := strings.ToLower(strings.TrimSpace(cfg.Project.InternalName))
	if internal == "" {
		return nil, ErrNoProjectName
	}

	repo := cfg.Project.RepoName
	if repo == "" {
		repo = internal
	}

	// Validate before touching the output tree: a broken template must not
	// leave a half-written project behind.
	if err := validateTemplate(templateRoot); err != nil {
		return nil, err
	}

	man, err := LoadManifest(templateRoot)
	if err != nil {
		return nil, err
	}

	sc := &StepContext{
		Ctx:          o.ctx,
		Config:       cfg,
		templateRoot: templateRoot,
		outRoot:      filepath.Join(outputRoot, repo),
		internal:     internal,
		repo:         repo,
		manifest:     man,
		extra:        man.chain(),
		handler:      o.handler,
		result: &Result{
			FilesCreated: make([]string, 0),
			DirsCreated:  make([]string, 0),
		},
	}

	steps := assembleSteps(cfg)
	for i, step := range steps {
		select {
		case <-o.ctx.Done():
			return sc.result, o.ctx.Err()
		default:
		}

		if o.progress != nil {
			o.progress(step.ID, i+1, len(steps))
		}

		sc.StepID = step.ID
		if err := step.Fn(sc); err != nil {
			return sc.result, fmt.Errorf("step %s: %w", step.ID, err)
		}
	}

	return sc.result, nil
}

// assembleSteps builds the pipeline for cfg: sources and the project
// definition always run, build systems are individually flag-gated, then
// workflows, resources, docs and extra copies.
func assembleSteps(cfg *project.Config) []Step {
	steps := []Step{
		{ID: "sources", Fn: stepSources},
		{ID: "definition", Fn: stepDefinition},
	}

	if cfg.Build.Systems.Script {
		steps = append(steps, Step{ID: "script", Fn: stepScript})
	}
	if cfg.Build.Systems.Makefile {
		steps = append(steps, Step{ID: "makefile", Fn: stepMakefile})
	}
	if cfg.Build.Systems.VSCode {
		steps = append(steps, Step{ID: "vscode", Fn: stepVSCode})
	}
	if cfg.Build.Systems.VS2022 {
		steps = append(steps, Step{ID: "vs2022", Fn: stepVS2022})
	}

	steps = append(steps,
		Step{ID: "workflows", Fn: stepWorkflows},
		Step{ID: "resources", Fn: stepResources},
		Step{ID: "docs", Fn: stepDocs},
		Step{ID: "extras", Fn: stepExtras},
	)
	return steps
}

// validateTemplate checks the template root holds the minimum required
// entries: src/ and projects/ directories plus the project_name.rpc seed.
func validateTemplate(root string) error {
	var missing []string

	for _, dir := range []string{"src", "projects"} {
		info, err := os.Stat(filepath.Join(root, dir))
		if err != nil || !info.IsDir() {
			missing = append(missing, dir+"/")
		}
	}

	if _, err := os.Stat(filepath.Join(root, "project_name.rpc")); err != nil {
		missing = append(missing, "project_name.rpc")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (template root %s)", ErrTemplateMissing, strings.Join(missing, ", "), root)
	}
	return nil
}
