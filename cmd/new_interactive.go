package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/olimci/rayforge/pkg/project"
	"github.com/olimci/rayforge/pkg/version"
)

// runWizard walks the user through the project settings on a terminal.
// Returns false when the user aborts.
func runWizard(ctx context.Context, cfg *project.Config) (bool, error) {
	systems := systemNames(cfg.Build.Systems)
	var customSources string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Internal name, used for files and the executable").
				Placeholder("my_game").
				Validate(requireName).
				Value(&cfg.Project.InternalName),
			huh.NewInput().
				Title("Commercial name").
				Description("Shown in docs and web pages").
				Value(&cfg.Project.CommercialName),
			huh.NewInput().
				Title("Repository name").
				Description("Defaults to the lowercased project name").
				Value(&cfg.Project.RepoName),
			huh.NewInput().
				Title("Version").
				Validate(validProjectVersion).
				Value(&cfg.Project.Version),
			huh.NewInput().
				Title("Description").
				Value(&cfg.Project.Description),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Developer").
				Value(&cfg.Project.DeveloperName),
			huh.NewInput().
				Title("Developer website").
				Value(&cfg.Project.DeveloperURL),
			huh.NewInput().
				Title("Developer email").
				Value(&cfg.Project.DeveloperEmail),
		),
		huh.NewGroup(
			huh.NewSelect[project.Template]().
				Title("Template").
				Options(
					huh.NewOption("basic: single source file", project.TemplateBasic),
					huh.NewOption("advanced: screen manager skeleton", project.TemplateAdvanced),
					huh.NewOption("custom: your own source files", project.TemplateCustom),
				).
				Value(&cfg.Project.Template),
			huh.NewInput().
				Title("Source files").
				Description("Comma separated, used by the custom template").
				Value(&customSources),
			huh.NewMultiSelect[string]().
				Title("Build systems").
				Options(
					huh.NewOption("build script", "script").Selected(cfg.Build.Systems.Script),
					huh.NewOption("Makefile", "makefile").Selected(cfg.Build.Systems.Makefile),
					huh.NewOption("VSCode", "vscode").Selected(cfg.Build.Systems.VSCode),
					huh.NewOption("VS2022", "vs2022").Selected(cfg.Build.Systems.VS2022),
				).
				Value(&systems),
			huh.NewInput().
				Title("Output directory").
				Value(&cfg.Project.OutputPath),
			huh.NewInput().
				Title("raylib source path").
				Description("Baked into the generated build files").
				Value(&cfg.Engine.SrcPath),
			huh.NewInput().
				Title("Compiler path").
				Description("w64devkit toolchain directory").
				Value(&cfg.Platform.Windows.W64DevkitPath),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}

	parsed, err := parseSystems(strings.Join(systems, ","))
	if err != nil {
		return false, err
	}
	cfg.Build.Systems = parsed

	if customSources != "" {
		cfg.Project.SourceFiles = splitList(customSources)
	}
	if cfg.Project.OutputPath == "" {
		cfg.Project.OutputPath = "."
	}

	return true, nil
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

func validProjectVersion(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := version.Parse(s)
	return err
}

func systemNames(systems project.BuildSystems) []string {
	var names []string
	if systems.Script {
		names = append(names, "script")
	}
	if systems.Makefile {
		names = append(names, "makefile")
	}
	if systems.VSCode {
		names = append(names, "vscode")
	}
	if systems.VS2022 {
		names = append(names, "vs2022")
	}
	return names
}
