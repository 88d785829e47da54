package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/olimci/rayforge/cmd/ui/genui"
	"github.com/olimci/rayforge/pkg/events"
	"github.com/olimci/rayforge/pkg/generate"
	"github.com/olimci/rayforge/pkg/project"
	"github.com/olimci/rayforge/pkg/version"
	"github.com/urfave/cli/v3"
)

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "src", Aliases: []string{"i"}, Usage: "Comma-separated source files (selects the custom template)"},
		&cli.StringFlag{Name: "rpc", Usage: "Load project settings from a .rpc file (its entries override other flags)"},
		&cli.StringFlag{Name: "project-name", Aliases: []string{"pn"}, Usage: "Internal project name (files and executable)"},
		&cli.StringFlag{Name: "repo-name", Aliases: []string{"rn"}, Usage: "Repository name (defaults to the project name)"},
		&cli.StringFlag{Name: "commercial-name", Aliases: []string{"cn"}, Usage: "Commercial product name"},
		&cli.StringFlag{Name: "project-version", Aliases: []string{"pv"}, Usage: "Project version"},
		&cli.StringFlag{Name: "desc", Usage: "Project description"},
		&cli.StringFlag{Name: "dev", Usage: "Developer or studio name"},
		&cli.StringFlag{Name: "devurl", Usage: "Developer website"},
		&cli.StringFlag{Name: "devmail", Usage: "Developer email"},
		&cli.StringFlag{Name: "raylib", Usage: "raylib source path baked into build files"},
		&cli.StringFlag{Name: "comp", Usage: "Compiler toolchain path baked into build files"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output directory (project lands in a subdirectory)"},
		&cli.StringFlag{Name: "template", Usage: "Source template: basic, advanced or custom"},
		&cli.StringFlag{Name: "systems", Usage: "Comma-separated build systems: script, makefile, vscode, vs2022"},
		&cli.StringFlag{Name: "template-dir", Value: "templates", Usage: "Directory holding the project templates"},
		&cli.BoolFlag{Name: "no-ui", Usage: "Disable the interactive wizard and progress UI"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress output"},
	}
}

// New generates a project from flags, an optional .rpc file and, on a
// terminal, the interactive wizard.
func New(ctx context.Context, cmd *cli.Command) error {
	quiet := cmd.Bool("quiet")
	templateDir := cmd.String("template-dir")

	var handler events.Handler = events.NoopHandler{}
	if !quiet {
		handler = newEventPrinter(eventOutputRich, os.Stdout)
	}

	cfg, err := configFromFlags(cmd, handler)
	if err != nil {
		return err
	}

	if wantWizard(cmd, cfg) {
		maybeShowWelcome()
		ok, err := runWizard(ctx, cfg)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	checkConfig(cfg, handler)

	if wantProgressUI(cmd) {
		return generateWithUI(ctx, cfg, templateDir)
	}

	return generatePlain(ctx, cfg, templateDir, handler, quiet)
}

// configFromFlags builds the project configuration: defaults, then
// individual flag values, then the .rpc file when given. Entries present
// in the file override the flags.
func configFromFlags(cmd *cli.Command, handler events.Handler) (*project.Config, error) {
	cfg := project.NewConfig()

	setString := func(flag string, dest *string) {
		if s := strings.TrimSpace(cmd.String(flag)); s != "" {
			*dest = s
		}
	}

	setString("project-name", &cfg.Project.InternalName)
	setString("repo-name", &cfg.Project.RepoName)
	setString("commercial-name", &cfg.Project.CommercialName)
	setString("project-version", &cfg.Project.Version)
	setString("desc", &cfg.Project.Description)
	setString("dev", &cfg.Project.DeveloperName)
	setString("devurl", &cfg.Project.DeveloperURL)
	setString("devmail", &cfg.Project.DeveloperEmail)
	setString("raylib", &cfg.Engine.SrcPath)
	setString("comp", &cfg.Platform.Windows.W64DevkitPath)
	setString("out", &cfg.Project.OutputPath)

	if src := cmd.String("src"); src != "" {
		cfg.Project.SourceFiles = splitList(src)
		cfg.Project.Template = project.TemplateCustom
	}

	if name := cmd.String("template"); name != "" {
		tmpl, err := parseTemplateName(name)
		if err != nil {
			return nil, err
		}
		cfg.Project.Template = tmpl
	}

	if list := cmd.String("systems"); list != "" {
		systems, err := parseSystems(list)
		if err != nil {
			return nil, err
		}
		cfg.Build.Systems = systems
	}

	if path := cmd.String("rpc"); path != "" {
		_, doc, err := project.LoadConfigDoc(path, handler)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		project.ApplyStore(cfg, doc)
	}

	return cfg, nil
}

// checkConfig surfaces advisory warnings about the assembled configuration:
// toolchain paths missing their marker file and non-numeric project
// versions. The values are used as given; generation proceeds.
func checkConfig(cfg *project.Config, handler events.Handler) {
	project.CheckPaths(cfg, handler)

	if _, err := version.Parse(cfg.Project.Version); err != nil {
		handler.Handle(events.Event{
			Level:   events.Warning,
			Source:  "PROJECT_VERSION",
			Message: "project version is not dotted numeric",
			Error:   err,
		})
	}
}

// maybeShowWelcome prints the first-run note and records in the tool
// preferences file that it has been seen. Preference failures are not worth
// failing a generation over.
func maybeShowWelcome() {
	path, err := project.AppConfigPath()
	if err != nil {
		return
	}

	prefs, err := project.LoadAppConfig(path)
	if err != nil || !prefs.ShowWelcome {
		return
	}

	fmt.Println("Welcome to rayforge! Answer the prompts to set up your raylib project.")
	fmt.Println()

	prefs.ShowWelcome = false
	_ = prefs.Save(path)
}

func wantWizard(cmd *cli.Command, cfg *project.Config) bool {
	if cmd.Bool("no-ui") || cmd.Bool("quiet") {
		return false
	}
	if cmd.String("rpc") != "" || cfg.Project.InternalName != "" {
		return false
	}
	return stdoutIsTerminal()
}

func wantProgressUI(cmd *cli.Command) bool {
	if cmd.Bool("no-ui") || cmd.Bool("quiet") {
		return false
	}
	return stdoutIsTerminal()
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func generatePlain(ctx context.Context, cfg *project.Config, templateDir string, handler events.Handler, quiet bool) error {
	collector := events.NewCollector(handler)

	result, err := generate.Generate(cfg, templateDir, cfg.Project.OutputPath,
		generate.WithContext(ctx),
		generate.WithHandler(collector),
	)
	if err != nil {
		return err
	}

	if !quiet {
		printDoneMessage(cfg, result.FilesCreated)
		for _, line := range formatSummary(collector.Summary()) {
			fmt.Println(line)
		}
	}

	return nil
}

func generateWithUI(ctx context.Context, cfg *project.Config, templateDir string) error {
	outcome, err := genui.Run(ctx, genui.Params{
		Config:      cfg,
		TemplateDir: templateDir,
		OutputDir:   cfg.Project.OutputPath,
	})
	if err != nil {
		return err
	}
	if outcome.Cancelled {
		fmt.Println("Cancelled.")
		return nil
	}
	if outcome.Err != nil {
		return outcome.Err
	}

	printDoneMessage(cfg, outcome.Result.FilesCreated)
	for _, line := range formatSummary(summarize(outcome.Events)) {
		fmt.Println(line)
	}

	return nil
}

func printDoneMessage(cfg *project.Config, files []string) {
	repo := cfg.Project.RepoName
	if repo == "" {
		repo = strings.ToLower(strings.TrimSpace(cfg.Project.InternalName))
	}
	dir := filepath.Join(cfg.Project.OutputPath, repo)

	fmt.Printf("Done! Created %d files in %s.\n", len(files), dir)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", dir)
	fmt.Println("  make            # Build with the generated Makefile")
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseTemplateName(name string) (project.Template, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return project.TemplateBasic, nil
	case "advanced":
		return project.TemplateAdvanced, nil
	case "custom":
		return project.TemplateCustom, nil
	default:
		return 0, fmt.Errorf("unknown template %q (expected basic, advanced or custom)", name)
	}
}

func parseSystems(list string) (project.BuildSystems, error) {
	var systems project.BuildSystems
	for _, name := range splitList(list) {
		switch strings.ToLower(name) {
		case "script":
			systems.Script = true
		case "makefile":
			systems.Makefile = true
		case "vscode":
			systems.VSCode = true
		case "vs2022":
			systems.VS2022 = true
		default:
			return project.BuildSystems{}, fmt.Errorf("unknown build system %q (expected script, makefile, vscode or vs2022)", name)
		}
	}
	return systems, nil
}
