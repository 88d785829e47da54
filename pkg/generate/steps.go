package generate

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/olimci/rayforge/pkg/project"
)

// Stock toolchain locations baked into the template files, replaced during
// substitution with the configured paths.
const (
	tokenCompilerWin  = `C:\raylib\w64devkit\bin`
	tokenCompilerUnix = `C:/raylib/w64devkit/bin`
	tokenRaylibWin    = `C:\raylib\raylib\src`
	tokenRaylibUnix   = `C:/raylib/raylib/src`
)

var screenFiles = []string{
	"screens.h",
	"screen_logo.c",
	"screen_title.c",
	"screen_options.c",
	"screen_gameplay.c",
	"screen_ending.c",
}

func (sc *StepContext) compilerPath() string {
	if p := sc.Config.Platform.Windows.W64DevkitPath; p != "" {
		return p
	}
	return project.DefaultCompilerPath
}

func (sc *StepContext) raylibSrcPath() string {
	if p := sc.Config.Engine.SrcPath; p != "" {
		return p
	}
	return project.DefaultRaylibSrcPath
}

// sourceFileNames returns the base names of the user-provided .c files,
// order preserved.
func (sc *StepContext) sourceFileNames() []string {
	names := make([]string, 0, len(sc.Config.Project.SourceFiles))
	for _, p := range sc.Config.Project.SourceFiles {
		if strings.EqualFold(filepath.Ext(p), ".c") {
			names = append(names, filepath.Base(p))
		}
	}
	return names
}

// sourceList is the space-joined compile unit list substituted for the
// project_name.c placeholder in Makefile and tasks templates.
func (sc *StepContext) sourceList() string {
	switch sc.Config.Project.Template {
	case project.TemplateAdvanced:
		return sc.internal + ".c screen_logo.c screen_title.c screen_options.c screen_gameplay.c screen_ending.c"
	case project.TemplateCustom:
		if names := sc.sourceFileNames(); len(names) > 0 {
			return strings.Join(names, " ")
		}
		return sc.internal + ".c"
	default:
		return sc.internal + ".c"
	}
}

func stepSources(sc *StepContext) error {
	if err := sc.mkdirOut("src/external"); err != nil {
		return sc.Error("src", "creating source directories", err)
	}

	switch sc.Config.Project.Template {
	case project.TemplateBasic:
		if err := sc.copyTemplate("src/project_name.c", "src/"+sc.internal+".c"); err != nil {
			return sc.Error("src", "copying basic source file", err)
		}
		sc.Infof("src", "copied src/%s.c", sc.internal)

	case project.TemplateAdvanced:
		if err := sc.copyTemplate("src/raylib_advanced.c", "src/"+sc.internal+".c"); err != nil {
			return sc.Error("src", "copying screen manager main file", err)
		}
		for _, name := range screenFiles {
			if err := sc.copyTemplate("src/"+name, "src/"+name); err != nil {
				return sc.Error("src", "copying "+name, err)
			}
		}
		sc.Infof("src", "copied screen manager skeleton with src/%s.c", sc.internal)

	case project.TemplateCustom:
		if len(sc.Config.Project.SourceFiles) == 0 {
			sc.Warn("src", "no source files provided", nil)
		}
		for _, src := range sc.Config.Project.SourceFiles {
			if err := sc.copyFile(src, "src/"+filepath.Base(src)); err != nil {
				return sc.Error("src", "copying "+filepath.Base(src), err)
			}
			sc.Infof("src", "copied src/%s", filepath.Base(src))
		}
	}

	return nil
}

func stepDefinition(sc *StepContext) error {
	cfg := sc.Config

	// Seed templates may use either bare tokens or the $(token) form.
	chain := tokenized(
		Replacement{Find: "project_name", Replace: sc.internal},
		Replacement{Find: "repo_name", Replace: sc.repo},
		Replacement{Find: "commercial_name", Replace: cfg.Project.CommercialName},
		Replacement{Find: "short_name", Replace: cfg.Project.ShortName},
		Replacement{Find: "project_version", Replace: cfg.Project.Version},
		Replacement{Find: "ProjectDescription", Replace: cfg.Project.Description},
		Replacement{Find: "ProjectDev", Replace: cfg.Project.DeveloperName},
		Replacement{Find: "developer_web", Replace: cfg.Project.DeveloperURL},
		Replacement{Find: "developer_email", Replace: cfg.Project.DeveloperEmail},
		Replacement{Find: "raylib_src_path", Replace: sc.raylibSrcPath()},
	)

	if err := sc.renderTemplate("project_name.rpc", sc.internal+".rpc", chain); err != nil {
		return sc.Error("definition", "emitting project definition", err)
	}
	sc.Infof("definition", "generated %s.rpc", sc.internal)
	return nil
}

func stepScript(sc *StepContext) error {
	chain := Chain{
		{Find: "project_name", Replace: sc.internal},
		{Find: "ProjectDescription", Replace: sc.Config.Project.Description},
		{Find: tokenCompilerWin, Replace: sc.compilerPath()},
	}

	if err := sc.renderTemplate("projects/scripts/build.bat", "projects/scripts/build.bat", chain); err != nil {
		return sc.Error("script", "updating build script", err)
	}
	sc.Infof("script", "updated build system: Script (projects/scripts/build.bat)")
	return nil
}

func stepMakefile(sc *StepContext) error {
	// project_name.c must go first: the bare project_name pass would
	// otherwise clip it.
	chain := Chain{
		{Find: "project_name.c", Replace: sc.sourceList()},
		{Find: "project_name", Replace: sc.internal},
		{Find: tokenCompilerWin, Replace: sc.compilerPath()},
		{Find: tokenRaylibUnix, Replace: sc.raylibSrcPath()},
	}

	if err := sc.renderTemplate("src/Makefile", "src/Makefile", chain); err != nil {
		return sc.Error("makefile", "updating Makefile", err)
	}
	sc.Infof("makefile", "updated build system: Makefile (src/Makefile)")
	return nil
}

func stepVSCode(sc *StepContext) error {
	launch := Chain{
		{Find: "project_name", Replace: sc.internal},
		{Find: tokenCompilerUnix, Replace: sc.compilerPath()},
	}
	if err := sc.renderTemplate("projects/VSCode/.vscode/launch.json", "projects/VSCode/.vscode/launch.json", launch); err != nil {
		return sc.Error("vscode", "updating launch.json", err)
	}

	props := Chain{
		{Find: tokenRaylibUnix, Replace: sc.raylibSrcPath()},
		{Find: tokenCompilerUnix, Replace: sc.compilerPath()},
	}
	if err := sc.renderTemplate("projects/VSCode/.vscode/c_cpp_properties.json", "projects/VSCode/.vscode/c_cpp_properties.json", props); err != nil {
		return sc.Error("vscode", "updating c_cpp_properties.json", err)
	}

	tasks := Chain{
		{Find: "project_name.c", Replace: sc.sourceList()},
		{Find: "project_name", Replace: sc.internal},
		{Find: tokenRaylibUnix, Replace: sc.raylibSrcPath()},
		{Find: tokenCompilerUnix, Replace: sc.compilerPath()},
	}
	if err := sc.renderTemplate("projects/VSCode/.vscode/tasks.json", "projects/VSCode/.vscode/tasks.json", tasks); err != nil {
		return sc.Error("vscode", "updating tasks.json", err)
	}

	for _, rel := range []string{
		"projects/VSCode/.vscode/settings.json",
		"projects/VSCode/main.code-workspace",
		"projects/VSCode/README.md",
	} {
		if err := sc.copyTemplate(rel, rel); err != nil {
			return sc.Error("vscode", "copying "+filepath.Base(rel), err)
		}
	}

	sc.Infof("vscode", "updated build system: VSCode (projects/VSCode)")
	return nil
}

const additionalCompileItems = `<ClCompile Include="..\..\..\src\screen_logo.c" />
    <ClCompile Include="..\..\..\src\screen_title.c" />
    <ClCompile Include="..\..\..\src\screen_options.c" />
    <ClCompile Include="..\..\..\src\screen_gameplay.c" />
    <ClCompile Include="..\..\..\src\screen_ending.c" />`

func stepVS2022(sc *StepContext) error {
	raylibProj := Chain{
		{Find: tokenRaylibWin, Replace: sc.raylibSrcPath()},
	}
	if err := sc.renderTemplate("projects/VS2022/raylib/raylib.vcxproj", "projects/VS2022/raylib/raylib.vcxproj", raylibProj); err != nil {
		return sc.Error("vs2022", "updating raylib.vcxproj", err)
	}

	var chain Chain
	switch sc.Config.Project.Template {
	case project.TemplateAdvanced:
		chain = Chain{
			{Find: "project_name.c", Replace: sc.internal + ".c"},
			{Find: "<!--Additional Compile Items-->", Replace: additionalCompileItems},
		}
	case project.TemplateCustom:
		names := sc.sourceFileNames()
		if len(names) == 0 {
			chain = Chain{{Find: "project_name.c", Replace: sc.internal + ".c"}}
			break
		}

		var block strings.Builder
		for _, name := range names[1:] {
			block.WriteString(`<ClCompile Include="..\..\..\src\` + name + "\" />\n    ")
		}
		chain = Chain{
			{Find: "project_name.c", Replace: names[0]},
			{Find: "<!--Additional Compile Items-->", Replace: strings.TrimRight(block.String(), " \n")},
		}
	default:
		chain = Chain{{Find: "project_name.c", Replace: sc.internal + ".c"}}
	}
	chain = append(chain,
		Replacement{Find: "project_name", Replace: sc.internal},
		Replacement{Find: tokenRaylibWin, Replace: sc.raylibSrcPath()},
	)

	dest := "projects/VS2022/" + sc.internal + "/" + sc.internal + ".vcxproj"
	if err := sc.renderTemplate("projects/VS2022/project_name/project_name.vcxproj", dest, chain); err != nil {
		return sc.Error("vs2022", "updating project vcxproj", err)
	}

	sln := Chain{{Find: "project_name", Replace: sc.internal}}
	if err := sc.renderTemplate("projects/VS2022/project_name.sln", "projects/VS2022/"+sc.internal+".sln", sln); err != nil {
		return sc.Error("vs2022", "updating solution file", err)
	}

	sc.Infof("vs2022", "updated build system: VS2022 (projects/VS2022)")
	return nil
}

func stepWorkflows(sc *StepContext) error {
	// Workflow templates are parameterized on repository conventions, not
	// on project tokens: copied opaque.
	for _, name := range []string{"windows.yml", "linux.yml", "macos.yml", "webassembly.yml"} {
		rel := ".github/workflows/" + name
		if err := sc.copyTemplate(rel, rel); err != nil {
			return sc.Error("workflows", "copying "+name, err)
		}
	}

	sc.Infof("workflows", "updated CI/CD workflows (.github/workflows)")
	return nil
}

func stepResources(sc *StepContext) error {
	cfg := sc.Config

	rc := Chain{
		{Find: "CommercialName", Replace: cfg.Project.CommercialName},
		{Find: "project_name", Replace: sc.internal},
		{Find: "ProjectDescription", Replace: cfg.Project.Description},
		{Find: "ProjectDev", Replace: cfg.Project.DeveloperName},
	}
	if err := sc.renderTemplate("src/project_name.rc", "src/"+sc.internal+".rc", rc); err != nil {
		return sc.Error("resources", "updating resource script", err)
	}

	if err := sc.copyTemplate("src/project_name.ico", "src/"+sc.internal+".ico"); err != nil {
		return sc.Error("resources", "copying icon", err)
	}
	if err := sc.copyTemplate("src/project_name.icns", "src/"+sc.internal+".icns"); err != nil {
		return sc.Error("resources", "copying macOS icon", err)
	}

	bundle := Chain{
		{Find: "ProductName", Replace: cfg.Project.CommercialName},
		{Find: "project_name", Replace: sc.internal},
		{Find: "ProjectDescription", Replace: cfg.Project.Description},
		{Find: "ProjectDev", Replace: cfg.Project.DeveloperName},
		{Find: "project_dev", Replace: strings.ToLower(cfg.Project.DeveloperName)},
		{Find: "developer_web", Replace: strings.ToLower(cfg.Project.DeveloperURL)},
	}
	if err := sc.renderTemplate("src/Info.plist", "src/Info.plist", bundle); err != nil {
		return sc.Error("resources", "updating Info.plist", err)
	}
	if err := sc.renderTemplate("src/minshell.html", "src/minshell.html", bundle); err != nil {
		return sc.Error("resources", "updating minshell.html", err)
	}

	sc.Infof("resources", "updated platform resource files (src)")
	return nil
}

func stepDocs(sc *StepContext) error {
	cfg := sc.Config

	readme := Chain{
		{Find: "ProductName", Replace: cfg.Project.CommercialName},
		{Find: "project_name", Replace: sc.internal},
		{Find: "ProjectDescription", Replace: cfg.Project.Description},
		{Find: "ProjectDev", Replace: cfg.Project.DeveloperName},
	}
	if err := sc.renderTemplate("README.md", "README.md", readme); err != nil {
		return sc.Error("docs", "updating README.md", err)
	}

	license := Chain{{Find: "ProjectDev", Replace: cfg.Project.DeveloperName}}
	if err := sc.renderTemplate("LICENSE", "LICENSE", license); err != nil {
		return sc.Error("docs", "updating LICENSE", err)
	}

	sc.Infof("docs", "updated README.md and LICENSE")
	return nil
}

func stepExtras(sc *StepContext) error {
	for _, rel := range []string{"CONVENTIONS.md", ".gitignore"} {
		if err := sc.copyTemplate(rel, rel); err != nil {
			return sc.Error("extras", "copying "+rel, err)
		}
	}

	if len(sc.manifest.Copies) > 0 {
		srcs := make([]string, 0, len(sc.manifest.Copies))
		for src := range sc.manifest.Copies {
			srcs = append(srcs, src)
		}
		sort.Strings(srcs)

		for _, src := range srcs {
			if err := sc.copyTemplate(src, sc.manifest.Copies[src]); err != nil {
				return sc.Error("extras", "copying "+src, err)
			}
		}
	}

	sc.Infof("extras", "copied project conventions and VCS files")
	return nil
}
