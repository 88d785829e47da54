package generate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olimci/rayforge/pkg/events"
	"github.com/olimci/rayforge/pkg/project"
)

func writeTemplate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"src/project_name.c":    "// project_name entry point\nint main(void) { return 0; }\n",
		"src/raylib_advanced.c": "// project_name screen manager entry point\n",
		"src/screens.h":         "// screens\n",
		"src/screen_logo.c":     "// logo screen\n",
		"src/screen_title.c":    "// title screen\n",
		"src/screen_options.c":  "// options screen\n",
		"src/screen_gameplay.c": "// gameplay screen\n",
		"src/screen_ending.c":   "// ending screen\n",
		"src/Makefile": "PROJECT_NAME ?= project_name\nSRC = project_name.c\n" +
			"COMPILER_PATH ?= C:\\raylib\\w64devkit\\bin\nRAYLIB_PATH ?= C:/raylib/raylib/src\n",
		"projects/scripts/build.bat": "REM ProjectDescription\nSET PATH=C:\\raylib\\w64devkit\\bin\n" +
			"gcc -o project_name.exe\n",
		"projects/VSCode/.vscode/launch.json":           `{"program": "project_name", "miDebuggerPath": "C:/raylib/w64devkit/bin/gdb.exe"}`,
		"projects/VSCode/.vscode/c_cpp_properties.json": `{"includePath": "C:/raylib/raylib/src", "compilerPath": "C:/raylib/w64devkit/bin/gcc.exe"}`,
		"projects/VSCode/.vscode/tasks.json":            `{"args": ["project_name.c"], "cwd": "C:/raylib/raylib/src"}`,
		"projects/VSCode/.vscode/settings.json":         "{}\n",
		"projects/VSCode/main.code-workspace":           "{}\n",
		"projects/VSCode/README.md":                     "VSCode setup\n",
		"projects/VS2022/raylib/raylib.vcxproj":         "<Project><Path>C:\\raylib\\raylib\\src</Path></Project>\n",
		"projects/VS2022/project_name/project_name.vcxproj": "<Project><ClCompile Include=\"..\\..\\..\\src\\project_name.c\" />" +
			"<!--Additional Compile Items--><Path>C:\\raylib\\raylib\\src</Path></Project>\n",
		"projects/VS2022/project_name.sln":  "Project(\"project_name\")\n",
		".github/workflows/windows.yml":     "on: push # windows\n",
		".github/workflows/linux.yml":       "on: push # linux\n",
		".github/workflows/macos.yml":       "on: push # macos\n",
		".github/workflows/webassembly.yml": "on: push # web\n",
		"src/project_name.rc":               "1 ICON project_name.ico // CommercialName ProjectDescription ProjectDev\n",
		"src/project_name.ico":              "ICODATA",
		"src/project_name.icns":             "ICNSDATA",
		"src/Info.plist":                    "<plist>ProductName project_name ProjectDescription ProjectDev project_dev developer_web</plist>\n",
		"src/minshell.html":                 "<html><title>ProductName</title>project_name by ProjectDev</html>\n",
		"README.md":                         "# ProductName\nProjectDescription by ProjectDev. Binary: project_name\n",
		"LICENSE":                           "Copyright (c) ProjectDev\n",
		"CONVENTIONS.md":                    "conventions\n",
		".gitignore":                        "build/\n",
		"project_name.rpc":                  "PROJECT_INTERNAL_NAME   \"$(project_name)\"\nPROJECT_REPO_NAME       \"repo_name\"\n",
	}

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

func readOutput(t *testing.T, out string, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(b)
}

func TestGenerateBasicScenario(t *testing.T) {
	tmpl := writeTemplate(t)
	out := t.TempDir()

	cfg := project.NewConfig()
	cfg.Project.InternalName = "cool_project"
	cfg.Project.Template = project.TemplateBasic
	cfg.Build.Systems = project.BuildSystems{Makefile: true, VS2022: true}

	collector := events.NewCollector(nil)
	var stepsSeen []string
	result, err := Generate(cfg, tmpl, out,
		WithHandler(collector),
		WithProgress(func(step string, index, total int) {
			stepsSeen = append(stepsSeen, step)
			if index < 1 || index > total {
				t.Errorf("progress index %d out of range 1..%d", index, total)
			}
		}))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	root := filepath.Join(out, "cool_project")

	if got := readOutput(t, root, "src/cool_project.c"); !strings.Contains(got, "int main") {
		t.Errorf("basic source file content wrong: %q", got)
	}

	makefile := readOutput(t, root, "src/Makefile")
	if strings.Contains(makefile, "project_name") {
		t.Errorf("Makefile still holds placeholder: %q", makefile)
	}
	if !strings.Contains(makefile, "SRC = cool_project.c") {
		t.Errorf("Makefile source list wrong: %q", makefile)
	}

	if _, err := os.Stat(filepath.Join(root, "projects", "VS2022", "cool_project", "cool_project.vcxproj")); err != nil {
		t.Errorf("VS2022 project file missing: %v", err)
	}

	// VSCode and Script flags were off.
	if _, err := os.Stat(filepath.Join(root, "projects", "VSCode")); !os.IsNotExist(err) {
		t.Error("projects/VSCode generated despite flag off")
	}
	if _, err := os.Stat(filepath.Join(root, "projects", "scripts")); !os.IsNotExist(err) {
		t.Error("projects/scripts generated despite flag off")
	}

	// Both token families in the seed definition file resolve.
	rpc := readOutput(t, root, "cool_project.rpc")
	if !strings.Contains(rpc, `PROJECT_INTERNAL_NAME   "cool_project"`) {
		t.Errorf("seed $(token) not substituted: %q", rpc)
	}
	if !strings.Contains(rpc, `PROJECT_REPO_NAME       "cool_project"`) {
		t.Errorf("seed bare token not substituted: %q", rpc)
	}

	if collector.HasLevel(events.Error) {
		t.Errorf("generation reported errors: %v", collector.Summary().Errors)
	}
	if len(result.FilesCreated) == 0 {
		t.Error("result reports no files created")
	}
	if len(stepsSeen) == 0 {
		t.Error("progress callback never invoked")
	}
}

func TestGenerateCustomSources(t *testing.T) {
	tmpl := writeTemplate(t)
	out := t.TempDir()

	srcDir := t.TempDir()
	for _, name := range []string{"a.c", "b.c"} {
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte("// "+name+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := project.NewConfig()
	cfg.Project.InternalName = "game"
	cfg.Project.Template = project.TemplateCustom
	cfg.Project.SourceFiles = []string{
		filepath.Join(srcDir, "a.c"),
		filepath.Join(srcDir, "b.c"),
	}

	if _, err := Generate(cfg, tmpl, out); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	root := filepath.Join(out, "game")

	makefile := readOutput(t, root, "src/Makefile")
	if !strings.Contains(makefile, "SRC = a.c b.c") {
		t.Errorf("custom source list wrong: %q", makefile)
	}

	for _, name := range []string{"a.c", "b.c"} {
		if _, err := os.Stat(filepath.Join(root, "src", name)); err != nil {
			t.Errorf("custom source %s not copied: %v", name, err)
		}
	}
}

func TestGenerateAdvancedTemplate(t *testing.T) {
	tmpl := writeTemplate(t)
	out := t.TempDir()

	cfg := project.NewConfig()
	cfg.Project.InternalName = "quest"
	cfg.Project.Template = project.TemplateAdvanced
	cfg.Build.Systems = project.BuildSystems{Makefile: true, VS2022: true}

	if _, err := Generate(cfg, tmpl, out); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	root := filepath.Join(out, "quest")
	for _, name := range []string{"quest.c", "screens.h", "screen_logo.c", "screen_ending.c"} {
		if _, err := os.Stat(filepath.Join(root, "src", name)); err != nil {
			t.Errorf("skeleton file %s missing: %v", name, err)
		}
	}

	makefile := readOutput(t, root, "src/Makefile")
	if !strings.Contains(makefile, "SRC = quest.c screen_logo.c screen_title.c screen_options.c screen_gameplay.c screen_ending.c") {
		t.Errorf("skeleton source list wrong: %q", makefile)
	}

	vcxproj := readOutput(t, root, "projects/VS2022/quest/quest.vcxproj")
	if !strings.Contains(vcxproj, `screen_gameplay.c`) {
		t.Errorf("additional compile items not injected: %q", vcxproj)
	}
}

func TestGenerateMissingTemplateAborts(t *testing.T) {
	root := t.TempDir() // has src/ and seed but no projects/
	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "project_name.rpc"), []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	cfg := project.NewConfig()
	cfg.Project.InternalName = "cool_project"

	_, err := Generate(cfg, root, out)
	if !errors.Is(err, ErrTemplateMissing) {
		t.Fatalf("Generate() error = %v, want ErrTemplateMissing", err)
	}

	if _, err := os.Stat(filepath.Join(out, "cool_project")); !os.IsNotExist(err) {
		t.Error("output tree written despite failed validation")
	}
}

func TestGenerateRequiresProjectName(t *testing.T) {
	_, err := Generate(project.NewConfig(), t.TempDir(), t.TempDir())
	if !errors.Is(err, ErrNoProjectName) {
		t.Fatalf("Generate() error = %v, want ErrNoProjectName", err)
	}
}

func TestGenerateRepoNameOverridesDirectory(t *testing.T) {
	tmpl := writeTemplate(t)
	out := t.TempDir()

	cfg := project.NewConfig()
	cfg.Project.InternalName = "game"
	cfg.Project.RepoName = "awesome-game"
	cfg.Build.Systems = project.BuildSystems{}

	if _, err := Generate(cfg, tmpl, out); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "awesome-game", "src", "game.c")); err != nil {
		t.Errorf("repo-named output tree missing: %v", err)
	}
}

func TestChainAppliesInOrder(t *testing.T) {
	chain := Chain{
		{Find: "a", Replace: "b"},
		{Find: "b", Replace: "c"},
	}
	if got := chain.Apply("a"); got != "c" {
		t.Errorf("Apply() = %q, want %q (later pairs see earlier output)", got, "c")
	}

	// Absent placeholders are silent no-ops.
	if got := chain.Apply("unrelated"); got != "unrelated" {
		t.Errorf("Apply() = %q, want input unchanged", got)
	}
}

func TestTokenizedHandlesBothFamilies(t *testing.T) {
	chain := tokenized(Replacement{Find: "project_name", Replace: "game"})
	got := chain.Apply("$(project_name) and project_name")
	if got != "game and game" {
		t.Errorf("Apply() = %q, want %q", got, "game and game")
	}
}

func TestManifestTokensAndCopies(t *testing.T) {
	tmpl := writeTemplate(t)
	manifest := "[tokens]\n\"__YEAR__\" = \"2026\"\n\n[copies]\n\"extra.txt\" = \"docs/extra.txt\"\n"
	if err := os.WriteFile(filepath.Join(tmpl, "template.toml"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpl, "extra.txt"), []byte("extra\n"), 0644); err != nil {
		t.Fatal(err)
	}
	readme := filepath.Join(tmpl, "README.md")
	if err := os.WriteFile(readme, []byte("# ProductName __YEAR__\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	cfg := project.NewConfig()
	cfg.Project.InternalName = "game"
	cfg.Project.CommercialName = "Game"
	cfg.Build.Systems = project.BuildSystems{}

	if _, err := Generate(cfg, tmpl, out); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	root := filepath.Join(out, "game")
	if got := readOutput(t, root, "README.md"); got != "# Game 2026\n" {
		t.Errorf("manifest token not applied: %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "docs", "extra.txt")); err != nil {
		t.Errorf("manifest copy missing: %v", err)
	}
}
