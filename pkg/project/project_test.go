package project

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/olimci/rayforge/pkg/events"
	"github.com/olimci/rayforge/pkg/kvconf"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		key    string
		isText bool
		want   Class
	}{
		{
			key:    "PLATFORM_ANDROID_SDK_PATH",
			isText: true,
			want:   Class{Category: CategoryPlatform, Platform: PlatformAndroid, Type: TypeTextPath, Name: "SDK PATH"},
		},
		{
			key:  "BUILD_FLAG_ASSETS_PACKAGING",
			want: Class{Category: CategoryBuild, Platform: PlatformAny, Type: TypeBool, Name: "FLAG ASSETS PACKAGING"},
		},
		{
			key:    "PROJECT_INTERNAL_NAME",
			isText: true,
			want:   Class{Category: CategoryProject, Platform: PlatformAny, Type: TypeText, Name: "INTERNAL NAME"},
		},
		{
			key:    "PROJECT_ICON_FILE",
			isText: true,
			want:   Class{Category: CategoryProject, Platform: PlatformAny, Type: TypeTextFile, Name: "ICON FILE"},
		},
		{
			key:  "PLATFORM_HTML5_HEAP_MEMORY_SIZE",
			want: Class{Category: CategoryPlatform, Platform: PlatformHTML5, Type: TypeInt, Name: "HEAP MEMORY SIZE"},
		},
		{
			key:    "RAYLIB_SRC_PATH",
			isText: true,
			want:   Class{Category: CategoryEngine, Platform: PlatformAny, Type: TypeTextPath, Name: "SRC PATH"},
		},
		{
			key:    "PLATFORM_AMIGA_SDK_PATH",
			isText: true,
			want:   Class{Category: CategoryPlatform, Platform: PlatformAny, Type: TypeTextPath, Name: "SDK PATH"},
		},
		{
			key:  "DEPLOY_FLAG_ZIP_PACKAGE",
			want: Class{Category: CategoryDeploy, Platform: PlatformAny, Type: TypeBool, Name: "FLAG ZIP PACKAGE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := Classify(tt.key, tt.isText)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyUnknownCategory(t *testing.T) {
	if _, err := Classify("MYSTERY_THING", true); err == nil {
		t.Error("expected error for unknown category segment")
	}
}

func TestClassifyIsPure(t *testing.T) {
	first, err := Classify("PLATFORM_HTML5_FLAG_USE_WEBGL2", false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := Classify("PLATFORM_HTML5_FLAG_USE_WEBGL2", false)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("Classify() not stable: %+v then %+v", first, again)
		}
	}
}

func TestBindingTypesMatchInference(t *testing.T) {
	// Each binding's accessor kind must agree with what its key name
	// advertises to other tools reading the file.
	for _, b := range bindings {
		class, err := Classify(b.key, b.text != nil)
		if err != nil {
			t.Errorf("%s: %v", b.key, err)
			continue
		}

		switch {
		case b.flag != nil && class.Type != TypeBool:
			t.Errorf("%s: bound as flag but classifies as %s", b.key, class.Type)
		case b.num != nil && class.Type != TypeInt:
			t.Errorf("%s: bound as int but classifies as %s", b.key, class.Type)
		case b.text != nil && class.Type == TypeBool:
			t.Errorf("%s: bound as text but classifies as bool", b.key)
		}
	}
}

func TestSaveLoadConfigRoundTrip(t *testing.T) {
	cfg := &Config{}
	cfg.Project.InternalName = "cool_project"
	cfg.Project.CommercialName = "Cool Project"
	cfg.Project.Description = "" // empty strings must survive the trip
	cfg.Project.Version = "1.0"
	cfg.Build.AssetsPackaging = true
	cfg.Build.AssetsValidation = false
	cfg.Platform.Windows.W64DevkitPath = `C:\raylib\w64devkit\bin`
	cfg.Platform.HTML5.HeapMemorySize = 0
	cfg.Platform.Android.MinSDKVersion = 29
	cfg.Deploy.IncludeEULA = true
	cfg.Engine.SrcPath = "/opt/raylib/src"
	cfg.Engine.Version = "5.5"

	path := filepath.Join(t.TempDir(), "cool_project.rpc")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	got, err := LoadConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.rpc"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyStoreIgnoresUnknownKeys(t *testing.T) {
	doc := kvconf.New(0)
	if err := doc.SetText("PROJECT_INTERNAL_NAME", "game", ""); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetText("FUTURE_TOOL_SETTING", "whatever", ""); err != nil {
		t.Fatal(err)
	}

	cfg := ParseStore(doc)
	if cfg.Project.InternalName != "game" {
		t.Errorf("InternalName = %q, want %q", cfg.Project.InternalName, "game")
	}

	// The unknown entry stays in the document untouched across a sync.
	cfg.Project.InternalName = "renamed"
	SyncStore(cfg, doc)

	if doc.Text("FUTURE_TOOL_SETTING") != "whatever" {
		t.Errorf("unknown entry modified: %q", doc.Text("FUTURE_TOOL_SETTING"))
	}
	if doc.Text("PROJECT_INTERNAL_NAME") != "renamed" {
		t.Errorf("mapped entry not updated: %q", doc.Text("PROJECT_INTERNAL_NAME"))
	}
}

func TestSyncStoreRefreshesFlagText(t *testing.T) {
	doc := kvconf.New(0)
	if err := doc.SetValue("BUILD_FLAG_ASSETS_PACKAGING", 0, "Flag: request assets packaging on building"); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	cfg.Build.AssetsPackaging = true
	SyncStore(cfg, doc)

	entry, ok := doc.Lookup("BUILD_FLAG_ASSETS_PACKAGING")
	if !ok {
		t.Fatal("entry missing after sync")
	}
	if entry.Value != 1 || entry.Text != "1" {
		t.Errorf("entry = %+v, want value 1 with text %q", entry, "1")
	}
}

func TestSyncStoreOnlyTouchesExistingEntries(t *testing.T) {
	doc := kvconf.New(0)
	if err := doc.SetText("PROJECT_VERSION", "1.0", ""); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	cfg.Project.Version = "2.0"
	cfg.Project.InternalName = "game"
	SyncStore(cfg, doc)

	if doc.Len() != 1 {
		t.Errorf("sync grew the document to %d entries", doc.Len())
	}
	if doc.Text("PROJECT_VERSION") != "2.0" {
		t.Errorf("PROJECT_VERSION = %q, want %q", doc.Text("PROJECT_VERSION"), "2.0")
	}
}

func TestSavedConfigGroupsByCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.rpc")
	if err := SaveConfig(NewConfig(), path); err != nil {
		t.Fatal(err)
	}

	doc, err := kvconf.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Entries come back in category order: every key's category index must
	// be monotonically non-decreasing.
	last := CategoryProject
	for _, entry := range doc.Entries {
		class, err := Classify(entry.Key, entry.IsText)
		if err != nil {
			t.Fatalf("%s: %v", entry.Key, err)
		}
		if class.Category < last {
			t.Fatalf("entry %s (%s) appears after category %s", entry.Key, class.Category, last)
		}
		last = class.Category
	}

	if doc.Len() != len(bindings) {
		t.Errorf("saved %d entries, want %d", doc.Len(), len(bindings))
	}

	found := false
	for _, comment := range doc.Comments {
		if strings.Contains(comment, "raylib project configuration") {
			found = true
		}
	}
	if !found {
		t.Error("header comment block missing from saved file")
	}
}

func TestLoadConfigFlagsUnknownCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.rpc")
	content := "MYSTERY_SETTING \"x\"\nPROJECT_INTERNAL_NAME \"game\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	collector := events.NewCollector(nil)
	cfg, doc, err := LoadConfigDoc(path, collector)
	if err != nil {
		t.Fatalf("LoadConfigDoc() error = %v", err)
	}

	if !collector.HasLevel(events.Warning) {
		t.Error("expected a warning for the unknown category")
	}
	if doc.Text("MYSTERY_SETTING") != "x" {
		t.Error("unknown-category entry dropped from document")
	}
	if cfg.Project.InternalName != "game" {
		t.Errorf("InternalName = %q, want %q", cfg.Project.InternalName, "game")
	}
}

func TestAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "rayforge.ini")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig() on missing file: %v", err)
	}
	if cfg != DefaultAppConfig() {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}

	cfg.VisualStyle = 3
	cfg.ShowWelcome = false
	cfg.WindowMaximized = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestApplyStoreAcceptsLegacyDeployFlagSpelling(t *testing.T) {
	doc := kvconf.New(0)
	if err := doc.SetValue("DEPLOY_FLAG_INCUDE_README", 1, "legacy spelling"); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetValue("DEPLOY_FLAG_INCUDE_EULA", 1, "legacy spelling"); err != nil {
		t.Fatal(err)
	}

	cfg := ParseStore(doc)
	if !cfg.Deploy.IncludeReadme {
		t.Error("DEPLOY_FLAG_INCUDE_README did not map to Deploy.IncludeReadme")
	}
	if !cfg.Deploy.IncludeEULA {
		t.Error("DEPLOY_FLAG_INCUDE_EULA did not map to Deploy.IncludeEULA")
	}

	// Writing back keeps the spelling the file already uses.
	cfg.Deploy.IncludeReadme = false
	SyncStore(cfg, doc)

	entry, ok := doc.Lookup("DEPLOY_FLAG_INCUDE_README")
	if !ok {
		t.Fatal("legacy entry dropped by sync")
	}
	if entry.Value != 0 {
		t.Errorf("legacy entry value = %d, want 0", entry.Value)
	}
	if _, ok := doc.Lookup("DEPLOY_FLAG_INCLUDE_README"); ok {
		t.Error("sync added a corrected-spelling duplicate entry")
	}
}

func TestCheckPaths(t *testing.T) {
	valid := t.TempDir()
	for _, name := range []string{"raylib.h", "gcc.exe"} {
		if err := os.WriteFile(filepath.Join(valid, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name         string
		raylib       string
		compiler     string
		wantWarnings int
	}{
		{
			name:     "both valid",
			raylib:   valid,
			compiler: valid,
		},
		{
			name:         "raylib path missing header",
			raylib:       t.TempDir(),
			compiler:     valid,
			wantWarnings: 1,
		},
		{
			name:         "both invalid",
			raylib:       t.TempDir(),
			compiler:     t.TempDir(),
			wantWarnings: 2,
		},
		{
			name: "empty paths are not checked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Engine.SrcPath = tt.raylib
			cfg.Platform.Windows.W64DevkitPath = tt.compiler

			collector := events.NewCollector(nil)
			CheckPaths(cfg, collector)

			if got := len(collector.AtLevel(events.Warning)); got != tt.wantWarnings {
				t.Errorf("CheckPaths emitted %d warnings, want %d", got, tt.wantWarnings)
			}
			if cfg.Engine.SrcPath != tt.raylib || cfg.Platform.Windows.W64DevkitPath != tt.compiler {
				t.Error("CheckPaths modified the stored paths")
			}
		})
	}
}
