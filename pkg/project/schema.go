// Package project defines the typed project configuration, its mapping to
// and from the flat .rpc key/value form, and the tool's own preferences
// file.
package project

import "time"

// Template selects the source file set a new project starts from.
type Template int

const (
	TemplateBasic    Template = iota // single source file
	TemplateAdvanced                 // screen-manager skeleton
	TemplateCustom                   // user-provided source files
)

// BuildSystems flags which project build files get generated.
type BuildSystems struct {
	Script   bool
	Makefile bool
	VSCode   bool
	VS2022   bool
}

// Any reports whether at least one build system is requested.
func (b BuildSystems) Any() bool {
	return b.Script || b.Makefile || b.VSCode || b.VS2022
}

// ProjectInfo holds project identity and input/output locations.
type ProjectInfo struct {
	CommercialName string // for docs and web
	RepoName       string // for VCS hosting
	InternalName   string // for executable and build files
	ShortName      string // for icons

	Year int

	Version        string
	Description    string
	PublisherName  string
	DeveloperName  string
	DeveloperURL   string
	DeveloperEmail string
	IconFile       string

	SourcePath    string
	AssetsPath    string
	AssetsOutPath string

	// Scanned or user-provided input source and asset files.
	SourceFiles []string
	AssetFiles  []string

	Template   Template
	OutputPath string
}

// BuildInfo holds platform-independent build settings.
type BuildInfo struct {
	OutputPath string

	AssetsValidation bool
	AssetsPackaging  bool

	Systems BuildSystems

	TargetPlatform     string
	TargetArchitecture string
	TargetMode         string
}

// WindowsInfo holds Windows-specific tool paths.
type WindowsInfo struct {
	MSBuildPath   string
	W64DevkitPath string
	SigntoolPath  string
	SignCertFile  string
}

// LinuxInfo holds Linux-specific build settings.
type LinuxInfo struct {
	UseCrossCompiler  bool
	CrossCompilerPath string
}

// MacOSInfo holds macOS bundle settings.
type MacOSInfo struct {
	BundleInfoFile string
	BundleName     string
	BundleVersion  string
	BundleIconFile string
}

// HTML5Info holds emscripten build settings.
type HTML5Info struct {
	EmsdkPath      string
	ShellFile      string
	HeapMemorySize int

	UseAsyncify bool
	UseWebGL2   bool
}

// AndroidInfo holds Android SDK/NDK settings.
type AndroidInfo struct {
	SDKPath     string
	NDKPath     string
	JavaSDKPath string

	ManifestFile string

	MinSDKVersion    int
	TargetSDKVersion int
}

// DRMInfo holds Linux DRM cross-build settings.
type DRMInfo struct {
	UseCrossCompiler  bool
	CrossCompilerPath string
}

// DreamcastInfo holds Dreamcast SDK settings.
type DreamcastInfo struct {
	SDKPath string
}

// PlatformInfo groups per-OS build settings, one sub-record per target.
type PlatformInfo struct {
	Windows   WindowsInfo
	Linux     LinuxInfo
	MacOS     MacOSInfo
	HTML5     HTML5Info
	Android   AndroidInfo
	DRM       DRMInfo
	Dreamcast DreamcastInfo
}

// DeployInfo holds packaging and distribution options.
type DeployInfo struct {
	ZipPackage bool

	RifInstaller     bool
	RifInstallerPath string

	IncludeReadme bool
	ReadmeFile    string
	IncludeEULA   bool
	EULAFile      string
}

// ImageryInfo holds paths for store/marketing imagery inputs.
type ImageryInfo struct {
	LogoFile   string
	SplashFile string
	Generate   bool
}

// EngineInfo holds raylib source and version settings.
type EngineInfo struct {
	SrcPath   string
	Version   string
	GLVersion string
}

// Config is the full typed project configuration. One instance lives for
// the duration of a generation session; it is not safe for concurrent use.
type Config struct {
	Project  ProjectInfo
	Build    BuildInfo
	Platform PlatformInfo
	Deploy   DeployInfo
	Imagery  ImageryInfo
	Engine   EngineInfo
}

// Default toolchain locations, matching the paths baked into the templates.
const (
	DefaultCompilerPath  = `C:\raylib\w64devkit\bin`
	DefaultRaylibSrcPath = `C:/raylib/raylib/src`
)

// NewConfig returns a configuration with sensible defaults for a fresh
// project: current year, version 1.0, all build systems requested and the
// stock toolchain paths.
func NewConfig() *Config {
	cfg := &Config{}

	cfg.Project.Year = time.Now().Year()
	cfg.Project.Version = "1.0"
	cfg.Project.OutputPath = "."

	cfg.Build.OutputPath = "build"
	cfg.Build.Systems = BuildSystems{Script: true, Makefile: true, VSCode: true, VS2022: true}

	cfg.Platform.Windows.W64DevkitPath = DefaultCompilerPath
	cfg.Platform.HTML5.HeapMemorySize = 128

	cfg.Engine.SrcPath = DefaultRaylibSrcPath
	cfg.Engine.Version = "5.5"
	cfg.Engine.GLVersion = "3.3"

	return cfg
}
