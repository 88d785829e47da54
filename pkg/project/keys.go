package project

// binding ties one .rpc key to its field in Config. Exactly one of the
// accessors is set, matching the key's inferred type: text for string
// fields, flag for booleans, num for integers.
type binding struct {
	key  string
	desc string

	text func(*Config) *string
	flag func(*Config) *bool
	num  func(*Config) *int
}

func textKey(key, desc string, f func(*Config) *string) binding {
	return binding{key: key, desc: desc, text: f}
}

func flagKey(key, desc string, f func(*Config) *bool) binding {
	return binding{key: key, desc: desc, flag: f}
}

func numKey(key, desc string, f func(*Config) *int) binding {
	return binding{key: key, desc: desc, num: f}
}

// bindings lists every mapped key in its canonical save order, grouped by
// category. Unlisted keys in a loaded file are preserved raw but have no
// typed field.
var bindings = []binding{
	// PROJECT
	textKey("PROJECT_INTERNAL_NAME", "Project internal name, used for executable and project files",
		func(c *Config) *string { return &c.Project.InternalName }),
	textKey("PROJECT_REPO_NAME", "Project repository name, used for VCS (GitHub, GitLab)",
		func(c *Config) *string { return &c.Project.RepoName }),
	textKey("PROJECT_COMMERCIAL_NAME", "Project commercial name, used for docs and web",
		func(c *Config) *string { return &c.Project.CommercialName }),
	textKey("PROJECT_SHORT_NAME", "Project short name, used for icons",
		func(c *Config) *string { return &c.Project.ShortName }),
	textKey("PROJECT_VERSION", "Project version",
		func(c *Config) *string { return &c.Project.Version }),
	textKey("PROJECT_DESCRIPTION", "Project description",
		func(c *Config) *string { return &c.Project.Description }),
	textKey("PROJECT_PUBLISHER_NAME", "Project publisher name",
		func(c *Config) *string { return &c.Project.PublisherName }),
	textKey("PROJECT_DEVELOPER_NAME", "Project developer name",
		func(c *Config) *string { return &c.Project.DeveloperName }),
	textKey("PROJECT_DEVELOPER_URL", "Project developer webpage url",
		func(c *Config) *string { return &c.Project.DeveloperURL }),
	textKey("PROJECT_DEVELOPER_EMAIL", "Project developer email",
		func(c *Config) *string { return &c.Project.DeveloperEmail }),
	textKey("PROJECT_ICON_FILE", "Project icon file (.ico/.icns)",
		func(c *Config) *string { return &c.Project.IconFile }),
	textKey("PROJECT_SOURCE_PATH", "Project source directory, including all required code files (C/C++)",
		func(c *Config) *string { return &c.Project.SourcePath }),
	textKey("PROJECT_ASSETS_PATH", "Project assets directory, including all required assets",
		func(c *Config) *string { return &c.Project.AssetsPath }),
	textKey("PROJECT_ASSETS_OUTPUT_PATH", "Project assets destination path",
		func(c *Config) *string { return &c.Project.AssetsOutPath }),

	// BUILD
	textKey("BUILD_OUTPUT_PATH", "Build output path",
		func(c *Config) *string { return &c.Build.OutputPath }),
	textKey("BUILD_TARGET_PLATFORM", "Build target platform (Supported: Windows, Linux, macOS, Android, Web)",
		func(c *Config) *string { return &c.Build.TargetPlatform }),
	textKey("BUILD_TARGET_ARCHITECTURE", "Build target architecture (Supported: x86-64, Win32, arm64)",
		func(c *Config) *string { return &c.Build.TargetArchitecture }),
	textKey("BUILD_TARGET_MODE", "Build target mode (Supported: DEBUG, RELEASE, DEBUG_DLL, RELEASE_DLL)",
		func(c *Config) *string { return &c.Build.TargetMode }),
	flagKey("BUILD_FLAG_ASSETS_VALIDATION", "Flag: request assets validation on building",
		func(c *Config) *bool { return &c.Build.AssetsValidation }),
	flagKey("BUILD_FLAG_ASSETS_PACKAGING", "Flag: request assets packaging on building",
		func(c *Config) *bool { return &c.Build.AssetsPackaging }),

	// PLATFORM: Windows
	textKey("PLATFORM_WINDOWS_MSBUILD_PATH", "Path to MSBuild system, required to build VS2022 solution",
		func(c *Config) *string { return &c.Platform.Windows.MSBuildPath }),
	textKey("PLATFORM_WINDOWS_W64DEVKIT_PATH", "Path to w64devkit (GCC), required to use Makefile building",
		func(c *Config) *string { return &c.Platform.Windows.W64DevkitPath }),
	textKey("PLATFORM_WINDOWS_SIGNTOOL_PATH", "Path to signtool, in case executable needs to be signed",
		func(c *Config) *string { return &c.Platform.Windows.SigntoolPath }),
	textKey("PLATFORM_WINDOWS_SIGNCERT_FILE", "Path to a valid signature certificate to sign executable",
		func(c *Config) *string { return &c.Platform.Windows.SignCertFile }),

	// PLATFORM: Linux
	flagKey("PLATFORM_LINUX_FLAG_CROSS_COMPILE", "Flag: request cross-compiler usage",
		func(c *Config) *bool { return &c.Platform.Linux.UseCrossCompiler }),
	textKey("PLATFORM_LINUX_CROSS_COMPILER_PATH", "Path to cross-compiler for target ABI",
		func(c *Config) *string { return &c.Platform.Linux.CrossCompilerPath }),

	// PLATFORM: macOS
	textKey("PLATFORM_MACOS_BUNDLE_INFO_FILE", "Path to macOS bundle options (Info.plist)",
		func(c *Config) *string { return &c.Platform.MacOS.BundleInfoFile }),
	textKey("PLATFORM_MACOS_BUNDLE_NAME", "Bundle product name, defaults to project commercial name",
		func(c *Config) *string { return &c.Platform.MacOS.BundleName }),
	textKey("PLATFORM_MACOS_BUNDLE_VERSION", "Bundle version",
		func(c *Config) *string { return &c.Platform.MacOS.BundleVersion }),
	textKey("PLATFORM_MACOS_BUNDLE_ICON_FILE", "Bundle icon file (.icns)",
		func(c *Config) *string { return &c.Platform.MacOS.BundleIconFile }),

	// PLATFORM: HTML5
	textKey("PLATFORM_HTML5_EMSDK_PATH", "Path to emsdk, required for Web building",
		func(c *Config) *string { return &c.Platform.HTML5.EmsdkPath }),
	textKey("PLATFORM_HTML5_SHELL_FILE", "Path to shell file to be used by emscripten",
		func(c *Config) *string { return &c.Platform.HTML5.ShellFile }),
	numKey("PLATFORM_HTML5_HEAP_MEMORY_SIZE", "Required heap memory size in MB (required for assets loading)",
		func(c *Config) *int { return &c.Platform.HTML5.HeapMemorySize }),
	flagKey("PLATFORM_HTML5_FLAG_USE_ASINCIFY", "Flag: use ASYNCIFY mode on building",
		func(c *Config) *bool { return &c.Platform.HTML5.UseAsyncify }),
	flagKey("PLATFORM_HTML5_FLAG_USE_WEBGL2", "Flag: use WebGL2 (OpenGL ES 3.1) instead of default WebGL1 (OpenGL ES 2.0)",
		func(c *Config) *bool { return &c.Platform.HTML5.UseWebGL2 }),

	// PLATFORM: Android
	textKey("PLATFORM_ANDROID_SDK_PATH", "Path to Android SDK, required for Android app building and support tools",
		func(c *Config) *string { return &c.Platform.Android.SDKPath }),
	textKey("PLATFORM_ANDROID_NDK_PATH", "Path to Android NDK, required for C native building to Android",
		func(c *Config) *string { return &c.Platform.Android.NDKPath }),
	textKey("PLATFORM_ANDROID_JAVA_SDK_PATH", "Path to Java SDK, required for some tools",
		func(c *Config) *string { return &c.Platform.Android.JavaSDKPath }),
	textKey("PLATFORM_ANDROID_MANIFEST_FILE", "Path to Android manifest, including build options",
		func(c *Config) *string { return &c.Platform.Android.ManifestFile }),
	numKey("PLATFORM_ANDROID_MIN_SDK_VERSION", "Minimum SDK version required",
		func(c *Config) *int { return &c.Platform.Android.MinSDKVersion }),
	numKey("PLATFORM_ANDROID_TARGET_SDK_VERSION", "Target SDK version",
		func(c *Config) *int { return &c.Platform.Android.TargetSDKVersion }),

	// PLATFORM: DRM
	flagKey("PLATFORM_DRM_FLAG_CROSS_COMPILE", "Flag: request cross-compiler usage",
		func(c *Config) *bool { return &c.Platform.DRM.UseCrossCompiler }),
	textKey("PLATFORM_DRM_CROSS_COMPILER_PATH", "Path to DRM cross-compiler for target ABI",
		func(c *Config) *string { return &c.Platform.DRM.CrossCompilerPath }),

	// PLATFORM: Dreamcast
	textKey("PLATFORM_DREAMCAST_SDK_PATH", "Path to Dreamcast SDK (KallistiOS), required for Dreamcast building",
		func(c *Config) *string { return &c.Platform.Dreamcast.SDKPath }),

	// DEPLOY
	flagKey("DEPLOY_FLAG_ZIP_PACKAGE", "Flag: request package to be zipped for distribution",
		func(c *Config) *bool { return &c.Deploy.ZipPackage }),
	flagKey("DEPLOY_FLAG_RIF_INSTALLER", "Flag: request installer creation using rInstallFriendly tool",
		func(c *Config) *bool { return &c.Deploy.RifInstaller }),
	textKey("DEPLOY_RIF_INSTALLER_PATH", "Path to rInstallFriendly tool",
		func(c *Config) *string { return &c.Deploy.RifInstallerPath }),
	flagKey("DEPLOY_FLAG_INCLUDE_README", "Flag: include README file on package",
		func(c *Config) *bool { return &c.Deploy.IncludeReadme }),
	textKey("DEPLOY_README_FILE", "Project README document, contains product information",
		func(c *Config) *string { return &c.Deploy.ReadmeFile }),
	flagKey("DEPLOY_FLAG_INCLUDE_EULA", "Flag: include EULA file on package (vs LICENSE file for FOSS)",
		func(c *Config) *bool { return &c.Deploy.IncludeEULA }),
	textKey("DEPLOY_EULA_FILE", "Project End-User-License-Agreement",
		func(c *Config) *string { return &c.Deploy.EULAFile }),

	// IMAGERY
	textKey("IMAGERY_LOGO_FILE", "Project logo image, useful for imagery generation",
		func(c *Config) *string { return &c.Imagery.LogoFile }),
	textKey("IMAGERY_SPLASH_FILE", "Project splash image, useful for imagery generation",
		func(c *Config) *string { return &c.Imagery.SplashFile }),
	flagKey("IMAGERY_FLAG_GENERATE", "Flag: request project imagery generation (social cards, itch.io, Steam)",
		func(c *Config) *bool { return &c.Imagery.Generate }),

	// RAYLIB
	textKey("RAYLIB_SRC_PATH", "Path to raylib source code, to be built for target platform",
		func(c *Config) *string { return &c.Engine.SrcPath }),
	textKey("RAYLIB_VERSION", "raylib version for the project",
		func(c *Config) *string { return &c.Engine.Version }),
	textKey("RAYLIB_OPENGL_VERSION", "OpenGL version to be used by raylib (platform dependent)",
		func(c *Config) *string { return &c.Engine.GLVersion }),
}

var bindingsByKey = func() map[string]*binding {
	m := make(map[string]*binding, len(bindings))
	for i := range bindings {
		m[bindings[i].key] = &bindings[i]
	}
	return m
}()

// keyAliases maps legacy key spellings to their canonical binding. Project
// files written by older tooling carry the misspelled DEPLOY_FLAG_INCUDE_*
// forms; they read as their corrected keys and write back under whichever
// spelling the file already uses.
var keyAliases = map[string]string{
	"DEPLOY_FLAG_INCUDE_README": "DEPLOY_FLAG_INCLUDE_README",
	"DEPLOY_FLAG_INCUDE_EULA":   "DEPLOY_FLAG_INCLUDE_EULA",
}

func bindingFor(key string) (*binding, bool) {
	if b, ok := bindingsByKey[key]; ok {
		return b, true
	}
	if canonical, ok := keyAliases[key]; ok {
		b, ok := bindingsByKey[canonical]
		return b, ok
	}
	return nil, false
}

// Describe returns the canonical description for a recognized key, or ""
// for keys the schema does not carry.
func Describe(key string) string {
	if b, ok := bindingFor(key); ok {
		return b.desc
	}
	return ""
}
