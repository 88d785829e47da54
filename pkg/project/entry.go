package project

import (
	"fmt"
	"strings"
)

// Category groups configuration entries by usage.
type Category int

const (
	CategoryProject Category = iota
	CategoryBuild
	CategoryPlatform
	CategoryDeploy
	CategoryImagery
	CategoryEngine
)

func (c Category) String() string {
	switch c {
	case CategoryProject:
		return "project"
	case CategoryBuild:
		return "build"
	case CategoryPlatform:
		return "platform"
	case CategoryDeploy:
		return "deploy"
	case CategoryImagery:
		return "imagery"
	case CategoryEngine:
		return "engine"
	default:
		return "unknown"
	}
}

// Platform identifies the target OS a platform-specific entry applies to.
type Platform int

const (
	PlatformWindows Platform = iota
	PlatformLinux
	PlatformMacOS
	PlatformHTML5
	PlatformAndroid
	PlatformDRM
	PlatformSwitch
	PlatformDreamcast
	PlatformFreeBSD
	PlatformAny
)

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformLinux:
		return "linux"
	case PlatformMacOS:
		return "macos"
	case PlatformHTML5:
		return "html5"
	case PlatformAndroid:
		return "android"
	case PlatformDRM:
		return "drm"
	case PlatformSwitch:
		return "switch"
	case PlatformDreamcast:
		return "dreamcast"
	case PlatformFreeBSD:
		return "freebsd"
	default:
		return "any"
	}
}

// EntryType is the value kind an entry carries, inferred from its key shape.
type EntryType int

const (
	TypeBool EntryType = iota
	TypeInt
	TypeText
	TypeTextFile
	TypeTextPath
)

func (t EntryType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeText:
		return "text"
	case TypeTextFile:
		return "file"
	case TypeTextPath:
		return "path"
	default:
		return "unknown"
	}
}

// Class is the full classification of a configuration key.
type Class struct {
	Category Category
	Platform Platform
	Type     EntryType

	// Name is a display label computed from the key: the key with its
	// category segment (and platform segment, for platform keys) stripped
	// and underscores turned into spaces.
	Name string
}

var categoryNames = map[string]Category{
	"PROJECT":  CategoryProject,
	"BUILD":    CategoryBuild,
	"PLATFORM": CategoryPlatform,
	"DEPLOY":   CategoryDeploy,
	"IMAGERY":  CategoryImagery,
	"RAYLIB":   CategoryEngine,
}

var platformNames = map[string]Platform{
	"WINDOWS":   PlatformWindows,
	"LINUX":     PlatformLinux,
	"MACOS":     PlatformMacOS,
	"HTML5":     PlatformHTML5,
	"ANDROID":   PlatformAndroid,
	"DRM":       PlatformDRM,
	"SWITCH":    PlatformSwitch,
	"DREAMCAST": PlatformDreamcast,
	"FREEBSD":   PlatformFreeBSD,
}

// Classify derives category, platform, type and display name from a key and
// whether its value was written in text form. It is a pure function: same
// inputs always produce the same Class.
//
// Category comes from the segment before the first underscore. Platform
// comes from the second segment, only consulted for PLATFORM keys; an
// unrecognized platform segment classifies as PlatformAny. Type precedence:
// a _FLAG segment anywhere marks a bool; keys ending in _FILE/_FILES are
// file paths, in _PATH directory paths; remaining bare-integer values are
// ints and quoted values plain text.
func Classify(key string, isText bool) (Class, error) {
	class := Class{Platform: PlatformAny}

	first, rest, _ := strings.Cut(key, "_")
	cat, ok := categoryNames[first]
	if !ok {
		return class, fmt.Errorf("unknown category %q in key %q", first, key)
	}
	class.Category = cat
	class.Name = strings.ReplaceAll(rest, "_", " ")

	if cat == CategoryPlatform {
		second, tail, _ := strings.Cut(rest, "_")
		if platform, ok := platformNames[second]; ok {
			class.Platform = platform
		}
		class.Name = strings.ReplaceAll(tail, "_", " ")
	}

	switch {
	case strings.Contains(key, "_FLAG"):
		class.Type = TypeBool
	case strings.HasSuffix(key, "_FILES"), strings.HasSuffix(key, "_FILE"):
		class.Type = TypeTextFile
	case strings.HasSuffix(key, "_PATH"):
		class.Type = TypeTextPath
	case !isText:
		class.Type = TypeInt
	default:
		class.Type = TypeText
	}

	return class, nil
}
