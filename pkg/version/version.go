// Package version exposes the tool's own version and parses the dotted
// numeric versions project files carry.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	Major = 0
	Minor = 2
	Patch = 0
)

var ErrInvalidVersion = errors.New("invalid version")

type Version struct {
	Major int
	Minor int
	Patch int
}

func Current() Version {
	return Version{Major: Major, Minor: Minor, Patch: Patch}
}

// String gives the tool's version string.
func String() string {
	return Current().String()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads a major.minor or major.minor.patch version with an optional
// leading "v". Project versions conventionally use the two-part form, so a
// missing patch segment defaults to zero.
func Parse(s string) (Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q (expected x.y or x.y.z)", ErrInvalidVersion, s)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q (segment %d is not a non-negative integer)", ErrInvalidVersion, s, i+1)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}
