package oas3

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// version is the parsed value of the openapi field, e.g. "3.0.3" or
// "3.1.0-rc1".
type version struct {
	major      int
	minor      int
	patch      int
	prerelease string
}

// parseVersion parses "major.minor.patch" with an optional "-prerelease"
// suffix. The patch component may be omitted.
func parseVersion(s string) (*version, error) {
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	major, err := parseComponent(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid major version: %q", parts[0])
	}
	minor, err := parseComponent(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid minor version: %q", parts[1])
	}
	patch := 0
	if len(parts) == 3 {
		if patch, err = parseComponent(parts[2]); err != nil {
			return nil, fmt.Errorf("invalid patch version: %q", parts[2])
		}
	}

	return &version{major: major, minor: minor, patch: patch, prerelease: prerelease}, nil
}

func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return n, nil
}

// isSupported reports whether the major version can be parsed at all.
func (v *version) isSupported() bool {
	return v.major == 3
}

// isFullySupported reports whether every feature of the version is understood.
func (v *version) isFullySupported() bool {
	return v.major == 3 && v.minor == 0
}

func (v *version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	return s
}
