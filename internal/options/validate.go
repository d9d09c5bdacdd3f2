// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"

	"github.com/erraggy/apielements/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is specified.
// pkg prefixes the error message and names lists the accepted option
// constructors (e.g. "WithFilePath"). sources reports, in the same order,
// whether each source is set. The returned error is a *oaserrors.ConfigError.
func ValidateSingleInputSource(pkg string, names []string, sources ...bool) error {
	sourceCount := 0
	for _, hasSource := range sources {
		if hasSource {
			sourceCount++
		}
	}

	switch {
	case sourceCount == 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: fmt.Sprintf("%s: must specify an input source (use %s)", pkg, joinOr(names)),
		}
	case sourceCount > 1:
		return &oaserrors.ConfigError{
			Option:  "input",
			Value:   sourceCount,
			Message: fmt.Sprintf("%s: must specify exactly one input source", pkg),
		}
	}
	return nil
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	out := ""
	for i, n := range names {
		switch {
		case i == 0:
			out = n
		case i == len(names)-1:
			out += ", or " + n
		default:
			out += ", " + n
		}
	}
	return out
}
