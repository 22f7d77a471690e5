// Package version models the target Java release a code base compiles
// against, which gates rules whose replacement API only exists from a
// certain release on.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultTarget is assumed when the configuration names no release.
const DefaultTarget = "8"

// objectsSince matches every release that ships java.util.Objects.
var objectsSince = mustConstraint(">= 7")

// Level is a parsed target Java release.
type Level struct {
	raw     string
	version *semver.Version
}

// Parse accepts both modern ("7", "11", "17") and legacy ("1.7", "1.8")
// release spellings.
func Parse(target string) (*Level, error) {
	raw := strings.TrimSpace(target)
	if raw == "" {
		raw = DefaultTarget
	}
	normalized := strings.TrimPrefix(raw, "1.")
	v, err := semver.NewVersion(normalized)
	if err != nil {
		return nil, fmt.Errorf("invalid target Java release %q: %w", target, err)
	}
	return &Level{raw: raw, version: v}, nil
}

func (l *Level) String() string {
	return l.raw
}

// SupportsObjectsEquals reports whether java.util.Objects.equals is
// available on the target release.
func (l *Level) SupportsObjectsEquals() bool {
	return objectsSince.Check(l.version)
}

// AtLeast reports whether the target release is >= the given constraint,
// using the same spellings Parse accepts.
func (l *Level) AtLeast(release string) bool {
	c, err := semver.NewConstraint(">= " + strings.TrimPrefix(release, "1."))
	if err != nil {
		return false
	}
	return c.Check(l.version)
}

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}
