package semver

import (
	"fmt"
	"strconv"
)

// Version is a semantic version value. The zero value is "0.0.0".
//
// Versions are immutable by convention: every operation returns a new value
// and none mutate the receiver. The struct is comparable, so == gives exact
// five-field equality (labels compared case-sensitively) and Version can be
// used as a map key.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
}

// New creates a Version from major, minor, and patch components with no
// prerelease or build label. Use a struct literal or Change to set labels.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// FromSystemVersion adapts a 4-part dotted-numeric version of the
// major.minor.build.revision convention into a semantic version. The
// revision becomes the patch (negative revisions map to zero), and a
// positive build number becomes the build label. This is a one-way
// adapter, not a parser.
func FromSystemVersion(major, minor, build, revision int) Version {
	v := Version{Major: major, Minor: minor}
	if revision >= 0 {
		v.Patch = revision
	}
	if build > 0 {
		v.Build = strconv.Itoa(build)
	}
	return v
}

// ChangeOption overrides a single component in a Change call.
type ChangeOption func(*Version)

// WithMajor overrides the major component.
func WithMajor(major int) ChangeOption {
	return func(v *Version) { v.Major = major }
}

// WithMinor overrides the minor component.
func WithMinor(minor int) ChangeOption {
	return func(v *Version) { v.Minor = minor }
}

// WithPatch overrides the patch component.
func WithPatch(patch int) ChangeOption {
	return func(v *Version) { v.Patch = patch }
}

// WithPrerelease overrides the prerelease label. An empty string clears it.
func WithPrerelease(prerelease string) ChangeOption {
	return func(v *Version) { v.Prerelease = prerelease }
}

// WithBuild overrides the build label. An empty string clears it.
func WithBuild(build string) ChangeOption {
	return func(v *Version) { v.Build = build }
}

// Change returns a copy of the version with the given components overridden.
// Components without an option keep their current value; the receiver is
// never modified.
func (v Version) Change(opts ...ChangeOption) Version {
	out := v
	for _, opt := range opts {
		opt(&out)
	}
	return out
}

// String returns the canonical form: "major.minor.patch", followed by
// "-prerelease" and "+build" when the labels are present. For any value
// produced by Parse, the result parses back to an equal Version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Equal reports exact equality of all five components. It is stricter than
// Compare returning zero: identifiers that compare numerically equal may
// still differ textually (e.g. "1" vs "01"), and such versions are ordered
// equal but not Equal.
func (v Version) Equal(o Version) bool {
	return v == o
}

// IsValid reports whether the numeric components are non-negative. Parsed
// versions are always valid; this guards hand-constructed values.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0
}
