package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Parse errors. Use errors.Is to match; returned errors wrap these
// sentinels with input-specific detail.
var (
	// ErrInvalidFormat indicates the input does not match the version grammar.
	ErrInvalidFormat = errors.New("invalid semantic version")

	// ErrStrictMode indicates minor or patch was omitted under strict parsing.
	ErrStrictMode = errors.New("strict mode requires explicit minor and patch")
)

// versionPattern anchors the whole input: major with optional minor and
// patch, then optional prerelease and build labels. Labels are captured raw;
// their dot-segments are only interpreted during comparison.
var versionPattern = regexp.MustCompile(
	`^(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:-([0-9A-Za-z.-]+))?(?:\+([0-9A-Za-z.-]+))?$`)

// Parse parses a semantic version string leniently: omitted minor and patch
// components default to zero. No leading "v" or whitespace is tolerated.
// The returned error matches ErrInvalidFormat on grammar mismatch.
func Parse(s string) (Version, error) {
	return parse(s, false)
}

// ParseStrict parses a semantic version string requiring all three numeric
// components. The returned error matches ErrInvalidFormat on grammar
// mismatch, or ErrStrictMode when minor or patch is omitted.
func ParseStrict(s string) (Version, error) {
	return parse(s, true)
}

// TryParse is the non-failing variant of Parse. It reports success through
// the boolean and never panics.
func TryParse(s string) (Version, bool) {
	v, err := parse(s, false)
	return v, err == nil
}

// TryParseStrict is the non-failing variant of ParseStrict.
func TryParseStrict(s string) (Version, bool) {
	v, err := parse(s, true)
	return v, err == nil
}

// MustParse parses a version string and panics on error. Use for constants
// and test fixtures only.
func MustParse(s string) Version {
	v, err := parse(s, false)
	if err != nil {
		panic(err)
	}
	return v
}

func parse(s string, strict bool) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if strict {
		// Minor is checked before patch so the error names the first
		// missing component.
		if m[2] == "" {
			return Version{}, fmt.Errorf("%w: missing minor in %q", ErrStrictMode, s)
		}
		if m[3] == "" {
			return Version{}, fmt.Errorf("%w: missing patch in %q", ErrStrictMode, s)
		}
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: major %q: %v", ErrInvalidFormat, m[1], err)
	}

	v := Version{Major: major, Prerelease: m[4], Build: m[5]}

	if m[2] != "" {
		if v.Minor, err = strconv.Atoi(m[2]); err != nil {
			return Version{}, fmt.Errorf("%w: minor %q: %v", ErrInvalidFormat, m[2], err)
		}
	}
	if m[3] != "" {
		if v.Patch, err = strconv.Atoi(m[3]); err != nil {
			return Version{}, fmt.Errorf("%w: patch %q: %v", ErrInvalidFormat, m[3], err)
		}
	}

	return v, nil
}
