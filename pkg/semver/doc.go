// Package semver provides a semantic version value type with parsing,
// formatting, and precedence comparison.
//
// # Overview
//
// This package implements semantic versioning (semver.org) as an immutable
// value type. A Version holds five components:
//
//   - Major, Minor, Patch: non-negative integers
//   - Prerelease: optional dot-separated identifiers (e.g., "alpha.1")
//   - Build: optional build metadata (e.g., "20260826")
//
// Absent prerelease and build labels are represented by empty strings, never
// by a sentinel value. Versions are plain comparable structs: == is exact
// five-field equality and a Version can be used directly as a map key.
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-rc.1+build.7")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-rc.1+build.7
//
// Compare versions by precedence:
//
//	a := semver.MustParse("1.0.0-alpha")
//	b := semver.MustParse("1.0.0")
//	if a.ComparePrecedence(b) < 0 {
//	    fmt.Println("prerelease sorts before the release")
//	}
//
// Derive a new version from an existing one:
//
//	v := semver.MustParse("1.2.3")
//	next := v.Change(semver.WithMajor(2)) // 2.2.3; v is unchanged
//
// # Parsing Modes
//
// Parse is lenient: "1" and "1.2" are accepted, with omitted minor and patch
// components defaulting to zero. ParseStrict requires all three numeric
// components and fails with ErrStrictMode when minor or patch is omitted.
// Neither mode tolerates a leading "v" or surrounding whitespace; the input
// must match the grammar end to end.
//
// Prerelease and build labels accept any characters from [0-9A-Za-z.-] and
// are stored exactly as written. No structural validation is applied to the
// labels at parse time; identifiers are only interpreted during comparison.
// This deliberately admits inputs such as "1.0.0--" and numeric identifiers
// with leading zeros.
//
// # Precedence
//
// ComparePrecedence implements semver precedence: numeric components first,
// then prerelease identifiers compared dot-segment by dot-segment. Numeric
// segments compare numerically, a numeric segment always ranks below an
// alphanumeric one, and alphanumeric segments compare byte-wise. A version
// with a prerelease ranks below the same version without one. Build metadata
// is ignored by precedence but participates in Compare, where an absent
// build label sorts before a present one so that the full order is total.
//
// String comparison of identifiers is ordinal and case-sensitive; no locale
// rules are ever applied.
//
// # Error Handling
//
// Parse and ParseStrict return errors matching two sentinels:
//
//   - ErrInvalidFormat: input does not match the version grammar
//   - ErrStrictMode: minor or patch omitted under strict parsing
//
// TryParse and TryParseStrict report failure through a boolean instead of an
// error. For constant initialization, MustParse panics on invalid input:
//
//	var MinSupported = semver.MustParse("1.4.0")
package semver
