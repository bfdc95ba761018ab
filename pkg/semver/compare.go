package semver

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// ComparePrecedence orders two versions by semantic-versioning precedence,
// ignoring build metadata. Numeric components are compared first; on a tie
// the prerelease labels are compared identifier by identifier, with an
// absent prerelease ranking above any present one.
func (v Version) ComparePrecedence(o Version) int {
	if d := cmp.Compare(v.Major, o.Major); d != 0 {
		return d
	}
	if d := cmp.Compare(v.Minor, o.Minor); d != 0 {
		return d
	}
	if d := cmp.Compare(v.Patch, o.Patch); d != 0 {
		return d
	}
	return CompareIdentifiers(v.Prerelease, o.Prerelease, true)
}

// Compare defines a total order: precedence first, then build metadata as a
// tie-break, with an absent build ranking below any present one. Note that
// the opposite empty-label conventions for prerelease and build are
// intentional: 1.0.0-rc.1 < 1.0.0 < 1.0.0+build.
func (v Version) Compare(o Version) int {
	if d := v.ComparePrecedence(o); d != 0 {
		return d
	}
	return CompareIdentifiers(v.Build, o.Build, false)
}

// PrecedenceMatches reports whether the two versions are equal by
// precedence. Versions differing only in build metadata match.
func (v Version) PrecedenceMatches(o Version) bool {
	return v.ComparePrecedence(o) == 0
}

// CompareIdentifiers compares two dot-separated identifier labels as used in
// prerelease and build metadata. The emptyIsGreater flag decides the
// empty-vs-present case: true makes an empty label rank above a present one
// (the prerelease convention), false the reverse (the build convention).
//
// Identifier pairs are walked in order: two numeric identifiers compare
// numerically, a numeric identifier always ranks below an alphanumeric one,
// and two alphanumeric identifiers compare as raw bytes. When all shared
// pairs are equal, the label with fewer identifiers ranks lower.
func CompareIdentifiers(a, b string, emptyIsGreater bool) int {
	if a == "" && b == "" {
		return 0
	}
	if a == "" {
		if emptyIsGreater {
			return 1
		}
		return -1
	}
	if b == "" {
		if emptyIsGreater {
			return -1
		}
		return 1
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		switch {
		case aerr == nil && berr == nil:
			if d := cmp.Compare(an, bn); d != 0 {
				return d
			}
		case aerr == nil:
			return -1
		case berr == nil:
			return 1
		default:
			// Ordinal byte-wise comparison; never locale-aware.
			if d := strings.Compare(as[i], bs[i]); d != 0 {
				return d
			}
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// Compare is the nil-tolerant form of Version.Compare: nil orders strictly
// before any present version, and two nils are equal.
func Compare(a, b *Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// ComparePrecedence is the nil-tolerant form of Version.ComparePrecedence,
// with the same nil convention as Compare.
func ComparePrecedence(a, b *Version) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.ComparePrecedence(*b)
}

// Equal is the nil-tolerant form of Version.Equal: two nils are equal, and
// nil never equals a present version.
func Equal(a, b *Version) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Sort orders versions in place by Compare, ascending.
func Sort(versions []Version) {
	slices.SortFunc(versions, Version.Compare)
}
