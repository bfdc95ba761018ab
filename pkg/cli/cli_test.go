/*
Copyright © 2026 verkit
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verkit/semver/pkg/semver"
)

// runCmd executes the root command with the given args, directing output to
// a temp file, and returns the raw output.
func runCmd(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.json")

	// Flags precede positional args; --output goes right after the
	// subcommand name.
	require.NotEmpty(t, args)
	full := []string{"semver", args[0], "--output", path}
	full = append(full, args[1:]...)

	err := Run(context.Background(), full)
	if err != nil {
		return nil, err
	}

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	return content, nil
}

func TestParseCommand(t *testing.T) {
	out, err := runCmd(t, "parse", "1.2.3-rc.1+b7")
	require.NoError(t, err)

	var result ParseResult
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, "1.2.3-rc.1+b7", result.Input)
	assert.Equal(t, "1.2.3-rc.1+b7", result.Canonical)
	assert.Equal(t, 1, result.Major)
	assert.Equal(t, 2, result.Minor)
	assert.Equal(t, 3, result.Patch)
	assert.Equal(t, "rc.1", result.Prerelease)
	assert.Equal(t, "b7", result.Build)
}

func TestParseCommandLenientDefaults(t *testing.T) {
	out, err := runCmd(t, "parse", "1.2")
	require.NoError(t, err)

	var result ParseResult
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, "1.2.0", result.Canonical)
}

func TestParseCommandStrict(t *testing.T) {
	_, err := runCmd(t, "parse", "--strict", "1.2")
	require.Error(t, err)
	assert.ErrorIs(t, err, semver.ErrStrictMode)

	_, err = runCmd(t, "parse", "--strict", "1.2.3")
	require.NoError(t, err)
}

func TestParseCommandInvalidInput(t *testing.T) {
	_, err := runCmd(t, "parse", "not-a-version")
	require.Error(t, err)
	assert.ErrorIs(t, err, semver.ErrInvalidFormat)
}

func TestParseCommandArgCount(t *testing.T) {
	_, err := runCmd(t, "parse")
	require.Error(t, err)

	_, err = runCmd(t, "parse", "1.0.0", "2.0.0")
	require.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
		relation string
	}{
		{
			name:     "prerelease below release",
			args:     []string{"compare", "1.0.0-rc.1", "1.0.0"},
			expected: -1,
			relation: "<",
		},
		{
			name:     "equal",
			args:     []string{"compare", "1.2.3", "1.2.3"},
			expected: 0,
			relation: "=",
		},
		{
			name:     "build breaks ties in full order",
			args:     []string{"compare", "1.0.0+build1", "1.0.0"},
			expected: 1,
			relation: ">",
		},
		{
			name:     "precedence ignores build",
			args:     []string{"compare", "--precedence", "1.0.0+build1", "1.0.0+build2"},
			expected: 0,
			relation: "=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			require.NoError(t, err)

			var result CompareResult
			require.NoError(t, json.Unmarshal(out, &result))
			assert.Equal(t, tt.expected, result.Result)
			assert.Equal(t, tt.relation, result.Relation)
		})
	}
}

func TestSortCommand(t *testing.T) {
	out, err := runCmd(t, "sort", "1.0.0", "1.0.0-alpha", "1.0.0-rc.1", "0.9.9")
	require.NoError(t, err)

	var sorted []semver.Version
	require.NoError(t, json.Unmarshal(out, &sorted))

	got := make([]string, len(sorted))
	for i, v := range sorted {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"0.9.9", "1.0.0-alpha", "1.0.0-rc.1", "1.0.0"}, got)
}

func TestSortCommandReverse(t *testing.T) {
	out, err := runCmd(t, "sort", "--reverse", "1.0.0", "2.0.0", "1.5.0")
	require.NoError(t, err)

	var sorted []semver.Version
	require.NoError(t, json.Unmarshal(out, &sorted))
	require.Len(t, sorted, 3)
	assert.Equal(t, "2.0.0", sorted[0].String())
	assert.Equal(t, "1.0.0", sorted[2].String())
}

func TestSortCommandInvalidInput(t *testing.T) {
	_, err := runCmd(t, "sort", "1.0.0", "nope")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := runCmd(t, "validate", "1.2.3", "1.2", "not-a-version")
	require.NoError(t, err)

	var results []ValidationResult
	require.NoError(t, json.Unmarshal(out, &results))
	require.Len(t, results, 3)

	assert.True(t, results[0].Valid)
	assert.Equal(t, "1.2.3", results[0].Canonical)
	assert.True(t, results[1].Valid)
	assert.Equal(t, "1.2.0", results[1].Canonical)
	assert.False(t, results[2].Valid)
	assert.NotEmpty(t, results[2].Error)
}

func TestValidateCommandStrict(t *testing.T) {
	out, err := runCmd(t, "validate", "--strict", "1.2.3", "1.2")
	require.NoError(t, err)

	var results []ValidationResult
	require.NoError(t, json.Unmarshal(out, &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
}

func TestValidateCommandFailOnError(t *testing.T) {
	_, err := runCmd(t, "validate", "--fail-on-error", "1.2.3", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")

	_, err = runCmd(t, "validate", "--fail-on-error", "1.2.3")
	require.NoError(t, err)
}

func TestBumpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "patch",
			args:     []string{"bump", "patch", "1.2.3"},
			expected: "1.2.4",
		},
		{
			name:     "minor resets patch",
			args:     []string{"bump", "minor", "1.2.3"},
			expected: "1.3.0",
		},
		{
			name:     "major resets minor and patch",
			args:     []string{"bump", "major", "1.2.3"},
			expected: "2.0.0",
		},
		{
			name:     "bump clears labels",
			args:     []string{"bump", "patch", "1.2.3-rc.1+b7"},
			expected: "1.2.4",
		},
		{
			name:     "bump with new prerelease",
			args:     []string{"bump", "--prerelease", "rc.1", "major", "1.2.3"},
			expected: "2.0.0-rc.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, tt.args...)
			require.NoError(t, err)

			var result BumpResult
			require.NoError(t, json.Unmarshal(out, &result))
			assert.Equal(t, tt.expected, result.Bumped)
		})
	}
}

func TestBumpCommandUnknownComponent(t *testing.T) {
	_, err := runCmd(t, "bump", "flavor", "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component")
}

func TestUnknownFormatRejected(t *testing.T) {
	_, err := runCmd(t, "parse", "--format", "xml", "1.2.3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
