/*
Copyright © 2026 verkit
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/verkit/semver/pkg/semver"
)

// ParseResult is the structured output of the parse command.
type ParseResult struct {
	Input      string `json:"input" yaml:"input"`
	Canonical  string `json:"canonical" yaml:"canonical"`
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      string `json:"build,omitempty" yaml:"build,omitempty"`
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string into its components",
		ArgsUsage:             "<version>",
		Description: `Parse a semantic version string and report its components.

By default parsing is lenient: omitted minor and patch components default
to zero ("1.2" parses as 1.2.0). With --strict, all three numeric
components must be present.

The result can be output in JSON, YAML, or table format.

# Examples

Parse a full version:
  semver parse 1.2.3-rc.1+build.7

Parse a partial version leniently:
  semver parse 1.2

Require explicit minor and patch:
  semver parse --strict 1.2.3`,
		Flags: []cli.Flag{
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one version argument, got %d", cmd.Args().Len())
			}
			input := cmd.Args().First()

			var (
				v   semver.Version
				err error
			)
			if cmd.Bool("strict") {
				v, err = semver.ParseStrict(input)
			} else {
				v, err = semver.Parse(input)
			}
			if err != nil {
				return fmt.Errorf("failed to parse version: %w", err)
			}

			result := ParseResult{
				Input:      input,
				Canonical:  v.String(),
				Major:      v.Major,
				Minor:      v.Minor,
				Patch:      v.Patch,
				Prerelease: v.Prerelease,
				Build:      v.Build,
			}

			ser, err := newResultWriter(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(result)
		},
	}
}
