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

// BumpResult is the structured output of the bump command.
type BumpResult struct {
	Input     string `json:"input" yaml:"input"`
	Component string `json:"component" yaml:"component"`
	Bumped    string `json:"bumped" yaml:"bumped"`
}

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increment a version component",
		ArgsUsage:             "<major|minor|patch> <version>",
		Description: `Derive the next release version by incrementing the named component.

Lower-order numeric components reset to zero and both labels are
cleared (release semantics). Use --prerelease and --build to set labels
on the result.

# Examples

Next patch release:
  semver bump patch 1.2.3

Start a new major prerelease line:
  semver bump major 1.2.3 --prerelease rc.1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "prerelease",
				Usage: "Prerelease label to set on the bumped version",
			},
			&cli.StringFlag{
				Name:  "build",
				Usage: "Build label to set on the bumped version",
			},
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected component and version arguments, got %d", cmd.Args().Len())
			}
			component := cmd.Args().Get(0)

			v, err := parseArg(cmd, cmd.Args().Get(1))
			if err != nil {
				return err
			}

			var bumped semver.Version
			switch component {
			case "major":
				bumped = v.Change(
					semver.WithMajor(v.Major+1),
					semver.WithMinor(0),
					semver.WithPatch(0),
					semver.WithPrerelease(cmd.String("prerelease")),
					semver.WithBuild(cmd.String("build")),
				)
			case "minor":
				bumped = v.Change(
					semver.WithMinor(v.Minor+1),
					semver.WithPatch(0),
					semver.WithPrerelease(cmd.String("prerelease")),
					semver.WithBuild(cmd.String("build")),
				)
			case "patch":
				bumped = v.Change(
					semver.WithPatch(v.Patch+1),
					semver.WithPrerelease(cmd.String("prerelease")),
					semver.WithBuild(cmd.String("build")),
				)
			default:
				return fmt.Errorf("unknown component %q, expected major, minor, or patch", component)
			}

			result := BumpResult{
				Input:     v.String(),
				Component: component,
				Bumped:    bumped.String(),
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
