/*
Copyright © 2026 verkit
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/verkit/semver/pkg/semver"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Order versions by precedence",
		ArgsUsage:             "<version>...",
		Description: `Sort semantic versions ascending by the full order: semver
precedence first, then build metadata as a tie-break.

All inputs must parse; the command fails on the first invalid version
without producing partial output.

# Examples

Sort a release line:
  semver sort 1.0.0 1.0.0-alpha 1.0.0-rc.1 0.9.9

Newest first:
  semver sort --reverse 1.0.0 2.0.0 1.5.0`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reverse",
				Usage: "Sort descending instead of ascending",
			},
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("expected at least one version argument")
			}

			versions := make([]semver.Version, 0, cmd.Args().Len())
			for _, arg := range cmd.Args().Slice() {
				v, err := parseArg(cmd, arg)
				if err != nil {
					return err
				}
				versions = append(versions, v)
			}

			semver.Sort(versions)
			if cmd.Bool("reverse") {
				slices.Reverse(versions)
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

			return ser.Serialize(versions)
		},
	}
}
