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

// CompareResult is the structured output of the compare command.
type CompareResult struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Result   int    `json:"result" yaml:"result"`
	Relation string `json:"relation" yaml:"relation"`
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions",
		ArgsUsage:             "<a> <b>",
		Description: `Compare two semantic versions and report -1, 0, or 1.

By default the full order is used: semver precedence first, then build
metadata as a tie-break (an absent build label sorts before a present
one). With --precedence, build metadata is ignored entirely, so versions
differing only in build metadata compare equal.

# Examples

Full comparison:
  semver compare 1.0.0-rc.1 1.0.0

Precedence only (build metadata ignored):
  semver compare --precedence 1.0.0+build1 1.0.0+build2`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "precedence",
				Usage: "Ignore build metadata and compare by precedence only",
			},
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly two version arguments, got %d", cmd.Args().Len())
			}

			a, err := parseArg(cmd, cmd.Args().Get(0))
			if err != nil {
				return err
			}
			b, err := parseArg(cmd, cmd.Args().Get(1))
			if err != nil {
				return err
			}

			var d int
			if cmd.Bool("precedence") {
				d = a.ComparePrecedence(b)
			} else {
				d = a.Compare(b)
			}

			result := CompareResult{
				A:        a.String(),
				B:        b.String(),
				Result:   d,
				Relation: relation(d),
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

func relation(d int) string {
	switch {
	case d < 0:
		return "<"
	case d > 0:
		return ">"
	default:
		return "="
	}
}

// parseArg parses a single version argument honoring the --strict flag.
func parseArg(cmd *cli.Command, input string) (semver.Version, error) {
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
		return semver.Version{}, fmt.Errorf("failed to parse version %q: %w", input, err)
	}
	return v, nil
}
