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

// ValidationResult reports the outcome for a single validated input.
type ValidationResult struct {
	Input     string `json:"input" yaml:"input"`
	Valid     bool   `json:"valid" yaml:"valid"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check version strings against the grammar",
		ArgsUsage:             "<version>...",
		Description: `Validate one or more version strings, reporting per input whether
it parses and, if so, its canonical form.

Unlike parse, validate never fails on an invalid input: each result
carries its own valid flag and error message. Use --fail-on-error to
exit non-zero when any input is invalid (useful for CI/CD).

# Examples

Validate a set of versions:
  semver validate 1.2.3 1.2 not-a-version

Strictly, failing the build on any invalid input:
  semver validate --strict --fail-on-error 1.2.3 1.2`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any input is invalid",
			},
			strictFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("expected at least one version argument")
			}

			strict := cmd.Bool("strict")
			results := make([]ValidationResult, 0, cmd.Args().Len())
			invalid := 0
			for _, arg := range cmd.Args().Slice() {
				var (
					v   semver.Version
					err error
				)
				if strict {
					v, err = semver.ParseStrict(arg)
				} else {
					v, err = semver.Parse(arg)
				}

				res := ValidationResult{Input: arg, Valid: err == nil}
				if err != nil {
					res.Error = err.Error()
					invalid++
				} else {
					res.Canonical = v.String()
				}
				results = append(results, res)
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

			if err := ser.Serialize(results); err != nil {
				return err
			}

			if invalid > 0 && cmd.Bool("fail-on-error") {
				return fmt.Errorf("%d of %d inputs invalid", invalid, len(results))
			}
			return nil
		},
	}
}
