/*
Copyright © 2026 verkit
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/verkit/semver/pkg/logging"
	"github.com/verkit/semver/pkg/serializer"
)

const name = "semver"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}
	strictFlag = &cli.BoolFlag{
		Name:  "strict",
		Usage: "Require explicit minor and patch components when parsing",
	}
)

// Run executes the root command with the given arguments.
// This is called by main.main().
func Run(ctx context.Context, args []string) error {
	return rootCmd().Run(ctx, args)
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Parse, compare, and order semantic versions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			sortCmd(),
			validateCmd(),
			bumpCmd(),
		},
	}
}

// newResultWriter builds the serializer for a command's --format/--output
// flags, failing on an unknown format.
func newResultWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q", outFormat)
	}
	return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")), nil
}
