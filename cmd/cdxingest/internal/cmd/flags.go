package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sbomkit/cdxingest/internal/cmdlogger"
	"github.com/sbomkit/cdxingest/internal/output"
	"github.com/sbomkit/cdxingest/pkg/cdxingest"
	"github.com/urfave/cli/v3"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Usage:     "set/override config file",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "sets the output format; value can be: " + strings.Join(output.Formats(), ", "),
			Value:   "table",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				if !slices.Contains(output.Formats(), s) {
					return fmt.Errorf("unsupported output format \"%s\" - must be one of: %s", s, strings.Join(output.Formats(), ", "))
				}

				if output.IsMachineFormat(s) {
					cmdlogger.SendEverythingToStderr()
				}

				return nil
			},
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "report recoverable problems found while parsing; overrides the config file and " + cdxingest.DebugEnvVar,
		},
		&cli.StringFlag{
			Name:  "duplicate-policy",
			Usage: "what to do when two components share a name and version; value can be: overwrite, keep-first",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				_, err := cdxingest.ParseDuplicatePolicy(s)

				return err
			},
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
			Value: "info",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				lvl, err := cmdlogger.ParseLevel(s)

				if err != nil {
					return err
				}

				cmdlogger.SetLevel(lvl)

				return nil
			},
		},
	}
}
