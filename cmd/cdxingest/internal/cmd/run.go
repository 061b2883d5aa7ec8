// Package cmd implements the cdxingest command line.
package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/sbomkit/cdxingest/internal/cmdlogger"
	"github.com/sbomkit/cdxingest/internal/testlogger"
	"github.com/sbomkit/cdxingest/internal/version"
	"github.com/urfave/cli/v3"
)

var (
	commit = "n/a"
	date   = "n/a"
)

var (
	ErrNoInputs    = errors.New("no input files")
	ErrParseFailed = errors.New("one or more files could not be parsed")
)

func init() {
	cli.VersionPrinter = func(cmd *cli.Command) {
		cmdlogger.Infof("cdxingest version: %s", cmd.Version)
		cmdlogger.Infof("commit: %s", commit)
		cmdlogger.Infof("built at: %s", date)
	}
}

func Run(args []string, stdout, stderr io.Writer) int {
	// urfave/cli uses a global for its help flag which makes it possible for a nil
	// pointer dereference if running in a parallel setting, which our test suite
	// does, so this is used to hide the help flag so the global won't be used
	// unless a particular env variable is set
	//
	// see https://github.com/urfave/cli/issues/2176
	shouldHideHelp := testing.Testing() && os.Getenv("TEST_SHOW_HELP") != "true"

	// --- Setup Logger ---
	logHandler := cmdlogger.New(stdout, stderr)

	// If in testing mode, set logger via Handler
	// Otherwise, set default global logger
	if testing.Testing() {
		handler, ok := slog.Default().Handler().(*testlogger.Handler)
		if !ok {
			panic("Test failed to initialize default logger with Handler")
		}

		handler.AddInstance(logHandler)
		defer handler.Delete()
	} else {
		slog.SetDefault(slog.New(logHandler))
	}
	// ---

	app := &cli.Command{
		Name:      "cdxingest",
		Version:   version.CDXIngestVersion,
		Usage:     "parses CycloneDX SBOMs into normalized package, relationship and vulnerability records",
		ArgsUsage: "[file1 file2...]",
		Suggest:   true,
		HideHelp:  shouldHideHelp,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}

	// If ExitErrHandler is not set, cli will use the default cli.HandleExitCoder,
	// which exits the process early for any error that happens to have an
	// ExitCode() method.
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	err := app.Run(context.Background(), args)

	// if the config is invalid, it's possible that is why any other errors
	// happened so that exit code takes priority
	if logHandler.HasErroredBecauseInvalidConfig() {
		return 130
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrParseFailed):
			return 1
		case errors.Is(err, ErrNoInputs):
			cmdlogger.Errorf("No input files given, --help for usage information.")
			return 128
		}
		cmdlogger.Errorf("%v", err)
	}

	// if we've been told to print an error, and not already exited with
	// a specific error code, then exit with a generic non-zero code
	if logHandler.HasErrored() {
		return 127
	}

	return 0
}
