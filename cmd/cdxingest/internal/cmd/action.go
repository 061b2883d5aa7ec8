package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/sbomkit/cdxingest/internal/cmdlogger"
	"github.com/sbomkit/cdxingest/internal/config"
	"github.com/sbomkit/cdxingest/internal/output"
	"github.com/sbomkit/cdxingest/pkg/cdxingest"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// job is the parse of one input file.
type job struct {
	path     string
	parser   *cdxingest.Parser
	recorder *recorder

	result *cdxingest.Result
	err    error
}

func action(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return ErrNoInputs
	}

	manager := config.NewManager()
	if override := cmd.String("config"); override != "" {
		if err := manager.UseOverride(override); err != nil {
			cmdlogger.Errorf("%s at %s: %v", cmdlogger.InvalidConfigPrefix, override, err)
			return err
		}
	}

	jobs := make([]*job, 0, len(paths))
	for _, path := range paths {
		opts, err := parserOptions(cmd, manager.Get(path))
		if err != nil {
			return err
		}

		rec := newRecorder()
		opts.Logger = slog.New(rec)
		jobs = append(jobs, &job{path: path, parser: cdxingest.New(opts), recorder: rec})
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		g.Go(func() error {
			j.result, j.err = j.parser.ParseFile(j.path)

			// a failed file must not stop the others from being parsed
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	results := make([]output.FileResult, 0, len(jobs))
	for _, j := range jobs {
		if err := j.recorder.replay(ctx, slog.Default().Handler()); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}

		if j.err != nil {
			cmdlogger.Errorf("%v", j.err)
			failed = true

			continue
		}

		cmdlogger.Infof("Parsed %s and found %d packages", j.path, j.result.Packages.Len())
		results = append(results, output.FileResult{Path: j.path, Result: *j.result})
	}

	if err := output.Print(results, cmd.String("format"), stdout, terminalWidth(stdout)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if failed {
		return ErrParseFailed
	}

	return nil
}

// parserOptions combines the config that applies to a file with the flags,
// which take precedence.
func parserOptions(cmd *cli.Command, cfg config.Config) (cdxingest.Options, error) {
	opts, err := cfg.ParserOptions()
	if err != nil {
		return cdxingest.Options{}, err
	}

	if cmd.IsSet("debug") {
		opts.Debug = cmd.Bool("debug")
	}

	if cmd.IsSet("duplicate-policy") {
		policy, err := cdxingest.ParseDuplicatePolicy(cmd.String("duplicate-policy"))
		if err != nil {
			return cdxingest.Options{}, err
		}
		opts.DuplicatePolicy = policy
	}

	return opts, nil
}

// terminalWidth returns the width of the terminal w writes to, or 0 if w is
// not a terminal.
func terminalWidth(w io.Writer) int {
	stdoutAsFile, ok := w.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(int(stdoutAsFile.Fd()))
	if err != nil {
		return 0
	}

	return width
}
