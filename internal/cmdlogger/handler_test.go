package cmdlogger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/sbomkit/cdxingest/internal/cmdlogger"
)

func TestHandler_RoutesByLevel(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	handler := cmdlogger.New(stdout, stderr)
	logger := slog.New(handler)

	logger.Info("parsed file")
	logger.Warn("dependency target not found")
	logger.Error("failed to open file")
	logger.Debug("hidden at info level")

	if got, want := stdout.String(), "parsed file\ndependency target not found\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := stderr.String(), "failed to open file\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if !handler.HasErrored() {
		t.Errorf("HasErrored() = false, want true")
	}
	if handler.HasErroredBecauseInvalidConfig() {
		t.Errorf("HasErroredBecauseInvalidConfig() = true, want false")
	}
}

func TestHandler_SendEverythingToStderr(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	handler := cmdlogger.New(stdout, stderr)
	handler.SendEverythingToStderr()

	slog.New(handler).Info("hello")

	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
	if got, want := stderr.String(), "hello\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestHandler_SetLevel(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	handler := cmdlogger.New(stdout, &bytes.Buffer{})
	logger := slog.New(handler)

	handler.SetLevel(slog.LevelDebug)
	logger.Debug("now visible")

	handler.SetLevel(slog.LevelError)
	logger.Warn("now hidden")

	if got, want := stdout.String(), "now visible\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestHandler_Attrs(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	logger := slog.New(cmdlogger.New(stdout, &bytes.Buffer{}))

	logger.With("file", "bom.json").WithGroup("ref").Info("unresolved", "id", "A")

	if got, want := stdout.String(), "unresolved file=bom.json ref.id=A\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestHandler_InvalidConfig(t *testing.T) {
	t.Parallel()

	handler := cmdlogger.New(&bytes.Buffer{}, &bytes.Buffer{})
	slog.New(handler).Error(cmdlogger.InvalidConfigPrefix + " cdxingest.toml: unknown keys")

	if !handler.HasErroredBecauseInvalidConfig() {
		t.Errorf("HasErroredBecauseInvalidConfig() = false, want true")
	}
}

func TestHandler_ConcurrentUse(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	logger := slog.New(cmdlogger.New(stdout, &bytes.Buffer{}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				logger.Info("line")
			}
		}()
	}
	wg.Wait()

	if got := strings.Count(stdout.String(), "line\n"); got != 400 {
		t.Errorf("got %d lines, want 400", got)
	}
}
