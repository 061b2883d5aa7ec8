package cmdlogger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// InvalidConfigPrefix starts the message logged when a config file cannot be
// used. Handlers remember having seen it so the command can exit with a
// dedicated code.
const InvalidConfigPrefix = "Invalid config file"

// state is shared between a Handler and every handler derived from it with
// WithAttrs or WithGroup.
type state struct {
	mu                 sync.Mutex
	stdout             io.Writer
	stderr             io.Writer
	hasErrored         bool
	everythingToStderr bool
	level              slog.Leveler

	hasErroredBecauseInvalidConfig bool
}

// Handler writes log messages as plain lines: errors to stderr, everything
// else to stdout. Attributes are appended as key=value pairs.
//
// It is safe for concurrent use, as files are parsed in parallel.
type Handler struct {
	*state

	attrs  []slog.Attr
	prefix string
}

// SendEverythingToStderr tells the logger to send all logs to stderr regardless
// of their level.
//
// This is useful if we're expecting to output structured data to stdout such
// as JSON, which cannot be mixed with other output.
func (c *Handler) SendEverythingToStderr() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.everythingToStderr = true
}

func (c *Handler) SetLevel(level slog.Leveler) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.level = level
}

func (c *Handler) writer(level slog.Level) io.Writer {
	if c.everythingToStderr || level >= slog.LevelError {
		return c.stderr
	}

	return c.stdout
}

func (c *Handler) Enabled(_ context.Context, level slog.Level) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level >= slog.LevelError {
		c.hasErrored = true
	}

	return level >= c.level.Level()
}

func (c *Handler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)

	for _, attr := range c.attrs {
		c.writeAttr(&sb, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		c.writeAttr(&sb, attr)
		return true
	})
	sb.WriteString("\n")

	c.mu.Lock()
	defer c.mu.Unlock()

	if record.Level >= slog.LevelError {
		c.hasErrored = true

		if strings.HasPrefix(record.Message, InvalidConfigPrefix) {
			c.hasErroredBecauseInvalidConfig = true
		}
	}

	_, err := fmt.Fprint(c.writer(record.Level), sb.String())

	return err
}

func (c *Handler) writeAttr(sb *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(sb, " %s%s=%s", c.prefix, attr.Key, attr.Value.Resolve())
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError]
func (c *Handler) HasErrored() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErrored
}

// HasErroredBecauseInvalidConfig returns true if there have been any calls to
// Handle with a level of [slog.LevelError] due to a config file being invalid
func (c *Handler) HasErroredBecauseInvalidConfig() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hasErroredBecauseInvalidConfig
}

func (c *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return c
	}

	prefixed := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	prefixed = append(prefixed, c.attrs...)
	prefixed = append(prefixed, attrs...)

	return &Handler{state: c.state, attrs: prefixed, prefix: c.prefix}
}

func (c *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}

	return &Handler{state: c.state, attrs: c.attrs, prefix: c.prefix + name + "."}
}

var _ CmdLogger = &Handler{}

func New(stdout, stderr io.Writer) CmdLogger {
	return &Handler{
		state: &state{
			stdout: stdout,
			stderr: stderr,
			level:  slog.LevelInfo,
		},
	}
}
