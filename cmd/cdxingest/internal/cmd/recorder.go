package cmd

import (
	"context"
	"log/slog"
	"sync"
)

// recording holds the records logged through a recorder and its
// derived handlers.
type recording struct {
	mu      sync.Mutex
	records []slog.Record
}

// recorder is a slog.Handler that keeps every record in memory so that
// messages logged from a worker goroutine can be replayed later from the
// goroutine that owns the command's logger. Groups are flattened into
// dotted attribute keys.
type recorder struct {
	*recording
	attrs  []slog.Attr
	prefix string
}

func newRecorder() *recorder {
	return &recorder{recording: &recording{}}
}

func (r *recorder) Enabled(context.Context, slog.Level) bool {
	return true
}

func (r *recorder) Handle(_ context.Context, record slog.Record) error {
	rec := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	rec.AddAttrs(r.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		attr.Key = r.prefix + attr.Key
		rec.AddAttrs(attr)

		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)

	return nil
}

func (r *recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &recorder{recording: r.recording, prefix: r.prefix}
	next.attrs = append(append(next.attrs, r.attrs...), prefixed(r.prefix, attrs)...)

	return next
}

func (r *recorder) WithGroup(name string) slog.Handler {
	if name == "" {
		return r
	}

	return &recorder{recording: r.recording, attrs: r.attrs, prefix: r.prefix + name + "."}
}

// replay sends the recorded records, in the order they were logged, to
// handler.
func (r *recorder) replay(ctx context.Context, handler slog.Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range r.records {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record); err != nil {
			return err
		}
	}

	return nil
}

func prefixed(prefix string, attrs []slog.Attr) []slog.Attr {
	if prefix == "" {
		return attrs
	}

	out := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		attr.Key = prefix + attr.Key
		out[i] = attr
	}

	return out
}
