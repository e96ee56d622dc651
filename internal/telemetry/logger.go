package telemetry

import (
	"io"
	"os"
	"sort"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// JSONLogger writes one JSON object per event. An empty path discards
// everything so callers never need a nil check.
type JSONLogger struct {
	mu  sync.Mutex
	w   io.WriteCloser
	log *clog.Logger
}

func NewJSONLogger(path string) (*JSONLogger, error) {
	if path == "" {
		return newJSONLogger(nopCloser{Writer: io.Discard}), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return newJSONLogger(f), nil
}

// NewWriterLogger is used by tests and by callers that own the writer.
func NewWriterLogger(w io.Writer) *JSONLogger {
	return newJSONLogger(nopCloser{Writer: w})
}

func newJSONLogger(w io.WriteCloser) *JSONLogger {
	l := clog.NewWithOptions(w, clog.Options{
		Formatter:       clog.JSONFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           clog.DebugLevel,
	})
	return &JSONLogger{w: w, log: l}
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	if l == nil || l.log == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Info(msg, keyvals(fields)...)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	if l == nil || l.log == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Error(msg, keyvals(fields)...)
}

func (l *JSONLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}

// keyvals flattens fields in key order so log lines are stable.
func keyvals(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		out = append(out, k, fields[k])
	}
	return out
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
