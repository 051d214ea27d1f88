package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUI_DEBUG"

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(Nop())
}

// Logger returns the process-wide debug logger. It is safe for concurrent
// use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// SetLogger replaces the process-wide debug logger. nil restores the silent
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	loggerPtr.Store(l)
}

// Log writes a printf-style debug message.
func Log(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Open appends debug records to the file at path, creating its directory
// if needed, and installs the result as the debug logger. The returned closer restores the silent logger and
// closes the file.
func Open(path string) (io.Closer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return closer{f}, nil
}

// FromEnv calls Open with the path in TUI_DEBUG. When the variable is unset
// logging stays silent and the returned closer does nothing.
func FromEnv() (io.Closer, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return closer{}, nil
	}
	return Open(path)
}

type closer struct {
	f *os.File
}

func (c closer) Close() error {
	if c.f == nil {
		return nil
	}
	SetLogger(nil)
	return c.f.Close()
}
