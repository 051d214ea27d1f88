package debug

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("k", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() did not return a nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger should be silent")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Log("frame %d took %s", 3, "1ms")
	if !strings.Contains(buf.String(), "frame 3 took 1ms") {
		t.Errorf("log output = %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestFromEnv(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	t.Setenv(EnvVar, "")
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() unset error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}

	path := filepath.Join(t.TempDir(), "debug.log")
	t.Setenv(EnvVar, path)
	c, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	Logger().Debug("relayout", "reason", "resize")
	Log("skipped")
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"msg=relayout reason=resize", "msg=skipped"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("Close() should restore the silent logger")
	}
}

func TestOpen(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	dir := t.TempDir()

	c, err := Open(filepath.Join(dir, "nested", "logs", "debug.log"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}

	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(filepath.Join(blocker, "debug.log")); err == nil {
		t.Error("Open() under a regular file succeeded")
	}
}
