package logger

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogHandler_FiltersByCallerTarget(t *testing.T) {
	l, buf := newTestLogger("error," + thisPackage + "=info")
	sl := slog.New(NewSlogHandler(l))

	sl.Debug("too low")
	sl.Info("hello", "user", "alice", "n", 3)

	out := buf.String()
	if strings.Contains(out, "too low") {
		t.Errorf("Debug passed an info directive: %s", out)
	}
	if !strings.Contains(out, "[INFO] "+thisPackage+": hello user=alice n=3") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestSlogHandler_NamedTarget(t *testing.T) {
	l, buf := newTestLogger("warn,db=debug")
	sl := slog.New(NewSlogHandler(l.Named("db")))

	sl.Debug("query")
	if !strings.Contains(buf.String(), "[DEBUG] db: query") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	l, _ := newTestLogger("warn")
	h := NewSlogHandler(l)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info enabled at warn threshold")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error disabled at warn threshold")
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	l, buf := newTestLogger("info")
	sl := slog.New(NewSlogHandler(l)).
		With("app", "api").
		WithGroup("req")

	sl.Info("done",
		slog.Group("http", slog.Int("status", 200), slog.String("method", "GET")),
		slog.Duration("took", 1500*time.Millisecond),
		slog.Any("err", errors.New("none")),
		slog.Attr{},
	)

	out := buf.String()
	for _, want := range []string{"app=api", "req.http.status=200", "req.http.method=GET", "req.took=1.5s", "req.err=none"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got: %q", want, out)
		}
	}
}

func TestSlogLevelToCore(t *testing.T) {
	cases := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelDebug - 4, TraceLevel},
		{slog.LevelDebug, DebugLevel},
		{slog.LevelInfo, InfoLevel},
		{slog.LevelWarn, WarnLevel},
		{slog.LevelError, ErrorLevel},
		{slog.LevelError + 4, ErrorLevel},
	}
	for _, c := range cases {
		if got := slogLevelToCore(c.in); got != c.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
