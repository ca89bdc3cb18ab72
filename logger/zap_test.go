package logger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapCore_CallerTarget(t *testing.T) {
	l, buf := newTestLogger("error," + thisPackage + "=info")
	zl := zap.New(NewZapCore(l), zap.AddCaller())

	zl.Debug("too low")
	zl.Info("hello", zap.String("user", "alice"), zap.Int("n", 3), zap.Bool("ok", true))

	out := buf.String()
	if strings.Contains(out, "too low") {
		t.Errorf("Debug passed an info directive: %s", out)
	}
	if !strings.Contains(out, "[INFO] "+thisPackage+": hello user=alice n=3 ok=true") {
		t.Errorf("Unexpected output: %q", out)
	}
}

func TestZapCore_LoggerName(t *testing.T) {
	l, buf := newTestLogger("warn,db=debug")
	zl := zap.New(NewZapCore(l))

	zl.Named("db").Debug("query")
	zl.Named("cache").Info("miss")

	out := buf.String()
	if !strings.Contains(out, "[DEBUG] db: query") {
		t.Errorf("Expected db debug record, got: %q", out)
	}
	if strings.Contains(out, "miss") {
		t.Errorf("cache info passed the warn default: %q", out)
	}
}

func TestZapCore_Fields(t *testing.T) {
	l, buf := newTestLogger("info")
	zl := zap.New(NewZapCore(l)).Named("svc").With(zap.String("app", "api"))

	zl.Info("done",
		zap.Duration("took", 2*time.Second),
		zap.Float64("ratio", 0.5),
		zap.Error(errors.New("boom")),
		zap.Uint("count", 7),
		zap.Strings("tags", []string{"a"}),
		zap.Skip(),
	)

	out := buf.String()
	for _, want := range []string{"svc: done", "app=api", "took=2s", "ratio=0.5", "error=boom", "count=7", "tags=[a]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got: %q", want, out)
		}
	}
}

func TestZapLevelToCore(t *testing.T) {
	cases := []struct {
		in   zapcore.Level
		want Level
	}{
		{zapcore.DebugLevel, DebugLevel},
		{zapcore.InfoLevel, InfoLevel},
		{zapcore.WarnLevel, WarnLevel},
		{zapcore.ErrorLevel, ErrorLevel},
		{zapcore.DPanicLevel, ErrorLevel},
		{zapcore.PanicLevel, PanicLevel},
		{zapcore.FatalLevel, FatalLevel},
	}
	for _, c := range cases {
		if got := zapLevelToCore(c.in); got != c.want {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
