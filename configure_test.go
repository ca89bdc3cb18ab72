package prettylog

import (
	"bytes"
	"regexp"
	"testing"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := outStderr
	outStderr = &buf
	t.Cleanup(func() { outStderr = orig })
	return &buf
}

func TestConfigure_NilFiltersLogsErrorsOnly(t *testing.T) {
	buf := captureStderr(t)
	l := configure(false, nil).Build()

	l.Named("app").Warn("warned")
	l.Named("app").Error("failed")

	if got, want := buf.String(), " ERROR app > failed\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConfigure_AppliesFilters(t *testing.T) {
	buf := captureStderr(t)
	filters := "warn,app=debug"
	l := configure(false, &filters).Build()

	l.Named("app").Debug("detail")
	l.Named("other").Info("hidden")

	if got, want := buf.String(), " DEBUG app > detail\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConfigure_Timed(t *testing.T) {
	buf := captureStderr(t)
	l := configure(true, nil).Build()

	l.Named("app").Error("boom")

	line := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z ERROR app > boom\n$`)
	if !line.MatchString(buf.String()) {
		t.Errorf("unexpected timed line %q", buf.String())
	}
}
