package filter

import (
	"strings"
	"testing"

	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
)

func TestParseSpec_Valid(t *testing.T) {
	spec, err := ParseSpec("acme/app/db=error,acme/app/http, lib=debug ,info")
	if err != nil {
		t.Fatalf("ParseSpec() error = %v", err)
	}

	want := []Directive{
		{Name: "acme/app/db", Level: core.ErrorLevel},
		{Name: "acme/app/http", Level: core.TraceLevel},
		{Name: "lib", Level: core.DebugLevel},
		{Level: core.InfoLevel},
	}
	if len(spec.Directives) != len(want) {
		t.Fatalf("got %d directives, want %d: %+v", len(spec.Directives), len(want), spec.Directives)
	}
	for i, d := range want {
		if spec.Directives[i] != d {
			t.Errorf("directive %d = %+v, want %+v", i, spec.Directives[i], d)
		}
	}
	if spec.Regex != nil {
		t.Errorf("unexpected regex %v", spec.Regex)
	}
}

func TestParseSpec_Lenient(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		directives int
		errs       int
	}{
		{"empty", "", 0, 0},
		{"only commas", ",,", 0, 0},
		{"unknown level", "app=loud,lib=info", 1, 1},
		{"double equals", "app=info=debug,warn", 1, 1},
		{"blank target", "app=", 1, 0},
		{"bad regex", "info//[", 1, 1},
		{"too many separators", "info//a//b", 0, 1},
		{"slashes in targets", "github.com/acme/app=debug,net/http", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpec(tt.spec)
			if len(spec.Directives) != tt.directives {
				t.Errorf("got %d directives, want %d", len(spec.Directives), tt.directives)
			}
			if got := len(multierr.Errors(err)); got != tt.errs {
				t.Errorf("got %d errors (%v), want %d", got, err, tt.errs)
			}
		})
	}
}

func TestSpecError_Message(t *testing.T) {
	_, err := ParseSpec("app=loud")
	if err == nil || !strings.Contains(err.Error(), "invalid logging spec 'loud'") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseSpec_Regex(t *testing.T) {
	spec, err := ParseSpec("debug//^req")
	if err != nil {
		t.Fatalf("ParseSpec() error = %v", err)
	}
	if spec.Regex == nil || spec.Regex.String() != "^req" {
		t.Fatalf("expected regex ^req, got %v", spec.Regex)
	}
}

func TestParseSpec_ImportPathsWithRegex(t *testing.T) {
	spec, err := ParseSpec("warn,github.com/acme/app/db=trace//^slow /api/")
	if err != nil {
		t.Fatalf("ParseSpec() error = %v", err)
	}
	want := []Directive{
		{Level: core.WarnLevel},
		{Name: "github.com/acme/app/db", Level: core.TraceLevel},
	}
	if len(spec.Directives) != len(want) {
		t.Fatalf("got %d directives, want %d: %+v", len(spec.Directives), len(want), spec.Directives)
	}
	for i, d := range want {
		if spec.Directives[i] != d {
			t.Errorf("directive %d = %+v, want %+v", i, spec.Directives[i], d)
		}
	}
	if spec.Regex == nil || spec.Regex.String() != "^slow /api/" {
		t.Errorf("expected regex '^slow /api/', got %v", spec.Regex)
	}
}

func TestFilter_DefaultIsError(t *testing.T) {
	f := NewBuilder().Build()

	if f.Enabled("anything", core.WarnLevel) {
		t.Error("Warn should be disabled by default")
	}
	if !f.Enabled("anything", core.ErrorLevel) {
		t.Error("Error should be enabled by default")
	}

	f, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Enabled("anything", core.InfoLevel) || !f.Enabled("anything", core.ErrorLevel) {
		t.Error("empty spec should behave like the default")
	}
}

func TestFilter_LongestPrefixWins(t *testing.T) {
	f, err := Parse("warn,acme/app=info,acme/app/db=trace,acme/app/http=off")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		target string
		level  core.Level
		want   bool
	}{
		{"other/lib", core.InfoLevel, false},
		{"other/lib", core.WarnLevel, true},
		{"acme/app", core.InfoLevel, true},
		{"acme/app", core.DebugLevel, false},
		{"acme/app/db", core.TraceLevel, true},
		{"acme/app/db/migrate", core.TraceLevel, true},
		{"acme/app/http", core.PanicLevel, false},
		{"acme/app/cache", core.DebugLevel, false},
	}

	for _, tt := range tests {
		if got := f.Enabled(tt.target, tt.level); got != tt.want {
			t.Errorf("Enabled(%q, %v) = %v, want %v", tt.target, tt.level, got, tt.want)
		}
	}
}

func TestFilter_NoDefaultDirective(t *testing.T) {
	f, err := Parse("acme/app=debug")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Enabled("other", core.ErrorLevel) {
		t.Error("targets outside acme/app have no directive and must be disabled")
	}
	if !f.Enabled("acme/app/x", core.DebugLevel) {
		t.Error("acme/app/x should be enabled at debug")
	}
}

func TestFilter_Off(t *testing.T) {
	f, err := Parse("off")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.LevelEnabled(core.PanicLevel) || f.Enabled("x", core.PanicLevel) {
		t.Error("off should disable every level")
	}
}

func TestFilter_MatchMessage(t *testing.T) {
	f, err := Parse("trace//^request")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	e := &core.Entry{Level: core.InfoLevel, Message: "request done"}
	if !f.Matches(e) {
		t.Error("expected message to match")
	}
	e.Message = "shutting down"
	if f.Matches(e) {
		t.Error("expected message to be filtered")
	}
}

func TestBuilder_LaterDirectiveReplaces(t *testing.T) {
	b := NewBuilder().Module("acme", core.ErrorLevel)
	if err := b.Parse("acme=debug"); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f := b.Build()

	ds := f.Directives()
	if len(ds) != 1 || ds[0].Level != core.DebugLevel {
		t.Errorf("unexpected directives %+v", ds)
	}
}

func TestBuilder_ReuseAfterBuildPanics(t *testing.T) {
	b := NewBuilder().Level(core.InfoLevel)
	b.Build()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Build")
		}
	}()
	b.Build()
}
