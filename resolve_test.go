package prettylog

import (
	"os"
	"testing"
)

func TestResolveFilters_UnsetIsLiteral(t *testing.T) {
	for _, source := range []string{
		"PRETTYLOG_TEST_UNSET",
		"info,github.com/acme/app=trace",
		"warn//^request",
		"",
	} {
		if _, ok := os.LookupEnv(source); ok {
			t.Fatalf("%q is set in the test environment", source)
		}
		got := resolveFilters(source)
		if got == nil || *got != source {
			t.Errorf("resolveFilters(%q) = %v, want the literal", source, got)
		}
	}
}

func TestResolveFilters_SetUsesValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"PRETTYLOG_TEST_LEVEL", "debug"},
		{"PRETTYLOG_TEST_SPEC", "warn,db=trace//slow"},
		{"PRETTYLOG_TEST_EMPTY", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.name, tt.value)
			got := resolveFilters(tt.name)
			if got == nil || *got != tt.value {
				t.Errorf("resolveFilters(%q) = %v, want %q", tt.name, got, tt.value)
			}
		})
	}
}

func TestResolveFilters_InvalidUTF8IsLiteral(t *testing.T) {
	const name = "PRETTYLOG_TEST_BINARY"
	t.Setenv(name, "\xff\xfe")

	got := resolveFilters(name)
	if got == nil || *got != name {
		t.Errorf("resolveFilters(%q) = %v, want the literal name", name, got)
	}
}
