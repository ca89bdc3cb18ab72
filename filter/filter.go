package filter

import (
	"regexp"
	"strings"

	"github.com/philipp01105/prettylog/core"
)

// Directive enables records for targets starting with Name at Level and
// above. An empty Name matches every target.
type Directive struct {
	Name  string
	Level core.Level
}

// Filter decides whether a record is enabled. It is immutable and safe for
// concurrent use.
type Filter struct {
	// sorted by ascending name length; lookups walk it backwards
	directives []Directive
	regex      *regexp.Regexp
	minLevel   core.Level
}

// Enabled reports whether a record at level for target passes the
// directives. It does not look at the message regex.
func (f *Filter) Enabled(target string, level core.Level) bool {
	if level < f.minLevel {
		return false
	}
	for i := len(f.directives) - 1; i >= 0; i-- {
		d := f.directives[i]
		if d.Name != "" && !strings.HasPrefix(target, d.Name) {
			continue
		}
		return level >= d.Level
	}
	return false
}

// LevelEnabled reports whether any directive could enable level. Callers use
// it as a cheap pre-check before resolving a record's target.
func (f *Filter) LevelEnabled(level core.Level) bool {
	return level >= f.minLevel
}

// MatchMessage reports whether msg passes the regular expression filter. It
// is true when no regex was configured.
func (f *Filter) MatchMessage(msg string) bool {
	return f.regex == nil || f.regex.MatchString(msg)
}

// Matches combines Enabled and MatchMessage for a complete entry.
func (f *Filter) Matches(e *core.Entry) bool {
	return f.Enabled(e.Target, e.Level) && f.MatchMessage(e.Message)
}

// Directives returns a copy of the effective directives, most specific last.
func (f *Filter) Directives() []Directive {
	out := make([]Directive, len(f.directives))
	copy(out, f.directives)
	return out
}

// Regex returns the message filter, or nil.
func (f *Filter) Regex() *regexp.Regexp {
	return f.regex
}
