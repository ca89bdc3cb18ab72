package filter

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
)

// RegexSeparator separates the directives from the message regex. Import
// paths never contain an empty element, so it cannot occur inside a target.
const RegexSeparator = "//"

// Spec is the parsed form of a directive string.
type Spec struct {
	Directives []Directive
	Regex      *regexp.Regexp
}

// SpecError describes a part of a directive string that was ignored.
type SpecError struct {
	Spec   string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid logging spec '%s'", e.Spec)
	}
	return fmt.Sprintf("invalid logging spec '%s' (%s)", e.Spec, e.Reason)
}

// ParseSpec parses a directive string. Whatever could be understood is
// returned together with an error listing everything that was skipped;
// use multierr.Errors to inspect the individual SpecErrors.
func ParseSpec(spec string) (Spec, error) {
	var out Spec
	var errs error

	parts := strings.Split(spec, RegexSeparator)
	if len(parts) > 2 {
		return out, &SpecError{Spec: spec, Reason: "too many '" + RegexSeparator + "'s"}
	}
	mods := parts[0]

	for _, s := range strings.Split(mods, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		d, err := parseDirective(s)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out.Directives = append(out.Directives, d)
	}

	if len(parts) == 2 {
		re, err := regexp.Compile(parts[1])
		if err != nil {
			errs = multierr.Append(errs, &SpecError{Spec: parts[1], Reason: "invalid regex: " + err.Error()})
		} else {
			out.Regex = re
		}
	}
	return out, errs
}

func parseDirective(s string) (Directive, error) {
	kv := strings.Split(s, "=")
	switch len(kv) {
	case 1:
		if level, ok := core.ParseLevel(kv[0]); ok {
			return Directive{Level: level}, nil
		}
		return Directive{Name: kv[0], Level: core.TraceLevel}, nil
	case 2:
		name := strings.TrimSpace(kv[0])
		if kv[1] == "" {
			return Directive{Name: name, Level: core.TraceLevel}, nil
		}
		level, ok := core.ParseLevel(strings.TrimSpace(kv[1]))
		if !ok {
			return Directive{}, &SpecError{Spec: kv[1], Reason: "unknown level"}
		}
		return Directive{Name: name, Level: level}, nil
	default:
		return Directive{}, &SpecError{Spec: s}
	}
}
