// Package filter implements the directive grammar used to select which log
// records are emitted.
//
// A spec is a comma-separated list of directives, optionally followed by
// "//" and a regular expression the message must match:
//
//	info
//	github.com/acme/app/db=debug,github.com/acme/app/http
//	warn,github.com/acme/app=trace//^request
//
// Targets are import paths, so single slashes belong to the target. A spec
// with more than one "//" is ignored as a whole.
//
// A directive is a bare level ("info"), a bare target (enabled at Trace), or
// target=level. Targets match by prefix and the longest matching target
// wins; a bare level applies to everything no target matches. When no
// directive is given at all, only Error and above is enabled.
//
// Parsing is lenient. Malformed directives are skipped and reported as a
// combined error (see go.uber.org/multierr), while the valid ones still
// take effect.
package filter
