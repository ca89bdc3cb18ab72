package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/filter"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/handler"
	"github.com/philipp01105/prettylog/handler/consolehandler"
)

// diagnostics receives warnings about ignored directives and failed writes.
var diagnostics io.Writer = os.Stderr

// Builder provides a fluent API for building Logger instances. A Builder is
// consumed by Build (or TryInit) and cannot be built again.
type Builder struct {
	filter        *filter.Builder
	handler       handler.Handler
	writer        io.Writer
	formatter     formatter.Formatter
	style         formatter.WriteStyle
	pretty        bool
	json          bool
	timed         bool
	fields        []core.Field
	includeCaller bool
	built         bool
}

// NewBuilder creates a builder for a text-format logger writing to stderr.
// Without filter directives only errors are logged.
func NewBuilder() *Builder {
	return &Builder{filter: filter.NewBuilder()}
}

// FormattedBuilder creates a builder for colored, human-friendly output:
//
//	 INFO  github.com/acme/app > listening
func FormattedBuilder() *Builder {
	b := NewBuilder()
	b.pretty = true
	return b
}

// FormattedTimedBuilder is FormattedBuilder with a timestamp on every line.
func FormattedTimedBuilder() *Builder {
	b := FormattedBuilder()
	b.timed = true
	return b
}

// JSONBuilder creates a builder for machine-readable output, one JSON
// object per line:
//
//	{"time":"...","level":"INFO","target":"github.com/acme/app","message":"listening"}
func JSONBuilder() *Builder {
	b := NewBuilder()
	b.json = true
	return b
}

// ParseFilters applies a directive spec (see package filter). Directives that
// cannot be understood are skipped with a warning on stderr; the rest take
// effect.
func (b *Builder) ParseFilters(spec string) *Builder {
	if err := b.filter.Parse(spec); err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(diagnostics, "warning: %v, ignoring it\n", e)
		}
	}
	return b
}

// FilterLevel sets the threshold for targets without a specific directive.
func (b *Builder) FilterLevel(level core.Level) *Builder {
	b.filter.Level(level)
	return b
}

// FilterModule sets the threshold for targets starting with target.
func (b *Builder) FilterModule(target string, level core.Level) *Builder {
	b.filter.Module(target, level)
	return b
}

// WithWriter sets the destination (default: os.Stderr)
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithWriteStyle sets whether the formatted builders emit colors
func (b *Builder) WithWriteStyle(style formatter.WriteStyle) *Builder {
	b.style = style
	return b
}

// WithFormatter replaces the builder's formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithHandler sets the handler. The writer and formatter settings are
// ignored when a handler is given.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance. It panics if the builder was already
// consumed.
func (b *Builder) Build() *Logger {
	if b.built {
		panic("logger: attempt to re-use consumed builder")
	}
	b.built = true

	h := b.handler
	if h == nil {
		w := b.writer
		if w == nil {
			w = os.Stderr
		}
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    w,
			Formatter: b.buildFormatter(w),
		})
	}

	return &Logger{
		handler:       h,
		filter:        b.filter.Build(),
		fields:        b.fields,
		includeCaller: b.includeCaller,
	}
}

func (b *Builder) buildFormatter(w io.Writer) formatter.Formatter {
	if b.formatter != nil {
		return b.formatter
	}
	cfg := formatter.Config{IncludeCaller: b.includeCaller}
	if b.json {
		return formatter.NewJSONFormatter(cfg)
	}
	if !b.pretty {
		return formatter.NewTextFormatter(cfg)
	}
	return formatter.NewPrettyFormatter(formatter.PrettyConfig{
		Config: cfg,
		Timed:  b.timed,
		Color:  b.style.Colorize(w),
	})
}

// TryInit builds the Logger and commits it as the global logger. It returns
// ErrAlreadyInitialized if a global logger was committed before.
func (b *Builder) TryInit() error {
	return SetGlobal(b.Build())
}

// Init is TryInit that panics on failure.
func (b *Builder) Init() {
	if err := b.TryInit(); err != nil {
		panic(err)
	}
}
