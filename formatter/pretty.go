package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"

	"github.com/philipp01105/prettylog/core"
)

// PrettyTimestampFormat is the default timestamp of timed pretty output:
// RFC 3339 in UTC with millisecond precision.
const PrettyTimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// PrettyConfig configures a PrettyFormatter.
type PrettyConfig struct {
	Config
	// Timed prefixes every line with a timestamp.
	Timed bool
	// Color enables ANSI colors. Resolve it with WriteStyle.Colorize.
	Color bool
}

// PrettyFormatter renders entries for humans reading a terminal:
//
//	 INFO  github.com/acme/app > listening port=8080
//	2026-02-18T13:00:00.000Z WARN  github.com/acme/app > slow request
//
// Targets are padded to the widest target written so far so that messages
// line up.
type PrettyFormatter struct {
	cfg         PrettyConfig
	levels      [core.OffLevel]*color.Color
	target      *color.Color
	targetWidth atomic.Int64
}

var levelLabels = [core.OffLevel]string{
	core.TraceLevel: "TRACE",
	core.DebugLevel: "DEBUG",
	core.InfoLevel:  "INFO ",
	core.WarnLevel:  "WARN ",
	core.ErrorLevel: "ERROR",
	core.FatalLevel: "FATAL",
	core.PanicLevel: "PANIC",
}

// NewPrettyFormatter creates a new pretty formatter
func NewPrettyFormatter(cfg PrettyConfig) *PrettyFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = PrettyTimestampFormat
	}
	f := &PrettyFormatter{
		cfg: cfg,
		levels: [core.OffLevel]*color.Color{
			core.TraceLevel: color.New(color.FgMagenta),
			core.DebugLevel: color.New(color.FgBlue),
			core.InfoLevel:  color.New(color.FgGreen),
			core.WarnLevel:  color.New(color.FgYellow),
			core.ErrorLevel: color.New(color.FgRed),
			core.FatalLevel: color.New(color.FgRed, color.Bold),
			core.PanicLevel: color.New(color.FgRed, color.Bold),
		},
		target: color.New(color.Bold),
	}
	for _, c := range append(f.levels[:], f.target) {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Timed reports whether lines carry a timestamp.
func (f *PrettyFormatter) Timed() bool { return f.cfg.Timed }

// Colored reports whether ANSI colors are written.
func (f *PrettyFormatter) Colored() bool { return f.cfg.Color }

// Format formats an entry for a terminal
func (f *PrettyFormatter) Format(entry *core.Entry) ([]byte, error) {
	return render(entry, f.formatToBuffer), nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *PrettyFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	return renderTo(entry, w, f.formatToBuffer)
}

func (f *PrettyFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	if f.cfg.Timed {
		buf.Write(entry.Time.UTC().AppendFormat(buf.AvailableBuffer(), f.cfg.TimestampFormat))
	}
	buf.WriteByte(' ')

	if entry.Level >= 0 && entry.Level < core.OffLevel {
		buf.WriteString(f.levels[entry.Level].Sprint(levelLabels[entry.Level]))
	} else {
		buf.WriteString("?????")
	}
	buf.WriteByte(' ')

	width := f.padTo(len(entry.Target))
	buf.WriteString(f.target.Sprint(entry.Target + strings.Repeat(" ", width-len(entry.Target))))
	buf.WriteString(" > ")

	if f.cfg.IncludeCaller && entry.Caller.Defined {
		writeCaller(buf, entry.Caller)
	}

	buf.WriteString(entry.Message)
	writeFields(buf, entry.Fields)
	buf.WriteByte('\n')
}

// padTo records n as a target width and returns the widest seen so far.
func (f *PrettyFormatter) padTo(n int) int {
	for {
		cur := f.targetWidth.Load()
		if int64(n) <= cur {
			return int(cur)
		}
		if f.targetWidth.CompareAndSwap(cur, int64(n)) {
			return n
		}
	}
}
