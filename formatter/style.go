package formatter

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// WriteStyle controls whether ANSI colors are written.
type WriteStyle int

const (
	// WriteStyleAuto colors output when the writer is a terminal.
	WriteStyleAuto WriteStyle = iota
	// WriteStyleAlways always colors output.
	WriteStyleAlways
	// WriteStyleNever never colors output.
	WriteStyleNever
)

func (s WriteStyle) String() string {
	switch s {
	case WriteStyleAlways:
		return "always"
	case WriteStyleNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseWriteStyle converts "auto", "always" or "never" to a WriteStyle.
// Anything else yields WriteStyleAuto.
func ParseWriteStyle(s string) WriteStyle {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return WriteStyleAlways
	case "never":
		return WriteStyleNever
	default:
		return WriteStyleAuto
	}
}

// Colorize resolves the style for a concrete writer.
func (s WriteStyle) Colorize(w io.Writer) bool {
	switch s {
	case WriteStyleAlways:
		return true
	case WriteStyleNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
