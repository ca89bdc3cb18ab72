package prettylog

import (
	"io"
	"os"

	"github.com/philipp01105/prettylog/logger"
)

// outStderr is where configured loggers write.
var outStderr io.Writer = os.Stderr

// configure returns a fresh pretty builder with filters applied. A nil
// filters leaves the builder's default (errors only).
func configure(timed bool, filters *string) *logger.Builder {
	var b *logger.Builder
	if timed {
		b = logger.FormattedTimedBuilder()
	} else {
		b = logger.FormattedBuilder()
	}
	b.WithWriter(outStderr)
	if filters != nil {
		b.ParseFilters(*filters)
	}
	return b
}
