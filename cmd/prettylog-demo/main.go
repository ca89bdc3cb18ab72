// Command prettylog-demo initializes prettylog and logs a few records
// through each front-end.
//
//	prettylog-demo                      # directives from $GO_LOG
//	prettylog-demo MYAPP_LOG            # from $MYAPP_LOG, or the literal
//	prettylog-demo 'info,main=trace'    # literal directives
//	prettylog-demo -timed debug
//	prettylog-demo -json info         # JSON lines instead of colored text
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/philipp01105/prettylog"
	"github.com/philipp01105/prettylog/logger"
)

func main() {
	timed := flag.Bool("timed", false, "prefix every line with a timestamp")
	asJSON := flag.Bool("json", false, "write one JSON object per line")
	flag.Parse()

	source := prettylog.DefaultEnv
	if flag.NArg() > 0 {
		source = flag.Arg(0)
	}

	tryInit := prettylog.TryInitWith
	switch {
	case *asJSON:
		tryInit = initJSON
	case *timed:
		tryInit = prettylog.TryInitTimedWith
	}
	if err := tryInit(source); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	logger.Debug("debug")
	logger.Trace("trace", logger.String("source", source))

	slog.Info("from slog", "front_end", "log/slog")
	zap.L().Named("main.zap").Warn("from zap", zap.Bool("named", true))
}

// initJSON reads directives the way prettylog.TryInitWith does but commits
// a JSON logger.
func initJSON(source string) error {
	filters := source
	if v, ok := os.LookupEnv(source); ok && utf8.ValidString(v) {
		filters = v
	}
	return logger.JSONBuilder().ParseFilters(filters).TryInit()
}
