// Package logger is the logging backend of prettylog: it builds Loggers,
// owns the process-wide global logger, and exposes the front-end functions
// programs log through.
//
// A Logger is immutable after construction. The directive filter, the
// handler and the default fields are fixed by the Builder, which makes a
// Logger safe for concurrent use without locking on the read path.
//
// Four builders are provided:
//
//	logger.NewBuilder()            // text format, stderr
//	logger.FormattedBuilder()      // colored " INFO  target > message"
//	logger.FormattedTimedBuilder() // same, prefixed with a timestamp
//	logger.JSONBuilder()           // one JSON object per line
//
// Filters are given in the directive grammar of package filter:
//
//	log := logger.FormattedBuilder().
//	    ParseFilters("warn,github.com/acme/app=debug").
//	    Build()
//
// # Global logger
//
// TryInit commits a builder's Logger as the global logger. This succeeds
// exactly once per process; later attempts return ErrAlreadyInitialized and
// leave the installed logger untouched. Until then Default returns a logger
// that discards everything.
//
// The package-level functions Info, Debugf, etc. log through Default. Each
// record's target is the import path of the calling package, so directives
// name packages:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// Committing a logger also routes log/slog's default logger and zap's
// global logger (zap.L) to it, so libraries using either end up in the same
// sink under the same filter.
package logger
