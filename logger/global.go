package logger

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"go.uber.org/zap"
)

// ErrAlreadyInitialized is returned when a global logger is committed after
// another one already was.
var ErrAlreadyInitialized = errors.New("attempted to set a logger after the logging system was already initialized")

// registry is a write-once slot for a Logger.
type registry struct {
	current atomic.Pointer[Logger]
}

// set stores l if the slot is empty. The check and the store are a single
// compare-and-swap, so among racing callers exactly one succeeds.
func (r *registry) set(l *Logger) error {
	if !r.current.CompareAndSwap(nil, l) {
		return ErrAlreadyInitialized
	}
	return nil
}

func (r *registry) get() *Logger {
	return r.current.Load()
}

var (
	global registry
	nop    = &Logger{}
)

// SetGlobal commits l as the global logger. Only the first call in a process
// succeeds; every later call returns ErrAlreadyInitialized and leaves the
// installed logger in place.
//
// On success the slog default logger and the zap global logger are routed
// to l as well.
func SetGlobal(l *Logger) error {
	if l == nil {
		panic("logger: SetGlobal called with a nil Logger")
	}
	if err := global.set(l); err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewSlogHandler(l)))
	zap.ReplaceGlobals(zap.New(NewZapCore(l), zap.AddCaller()))
	return nil
}

// Initialized reports whether a global logger has been committed.
func Initialized() bool {
	return global.get() != nil
}

// Default returns the global logger, or a logger that discards everything
// when none was committed yet.
func Default() *Logger {
	if l := global.get(); l != nil {
		return l
	}
	return nop
}
