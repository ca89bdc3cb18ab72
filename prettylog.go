package prettylog

import (
	"github.com/philipp01105/prettylog/logger"
)

// DefaultEnv is the environment variable read by Init, InitTimed, TryInit
// and TryInitTimed.
const DefaultEnv = "GO_LOG"

// ErrAlreadyInitialized is returned by the Try functions when the global
// logger was already set.
var ErrAlreadyInitialized = logger.ErrAlreadyInitialized

// Init initializes the global logger from the DefaultEnv environment
// variable. It panics if the logger was already initialized.
func Init() {
	mustInit(TryInit())
}

// InitTimed is Init with a timestamp on every line.
func InitTimed() {
	mustInit(TryInitTimed())
}

// TryInit initializes the global logger from the DefaultEnv environment
// variable.
func TryInit() error {
	return TryInitWith(DefaultEnv)
}

// TryInitTimed is TryInit with a timestamp on every line.
func TryInitTimed() error {
	return TryInitTimedWith(DefaultEnv)
}

// InitWith initializes the global logger from the environment variable
// named filters, or from filters itself if no such variable exists. It
// panics if the logger was already initialized.
func InitWith(filters string) {
	mustInit(TryInitWith(filters))
}

// InitTimedWith is InitWith with a timestamp on every line.
func InitTimedWith(filters string) {
	mustInit(TryInitTimedWith(filters))
}

// TryInitWith initializes the global logger from the environment variable
// named filters, or from filters itself if no such variable exists.
func TryInitWith(filters string) error {
	return TryInitCustomString(resolveFilters(filters))
}

// TryInitTimedWith is TryInitWith with a timestamp on every line.
func TryInitTimedWith(filters string) error {
	return TryInitTimedCustomString(resolveFilters(filters))
}

// TryInitCustomString initializes the global logger from a directive
// string. A nil filters applies no directives, so only errors are logged.
func TryInitCustomString(filters *string) error {
	return configure(false, filters).TryInit()
}

// TryInitTimedCustomString is TryInitCustomString with a timestamp on every
// line.
func TryInitTimedCustomString(filters *string) error {
	return configure(true, filters).TryInit()
}

func mustInit(err error) {
	if err != nil {
		panic(err)
	}
}
