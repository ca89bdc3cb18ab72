// Package prettylog initializes a process-wide, human-friendly logger in a
// single call.
//
// Every entry point configures a colored stderr logger, optionally
// timestamped, from a filter directive string, and commits it as the global
// logger of package logger:
//
//	func main() {
//	    prettylog.Init() // directives from $GO_LOG
//	    logger.Info("starting")
//	}
//
// The directive string is found in one of three ways:
//
//   - Init, InitTimed, TryInit, TryInitTimed read the variable named by
//     DefaultEnv.
//   - The ...With variants take a name. If an environment variable of that
//     name exists its value is used, otherwise the name itself is taken as
//     the directives:
//
//     prettylog.InitWith("MYAPP_LOG")       // $MYAPP_LOG, or the literal "MYAPP_LOG"
//     prettylog.InitWith("info,myapp=trace") // no such variable: literal directives
//
//   - The ...CustomString variants take the directives directly; nil means
//     none, which logs errors only.
//
// A process can be initialized once. The Try variants report a second
// attempt as ErrAlreadyInitialized; the others panic. Either way the first
// configuration stays in effect.
//
// The directive grammar is described in package filter.
package prettylog
