// Package handler provides the Handler interface for dispatching log entries
// to an output.
//
// A Handler receives entries that already passed the logger's filter. It
// formats and writes them synchronously, so the caller may recycle the
// entry as soon as Handle returns.
//
// The built-in implementation is consolehandler.ConsoleHandler, which
// writes to stderr unless told otherwise.
package handler
