// Package consolehandler provides a console handler that writes formatted
// log entries to any io.Writer (default: os.Stderr).
//
// Writes are serialized with a mutex so that concurrent log calls never
// interleave within a line. Formatting happens outside the lock.
package consolehandler
