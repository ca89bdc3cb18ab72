package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/filter"
	"github.com/philipp01105/prettylog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// callerSkip is the GetCaller depth of the code calling a logging method.
// Every public logging method calls log directly; it must not be reached
// through another exported method.
const callerSkip = 2

// Logger filters records by target and level and hands the survivors to its
// handler. The zero Logger discards everything.
type Logger struct {
	handler       handler.Handler
	filter        *filter.Filter
	target        string
	fields        []core.Field
	includeCaller bool
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// Named returns a child logger whose records use target instead of the
// calling package's import path.
func (l *Logger) Named(target string) *Logger {
	c := l.clone()
	c.target = target
	return c
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	c := l.clone()
	c.fields = make([]core.Field, len(l.fields), len(l.fields)+len(fields))
	copy(c.fields, l.fields)
	c.fields = append(c.fields, fields...)
	return c
}

// Target returns the explicit target set by Named, or "".
func (l *Logger) Target() string {
	return l.target
}

// Filter returns the directive filter. It is nil for a discarding logger.
func (l *Logger) Filter() *filter.Filter {
	return l.filter
}

// Enabled reports whether a record for target at level would be written.
func (l *Logger) Enabled(target string, level core.Level) bool {
	return l.levelEnabled(level) && l.filter.Enabled(target, level)
}

func (l *Logger) levelEnabled(level core.Level) bool {
	return l.handler != nil && l.filter.LevelEnabled(level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(level, msg, fields)
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	// Level check before resolving the caller, which is the expensive part
	if !l.levelEnabled(level) {
		return
	}

	target := l.target
	var caller core.CallerInfo
	if target == "" || l.includeCaller {
		caller = core.GetCaller(callerSkip)
	}
	if target == "" {
		target = caller.Package()
	}
	l.write(time.Now(), level, target, msg, fields, caller)
}

// write applies the target and message filters and dispatches the record.
// Front-end bridges that resolve their own target enter here.
func (l *Logger) write(t time.Time, level core.Level, target, msg string, fields []core.Field, caller core.CallerInfo) {
	if !l.filter.Enabled(target, level) || !l.filter.MatchMessage(msg) {
		return
	}

	entry := core.GetEntry()
	entry.Time = t
	entry.Level = level
	entry.Target = target
	entry.Message = msg
	if l.includeCaller {
		entry.Caller = caller
	}
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if err := l.handler.Handle(entry); err != nil {
		fmt.Fprintf(diagnostics, "prettylog: write failed: %v\n", err)
	}
	core.PutEntry(entry)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	_ = l.Sync()
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.levelEnabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.levelEnabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.levelEnabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.levelEnabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.levelEnabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting and exits the program with os.Exit(1)
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	_ = l.Sync()
	osExit(1)
}

// Panicf logs a panic message with formatting and panics
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	panic(msg)
}

// Sync flushes the handler's output
func (l *Logger) Sync() error {
	if l.handler != nil {
		return l.handler.Sync()
	}
	return nil
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
