// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers check for
// WriterFormatter at construction time and prefer it when available.
//
// Three formatters are built in:
//
//   - PrettyFormatter renders " INFO  target > message" with the level
//     colored and the target in bold, optionally prefixed by a millisecond
//     timestamp. This is the format installed by the formatted builders.
//   - TextFormatter renders "timestamp [LEVEL] target: message".
//   - JSONFormatter renders one JSON object per line.
//
// Whether PrettyFormatter emits ANSI colors is decided by a WriteStyle.
// WriteStyleAuto colors output only when the destination is a terminal.
package formatter
