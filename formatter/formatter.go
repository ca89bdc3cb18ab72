package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/prettylog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (each formatter has its own default)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// render runs fn against a pooled buffer and returns a copy of the result.
func render(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// renderTo runs fn against a pooled buffer and writes the result to w.
func renderTo(entry *core.Entry, w io.Writer, fn func(*core.Entry, *bytes.Buffer)) error {
	buf := getBuffer()
	fn(entry, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func writeFields(buf *bytes.Buffer, fields []core.Field) {
	for _, field := range fields {
		buf.Write(field.AppendKV(buf.AvailableBuffer()))
	}
}

func writeCaller(buf *bytes.Buffer, c core.CallerInfo) {
	buf.WriteByte('[')
	buf.WriteString(c.ShortFile)
	buf.WriteByte(':')
	buf.Write(appendInt(buf.AvailableBuffer(), c.Line))
	buf.WriteString("] ")
}
