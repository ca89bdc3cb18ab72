package consolehandler

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// ConsoleHandler writes formatted entries to a writer.
type ConsoleHandler struct {
	writer    io.Writer
	formatter formatter.Formatter
	mu        sync.Mutex
	lw        lockedWriter
	processed atomic.Uint64
	closed    atomic.Bool
}

// lockedWriter serializes Write calls on the handler's writer. Formatters
// prepare data in their own pooled buffers and call Write once, so the lock
// is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	return h
}

// Writer returns the destination writer.
func (h *ConsoleHandler) Writer() io.Writer { return h.writer }

// Formatter returns the formatter in use.
func (h *ConsoleHandler) Formatter() formatter.Formatter { return h.formatter }

// Handle formats and writes an entry. Entries handled after Close are
// dropped.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return nil
	}

	var err error
	if wf, ok := h.formatter.(formatter.WriterFormatter); ok {
		err = wf.FormatTo(entry, &h.lw)
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err != nil {
			return err
		}
		_, err = h.lw.Write(data)
	}
	if err == nil {
		h.processed.Add(1)
	}
	return err
}

// Processed returns the number of entries written successfully.
func (h *ConsoleHandler) Processed() uint64 {
	return h.processed.Load()
}

// Sync flushes the writer when it supports it.
func (h *ConsoleHandler) Sync() error {
	s, ok := h.writer.(interface{ Sync() error })
	if !ok {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := s.Sync(); err != nil && !isUnsyncable(err) {
		return err
	}
	return nil
}

// Close stops the handler. The writer is not closed; stderr outlives any
// logger.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
