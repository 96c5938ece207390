package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	// LoggerKey is the attribute key carrying the logger name.
	LoggerKey = "logger"

	// RootLogger is the name used when no logger name was attached.
	RootLogger = "root"

	// LineTimeFormat renders timestamps as `2006-01-02 15:04:05,000`.
	LineTimeFormat = "2006-01-02 15:04:05,000"
)

// LineHandler writes one line per record in the form
//
//	<timestamp> - <logger-name> - <LEVEL> - <message>
//
// Attributes other than the logger name are appended after the message as key=value pairs.
// Writes are serialized so concurrent records never interleave.
type LineHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	name   string
	prefix string
	attrs  []slog.Attr
}

// NewLineHandler creates a LineHandler writing to w. A nil level means slog.LevelInfo.
func NewLineHandler(w io.Writer, level slog.Leveler) *LineHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &LineHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		name:  RootLogger,
	}
}

// Enabled implements slog.Handler
func (h *LineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler
func (h *LineHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var buf bytes.Buffer
	buf.WriteString(ts.Format(LineTimeFormat))
	buf.WriteString(" - ")
	buf.WriteString(h.name)
	buf.WriteString(" - ")
	buf.WriteString(LevelName(r.Level))
	buf.WriteString(" - ")
	buf.WriteString(oneLine(r.Message))

	for _, a := range h.attrs {
		appendAttr(&buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// WithAttrs implements slog.Handler. A top-level LoggerKey attribute renames the logger.
func (h *LineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		if a.Key == LoggerKey && h.prefix == "" {
			c.name = a.Value.String()
			continue
		}
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		c.attrs = append(c.attrs, a)
	}
	return c
}

// WithGroup implements slog.Handler
func (h *LineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.prefix = h.prefix + name + "."
	return c
}

func (h *LineHandler) clone() *LineHandler {
	return &LineHandler{
		mu:     h.mu,
		w:      h.w,
		level:  h.level,
		name:   h.name,
		prefix: h.prefix,
		attrs:  append([]slog.Attr(nil), h.attrs...),
	}
}

// LevelName maps slog levels to DEBUG, INFO, WARNING and ERROR.
func LevelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "DEBUG"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	default:
		return "ERROR"
	}
}

func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range group {
			appendAttr(buf, prefix, ga)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(oneLine(a.Value.String()))
}

// oneLine keeps a record on a single line of the sink.
func oneLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`).Replace(s)
}
