package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeAttr(buf, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, slog.String(
				slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, slog.String(slog.MessageKey, r.Message))

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyTextHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyTextHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		for _, g := range a.Value.Group() {
			g.Key = a.Key + "." + g.Key
			h.writeAttr(buf, g)
		}

		return
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	h.writeValue(buf, a.Value)
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(colorCyan)
		buf.WriteString(v.String())
		buf.WriteString(colorReset)

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		buf.WriteString(colorYellow)
		buf.WriteString(v.String())
		buf.WriteString(colorReset)

	case slog.KindBool:
		buf.WriteString(colorMagenta)
		buf.WriteString(strconv.FormatBool(v.Bool()))
		buf.WriteString(colorReset)

	default:
		if level, ok := v.Any().(slog.Level); ok {
			buf.WriteString(levelColor(level))
			buf.WriteString(Level(level).String())
			buf.WriteString(colorReset)

			return
		}

		buf.WriteString(v.String())
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorGreen
	default:
		return colorGray
	}
}

// prettyJSONHandler implements a colorized multiline JSON handler.
type prettyJSONHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{\n")

	if !r.Time.IsZero() {
		h.writeField(buf, slog.Time(slog.TimeKey, r.Time), true)
	}

	h.writeField(buf, slog.Any(slog.LevelKey, r.Level), true)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeField(buf, slog.String(
				slog.SourceKey,
				fmt.Sprintf("%s:%d", src.File, src.Line),
			), true)
		}
	}

	more := r.NumAttrs() > 0 || len(h.attrs) > 0
	h.writeField(buf, slog.String(slog.MessageKey, r.Message), more)

	for i, a := range h.attrs {
		h.writeField(buf, a, i < len(h.attrs)-1 || r.NumAttrs() > 0)
	}

	n := 0

	r.Attrs(func(a slog.Attr) bool {
		n++
		h.writeField(buf, a, n < r.NumAttrs())

		return true
	})

	buf.WriteString("}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &prettyJSONHandler{
		opts:  h.opts,
		mu:    h.mu,
		w:     h.w,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *prettyJSONHandler) WithGroup(string) slog.Handler {
	// Groups are flattened in pretty output.
	return h
}

func (h *prettyJSONHandler) writeField(
	buf *bytes.Buffer,
	a slog.Attr,
	comma bool,
) {
	a.Value = a.Value.Resolve()

	buf.WriteString("  ")
	buf.WriteString(colorGray)
	buf.WriteString(strconv.Quote(a.Key))
	buf.WriteString(colorReset)
	buf.WriteString(": ")

	switch a.Value.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		buf.WriteString(colorYellow)
		buf.WriteString(a.Value.String())
		buf.WriteString(colorReset)

	case slog.KindBool:
		buf.WriteString(colorMagenta)
		buf.WriteString(strconv.FormatBool(a.Value.Bool()))
		buf.WriteString(colorReset)

	default:
		if level, ok := a.Value.Any().(slog.Level); ok {
			buf.WriteString(levelColor(level))
			buf.WriteString(strconv.Quote(Level(level).String()))
			buf.WriteString(colorReset)

			break
		}

		buf.WriteString(colorCyan)
		buf.WriteString(strconv.Quote(a.Value.String()))
		buf.WriteString(colorReset)
	}

	if comma {
		buf.WriteByte(',')
	}

	buf.WriteByte('\n')
}
