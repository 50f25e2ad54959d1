package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

var _ slog.Handler = (*logHandler)(nil)

type logHandler struct {
	out   *Output
	group string
	attrs []slog.Attr
}

// LogHandler returns a [slog.Handler] that writes records through this [Output].
//
// Warnings and errors are written at [VerbosityNormal], info at verbosity 2, and debug at verbosity 3.
// The level label uses the "error", "warning", and "info" styles when they're registered.
func (o *Output) LogHandler() slog.Handler {
	return &logHandler{out: o}
}

func verbosityFor(level slog.Level) int {
	switch {
	case level >= slog.LevelWarn:
		return VerbosityNormal
	case level >= slog.LevelInfo:
		return 2
	default:
		return 3
	}
}

func styleFor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	default:
		return "info"
	}
}

func (h *logHandler) prefix() string {
	if len(h.group) == 0 {
		return ""
	}
	return h.group + "."
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.out.Enabled(verbosityFor(level))
}

func (h *logHandler) Handle(_ context.Context, record slog.Record) error {
	var buf strings.Builder
	style := styleFor(record.Level)
	buf.WriteString(fmt.Sprintf("<%s>%s</%s> %s", style, record.Level.String(), style, record.Message))
	for _, attr := range h.attrs {
		writeAttr(&buf, "", attr)
	}
	prefix := h.prefix()
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&buf, prefix, attr)
		return true
	})
	h.out.OutAt(verbosityFor(record.Level), buf.String())
	return nil
}

func writeAttr(buf *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		if len(attr.Key) > 0 {
			prefix = prefix + attr.Key + "."
		}
		for _, a := range group {
			writeAttr(buf, prefix, a)
		}
		return
	}
	buf.WriteString(fmt.Sprintf(" %s%s=%v", prefix, attr.Key, attr.Value.Any()))
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := &logHandler{out: h.out, group: h.group, attrs: append([]slog.Attr{}, h.attrs...)}
	prefix := h.prefix()
	for _, attr := range attrs {
		attr.Key = prefix + attr.Key
		cp.attrs = append(cp.attrs, attr)
	}
	return cp
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	if len(name) == 0 {
		return h
	}
	return &logHandler{out: h.out, group: h.prefix() + name, attrs: h.attrs}
}
