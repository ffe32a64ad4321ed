package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// maskedKeywords are substrings of attribute keys whose values must never
// reach log output. "password" and "plaintext" cover the generated corpus;
// "secret" and "credential" are kept for hygiene should future attributes
// carry them.
var maskedKeywords = []string{
	"password",
	"plaintext",
	"secret",
	"credential",
}

// MaskValue is the string used to replace masked values.
const MaskValue = "***MASKED***"

// MaskHandler wraps an slog.Handler and replaces the values of
// password-bearing attributes before passing records on.
//
// Design decision: We wrap a handler rather than providing a custom logger
// because a wrapper composes with any underlying handler (text, JSON) and
// with every standard slog API, including slog.SetDefault.
type MaskHandler struct {
	handler slog.Handler
}

// NewMaskHandler creates a MaskHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewMaskHandler(handler slog.Handler) *MaskHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &MaskHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *MaskHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *MaskHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added, masked.
func (h *MaskHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &MaskHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *MaskHandler) WithGroup(name string) slog.Handler {
	return &MaskHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursing into groups.
func (h *MaskHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	keyLower := strings.ToLower(a.Key)
	for _, keyword := range maskedKeywords {
		if strings.Contains(keyLower, keyword) {
			return slog.String(a.Key, MaskValue)
		}
	}
	return a
}

// NewLogger creates a *slog.Logger writing text records to w with password
// masking applied. Verbose selects slog.LevelDebug; otherwise only warnings
// and errors are logged, so the default simulate run prints nothing but its
// final summary line.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewMaskHandler(textHandler))
}
