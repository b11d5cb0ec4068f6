// Package handler provides an slog.Handler middleware that applies
// exception-chain enrichment to records before they reach an inner handler.
package handler

import (
	"context"
	"log/slog"

	"github.com/willibrandon/errchain"
	"github.com/willibrandon/errchain/core"
)

// SlogHandler implements slog.Handler by enriching records that carry an
// "exception" attr holding an error, then delegating to an inner handler.
//
// The exception must be an attr of the record itself; attrs attached
// earlier via Logger.With are owned by the inner handler and are not
// inspected.
type SlogHandler struct {
	inner slog.Handler
	proc  *errchain.Processor
}

// NewSlogHandler wraps inner with exception-chain enrichment.
func NewSlogHandler(inner slog.Handler, opts ...errchain.Option) *SlogHandler {
	return &SlogHandler{
		inner: inner,
		proc:  errchain.New(opts...),
	}
}

// Enabled reports whether the inner handler handles records at the given level.
func (h *SlogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle enriches the record and passes it to the inner handler.
//
// When the record carries an eligible exception, the derived chain is
// appended under "exception_chain_with_context" and any carried context key
// the record does not already set is appended as its own attr. Records
// without an eligible exception pass through untouched.
func (h *SlogHandler) Handle(ctx context.Context, record slog.Record) error {
	var exception error
	keys := make(map[string]struct{}, record.NumAttrs())

	record.Attrs(func(attr slog.Attr) bool {
		keys[attr.Key] = struct{}{}
		if attr.Key == core.ExceptionKey {
			if err, ok := attr.Value.Any().(error); ok && err != nil {
				exception = err
			}
		}
		return true
	})

	if exception == nil {
		return h.inner.Handle(ctx, record)
	}

	chain := h.proc.Chain(exception)

	enriched := record.Clone()
	enriched.AddAttrs(slog.Any(core.ChainKey, chain))
	for key, value := range errchain.Merge(nil, chain) {
		if _, exists := keys[key]; exists {
			continue
		}
		enriched.AddAttrs(slog.Any(key, value))
	}

	return h.inner.Handle(ctx, enriched)
}

// WithAttrs returns a handler whose inner handler has the given attrs.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &SlogHandler{
		inner: h.inner.WithAttrs(attrs),
		proc:  h.proc,
	}
}

// WithGroup returns a handler whose inner handler opens the given group.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	return &SlogHandler{
		inner: h.inner.WithGroup(name),
		proc:  h.proc,
	}
}
