package handler_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/willibrandon/errchain/core"
	"github.com/willibrandon/errchain/handler"
)

// captureHandler records everything handed to it so tests can inspect the
// enriched output.
type captureHandler struct {
	records []map[string]any
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	attrs := make(map[string]any, record.NumAttrs())
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	h.records = append(h.records, attrs)
	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(_ string) slog.Handler      { return h }

type contextError struct {
	msg   string
	ctx   map[string]any
	cause error
}

func (e *contextError) Error() string           { return e.msg }
func (e *contextError) Unwrap() error           { return e.cause }
func (e *contextError) Context() map[string]any { return e.ctx }

func TestSlogHandlerPassThrough(t *testing.T) {
	capture := &captureHandler{}
	logger := slog.New(handler.NewSlogHandler(capture))

	logger.Info("no exception here", "user_id", 42)

	if len(capture.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(capture.records))
	}
	attrs := capture.records[0]
	if _, ok := attrs[core.ChainKey]; ok {
		t.Error("record without an exception gained a chain attr")
	}
	if attrs["user_id"] != int64(42) && attrs["user_id"] != 42 {
		t.Errorf("expected user_id attr to survive, got %v", attrs["user_id"])
	}
}

func TestSlogHandlerEnrichesException(t *testing.T) {
	capture := &captureHandler{}
	logger := slog.New(handler.NewSlogHandler(capture))

	cause := &contextError{msg: "invalid email", ctx: map[string]any{"field": "email"}}
	logger.Error("validation failed", core.ExceptionKey, error(cause))

	if len(capture.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(capture.records))
	}
	attrs := capture.records[0]

	chain, ok := attrs[core.ChainKey].([]core.ChainEntry)
	if !ok {
		t.Fatalf("expected chain attr, got %T", attrs[core.ChainKey])
	}
	if len(chain) != 1 {
		t.Fatalf("expected 1 chain link, got %d", len(chain))
	}
	if chain[0].Exception != "*handler_test.contextError" {
		t.Errorf("unexpected type name %q", chain[0].Exception)
	}
	if attrs["field"] != "email" {
		t.Errorf("expected carried context attr field=email, got %v", attrs["field"])
	}
}

func TestSlogHandlerRecordAttrWins(t *testing.T) {
	capture := &captureHandler{}
	logger := slog.New(handler.NewSlogHandler(capture))

	cause := &contextError{msg: "invalid email", ctx: map[string]any{"field": "email"}}
	logger.Error("validation failed", core.ExceptionKey, error(cause), "field", "username")

	attrs := capture.records[0]
	if attrs["field"] != "username" {
		t.Errorf("record attr should win over carried context, got %v", attrs["field"])
	}
}

func TestSlogHandlerNonErrorException(t *testing.T) {
	capture := &captureHandler{}
	logger := slog.New(handler.NewSlogHandler(capture))

	logger.Error("odd record", core.ExceptionKey, "not an error")

	attrs := capture.records[0]
	if _, ok := attrs[core.ChainKey]; ok {
		t.Error("non-error exception attr should pass through unenriched")
	}
}

func TestSlogHandlerChainOrder(t *testing.T) {
	capture := &captureHandler{}
	logger := slog.New(handler.NewSlogHandler(capture))

	inner := &contextError{msg: "inner", ctx: map[string]any{"attempt": 3}}
	wrapped := &contextError{msg: "outer", cause: inner}
	logger.Error("request failed", core.ExceptionKey, error(wrapped))

	attrs := capture.records[0]
	chain := attrs[core.ChainKey].([]core.ChainEntry)
	if len(chain) != 2 {
		t.Fatalf("expected 2 chain links, got %d", len(chain))
	}
	if chain[0].Exception != "*handler_test.contextError" || chain[1].Exception != "*handler_test.contextError" {
		t.Errorf("unexpected chain %v", chain)
	}
	if attrs["attempt"] != int64(3) {
		t.Errorf("expected carried attempt=3, got %v", attrs["attempt"])
	}
}
