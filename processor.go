package errchain

import (
	"maps"

	"github.com/willibrandon/errchain/core"
)

// Processor derives exception-chain metadata for log records. The zero
// value is usable; New applies options. A Processor holds no per-call state
// and may be shared freely across goroutines.
type Processor struct {
	maxDepth int
}

// defaultProcessor backs the package-level convenience functions.
var defaultProcessor = &Processor{}

// New creates a processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process enriches a log record in either supported shape: a *core.Entry
// (or core.Entry value) or a loosely-typed map[string]any with "context"
// and "extra" sub-maps. The output has the same shape as the input. Any
// other value is returned unchanged.
func (p *Processor) Process(record any) any {
	switch r := record.(type) {
	case *core.Entry:
		return p.ProcessEntry(r)
	case core.Entry:
		return *p.ProcessEntry(&r)
	case map[string]any:
		return p.ProcessMap(r)
	default:
		return record
	}
}

// ProcessEntry enriches a strongly-typed record. If the record's context
// holds no usable exception the same pointer is returned; otherwise a new
// entry is derived with the merged context and the chain appended to a copy
// of its extra. The input entry is never modified.
func (p *Processor) ProcessEntry(entry *core.Entry) *core.Entry {
	if entry == nil {
		return nil
	}

	merged, chain, ok := p.enrich(entry.Context)
	if !ok {
		return entry
	}

	extra := make(map[string]any, len(entry.Extra)+1)
	maps.Copy(extra, entry.Extra)
	extra[core.ChainKey] = chain

	return entry.With(merged, extra)
}

// ProcessMap enriches a loosely-typed record in place and returns the same
// map. The record's "context" value must be a map[string]any holding the
// exception; the chain is written into its "extra" map, which is created
// when absent. Existing extra keys are preserved.
func (p *Processor) ProcessMap(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}

	context, _ := record["context"].(map[string]any)
	merged, chain, ok := p.enrich(context)
	if !ok {
		return record
	}

	extra, _ := record["extra"].(map[string]any)
	if extra == nil {
		extra = make(map[string]any, 1)
	}
	extra[core.ChainKey] = chain

	record["context"] = merged
	record["extra"] = extra
	return record
}

// enrich is the shape-independent core shared by both record handlers. It
// reports ok=false when the context holds no non-nil error under the
// exception key, in which case the record must pass through untouched.
func (p *Processor) enrich(context map[string]any) (merged map[string]any, chain []core.ChainEntry, ok bool) {
	err, ok := context[core.ExceptionKey].(error)
	if !ok || err == nil {
		return nil, nil, false
	}

	chain = p.Chain(err)
	return Merge(context, chain), chain, true
}

// Process enriches a record with the default processor. See
// Processor.Process.
func Process(record any) any {
	return defaultProcessor.Process(record)
}
