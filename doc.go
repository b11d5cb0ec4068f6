// Package errchain enriches log records with the causal chain of an error
// carried in their context.
//
// When a record's context holds a Go error under the key "exception", the
// processor walks the error's Unwrap chain, records each link's concrete type
// name together with any structured context the link exposes through
// core.ContextCarrier, stores the resulting chain in the record's extra under
// "exception_chain_with_context", and merges carried contexts into the
// record's own context. Keys the caller set explicitly are never overwritten.
//
// Records without a usable exception pass through untouched, so the processor
// can sit unconditionally in a logging pipeline:
//
//	proc := errchain.New()
//	entry = proc.ProcessEntry(entry)
//
// The processor holds no state and is safe for concurrent use.
package errchain
