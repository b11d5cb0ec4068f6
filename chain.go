package errchain

import (
	"errors"
	"reflect"

	"github.com/willibrandon/errchain/core"
)

// Chain walks the causal chain of root and returns one entry per link,
// root-first, oldest cause last. It follows single-cause Unwrap() error
// links only; multi-error trees (Unwrap() []error) fall outside the
// singly-linked chain model and are not descended into.
//
// Like the errors package itself, Chain assumes the chain is acyclic and
// finite. A processor built with WithMaxDepth caps the walk for callers
// that cannot trust their error constructors.
func Chain(root error) []core.ChainEntry {
	return defaultProcessor.Chain(root)
}

// Chain returns the causal chain of root as described by the package-level
// Chain function, honoring the processor's depth cap.
func (p *Processor) Chain(root error) []core.ChainEntry {
	if root == nil {
		return nil
	}

	var chain []core.ChainEntry
	for err := root; err != nil; err = errors.Unwrap(err) {
		chain = append(chain, newChainEntry(err))
		if p.maxDepth > 0 && len(chain) >= p.maxDepth {
			break
		}
	}
	return chain
}

// newChainEntry captures a single link: its dynamic type name and, when the
// error is a core.ContextCarrier, its context. If the carrier's Context()
// panics, the panic propagates; the processor offers no isolation against
// misbehaving carriers.
func newChainEntry(err error) core.ChainEntry {
	entry := core.ChainEntry{Exception: typeName(err)}
	if carrier, ok := err.(core.ContextCarrier); ok {
		ctx := carrier.Context()
		if ctx == nil {
			// Capability present, context empty. Keep it distinguishable
			// from the nil absence marker.
			ctx = map[string]any{}
		}
		entry.Context = ctx
	}
	return entry
}

// typeName returns the error's concrete type name as a developer would see
// it in a panic trace, e.g. "*fs.PathError".
func typeName(err error) string {
	return reflect.TypeOf(err).String()
}
