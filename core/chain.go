package core

// Wire-level key contract. These names are consumed by downstream log
// tooling and must not change.
const (
	// ExceptionKey is the context key an eligible record carries its error
	// under.
	ExceptionKey = "exception"

	// ChainKey is the extra key the derived chain is stored under.
	ChainKey = "exception_chain_with_context"
)

// ContextCarrier is implemented by errors that carry structured diagnostic
// context alongside their message. It is a capability, not a base type:
// processors probe for it with an interface assertion and most errors will
// not implement it.
//
// Implementations should return a copy of their internal map; processors
// only read from the returned value.
type ContextCarrier interface {
	Context() map[string]any
}

// ChainEntry describes one link of an error's causal chain: the link's
// concrete type name and the structured context it carried, if any.
//
// A nil Context means the error did not implement ContextCarrier; it
// serializes as JSON null. A carrier whose Context() returned a nil map is
// recorded as an empty non-nil map, so "no capability" and "capability
// present but empty" stay distinguishable.
type ChainEntry struct {
	Exception string         `json:"exception"`
	Context   map[string]any `json:"context"`
}

// HasContext reports whether the link's error implemented ContextCarrier.
func (e ChainEntry) HasContext() bool {
	return e.Context != nil
}
