package errchain

// Option is a functional option for configuring a processor.
type Option func(*Processor)

// WithMaxDepth caps the number of chain links the processor will walk.
// Error chains are assumed acyclic and finite, as the errors package
// assumes, so no cap is applied by default (n <= 0 leaves the walk
// unbounded). The cap is for callers handling errors from sources they do
// not control.
func WithMaxDepth(n int) Option {
	return func(p *Processor) {
		p.maxDepth = n
	}
}
