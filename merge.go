package errchain

import (
	"maps"

	"github.com/willibrandon/errchain/core"
)

// Merge folds the chain's carried contexts into a single map and overlays
// the record's original context on top.
//
// Carried contexts are applied deepest cause first, so among exception
// contexts the root error's values win ties. Original context keys are
// applied last and therefore always win over anything carried by the chain.
//
// If no link carries context, the original map is returned as-is so callers
// can preserve identity. Otherwise a fresh map is returned; neither the
// original context nor any carrier's map is modified.
func Merge(original map[string]any, chain []core.ChainEntry) map[string]any {
	carried := false
	for _, entry := range chain {
		if entry.HasContext() {
			carried = true
			break
		}
	}
	if !carried {
		return original
	}

	merged := make(map[string]any, len(original))
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(merged, chain[i].Context)
	}
	maps.Copy(merged, original)
	return merged
}
