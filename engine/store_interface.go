package engine

import "github.com/lixenwraith/glyphstage/core"

// AnyStore provides type-erased operations for lifecycle management
// World destroys entities through this without knowing concrete component types
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
