package qoi15

import (
	"fmt"
	"sync"
)

// variantParams pins down which of Differential and Table gets the
// 4-bit value field versus the 3-bit value field. Both encoder and
// decoder must agree on a variant, so it is resolved once at
// construction and never branched on per sample — switching mid-stream
// would desynchronize the two sides' tag spaces.
type variantParams struct {
	name             string
	diffValueBits    int
	diffHeader       uint8
	diffMask         uint8
	tableSize        int
	tableHeader      uint8
	tableMask        uint8
	tableHashBit     uint
}

func (p variantParams) newDifferential() Differential {
	return NewDifferential(p.diffValueBits, p.diffHeader, p.diffMask)
}

func (p variantParams) newTable() Table {
	return NewTable(p.tableSize, p.tableHeader, p.tableMask, p.tableHashBit)
}

// VariantDefault is the standard tag-space partition: Differential
// takes the 4-bit value half-space (tag 1), Table takes the 3-bit value
// quarter-space (tag 01).
const VariantDefault = "default"

// VariantTableFirst swaps the roles: Table gets the wider value field
// and a 16-entry cache, Differential gets the narrower one. Trades
// delta precision for a larger cache, useful on sources with more
// local repetition than smooth gradients.
const VariantTableFirst = "table-first"

// registry is a name-to-params lookup guarded by a RWMutex, the same
// shape as a pluggable-codec registry but holding fixed tag-layout
// variants instead of swappable implementations.
type registry struct {
	mu       sync.RWMutex
	variants map[string]variantParams
}

var defaultRegistry = &registry{variants: make(map[string]variantParams)}

func init() {
	registerVariant(variantParams{
		name:          VariantDefault,
		diffValueBits: 4,
		diffHeader:    0x10,
		diffMask:      0x0F,
		tableSize:     8,
		tableHeader:   0x08,
		tableMask:     0x07,
		tableHashBit:  1,
	})
	registerVariant(variantParams{
		name:          VariantTableFirst,
		diffValueBits: 3,
		diffHeader:    0x08,
		diffMask:      0x07,
		tableSize:     16,
		tableHeader:   0x10,
		tableMask:     0x0F,
		tableHashBit:  1,
	})
}

func registerVariant(p variantParams) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.variants[p.name] = p
}

func lookupVariant(name string) (variantParams, error) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	p, ok := defaultRegistry.variants[name]
	if !ok {
		return variantParams{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return p, nil
}

// Variants returns the names of all registered tag-layout variants.
func Variants() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	names := make([]string, 0, len(defaultRegistry.variants))
	for name := range defaultRegistry.variants {
		names = append(names, name)
	}
	return names
}
