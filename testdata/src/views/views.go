// Package views contains test fixtures for the borrow-like view shapes,
// which are always transient regardless of payload.
package views

import (
	"github.com/unrootedlint/gc/cell"
	"github.com/unrootedlint/gc/hashmap"
	"github.com/unrootedlint/gc/hashset"
	"github.com/unrootedlint/gc/slice"
)

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

// ===== SHOULD NOT REPORT =====

// [GOOD]: every view shape is a transient borrow of its payload
type Snapshot struct {
	guard    cell.Ref[GcPtr]
	guardMut cell.RefMut[GcPtr]
	iter     slice.Iter[GcPtr]
	iterMut  slice.IterMut[GcPtr]
	mapIter  hashmap.Iter[string, GcPtr]
	entry    hashmap.Entry[string, GcPtr]
	occupied hashmap.OccupiedEntry[string, GcPtr]
	vacant   hashmap.VacantEntry[string, GcPtr]
	setIter  hashset.Iter[GcPtr]
}

// [GOOD]: views bound locally are fine too
func inspect(s *Snapshot) {
	guard := s.guard
	it := s.iter
	_ = guard
	_ = it
}

// ===== SHOULD REPORT =====

// [BAD]: an ordinary generic container is not a view
type Plain[T any] struct {
	v T // field is a bare type parameter, safe on its own
}

type Holder struct {
	p Plain[GcPtr] // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}
