// Package predicate decides whether a type must be rooted before it may
// live on the stack, in an unmarked field, or past a cast boundary.
package predicate

import "github.com/unrootedlint/unrooted/internal/ir"

// IsUnrooted reports whether t is a GC-managed handle or transitively owns
// one without a rooting wrapper in between. inNew relaxes exactly one rule:
// an owning heap box is exempt while checking a constructor body.
//
// The walk is depth-first with short-circuit stops; the verdict is true iff
// it reaches a declaration directly marked must_root.
func IsUnrooted(o ir.Oracle, t ir.Type, inNew bool) bool {
	w := walker{oracle: o, inNew: inNew, seen: make(map[ir.Type]bool)}

	return w.walk(t)
}

type walker struct {
	oracle ir.Oracle
	inNew  bool
	// seen terminates the walk on recursive shapes; each distinct type is
	// inspected once.
	seen map[ir.Type]bool
}

func (w *walker) walk(t ir.Type) bool {
	if t == nil || w.seen[t] {
		return false
	}
	w.seen[t] = true

	switch t.Shape() {
	case ir.Named:
		return w.walkNamed(t)

	case ir.Reference, ir.RawAddress, ir.Function:
		// Borrowed values are exempt by construction, raw addresses are
		// opaque, function types carry no payload.
		return false

	default:
		return w.walkAll(t.Elems())
	}
}

// walkNamed applies the structured-node rules in priority order.
func (w *walker) walkNamed(t ir.Type) bool {
	decl := t.Decl()
	markers := w.oracle.Markers(decl)

	// A direct mark is definitive: type arguments are never examined.
	if markers.Has(ir.MustRoot) {
		return true
	}
	if markers.Has(ir.AllowUnrootedInterior) {
		return false
	}

	switch w.oracle.LibShape(decl) {
	case ir.ShapeSharedPtr:
		return w.walkSharedPtr(t)

	case ir.ShapeTransientView:
		// Semantically an &ptr: always a transient borrow, regardless of
		// what it views.
		return false

	case ir.ShapeHeapBox:
		if w.inNew {
			// A box in new() is okay.
			return false
		}
	}

	return w.walkAll(t.TypeArgs())
}

// walkSharedPtr inspects the payload of the reference-counted pointer. The
// pointer itself is not inherently safe; only its payload's status matters.
func (w *walker) walkSharedPtr(t ir.Type) bool {
	args := t.TypeArgs()
	if len(args) == 0 {
		return false
	}

	payload := args[0]
	if payload.Shape() == ir.Named && w.oracle.Markers(payload.Decl()).Has(ir.AllowUnrootedInRc) {
		return false
	}

	return w.walk(payload)
}

func (w *walker) walkAll(ts []ir.Type) bool {
	for _, t := range ts {
		if w.walk(t) {
			return true
		}
	}

	return false
}
