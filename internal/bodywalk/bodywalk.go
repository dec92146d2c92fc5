// Package bodywalk checks the two in-body boundaries where a handle can
// escape its rooting wrapper: cast operands, where a conversion erases the
// static alias tracking, and pattern bindings, which materialize a value in
// a bare stack slot.
//
// Plain assignment right-hand sides and call expressions/arguments are
// deliberately not checked: doing so reports false positives on
// self-rooting container patterns, so that wider guarantee is a separate
// policy, not part of this walker.
package bodywalk

import (
	"github.com/unrootedlint/unrooted/internal/ir"
	"github.com/unrootedlint/unrooted/internal/predicate"
)

const exprMsg = "Expression of type `%s` must be rooted"

// Walker checks body events against the enclosing function's constructor
// flag. The host's traversal feeds it; a closure boundary never re-derives
// the flag.
type Walker struct {
	Reporter ir.Reporter
	Oracle   ir.Oracle
	// InNew is the enclosing function's constructor-context flag.
	InNew bool
}

// Cast checks the operand of a type-cast expression.
func (w *Walker) Cast(c ir.Cast) {
	if predicate.IsUnrooted(w.Oracle, c.Operand, w.InNew) {
		w.Reporter.Reportf(c.Pos, exprMsg, c.Operand)
	}
}

// Binding checks a pattern binding. Borrow-declared bindings never create
// a new owned slot and are always skipped.
func (w *Walker) Binding(b ir.Binding) {
	if b.ByRef {
		return
	}
	if predicate.IsUnrooted(w.Oracle, b.Type, w.InNew) {
		w.Reporter.Reportf(b.Pos, exprMsg, b.Type)
	}
}
