// Package gohost adapts the analysis pass's go/types and go/ast world to
// the neutral ir the rooting checkers consume. It owns everything
// host-specific: marker collection, fact exchange, canonical-path lookup,
// and the AST drivers that feed the body walker.
package gohost

import (
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/unrootedlint/unrooted/internal/directives/marker"
	"github.com/unrootedlint/unrooted/internal/ir"
	"github.com/unrootedlint/unrooted/internal/shapes"
)

// Host implements ir.Oracle for one analysis pass.
type Host struct {
	pass  *analysis.Pass
	table *shapes.Table

	// local holds markers declared in the package under analysis; markers
	// of imported declarations arrive as object facts.
	local map[*types.TypeName]ir.MarkerSet

	// wrapped memoizes ir.Type adapters so identical host types map to
	// identical ir values.
	wrapped map[types.Type]ir.Type
}

// New scans the pass for marker directives, exports them as object facts
// for downstream packages, and returns the oracle.
func New(pass *analysis.Pass, table *shapes.Table) *Host {
	h := &Host{
		pass:    pass,
		table:   table,
		local:   marker.Collect(pass),
		wrapped: make(map[types.Type]ir.Type),
	}

	for obj, set := range h.local {
		pass.ExportObjectFact(obj, &MarkersFact{Set: set})
	}

	return h
}

// Markers implements ir.Oracle.
func (h *Host) Markers(d ir.Decl) ir.MarkerSet {
	id, ok := d.(declID)
	if !ok {
		return 0
	}

	if set, ok := h.local[id.obj]; ok {
		return set
	}

	var fact MarkersFact
	if h.pass.ImportObjectFact(id.obj, &fact) {
		return fact.Set
	}

	return 0
}

// LibShape implements ir.Oracle.
func (h *Host) LibShape(d ir.Decl) ir.LibShape {
	id, ok := d.(declID)
	if !ok {
		return ir.ShapeNone
	}

	pkg := id.obj.Pkg()
	if pkg == nil {
		return ir.ShapeNone
	}

	return h.table.Lookup(pkg.Path(), id.obj.Name())
}

// declID is the declaration identity handed to the oracle.
type declID struct {
	obj *types.TypeName
}

// Name implements ir.Decl.
func (d declID) Name() string { return d.obj.Name() }
