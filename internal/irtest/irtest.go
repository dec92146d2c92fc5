// Package irtest provides an in-memory ir host for checker unit tests.
package irtest

import (
	"fmt"
	"go/token"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// Host is a fake marker oracle keyed by declaration name.
type Host struct {
	markers map[string]ir.MarkerSet
	shapes  map[string]ir.LibShape
}

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{
		markers: make(map[string]ir.MarkerSet),
		shapes:  make(map[string]ir.LibShape),
	}
}

// Mark attaches a marker to the named declaration.
func (h *Host) Mark(name string, m ir.Marker) *Host {
	h.markers[name] = h.markers[name].With(m)

	return h
}

// Shape registers the named declaration as a canonical library shape.
func (h *Host) Shape(name string, s ir.LibShape) *Host {
	h.shapes[name] = s

	return h
}

// Markers implements ir.Oracle.
func (h *Host) Markers(d ir.Decl) ir.MarkerSet {
	if d == nil {
		return 0
	}

	return h.markers[d.Name()]
}

// LibShape implements ir.Oracle.
func (h *Host) LibShape(d ir.Decl) ir.LibShape {
	if d == nil {
		return ir.ShapeNone
	}

	return h.shapes[d.Name()]
}

// Type is a hand-built ir.Type. A Named Type is its own declaration
// identity, resolved by name against the Host.
type Type struct {
	shape ir.Shape
	name  string
	args  []ir.Type
	elems []ir.Type
}

// Named builds a structured type with the given type arguments.
func Named(name string, args ...ir.Type) *Type {
	return &Type{shape: ir.Named, name: name, args: args}
}

// Ref builds a reference type.
func Ref(elem ir.Type) *Type {
	return &Type{shape: ir.Reference, name: "ref", elems: []ir.Type{elem}}
}

// RawAddr builds an opaque raw-address type.
func RawAddr() *Type { return &Type{shape: ir.RawAddress, name: "rawptr"} }

// Fn builds a function type.
func Fn() *Type { return &Type{shape: ir.Function, name: "func"} }

// Prim builds a primitive with no substructure.
func Prim(name string) *Type { return &Type{shape: ir.Other, name: name} }

// Composite builds an Other-shaped type that recurses into elems.
func Composite(name string, elems ...ir.Type) *Type {
	return &Type{shape: ir.Other, name: name, elems: elems}
}

// AddElem appends a substructure element; used to tie recursive shapes.
func (t *Type) AddElem(elem ir.Type) *Type {
	t.elems = append(t.elems, elem)

	return t
}

// Shape implements ir.Type.
func (t *Type) Shape() ir.Shape { return t.shape }

// Decl implements ir.Type.
func (t *Type) Decl() ir.Decl {
	if t.shape != ir.Named {
		return nil
	}

	return t
}

// Name implements ir.Decl.
func (t *Type) Name() string { return t.name }

// TypeArgs implements ir.Type.
func (t *Type) TypeArgs() []ir.Type { return t.args }

// Elems implements ir.Type.
func (t *Type) Elems() []ir.Type { return t.elems }

// String implements ir.Type.
func (t *Type) String() string {
	if len(t.args) == 0 {
		return t.name
	}

	s := t.name + "["
	for i, a := range t.args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}

	return s + "]"
}

// Diag is one recorded diagnostic.
type Diag struct {
	Pos token.Pos
	Msg string
}

// Reporter records diagnostics for assertions.
type Reporter struct {
	Diags []Diag
}

// Reportf implements ir.Reporter.
func (r *Reporter) Reportf(pos token.Pos, format string, args ...any) {
	r.Diags = append(r.Diags, Diag{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}
