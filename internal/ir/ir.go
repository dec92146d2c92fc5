// Package ir is the neutral program representation the rooting checkers
// operate on. The predicate and the checkers only ever see these types;
// everything host-specific (go/types, go/ast, analysis passes) stays behind
// the frontend that produces them.
package ir

import "go/token"

// Shape classifies a resolved type for the rooting walk.
type Shape int

const (
	// Named is a structured type with a declaration identity and zero or
	// more generic type arguments.
	Named Shape = iota
	// Reference is a borrowed pointer; the walk never enters its referent.
	Reference
	// RawAddress is an opaque raw pointer.
	RawAddress
	// Function is a function type or value.
	Function
	// Other covers primitives, composite shapes (slices, arrays, tuples,
	// channels, anonymous structs) and generic type parameters. The walk
	// recurses into their immediate substructure with no special-casing.
	Other
)

// Type is a resolved, immutable type shape owned by the host.
type Type interface {
	Shape() Shape

	// Decl returns the declaration identity of a Named type, nil for
	// every other shape.
	Decl() Decl

	// TypeArgs returns the generic type arguments of a Named type.
	TypeArgs() []Type

	// Elems returns the immediate substructure of an Other-shaped type
	// (slice/array element, tuple members, anonymous struct fields).
	Elems() []Type

	// String renders the type for diagnostics.
	String() string
}

// Decl is an opaque declaration identity. Hosts must return identical Decl
// values for identical declarations so the walk's visited set works.
type Decl interface {
	// Name is the declaration's bare identifier.
	Name() string
}

// Marker is a declaration-level rooting annotation.
type Marker uint8

const (
	// MustRoot marks a type that is, or unconditionally contains, a
	// GC-managed handle.
	MustRoot Marker = 1 << iota
	// AllowUnrootedInterior marks a container that roots its own contents;
	// its payload is exempt from propagation.
	AllowUnrootedInterior
	// AllowUnrootedInRc marks a payload type that is safe to share through
	// the reference-counted pointer despite being otherwise unrooted.
	AllowUnrootedInRc
)

// MarkerSet is a bitmask of markers attached to one declaration.
type MarkerSet uint8

// Has reports whether m contains the marker.
func (s MarkerSet) Has(m Marker) bool { return s&MarkerSet(m) != 0 }

// With returns s with the marker added.
func (s MarkerSet) With(m Marker) MarkerSet { return s | MarkerSet(m) }

// LibShape identifies the structurally recognized library types. These are
// matched by canonical path, not by author markers.
type LibShape int

const (
	// ShapeNone means the declaration is not one of the known shapes.
	ShapeNone LibShape = iota
	// ShapeSharedPtr is the shared reference-counted pointer; only its
	// payload's rooting status matters.
	ShapeSharedPtr
	// ShapeHeapBox is the owning heap allocation, exempt inside
	// constructor context only.
	ShapeHeapBox
	// ShapeTransientView is a borrow guard, slice iterator, or
	// associative-container iterator/entry view; always a transient
	// borrow, never inspected further.
	ShapeTransientView
)

// Oracle answers marker and canonical-shape queries for declarations.
// Lookups are pure and side-effect free.
type Oracle interface {
	Markers(d Decl) MarkerSet
	LibShape(d Decl) LibShape
}

// Reporter is the diagnostic sink. *analysis.Pass satisfies it.
type Reporter interface {
	Reportf(pos token.Pos, format string, args ...any)
}

// Field is one field of a struct declaration or variant payload.
type Field struct {
	Name string
	Type Type
	Pos  token.Pos
}

// Variant is one enum-style variant. Struct-style variants carry no fields
// here: the host routes their fields through the ordinary field pass.
type Variant struct {
	Name     string
	Fields   []Field
	IsStruct bool
}

// TypeDecl is a struct or enum-like declaration to be checked for marker
// propagation.
type TypeDecl struct {
	Name     string
	Markers  MarkerSet
	Fields   []Field
	Variants []Variant
}

// Param is one parameter or result of a function signature.
type Param struct {
	Name string
	Type Type
	Pos  token.Pos
}

// FuncInfo is a function or method with a concrete body.
type FuncInfo struct {
	// Name is the bare identifier; constructor context is derived from it.
	Name   string
	Params []Param
	// Results holds every result type, each reported at its own location.
	Results []Param
	// Generated reports that the declaration originates in generated code;
	// signature checks are skipped for such functions, the body walk is not.
	Generated bool
}

// Cast is a type-cast expression boundary: the operand's static type, with
// the diagnostic located at the operand.
type Cast struct {
	Operand Type
	Pos     token.Pos
}

// Binding is a pattern binding that materializes a value in a local slot.
type Binding struct {
	Name string
	Type Type
	Pos  token.Pos
	// ByRef marks a binding declared as borrowing its matched value; such
	// bindings never create a new owned slot and are always skipped.
	ByRef bool
}
