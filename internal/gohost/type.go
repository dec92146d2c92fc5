package gohost

import (
	"go/types"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// wrap adapts a resolved go/types type to the ir shape vocabulary.
// Identical host types yield identical ir.Type values so the predicate's
// visited set terminates on recursive shapes.
func (h *Host) wrap(t types.Type) ir.Type {
	if t == nil {
		return nil
	}

	t = types.Unalias(t)
	if w, ok := h.wrapped[t]; ok {
		return w
	}

	w := &hostType{host: h, t: t}
	h.wrapped[t] = w

	return w
}

func (h *Host) wrapAll(ts []types.Type) []ir.Type {
	if len(ts) == 0 {
		return nil
	}

	out := make([]ir.Type, len(ts))
	for i, t := range ts {
		out[i] = h.wrap(t)
	}

	return out
}

type hostType struct {
	host *Host
	t    types.Type
}

// Shape implements ir.Type.
func (w *hostType) Shape() ir.Shape {
	switch t := w.t.(type) {
	case *types.Named:
		return ir.Named

	case *types.Pointer:
		// A Go pointer is a borrow of its pointee.
		return ir.Reference

	case *types.Signature:
		return ir.Function

	case *types.Basic:
		if t.Kind() == types.UnsafePointer {
			return ir.RawAddress
		}

		return ir.Other

	default:
		return ir.Other
	}
}

// Decl implements ir.Type.
func (w *hostType) Decl() ir.Decl {
	named, ok := w.t.(*types.Named)
	if !ok {
		return nil
	}

	return declID{obj: named.Obj()}
}

// TypeArgs implements ir.Type.
func (w *hostType) TypeArgs() []ir.Type {
	named, ok := w.t.(*types.Named)
	if !ok {
		return nil
	}

	args := named.TypeArgs()
	if args == nil {
		return nil
	}

	out := make([]ir.Type, args.Len())
	for i := range args.Len() {
		out[i] = w.host.wrap(args.At(i))
	}

	return out
}

// Elems implements ir.Type. It exposes the immediate substructure of the
// Other-shaped composites; primitives, interfaces and type parameters have
// none.
func (w *hostType) Elems() []ir.Type {
	switch t := w.t.(type) {
	case *types.Slice:
		return w.host.wrapAll([]types.Type{t.Elem()})

	case *types.Array:
		return w.host.wrapAll([]types.Type{t.Elem()})

	case *types.Chan:
		return w.host.wrapAll([]types.Type{t.Elem()})

	case *types.Map:
		return w.host.wrapAll([]types.Type{t.Key(), t.Elem()})

	case *types.Struct:
		elems := make([]ir.Type, t.NumFields())
		for i := range t.NumFields() {
			elems[i] = w.host.wrap(t.Field(i).Type())
		}

		return elems

	case *types.Tuple:
		elems := make([]ir.Type, t.Len())
		for i := range t.Len() {
			elems[i] = w.host.wrap(t.At(i).Type())
		}

		return elems

	default:
		return nil
	}
}

// String implements ir.Type. Foreign packages are qualified by name
// rather than import path so diagnostics stay readable.
func (w *hostType) String() string {
	qf := func(p *types.Package) string {
		if p == w.host.pass.Pkg {
			return ""
		}

		return p.Name()
	}

	return types.TypeString(w.t, qf)
}
