package gohost

import (
	"go/ast"
	"go/types"

	"github.com/unrootedlint/unrooted/internal/bodywalk"
	"github.com/unrootedlint/unrooted/internal/ir"
)

// FuncInfo converts a function or method declaration to its ir form.
// Declarations without a concrete body (external/assembly funcs) return
// false. Function literals never come through here: a closure boundary is
// opaque and closures inherit the enclosing walk.
func (h *Host) FuncInfo(decl *ast.FuncDecl, generated bool) (*ir.FuncInfo, bool) {
	if decl.Body == nil {
		return nil, false
	}

	info := &ir.FuncInfo{
		Name:      decl.Name.Name,
		Generated: generated,
	}

	// A method receiver crosses the call boundary like any parameter.
	if decl.Recv != nil {
		info.Params = append(info.Params, h.fieldParams(decl.Recv.List)...)
	}
	info.Params = append(info.Params, h.fieldParams(decl.Type.Params.List)...)

	if decl.Type.Results != nil {
		for _, field := range decl.Type.Results.List {
			resultType := h.wrap(h.pass.TypesInfo.TypeOf(field.Type))
			// One entry per result slot; unnamed results report at the
			// type, named ones at each name.
			if len(field.Names) == 0 {
				info.Results = append(info.Results, ir.Param{Type: resultType, Pos: field.Pos()})

				continue
			}
			for _, name := range field.Names {
				info.Results = append(info.Results, ir.Param{Name: name.Name, Type: resultType, Pos: name.Pos()})
			}
		}
	}

	return info, true
}

func (h *Host) fieldParams(fields []*ast.Field) []ir.Param {
	var params []ir.Param

	for _, field := range fields {
		paramType := h.wrap(h.pass.TypesInfo.TypeOf(field.Type))

		if len(field.Names) == 0 {
			params = append(params, ir.Param{Type: paramType, Pos: field.Pos()})

			continue
		}

		for _, name := range field.Names {
			params = append(params, ir.Param{Name: name.Name, Type: paramType, Pos: name.Pos()})
		}
	}

	return params
}

// WalkBody drives the body walker over a function body, feeding it cast
// operands and owned bindings. Assignment right-hand sides and call
// arguments are not events; see the bodywalk package doc.
func (h *Host) WalkBody(w *bodywalk.Walker, decl *ast.FuncDecl) {
	info := h.pass.TypesInfo

	ast.Inspect(decl.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr:
			// A conversion T(x) erases the static alias tracking a rooting
			// wrapper relies on; check its operand.
			if tv, ok := info.Types[n.Fun]; ok && tv.IsType() && len(n.Args) == 1 {
				operand := n.Args[0]
				w.Cast(ir.Cast{
					Operand: h.wrap(info.TypeOf(operand)),
					Pos:     operand.Pos(),
				})
			}

		case *ast.TypeAssertExpr:
			// x.(T); the bare x.(type) of a type switch carries a nil Type
			// and its bindings are handled per clause below.
			if n.Type != nil {
				w.Cast(ir.Cast{
					Operand: h.wrap(info.TypeOf(n.X)),
					Pos:     n.X.Pos(),
				})
			}

		case *ast.TypeSwitchStmt:
			h.walkTypeSwitch(w, n)

		case *ast.Ident:
			// Every variable the body defines materializes an owned stack
			// slot: short declarations, var specs, range clauses, closure
			// parameters. Struct field names also land in Defs; those are
			// the declaration pass's concern, not bindings.
			if obj, ok := info.Defs[n].(*types.Var); ok && !obj.IsField() {
				w.Binding(ir.Binding{
					Name: n.Name,
					Type: h.wrap(obj.Type()),
					Pos:  n.Pos(),
				})
			}
		}

		return true
	})
}

// walkTypeSwitch reports the per-clause implicit binding of
// switch v := x.(type); each clause binds v at a clause-specific type.
func (h *Host) walkTypeSwitch(w *bodywalk.Walker, stmt *ast.TypeSwitchStmt) {
	for _, clause := range stmt.Body.List {
		cc, ok := clause.(*ast.CaseClause)
		if !ok {
			continue
		}

		obj, ok := h.pass.TypesInfo.Implicits[cc].(*types.Var)
		if !ok {
			continue
		}

		w.Binding(ir.Binding{
			Name: obj.Name(),
			Type: h.wrap(obj.Type()),
			Pos:  cc.Pos(),
		})
	}
}
