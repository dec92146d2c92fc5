package gohost

import (
	"go/ast"
	"go/types"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// StructDecl converts a struct type declaration to its ir form. It returns
// false for non-struct type specs (aliases, named basics, interfaces).
func (h *Host) StructDecl(spec *ast.TypeSpec) (*ir.TypeDecl, bool) {
	structType, ok := spec.Type.(*ast.StructType)
	if !ok {
		return nil, false
	}

	obj, ok := h.pass.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, false
	}

	decl := &ir.TypeDecl{
		Name:    spec.Name.Name,
		Markers: h.local[obj],
	}

	for _, field := range structType.Fields.List {
		fieldType := h.wrap(h.pass.TypesInfo.TypeOf(field.Type))

		if len(field.Names) == 0 {
			// Embedded field: locate the diagnostic at the type.
			decl.Fields = append(decl.Fields, ir.Field{
				Type: fieldType,
				Pos:  field.Pos(),
			})

			continue
		}

		for _, name := range field.Names {
			decl.Fields = append(decl.Fields, ir.Field{
				Name: name.Name,
				Type: fieldType,
				Pos:  name.Pos(),
			})
		}
	}

	return decl, true
}
