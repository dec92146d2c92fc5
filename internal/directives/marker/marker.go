// Package marker handles the //unrooted: rooting markers attached to type
// declarations.
//
// Supported directives, written in the doc comment of a type declaration:
//
//	//unrooted:must_root                the type is, or unconditionally
//	                                    contains, a GC-managed handle
//	//unrooted:allow_unrooted_interior  the type roots its own contents
//	//unrooted:allow_unrooted_in_rc     the type is safe as an Rc payload
package marker

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// Directive spellings.
const (
	MustRoot              = "unrooted:must_root"
	AllowUnrootedInterior = "unrooted:allow_unrooted_interior"
	AllowUnrootedInRc     = "unrooted:allow_unrooted_in_rc"
)

// Collect scans every type declaration in the pass, file-scope and
// body-local alike, for marker directives and returns the markers keyed by
// the declared type object.
func Collect(pass *analysis.Pass) map[*types.TypeName]ir.MarkerSet {
	found := make(map[*types.TypeName]ir.MarkerSet)

	for _, file := range pass.Files {
		collectFile(pass, file, found)
	}

	return found
}

func collectFile(pass *analysis.Pass, file *ast.File, found map[*types.TypeName]ir.MarkerSet) {
	ast.Inspect(file, func(n ast.Node) bool {
		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		declMarkers := fromCommentGroup(genDecl.Doc)

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			// A grouped spec may carry its own doc comment; markers on the
			// surrounding decl apply to every spec in the group.
			markers := declMarkers | fromCommentGroup(typeSpec.Doc)
			if markers == 0 {
				continue
			}

			obj, ok := pass.TypesInfo.Defs[typeSpec.Name].(*types.TypeName)
			if !ok {
				continue
			}
			found[obj] = markers
		}

		return true
	})
}

// fromCommentGroup extracts markers from one comment group.
func fromCommentGroup(doc *ast.CommentGroup) ir.MarkerSet {
	if doc == nil {
		return 0
	}

	var set ir.MarkerSet
	for _, c := range doc.List {
		if m, ok := parseComment(c.Text); ok {
			set = set.With(m)
		}
	}

	return set
}

// parseComment recognizes a single marker directive. Per Go directive
// convention there is no space after //; a trailing " - reason" comment is
// allowed after the directive name.
func parseComment(text string) (ir.Marker, bool) {
	if !strings.HasPrefix(text, "//unrooted:") {
		return 0, false
	}
	text = strings.TrimSpace(strings.TrimPrefix(text, "//"))

	// Strip a trailing human-readable reason.
	if idx := strings.Index(text, " - "); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}

	switch text {
	case MustRoot:
		return ir.MustRoot, true
	case AllowUnrootedInterior:
		return ir.AllowUnrootedInterior, true
	case AllowUnrootedInRc:
		return ir.AllowUnrootedInRc, true
	}

	return 0, false
}
