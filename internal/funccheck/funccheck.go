// Package funccheck validates function and method signatures: unrooted
// types may not cross a call boundary as parameters, and may only be
// returned by constructors.
package funccheck

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/unrootedlint/unrooted/internal/ir"
	"github.com/unrootedlint/unrooted/internal/predicate"
)

const signatureMsg = "Type must be rooted"

// Check validates the signature of f and returns whether f is checked in
// constructor context (the flag the body walk must then use). Signature
// diagnostics are suppressed for generated declarations, but the returned
// flag is valid either way: the body walk always runs.
func Check(r ir.Reporter, o ir.Oracle, f *ir.FuncInfo) bool {
	inNew := IsConstructorName(f.Name)

	if f.Generated {
		return inNew
	}

	// The heap-box exemption never applies to parameters, even in a
	// constructor.
	for _, param := range f.Params {
		if predicate.IsUnrooted(o, param.Type, false) {
			r.Reportf(param.Pos, "%s", signatureMsg)
		}
	}

	// Constructors are exempt on the return side only.
	if !inNew {
		for _, result := range f.Results {
			if predicate.IsUnrooted(o, result.Type, false) {
				r.Reportf(result.Pos, "%s", signatureMsg)
			}
		}
	}

	return inNew
}

// IsConstructorName reports whether the bare identifier names a
// constructor: "new"/"New" exactly, or that prefix followed by an
// underscore or an uppercase rune. "Newton" is not a constructor.
func IsConstructorName(name string) bool {
	for _, prefix := range []string{"new", "New"} {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		if rest == "" {
			return true
		}

		r, _ := utf8.DecodeRuneInString(rest)
		if r == '_' || unicode.IsUpper(r) {
			return true
		}
	}

	return false
}
