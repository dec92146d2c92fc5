// Package ignore handles //unrooted:ignore directives, the per-line
// opt-out for the rooting diagnostics.
package ignore

import (
	"go/ast"
	"go/token"
	"strings"
)

// Entry tracks one ignore directive and whether it suppressed anything.
type Entry struct {
	pos  token.Pos
	used bool
}

// Map tracks ignore entries by line number for one file.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if isIgnoreComment(c.Text) {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{pos: c.Pos()}
			}
		}
	}

	return m
}

// isIgnoreComment recognizes the directive, optionally followed by a
// human-readable reason:
//
//	//unrooted:ignore
//	//unrooted:ignore - ScriptThread roots its own handles
func isIgnoreComment(text string) bool {
	if !strings.HasPrefix(text, "//unrooted:ignore") {
		return false
	}

	rest := strings.TrimPrefix(text, "//unrooted:ignore")
	if rest == "" {
		return true
	}

	// Anything after the directive must read as a trailing comment, not as
	// a longer directive name.
	return rest[0] == ' ' || rest[0] == '\t'
}

// ShouldIgnore reports whether a diagnostic on the given line is
// suppressed. A directive applies to its own line and to the line below
// it; matching marks the entry as used.
func (m Map) ShouldIgnore(line int) bool {
	for _, entry := range []*Entry{m[line], m[line-1]} {
		if entry != nil {
			entry.used = true

			return true
		}
	}

	return false
}

// Unused returns the positions of directives that never suppressed a
// diagnostic, in no particular order.
func (m Map) Unused() []token.Pos {
	var unused []token.Pos
	for _, entry := range m {
		if !entry.used {
			unused = append(unused, entry.pos)
		}
	}

	return unused
}
