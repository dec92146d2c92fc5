// Package shapes maps fully-qualified type paths to the canonical library
// shapes the rooting walk recognizes structurally: the shared
// reference-counted pointer, the owning heap box, and the borrow-like
// transient views.
package shapes

import (
	"strings"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// Ref identifies one library type by package path and bare name.
// Format: "pkg/path.TypeName".
type Ref struct {
	PkgPath  string
	TypeName string
}

// Table holds the recognized shapes for one analysis run. It is built once
// and read-only afterwards.
type Table struct {
	entries map[Ref]ir.LibShape
}

// Default canonical paths: the companion gc runtime library.
var defaults = map[Ref]ir.LibShape{
	{PkgPath: "github.com/unrootedlint/gc/rc", TypeName: "Rc"}: ir.ShapeSharedPtr,

	{PkgPath: "github.com/unrootedlint/gc/heap", TypeName: "Box"}: ir.ShapeHeapBox,

	{PkgPath: "github.com/unrootedlint/gc/cell", TypeName: "Ref"}:               ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/cell", TypeName: "RefMut"}:            ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/slice", TypeName: "Iter"}:             ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/slice", TypeName: "IterMut"}:          ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/hashmap", TypeName: "Iter"}:           ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/hashmap", TypeName: "Entry"}:          ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/hashmap", TypeName: "OccupiedEntry"}:  ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/hashmap", TypeName: "VacantEntry"}:    ir.ShapeTransientView,
	{PkgPath: "github.com/unrootedlint/gc/hashset", TypeName: "Iter"}:           ir.ShapeTransientView,
}

// Default returns the built-in table.
func Default() *Table {
	t := &Table{entries: make(map[Ref]ir.LibShape, len(defaults))}
	for ref, shape := range defaults {
		t.entries[ref] = shape
	}

	return t
}

// Add registers additional refs under one shape class.
func (t *Table) Add(shape ir.LibShape, refs []Ref) {
	for _, ref := range refs {
		t.entries[ref] = shape
	}
}

// Lookup returns the shape class for a type identified by package path and
// bare name, tolerating a major-version suffix on the package path.
func (t *Table) Lookup(pkgPath, typeName string) ir.LibShape {
	if shape, ok := t.entries[Ref{PkgPath: pkgPath, TypeName: typeName}]; ok {
		return shape
	}

	// Retry with the /vN suffix stripped, so a table entry for
	// "example.com/gc/rc" also matches "example.com/gc/rc/v2".
	if base, ok := trimMajorVersion(pkgPath); ok {
		if shape, ok := t.entries[Ref{PkgPath: base, TypeName: typeName}]; ok {
			return shape
		}
	}

	return ir.ShapeNone
}

// trimMajorVersion strips a trailing "/vN" module-major-version element.
func trimMajorVersion(pkgPath string) (string, bool) {
	slash := strings.LastIndex(pkgPath, "/")
	if slash == -1 {
		return "", false
	}

	last := pkgPath[slash+1:]
	if len(last) < 2 || last[0] != 'v' {
		return "", false
	}
	for _, r := range last[1:] {
		if r < '0' || r > '9' {
			return "", false
		}
	}

	return pkgPath[:slash], true
}

// Parse parses a comma-separated list of "pkg/path.TypeName" refs, as given
// on the command line. Malformed entries are skipped.
func Parse(s string) []Ref {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	refs := make([]Ref, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		ref, ok := parseRef(part)
		if !ok {
			continue
		}
		refs = append(refs, ref)
	}

	return refs
}

// parseRef splits "pkg/path.TypeName" at the last dot.
func parseRef(s string) (Ref, bool) {
	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return Ref{}, false
	}

	return Ref{PkgPath: s[:lastDot], TypeName: s[lastDot+1:]}, true
}
