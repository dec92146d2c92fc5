// Package declcheck validates marker propagation on struct and enum-like
// declarations: any declaration owning an unrooted type must itself carry
// the must_root marker.
package declcheck

import (
	"github.com/unrootedlint/unrooted/internal/ir"
	"github.com/unrootedlint/unrooted/internal/predicate"
)

// Diagnostic wordings, kept stable for suppression tooling.
const (
	structMsg = "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	enumMsg   = "Type must be rooted, use `//unrooted:must_root` on the enum definition to propagate"
)

// Check reports every field or tuple-variant slot of d whose type must be
// rooted while d itself lacks the must_root marker. A marked declaration
// is skipped wholesale: it already propagates.
func Check(r ir.Reporter, o ir.Oracle, d *ir.TypeDecl) {
	if d.Markers.Has(ir.MustRoot) {
		return
	}

	for _, field := range d.Fields {
		if predicate.IsUnrooted(o, field.Type, false) {
			r.Reportf(field.Pos, "%s", structMsg)
		}
	}

	for _, variant := range d.Variants {
		// Struct-style variants arrive through the field pass instead.
		if variant.IsStruct {
			continue
		}

		for _, field := range variant.Fields {
			if predicate.IsUnrooted(o, field.Type, false) {
				r.Reportf(field.Pos, "%s", enumMsg)
			}
		}
	}
}
