package gohost

import (
	"fmt"

	"github.com/unrootedlint/unrooted/internal/ir"
)

// MarkersFact carries a type declaration's rooting markers across package
// boundaries through the analysis fact mechanism.
type MarkersFact struct {
	Set ir.MarkerSet
}

// AFact marks MarkersFact as an analysis fact.
func (*MarkersFact) AFact() {}

func (f *MarkersFact) String() string {
	var names []byte
	add := func(s string) {
		if len(names) > 0 {
			names = append(names, ',')
		}
		names = append(names, s...)
	}

	if f.Set.Has(ir.MustRoot) {
		add("must_root")
	}
	if f.Set.Has(ir.AllowUnrootedInterior) {
		add("allow_unrooted_interior")
	}
	if f.Set.Has(ir.AllowUnrootedInRc) {
		add("allow_unrooted_in_rc")
	}

	return fmt.Sprintf("unrooted(%s)", names)
}
