// Command unrooted is a linter that checks rooting of GC-managed handles.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/unrootedlint/unrooted"
)

func main() {
	singlechecker.Main(unrooted.Analyzer)
}
