// Package use consumes marked types across a package boundary; the
// markers travel as analysis facts.
package use

import "crosspkg/lib"

type Wrapper struct {
	obj  lib.JSObject // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	safe lib.RootedBuffer
}

func push(o lib.JSObject) { // want "Type must be rooted"
	_ = o
}
