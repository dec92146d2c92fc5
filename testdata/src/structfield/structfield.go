// Package structfield contains test fixtures for marker propagation on
// struct declarations.
package structfield

import "unsafe"

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

// ===== SHOULD REPORT =====

// [BAD]: unmarked struct owning a handle
type Handle struct {
	inner GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	name  string
}

// [BAD]: every offending field is reported
type Pair struct {
	first  GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	count  int
	second GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}

// [BAD]: containment through composite shapes propagates
type Containers struct {
	list  []GcPtr          // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	table map[string]GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	grid  [4]GcPtr         // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}

// [BAD]: embedded handle
type Embeds struct {
	GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: marked struct propagates, fields are not inspected
//
//unrooted:must_root
type RootedHandle struct { // want RootedHandle:`unrooted\(must_root\)`
	inner GcPtr
	list  []GcPtr
}

// [GOOD]: borrows and opaque shapes never root
type Borrows struct {
	ref  *GcPtr
	raw  unsafe.Pointer
	call func() GcPtr
}

// [GOOD]: a self-rooting container shields its payload in other structs
//
//unrooted:allow_unrooted_interior
type RootedVec struct { // want RootedVec:`unrooted\(allow_unrooted_interior\)`
	//unrooted:ignore - the vector roots its elements itself
	elems []GcPtr
}

type UsesRootedVec struct {
	pending RootedVec
}
