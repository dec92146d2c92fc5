// Package casts contains test fixtures for cast boundaries: conversions
// and type assertions erase the static alias tracking a rooting wrapper
// relies on.
package casts

import "unsafe"

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

//unrooted:must_root
type Traceable interface { // want Traceable:`unrooted\(must_root\)`
	Trace()
}

type rawHandle struct{ addr uintptr }

// ===== SHOULD REPORT =====

// [BAD]: converting a handle away from its nominal type
func launder(p *GcPtr) rawHandle {
	return rawHandle(*p) // want "Expression of type `GcPtr` must be rooted"
}

// [BAD]: boxing a handle into an interface
func erase(p *GcPtr) any {
	return any(*p) // want "Expression of type `GcPtr` must be rooted"
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: asserting out of a plain interface; the operand's static type
// carries no handle
func reveal(v any) {
	if p, ok := v.(*GcPtr); ok {
		_ = p
	}
}

// [GOOD]: conversions between safe types
func widen(n int32) int64 {
	return int64(n)
}

// [GOOD]: a borrow converts freely
func raw(p *GcPtr) unsafe.Pointer {
	return unsafe.Pointer(p)
}

// [BAD]: asserting out of a marked interface checks the operand
func narrow(t *Traceable) {
	v := *t             // want "Expression of type `Traceable` must be rooted"
	if u, ok := v.(interface{ Untrace() }); ok { // want "Expression of type `Traceable` must be rooted"
		_ = u
	}
}
