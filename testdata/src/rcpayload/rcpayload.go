// Package rcpayload contains test fixtures for the shared
// reference-counted pointer rules.
package rcpayload

import "github.com/unrootedlint/gc/rc"

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

// Promise roots the handles behind its reactions itself, so sharing it via
// rc is safe.
//
//unrooted:allow_unrooted_in_rc
type Promise struct { // want Promise:`unrooted\(allow_unrooted_in_rc\)`
	resolved *GcPtr
}

// ===== SHOULD REPORT =====

// [BAD]: rc does not root its payload
type SharedHandle struct {
	h rc.Rc[GcPtr] // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}

// [BAD]: nor a payload that owns a handle transitively
type SharedVec struct {
	hs rc.Rc[[]GcPtr] // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: the blessed payload is exempt
type SharedPromise struct {
	p rc.Rc[Promise]
}

// [GOOD]: payloads without handles never rooted anything
type SharedCount struct {
	n rc.Rc[int]
}

// [GOOD]: the exemption also applies to local bindings
func trackPromise() {
	p := rc.New(Promise{})
	_ = p
}
