// Package bindings contains test fixtures for pattern bindings that
// materialize owned stack values.
package bindings

import "github.com/unrootedlint/gc/heap"

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

func borrow() *GcPtr {
	return &GcPtr{}
}

// ===== SHOULD REPORT =====

// [BAD]: short declaration of an owned handle
func short() {
	h := *borrow() // want "Expression of type `GcPtr` must be rooted"
	_ = h
}

// [BAD]: var declaration
func viaVar() {
	var h GcPtr // want "Expression of type `GcPtr` must be rooted"
	_ = h
}

// [BAD]: range clause value binding
func viaRange(hs *[]GcPtr) {
	for _, h := range *hs { // want "Expression of type `GcPtr` must be rooted"
		_ = h
	}
}

// [BAD]: type-switch clause binding at the handle arm only
func viaTypeSwitch(v any) {
	switch x := v.(type) {
	case GcPtr: // want "Expression of type `GcPtr` must be rooted"
		_ = x
	case int:
		_ = x
	}
}

// [BAD]: closure parameter binding
func apply(fn func(GcPtr)) {
	_ = fn
}

func viaClosureParam() {
	apply(func(h GcPtr) { // want "Expression of type `GcPtr` must be rooted"
		_ = h
	})
}

// [BAD]: a closure inherits the enclosing non-constructor context
func viaClosure() {
	run := func() {
		b := heap.New(GcPtr{}) // want "Expression of type `heap.Box\\[GcPtr\\]` must be rooted"
		_ = b
	}
	run()
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: a closure inherits the enclosing constructor context too
func NewLazy() {
	run := func() {
		b := heap.New(GcPtr{})
		_ = b
	}
	run()
}

// [GOOD]: borrowed bindings never own the handle
func borrowed() {
	p := borrow()
	_ = p
}

// [GOOD]: assignment right-hand sides are not checked
func assignRHS(dst *GcPtr) {
	*dst = *borrow()
}

// [GOOD]: call arguments are not checked
func consume(p *GcPtr) {
	_ = p
}

func callArgs() {
	consume(&GcPtr{})
}

// [BAD]: an anonymous struct variable owns the handle; the report lands on
// the variable, never on its field names
func viaLocalStruct() {
	var x struct{ f GcPtr } // want "Expression of type `struct{f GcPtr}` must be rooted"
	_ = x
}

// [BAD]: a body-local declaration reports propagation once, at the field
func localHolder() {
	type holder struct {
		h GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
	}

	var _ holder
}

// [GOOD]: markers on body-local declarations are honored
func localRooted() {
	//unrooted:must_root
	type frame struct { // want frame:`unrooted\(must_root\)`
		h GcPtr
	}

	f := frame{} // want "Expression of type `frame` must be rooted"
	_ = f
}
