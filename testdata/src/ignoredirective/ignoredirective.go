// Package ignoredirective contains test fixtures for //unrooted:ignore
// suppression.
package ignoredirective

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

// ===== SHOULD NOT REPORT =====

// [GOOD]: same-line suppression
type quiet struct {
	inner GcPtr //unrooted:ignore - rooted by the scheduler before use
}

// [GOOD]: line-above suppression
type alsoQuiet struct {
	//unrooted:ignore - rooted by the scheduler before use
	inner GcPtr
}

// [GOOD]: suppressed binding
func pump() {
	h := fetch() //unrooted:ignore - immediately rooted below
	root(&h)
}

func fetch() GcPtr { //unrooted:ignore
	return GcPtr{}
}

func root(p *GcPtr) {
	_ = p
}

// ===== SHOULD REPORT =====

// [BAD]: the directive only covers its own line and the next
type loud struct {
	inner GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}
