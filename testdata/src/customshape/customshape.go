// Package customshape contains test fixtures for shape-table overrides
// supplied through flags or the config file.
package customshape

//unrooted:must_root
type GcPtr struct{ addr uintptr } // want GcPtr:`unrooted\(must_root\)`

// Guard is promoted to a transient view via -view-types=customshape.Guard.
type Guard[T any] struct{ v *T }

type snapshot struct {
	guarded Guard[GcPtr]
	raw     GcPtr // want "Type must be rooted, use `//unrooted:must_root` on the struct definition to propagate"
}
