// Package immutable provides the clone-then-derive mechanism behind every
// "change" to a domain object in the purchasing application. Objects are
// never mutated after construction; a change produces a new instance by
// copying the current one and mutating only the copy.
package immutable

// Cloneable is implemented by values that can produce a structurally
// identical, independently owned copy of themselves. Clone must deep-copy
// mutable substructures so the copy never aliases back to the source.
type Cloneable[T any] interface {
	Clone() T
}

// Derive produces a new value from src by cloning it and applying mutate to
// the clone. The source is never touched, so concurrent callers may derive
// from the same instance without coordination.
//
// Derive does not re-run the owning type's validating constructor on the
// result. A derivation that changes a rule-guarded attribute must route the
// change through the same validating constructor used at creation; see the
// With* operations on the domain aggregates, which do exactly that.
// Structure-only derivations that insert values already validated by their
// own constructors may mutate the clone directly.
func Derive[T Cloneable[T]](src T, mutate func(T)) T {
	clone := src.Clone()
	mutate(clone)
	return clone
}
