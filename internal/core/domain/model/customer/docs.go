// Package customer provides the Customer aggregate for the purchasing
// system.
//
// Customer is an immutable value-bearing entity: it is created once through
// a validating constructor that commits all field rules before assigning any
// field, and every later "change" derives a new instance (WithName, WithAge)
// instead of mutating the existing one. Derivations re-invoke the
// constructor, so derived customers always satisfy the construction
// invariants.
package customer
