package validation

import (
	"fmt"
	"slices"
	"strings"
)

// Error is the aggregated outcome of one validation pass: a mapping from
// attribute name to the set of rule kinds violated for that attribute.
// Duplicate (attribute, kind) pairs collapse to one entry, so merging is
// idempotent and commutative.
//
// An Error is never returned for a pass without violations; Commit returns
// nil in that case. Use Attributes, Kinds, and Has to inspect the mapping,
// and Error() for the deterministic textual rendering.
type Error struct {
	violations map[string]map[RuleKind]struct{}
}

func newError() *Error {
	return &Error{violations: make(map[string]map[RuleKind]struct{})}
}

func (e *Error) add(v Violation) {
	kinds, ok := e.violations[v.Attribute]
	if !ok {
		kinds = make(map[RuleKind]struct{})
		e.violations[v.Attribute] = kinds
	}
	kinds[v.Kind] = struct{}{}
}

// Merge folds all violations of other into e. Merging the same violation
// twice yields a single entry. A nil other is a no-op.
func (e *Error) Merge(other *Error) {
	if other == nil {
		return
	}
	for attribute, kinds := range other.violations {
		for kind := range kinds {
			e.add(Violation{Attribute: attribute, Kind: kind})
		}
	}
}

// IsEmpty reports whether the error contains no violations.
func (e *Error) IsEmpty() bool {
	return len(e.violations) == 0
}

// Attributes returns the names of all violated attributes, sorted.
func (e *Error) Attributes() []string {
	attributes := make([]string, 0, len(e.violations))
	for attribute := range e.violations {
		attributes = append(attributes, attribute)
	}
	slices.Sort(attributes)
	return attributes
}

// Kinds returns the rule kinds violated for the given attribute, sorted.
// It returns nil for attributes without violations.
func (e *Error) Kinds(attribute string) []RuleKind {
	set, ok := e.violations[attribute]
	if !ok {
		return nil
	}
	kinds := make([]RuleKind, 0, len(set))
	for kind := range set {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Has reports whether the given attribute violated the given rule kind.
func (e *Error) Has(attribute string, kind RuleKind) bool {
	_, ok := e.violations[attribute][kind]
	return ok
}

// Error renders the aggregated failure as deterministic human-readable text:
// one line per violated attribute, attributes and kinds sorted, e.g.
//
//	validation failed:
//	  name: must-not-be-empty, must-not-be-null
//	  quantity: must-be-positive
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("validation failed:")
	for _, attribute := range e.Attributes() {
		kinds := e.Kinds(attribute)
		rendered := make([]string, len(kinds))
		for i, kind := range kinds {
			rendered[i] = string(kind)
		}
		fmt.Fprintf(&b, "\n  %s: %s", attribute, strings.Join(rendered, ", "))
	}
	return b.String()
}

// Commit consumes the violation sequences of any number of rule invocations,
// merges them into one aggregated Error, and returns it if and only if it
// contains at least one violation. Otherwise Commit returns nil and
// construction proceeds. Call it before assigning any field of the value
// under construction so no partial object is ever observable.
func Commit(groups ...[]Violation) error {
	aggregated := newError()
	for _, group := range groups {
		for _, violation := range group {
			aggregated.add(violation)
		}
	}
	if aggregated.IsEmpty() {
		return nil
	}
	return aggregated
}
