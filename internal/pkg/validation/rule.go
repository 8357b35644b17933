package validation

import "strings"

// RuleKind is the enumerated tag of a named invariant. It carries no message
// text; rendering violations is a presentation concern.
type RuleKind string

// Built-in rule kinds. The set is open: a new rule is a new constant paired
// with a predicate, existing rules and call sites stay untouched.
const (
	// MustNotBeNull requires an attribute reference to carry a non-absent value.
	MustNotBeNull RuleKind = "must-not-be-null"
	// MustBePositive requires a numeric value to be strictly greater than zero.
	MustBePositive RuleKind = "must-be-positive"
	// MustNotBeEmpty requires a string-like value to be neither absent nor zero-length.
	MustNotBeEmpty RuleKind = "must-not-be-empty"
)

// UnattributedName is the attribute name recorded for references whose
// declared name could not be recovered (a blank name). Such violations are
// still reported so the degenerate path never passes silently.
const UnattributedName = "<unattributed>"

// Violation is a single (attribute name, rule kind) failure produced by a
// rule evaluation.
type Violation struct {
	Attribute string
	Kind      RuleKind
}

// Attr is a named attribute reference: an attribute's declared name bound to
// its value at the call site. Build one with Named.
type Attr[T any] struct {
	name  string
	value T
}

// Named binds an attribute name to a value. The name should be the field's
// declared name so rule failures attribute to the right attribute without
// the caller restating it elsewhere.
func Named[T any](name string, value T) Attr[T] {
	return Attr[T]{name: name, value: value}
}

// Name returns the attribute name the reference was declared with, or
// UnattributedName when the declared name is blank.
func (a Attr[T]) Name() string {
	if strings.TrimSpace(a.name) == "" {
		return UnattributedName
	}
	return a.name
}

// Value returns the referenced value.
func (a Attr[T]) Value() T {
	return a.value
}

// Rule evaluates predicate against every attribute reference and returns a
// Violation of the given kind for each reference whose value fails. It never
// short-circuits: all references are checked and all failures reported.
// References that pass produce nothing. Rule itself never returns an error;
// aggregation and raising happen in Commit.
func Rule[T any](kind RuleKind, predicate func(T) bool, attrs ...Attr[T]) []Violation {
	var violations []Violation
	for _, attr := range attrs {
		if !predicate(attr.value) {
			violations = append(violations, Violation{Attribute: attr.Name(), Kind: kind})
		}
	}
	return violations
}

// Number constrains the numeric types Positive accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// NotNil checks the must-not-be-null rule: every referenced pointer must be
// non-nil.
func NotNil[T any](attrs ...Attr[*T]) []Violation {
	return Rule(MustNotBeNull, func(v *T) bool { return v != nil }, attrs...)
}

// Positive checks the must-be-positive rule: every referenced number must be
// strictly greater than zero.
func Positive[T Number](attrs ...Attr[T]) []Violation {
	return Rule(MustBePositive, func(v T) bool { return v > 0 }, attrs...)
}

// NotEmpty checks the must-not-be-empty rule: every referenced string must be
// present and non-zero-length. An absent string violates both this rule and
// must-not-be-null; the two can be declared together and the results commit
// as separate kinds for the same attribute.
func NotEmpty(attrs ...Attr[*string]) []Violation {
	return Rule(MustNotBeEmpty, func(v *string) bool { return v != nil && len(*v) > 0 }, attrs...)
}
