// Package validation provides the declarative validation gate that every
// domain object in the purchasing application passes through at construction.
//
// The package has three pieces:
//
//   - Named rules. A rule is a RuleKind paired with a predicate. Rule applies
//     a predicate to any number of named attribute references and reports a
//     Violation for every reference that fails; passing references produce
//     nothing. Evaluation never short-circuits, so a constructor learns about
//     every broken attribute in one pass. NotNil, Positive, and NotEmpty cover
//     the built-in kinds; a new rule is a new RuleKind constant plus a
//     predicate, with no change to existing call sites.
//
//   - Named attribute references. Named binds an attribute's declared name to
//     its value at the call site, so the rule engine can attribute failures
//     without the caller restating the name anywhere else. A reference whose
//     name is blank cannot be attributed and is recorded under
//     UnattributedName rather than dropped.
//
//   - The aggregated Error and Commit. Commit merges the violation sequences
//     of all rule invocations of one construction attempt into a single Error
//     keyed by attribute name, and returns it only when at least one
//     violation exists. Constructors commit before assigning any field, so a
//     partially valid object is never observable.
//
// Typical constructor:
//
//	func NewCustomer(id kernel.UUID, name *string, age int) (*Customer, error) {
//	    if err := validation.Commit(
//	        validation.NotNil(validation.Named("name", name)),
//	        validation.NotEmpty(validation.Named("name", name)),
//	        validation.Positive(validation.Named("age", age)),
//	    ); err != nil {
//	        return nil, err
//	    }
//	    // assign fields...
//	}
package validation
