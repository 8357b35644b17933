package customer

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/validation"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable aggregate representing a buyer.
//
// Invariants, enforced at construction through the validation gate:
//   - name must be present and non-empty
//   - age must be strictly positive
//
// A Customer never changes after construction. WithName and WithAge derive a
// new instance carrying the change; both re-invoke the validating
// constructor, so a derived Customer satisfies the same invariants as a
// freshly constructed one and the source instance stays untouched.
type Customer struct {
	// id is the unique identifier of the customer
	id kernel.UUID

	// name is the customer's display name
	name string

	// age is the customer's age in years
	age int

	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with validation. This is the only legal
// origin of a fully-formed instance.
//
// The name is taken as a pointer so an absent name is distinguishable from an
// empty one: a nil name violates both must-not-be-null and must-not-be-empty.
// All rule results are committed before any field is assigned, so a failing
// construction never leaks a partial object, and every violated attribute is
// reported in the single aggregated error:
//
//	customer, err := NewCustomer(kernel.NewUUID(), nil, -2)
//	// err lists name: {must-not-be-empty, must-not-be-null}, age: {must-be-positive}
func NewCustomer(id kernel.UUID, name *string, age int) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := validation.Commit(
		validation.NotNil(validation.Named("name", name)),
		validation.NotEmpty(validation.Named("name", name)),
		validation.Positive(validation.Named("age", age)),
	); err != nil {
		return nil, err
	}

	return &Customer{
		id:    id,
		name:  *name,
		age:   age,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage. It runs
// the same validation gate as NewCustomer so data corrupted outside the
// application cannot re-enter the domain.
func RestoreCustomer(id kernel.UUID, name string, age int) (*Customer, error) {
	return NewCustomer(id, &name, age)
}

// Validate checks that the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Age returns the customer's age.
func (c *Customer) Age() int {
	return c.age
}

// Clone returns a structurally identical copy of the customer. The copy is
// independently owned; mutating it can never be observed through the source.
func (c *Customer) Clone() *Customer {
	clone := *c
	return &clone
}

// WithName derives a new Customer carrying the given name. The change is
// routed through the validating constructor, so an invalid name fails with
// the same aggregated error as at construction and the receiver is never
// modified.
func (c *Customer) WithName(name string) (*Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return NewCustomer(c.id, &name, c.age)
}

// WithAge derives a new Customer carrying the given age, re-running the
// constructor validation. The receiver is never modified.
func (c *Customer) WithAge(age int) (*Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	name := c.name
	return NewCustomer(c.id, &name, age)
}
