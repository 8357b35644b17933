package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/validation"
)

// ErrCreateCustomerCommandIsNotConstructed is returned when a
// CreateCustomerCommand bypassed its constructor.
var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// The command runs the same validation gate as the domain aggregate, so a
// malformed request is rejected with one aggregated error listing every
// broken attribute before any transaction is opened.
type CreateCustomerCommand struct {
	customerID kernel.UUID
	name       string
	age        int

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// A unique customer ID is generated automatically. The name is taken as a
// pointer so an absent name is distinguishable from an empty one.
func NewCreateCustomerCommand(name *string, age int) (CreateCustomerCommand, error) {
	if err := validation.Commit(
		validation.NotNil(validation.Named("name", name)),
		validation.NotEmpty(validation.Named("name", name)),
		validation.Positive(validation.Named("age", age)),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID: kernel.NewUUID(),
		name:       *name,
		age:        age,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the generated customer ID.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name from the command.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Age returns the customer age from the command.
func (c CreateCustomerCommand) Age() int {
	return c.age
}
