package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/validation"
)

// ErrRenameCustomerCommandIsNotConstructed is returned when a
// RenameCustomerCommand bypassed its constructor.
var ErrRenameCustomerCommandIsNotConstructed = errors.New(
	"RenameCustomerCommand must be created via NewRenameCustomerCommand constructor",
)

// RenameCustomerCommand represents a request to change an existing customer's name.
type RenameCustomerCommand struct {
	customerID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewRenameCustomerCommand creates a command to rename an existing customer.
// The new name must be present and non-empty.
func NewRenameCustomerCommand(customerID kernel.UUID, name *string) (RenameCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return RenameCustomerCommand{}, err
	}

	if err := validation.Commit(
		validation.NotNil(validation.Named("name", name)),
		validation.NotEmpty(validation.Named("name", name)),
	); err != nil {
		return RenameCustomerCommand{}, err
	}

	return RenameCustomerCommand{
		customerID: customerID,
		name:       *name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RenameCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRenameCustomerCommandIsNotConstructed)
}

// CustomerID returns the ID of the customer to rename.
func (c RenameCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new customer name.
func (c RenameCustomerCommand) Name() string {
	return c.name
}
