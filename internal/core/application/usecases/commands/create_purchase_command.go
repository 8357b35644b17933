package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

// ErrCreatePurchaseCommandIsNotConstructed is returned when a
// CreatePurchaseCommand bypassed its constructor.
var ErrCreatePurchaseCommandIsNotConstructed = errors.New(
	"CreatePurchaseCommand must be created via NewCreatePurchaseCommand constructor",
)

// CreatePurchaseCommand represents a request to open a new draft purchase
// for an existing customer.
type CreatePurchaseCommand struct {
	purchaseID kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePurchaseCommand creates a command to open a draft purchase.
// A unique purchase ID is generated automatically.
func NewCreatePurchaseCommand(customerID kernel.UUID) (CreatePurchaseCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreatePurchaseCommand{}, err
	}

	return CreatePurchaseCommand{
		purchaseID: kernel.NewUUID(),
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseCommandIsNotConstructed)
}

// PurchaseID returns the generated purchase ID.
func (c CreatePurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// CustomerID returns the owning customer ID.
func (c CreatePurchaseCommand) CustomerID() kernel.UUID {
	return c.customerID
}
