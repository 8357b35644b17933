package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

// ErrPlacePurchaseCommandIsNotConstructed is returned when a
// PlacePurchaseCommand bypassed its constructor.
var ErrPlacePurchaseCommandIsNotConstructed = errors.New(
	"PlacePurchaseCommand must be created via NewPlacePurchaseCommand constructor",
)

// PlacePurchaseCommand represents a request to place a draft purchase,
// freezing its line collection.
type PlacePurchaseCommand struct {
	purchaseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlacePurchaseCommand creates a command to place a draft purchase.
func NewPlacePurchaseCommand(purchaseID kernel.UUID) (PlacePurchaseCommand, error) {
	if err := purchaseID.Validate(); err != nil {
		return PlacePurchaseCommand{}, err
	}

	return PlacePurchaseCommand{
		purchaseID: purchaseID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlacePurchaseCommand) Validate() error {
	return c.guard.Validate(ErrPlacePurchaseCommandIsNotConstructed)
}

// PurchaseID returns the ID of the purchase to place.
func (c PlacePurchaseCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}
