package commands

import (
	"errors"

	"purchasing/internal/pkg/guard"
)

var (
	// ErrSettlePurchasesCommandIsNotConstructed is returned when a
	// SettlePurchasesCommand bypassed its constructor.
	ErrSettlePurchasesCommandIsNotConstructed = errors.New(
		"SettlePurchasesCommand must be created via NewSettlePurchasesCommand constructor",
	)

	// ErrNoPlacedPurchasesFound signals that the batch had nothing to settle.
	// The settlement job treats this as a quiet no-op rather than a failure.
	ErrNoPlacedPurchasesFound = errors.New("no placed purchases found")
)

// SettlePurchasesCommand represents a request to settle every placed
// purchase in one batch. Carries no data; the guard still enforces
// construction through the factory.
type SettlePurchasesCommand struct {
	guard guard.ConstructorGuard
}

// NewSettlePurchasesCommand creates a command to settle all placed purchases.
func NewSettlePurchasesCommand() SettlePurchasesCommand {
	return SettlePurchasesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SettlePurchasesCommand) Validate() error {
	return c.guard.Validate(ErrSettlePurchasesCommandIsNotConstructed)
}
