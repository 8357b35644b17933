package ports

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"
)

// PurchaseRepository defines the persistence contract for purchase aggregates.
type PurchaseRepository interface {
	// Add persists a new purchase aggregate with its lines.
	Add(ctx context.Context, aggregate *purchase.Purchase) error

	// Update persists a derived version of an existing purchase,
	// replacing its line collection.
	Update(ctx context.Context, aggregate *purchase.Purchase) error

	// Get retrieves a purchase aggregate by its unique identifier,
	// including its lines in order.
	Get(ctx context.Context, id kernel.UUID) (*purchase.Purchase, error)

	// GetAllInPlacedStatus retrieves all purchases awaiting settlement.
	// Used by the settlement workflow.
	GetAllInPlacedStatus(ctx context.Context) ([]*purchase.Purchase, error)
}
