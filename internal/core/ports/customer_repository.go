// Package ports defines the persistence contracts of the purchasing core.
// Adapters implement these interfaces; the application layer depends only on
// the abstractions.
package ports

import (
	"context"

	"purchasing/internal/core/domain/model/customer"
	"purchasing/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists a derived version of an existing customer.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
