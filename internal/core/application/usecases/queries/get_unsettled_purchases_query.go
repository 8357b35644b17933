package queries

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"
	"purchasing/internal/pkg/guard"
)

var ErrGetUnsettledPurchasesQueryIsNotConstructed = errors.New(
	"GetUnsettledPurchasesQuery must be created via NewGetUnsettledPurchasesQuery constructor",
)

// GetUnsettledPurchasesQuery retrieves all purchases that have not been
// settled yet, covering both drafts and placed purchases awaiting the
// settlement job.
type GetUnsettledPurchasesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnsettledPurchasesQuery creates a query to retrieve unsettled purchases.
func NewGetUnsettledPurchasesQuery() GetUnsettledPurchasesQuery {
	return GetUnsettledPurchasesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnsettledPurchasesQueryIsNotConstructed if validation fails.
func (q GetUnsettledPurchasesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnsettledPurchasesQueryIsNotConstructed)
}

// GetUnsettledPurchasesQueryResponse represents purchase information in the
// read model. LineCount comes from an aggregate over the lines table.
type GetUnsettledPurchasesQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     purchase.Status
	LineCount  int
}
