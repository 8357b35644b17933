package queries

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnsettledPurchasesQueryHandler retrieves purchases awaiting settlement
// from the database. Filters out settled purchases to provide open workload
// visibility.
type GetUnsettledPurchasesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnsettledPurchasesQueryHandler creates a handler for unsettled purchase queries.
// Requires a GORM database connection for query execution.
func NewGetUnsettledPurchasesQueryHandler(db *gorm.DB) GetUnsettledPurchasesQueryHandler {
	return GetUnsettledPurchasesQueryHandler{db: db}
}

// Handle executes the query to retrieve all unsettled purchases.
// Returns purchases in Draft or Placed status, excluding settled ones.
// Results are sorted by purchase ID for consistent output.
func (h GetUnsettledPurchasesQueryHandler) Handle(
	ctx context.Context,
	query GetUnsettledPurchasesQuery,
) ([]GetUnsettledPurchasesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	purchases := make([]GetUnsettledPurchasesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.customer_id,
			p.status,
			COUNT(l.id)
		FROM purchases p
		LEFT JOIN purchase_lines l ON l.purchase_id = p.id
		WHERE p.status != ?
		GROUP BY p.id, p.customer_id, p.status
		ORDER BY p.id
	`, purchase.Settled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var purchaseResp GetUnsettledPurchasesQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&purchaseResp.Status,
			&purchaseResp.LineCount,
		)
		if err != nil {
			return nil, err
		}

		purchaseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		purchaseResp.ID = purchaseID

		ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		purchaseResp.CustomerID = ownerID
		purchases = append(purchases, purchaseResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}
