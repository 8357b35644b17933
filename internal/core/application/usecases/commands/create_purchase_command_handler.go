package commands

import (
	"context"

	"purchasing/internal/core/domain/model/purchase"
)

// CreatePurchaseCommandHandler handles draft purchase creation.
// Verifies the owning customer exists before opening the purchase, so both
// repositories are accessed within a single transaction.
type CreatePurchaseCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreatePurchaseCommandHandler creates a handler for draft purchase creation.
// Requires a UoWFactory because the handler touches both aggregates.
func NewCreatePurchaseCommandHandler(uowFactory UoWFactory) CreatePurchaseCommandHandler {
	return CreatePurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase creation command.
// Returns errs.ObjectNotFoundError when the customer does not exist.
func (h *CreatePurchaseCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	newPurchase, err := purchase.NewPurchase(cmd.PurchaseID(), cmd.CustomerID())
	if err != nil {
		return err
	}

	purchaseRepo := uow.PurchaseRepository()
	if err = purchaseRepo.Add(ctx, newPurchase); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
