package commands

import (
	"context"
)

// PlacePurchaseCommandHandler handles placing a draft purchase.
// Derives a Placed copy of the loaded purchase and persists it.
type PlacePurchaseCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewPlacePurchaseCommandHandler creates a handler for placing purchases.
func NewPlacePurchaseCommandHandler(uowFactory PurchaseUoWFactory) PlacePurchaseCommandHandler {
	return PlacePurchaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the place command.
// Placing an empty purchase fails with purchase.ErrPurchaseHasNoLines;
// placing a non-draft purchase fails with a status error.
func (h *PlacePurchaseCommandHandler) Handle(ctx context.Context, cmd PlacePurchaseCommand) error {
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

	purchaseRepo := uow.PurchaseRepository()
	current, err := purchaseRepo.Get(ctx, cmd.PurchaseID())
	if err != nil {
		return err
	}

	placed, err := current.Place()
	if err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, placed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
