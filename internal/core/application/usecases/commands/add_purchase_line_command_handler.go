package commands

import (
	"context"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"
)

// AddPurchaseLineCommandHandler handles adding a line to a draft purchase.
// Loads the purchase, derives a copy holding the new line through the
// aggregate's WithLine operation and persists the derived copy.
type AddPurchaseLineCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewAddPurchaseLineCommandHandler creates a handler for adding purchase lines.
func NewAddPurchaseLineCommandHandler(uowFactory PurchaseUoWFactory) AddPurchaseLineCommandHandler {
	return AddPurchaseLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add line command.
// Returns errs.ObjectNotFoundError when the purchase does not exist and a
// status error when the purchase is no longer in Draft.
func (h *AddPurchaseLineCommandHandler) Handle(ctx context.Context, cmd AddPurchaseLineCommand) error {
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

	price, err := kernel.NewMoney(cmd.PriceAmount(), cmd.PriceCurrency())
	if err != nil {
		return err
	}

	product := cmd.Product()
	line, err := purchase.NewLine(kernel.NewUUID(), &product, cmd.Quantity(), price)
	if err != nil {
		return err
	}

	amended, err := current.WithLine(line)
	if err != nil {
		return err
	}

	if err = purchaseRepo.Update(ctx, amended); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
