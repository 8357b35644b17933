package commands

import (
	"context"
)

// SettlePurchasesCommandHandler settles every placed purchase in one
// transaction. Each settled purchase is a derived copy; the loaded batch is
// left untouched if any settlement fails.
type SettlePurchasesCommandHandler struct {
	uowFactory PurchaseUoWFactory
}

// NewSettlePurchasesCommandHandler creates a handler for batch settlement.
func NewSettlePurchasesCommandHandler(uowFactory PurchaseUoWFactory) SettlePurchasesCommandHandler {
	return SettlePurchasesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch settlement command.
// Returns ErrNoPlacedPurchasesFound when there is nothing to settle.
func (h *SettlePurchasesCommandHandler) Handle(ctx context.Context, cmd SettlePurchasesCommand) error {
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
	placed, err := purchaseRepo.GetAllInPlacedStatus(ctx)
	if err != nil {
		return err
	}

	if len(placed) == 0 {
		return ErrNoPlacedPurchasesFound
	}

	for _, p := range placed {
		settled, settleErr := p.Settle()
		if settleErr != nil {
			return settleErr
		}

		if err = purchaseRepo.Update(ctx, settled); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
