package commands

import (
	"context"
)

// RenameCustomerCommandHandler handles customer renaming.
// Loads the current customer, derives a renamed copy through the aggregate's
// validating WithName operation and persists the result. The loaded instance
// is never mutated in place.
type RenameCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRenameCustomerCommandHandler creates a handler for customer renaming.
func NewRenameCustomerCommandHandler(uowFactory CustomerUoWFactory) RenameCustomerCommandHandler {
	return RenameCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rename command.
// Returns errs.ObjectNotFoundError when the customer does not exist.
func (h *RenameCustomerCommandHandler) Handle(ctx context.Context, cmd RenameCustomerCommand) error {
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
	current, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	renamed, err := current.WithName(cmd.Name())
	if err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, renamed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
