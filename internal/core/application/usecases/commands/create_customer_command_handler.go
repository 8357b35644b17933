package commands

import (
	"context"

	"purchasing/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer registration.
// Builds the customer aggregate through its validating constructor and persists it
// within a transaction.
//
// Example:
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	name := "Alice Johnson"
//	cmd, _ := NewCreateCustomerCommand(&name, 34)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("customer creation failed: %w", err)
//	}
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command.
// Uses transaction to ensure the customer is properly persisted or rolled back on error.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	name := cmd.Name()
	newCustomer, err := customer.NewCustomer(cmd.CustomerID(), &name, cmd.Age())
	if err != nil {
		return err
	}

	customerRepo := uow.CustomerRepository()
	if err = customerRepo.Add(ctx, newCustomer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
