package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/validation"
)

// ErrAddPurchaseLineCommandIsNotConstructed is returned when an
// AddPurchaseLineCommand bypassed its constructor.
var ErrAddPurchaseLineCommandIsNotConstructed = errors.New(
	"AddPurchaseLineCommand must be created via NewAddPurchaseLineCommand constructor",
)

// AddPurchaseLineCommand represents a request to add a line to a draft purchase.
// All line attributes are checked at once, so a request with a missing product,
// a non-positive quantity and a non-positive price reports all three problems
// in a single aggregated error.
type AddPurchaseLineCommand struct {
	purchaseID    kernel.UUID
	product       string
	quantity      int
	priceAmount   int64
	priceCurrency string

	guard guard.ConstructorGuard
}

// NewAddPurchaseLineCommand creates a command to add a line to a draft purchase.
func NewAddPurchaseLineCommand(
	purchaseID kernel.UUID,
	product *string,
	quantity int,
	priceAmount int64,
	priceCurrency string,
) (AddPurchaseLineCommand, error) {
	if err := purchaseID.Validate(); err != nil {
		return AddPurchaseLineCommand{}, err
	}

	if err := validation.Commit(
		validation.NotNil(validation.Named("product", product)),
		validation.NotEmpty(validation.Named("product", product)),
		validation.Positive(validation.Named("quantity", quantity)),
		validation.Positive(validation.Named("priceAmount", priceAmount)),
		validation.NotEmpty(validation.Named("priceCurrency", &priceCurrency)),
	); err != nil {
		return AddPurchaseLineCommand{}, err
	}

	return AddPurchaseLineCommand{
		purchaseID:    purchaseID,
		product:       *product,
		quantity:      quantity,
		priceAmount:   priceAmount,
		priceCurrency: priceCurrency,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPurchaseLineCommand) Validate() error {
	return c.guard.Validate(ErrAddPurchaseLineCommandIsNotConstructed)
}

// PurchaseID returns the target purchase ID.
func (c AddPurchaseLineCommand) PurchaseID() kernel.UUID {
	return c.purchaseID
}

// Product returns the product name for the new line.
func (c AddPurchaseLineCommand) Product() string {
	return c.product
}

// Quantity returns the quantity for the new line.
func (c AddPurchaseLineCommand) Quantity() int {
	return c.quantity
}

// PriceAmount returns the unit price amount in minor units.
func (c AddPurchaseLineCommand) PriceAmount() int64 {
	return c.priceAmount
}

// PriceCurrency returns the unit price currency code.
func (c AddPurchaseLineCommand) PriceCurrency() string {
	return c.priceCurrency
}
