package purchase

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/validation"
)

// ErrLineIsNotConstructed indicates that a Line was not created through the
// NewLine constructor.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an immutable entity representing one position of a purchase:
// a product, how many units of it, and the unit price.
//
// Invariants, enforced at construction through the validation gate:
//   - product must be present and non-empty
//   - quantity must be strictly positive
//   - price must be a properly constructed Money
//
// Lines are owned by exactly one Purchase. The owning purchase deep-copies
// lines on every derivation, so a Line held by one purchase version can
// never be observed changing through another.
type Line struct {
	// id uniquely identifies the line within its purchase
	id kernel.UUID

	// product names the purchased product
	product string

	// quantity is the number of units (positive)
	quantity int

	// price is the unit price
	price kernel.Money

	// guard ensures the line was properly constructed
	guard guard.ConstructorGuard
}

// NewLine creates a Line with validation. The product is taken as a pointer
// so an absent product is distinguishable from an empty one; both rules plus
// the quantity rule are evaluated in one pass and all violations are
// reported in a single aggregated error.
func NewLine(id kernel.UUID, product *string, quantity int, price kernel.Money) (*Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}

	if err := validation.Commit(
		validation.NotNil(validation.Named("product", product)),
		validation.NotEmpty(validation.Named("product", product)),
		validation.Positive(validation.Named("quantity", quantity)),
	); err != nil {
		return nil, err
	}

	return &Line{
		id:       id,
		product:  *product,
		quantity: quantity,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreLine reconstructs a Line from persistent storage, running the same
// gate as NewLine.
func RestoreLine(id kernel.UUID, product string, quantity int, price kernel.Money) (*Line, error) {
	return NewLine(id, &product, quantity, price)
}

// Validate checks that the Line was created through NewLine.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// IsEqual compares two lines by identity.
func (l *Line) IsEqual(other *Line) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// Product returns the product name.
func (l *Line) Product() string {
	return l.product
}

// Quantity returns the number of units.
func (l *Line) Quantity() int {
	return l.quantity
}

// Price returns the unit price.
func (l *Line) Price() kernel.Money {
	return l.price
}

// Total returns the line total, unit price times quantity.
func (l *Line) Total() (kernel.Money, error) {
	if err := l.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return l.price.MultiplyBy(int64(l.quantity))
}

// Clone returns a structurally identical copy of the line.
func (l *Line) Clone() *Line {
	clone := *l
	return &clone
}

// WithQuantity derives a new Line carrying the given quantity. The change
// runs through the validating constructor; the receiver is never modified.
func (l *Line) WithQuantity(quantity int) (*Line, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	product := l.product
	return NewLine(l.id, &product, quantity, l.price)
}
