package kernel

import (
	"fmt"
	"strings"

	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/validation"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// ErrCurrencyMismatch is returned by arithmetic on amounts of different currencies.
var ErrCurrencyMismatch = errs.NewValueIsInvalidError("currency")

// Money is an immutable value object representing a positive amount of a
// single currency. The amount is kept in minor units (cents, kopecks) to
// avoid floating point drift. The zero value is invalid and fails Validate;
// instances are created through NewMoney, which routes both fields through
// the validation gate:
//
//	price, err := kernel.NewMoney(1999, "USD")
//	if err != nil {
//	    // *validation.Error listing every violated attribute
//	}
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units and an ISO
// 4217 currency code. The amount must be strictly positive and the currency
// non-empty; both rules are evaluated and all violations are reported in one
// aggregated error. The currency code is normalized to upper case.
func NewMoney(amount int64, currency string) (Money, error) {
	if err := validation.Commit(
		validation.Positive(validation.Named("amount", amount)),
		validation.NotEmpty(validation.Named("currency", &currency)),
	); err != nil {
		return Money{}, err
	}

	return Money{
		amount:   amount,
		currency: strings.ToUpper(currency),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Money was created through NewMoney.
// The zero value fails with ErrMoneyIsNotConstructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the upper-case currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsEqual reports whether two amounts have the same value and currency.
// Both operands must be properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m == other, nil
}

// Add returns a new Money carrying the sum of both amounts. The operands are
// not modified. Adding amounts of different currencies fails with
// ErrCurrencyMismatch.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return NewMoney(m.amount+other.amount, m.currency)
}

// MultiplyBy returns a new Money scaled by factor. The factor must be
// strictly positive; the result passes through the same constructor gate as
// any other Money.
func (m Money) MultiplyBy(factor int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := validation.Commit(
		validation.Positive(validation.Named("factor", factor)),
	); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount*factor, m.currency)
}

// String returns a representation like "1999 USD", useful in logs.
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
