package purchase_test

import (
	"testing"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchase"
	"purchasing/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func mustMoney(t *testing.T, amount int64, currency string) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(amount, currency)
	require.NoError(t, err)
	return money
}

func mustLine(t *testing.T, product string, quantity int, price kernel.Money) *purchase.Line {
	t.Helper()
	line, err := purchase.NewLine(kernel.NewUUID(), &product, quantity, price)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	price := func(t *testing.T) kernel.Money { return mustMoney(t, 500, "USD") }

	tests := []struct {
		name       string
		product    *string
		quantity   int
		wantErr    bool
		attributes []string
	}{
		{
			name:     "valid line",
			product:  strPtr("Coffee beans"),
			quantity: 2,
		},
		{
			name:       "absent product",
			product:    nil,
			quantity:   2,
			wantErr:    true,
			attributes: []string{"product"},
		},
		{
			name:       "empty product",
			product:    strPtr(""),
			quantity:   2,
			wantErr:    true,
			attributes: []string{"product"},
		},
		{
			name:       "non-positive quantity",
			product:    strPtr("Coffee beans"),
			quantity:   0,
			wantErr:    true,
			attributes: []string{"quantity"},
		},
		{
			name:       "all failing attributes reported together",
			product:    nil,
			quantity:   -3,
			wantErr:    true,
			attributes: []string{"product", "quantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := purchase.NewLine(kernel.NewUUID(), tt.product, tt.quantity, price(t))

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, line)

				var validationErr *validation.Error
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.attributes, validationErr.Attributes())
			} else {
				require.NoError(t, err)
				assert.Equal(t, *tt.product, line.Product())
				assert.Equal(t, tt.quantity, line.Quantity())
				assert.NoError(t, line.Validate())
			}
		})
	}

	t.Run("absent product violates both null and empty rules", func(t *testing.T) {
		_, err := purchase.NewLine(kernel.NewUUID(), nil, 1, price(t))

		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t,
			[]validation.RuleKind{validation.MustNotBeEmpty, validation.MustNotBeNull},
			validationErr.Kinds("product"))
	})

	t.Run("unconstructed price fails", func(t *testing.T) {
		var price kernel.Money

		_, err := purchase.NewLine(kernel.NewUUID(), strPtr("Coffee beans"), 1, price)

		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestLine_Total(t *testing.T) {
	line := mustLine(t, "Coffee beans", 3, mustMoney(t, 500, "USD"))

	total, err := line.Total()
	require.NoError(t, err)

	assert.Equal(t, int64(1500), total.Amount())
	assert.Equal(t, "USD", total.Currency())
}

func TestLine_WithQuantity(t *testing.T) {
	t.Run("derives a new line and leaves the source unchanged", func(t *testing.T) {
		original := mustLine(t, "Coffee beans", 2, mustMoney(t, 500, "USD"))

		derived, err := original.WithQuantity(5)
		require.NoError(t, err)

		assert.Equal(t, 2, original.Quantity())
		assert.Equal(t, 5, derived.Quantity())
		assert.True(t, original.IsEqual(derived))
		assert.NotSame(t, original, derived)
	})

	t.Run("re-runs constructor validation", func(t *testing.T) {
		original := mustLine(t, "Coffee beans", 2, mustMoney(t, 500, "USD"))

		_, err := original.WithQuantity(0)

		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.True(t, validationErr.Has("quantity", validation.MustBePositive))
		assert.Equal(t, 2, original.Quantity())
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("nil line", func(t *testing.T) {
		var line *purchase.Line
		assert.Equal(t, purchase.ErrLineIsNotConstructed, line.Validate())
	})

	t.Run("zero value line", func(t *testing.T) {
		var line purchase.Line
		assert.Equal(t, purchase.ErrLineIsNotConstructed, line.Validate())
	})
}
