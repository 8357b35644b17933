package kernel_test

import (
	"testing"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name        string
		amount      int64
		currency    string
		wantErr     bool
		wantAmount  int64
		wantCurr    string
		violatedBy  string
		violatedFor []validation.RuleKind
	}{
		{
			name:       "valid money",
			amount:     1999,
			currency:   "USD",
			wantAmount: 1999,
			wantCurr:   "USD",
		},
		{
			name:       "currency is normalized to upper case",
			amount:     100,
			currency:   "eur",
			wantAmount: 100,
			wantCurr:   "EUR",
		},
		{
			name:        "zero amount",
			amount:      0,
			currency:    "USD",
			wantErr:     true,
			violatedBy:  "amount",
			violatedFor: []validation.RuleKind{validation.MustBePositive},
		},
		{
			name:        "negative amount",
			amount:      -5,
			currency:    "USD",
			wantErr:     true,
			violatedBy:  "amount",
			violatedFor: []validation.RuleKind{validation.MustBePositive},
		},
		{
			name:        "empty currency",
			amount:      100,
			currency:    "",
			wantErr:     true,
			violatedBy:  "currency",
			violatedFor: []validation.RuleKind{validation.MustNotBeEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := kernel.NewMoney(tt.amount, tt.currency)

			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, money)

				var validationErr *validation.Error
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.violatedFor, validationErr.Kinds(tt.violatedBy))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAmount, money.Amount())
				assert.Equal(t, tt.wantCurr, money.Currency())
				assert.NoError(t, money.Validate())
			}
		})
	}

	t.Run("all violated attributes are reported together", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "")

		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"amount", "currency"}, validationErr.Attributes())
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("constructed money is valid", func(t *testing.T) {
		money, err := kernel.NewMoney(100, "USD")
		require.NoError(t, err)
		assert.NoError(t, money.Validate())
	})

	t.Run("zero value money is invalid", func(t *testing.T) {
		var money kernel.Money
		err := money.Validate()
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("returns a new value and leaves operands unchanged", func(t *testing.T) {
		a, err := kernel.NewMoney(100, "USD")
		require.NoError(t, err)
		b, err := kernel.NewMoney(250, "USD")
		require.NoError(t, err)

		sum, err := a.Add(b)
		require.NoError(t, err)

		assert.Equal(t, int64(350), sum.Amount())
		assert.Equal(t, int64(100), a.Amount())
		assert.Equal(t, int64(250), b.Amount())
	})

	t.Run("different currencies fail", func(t *testing.T) {
		a, err := kernel.NewMoney(100, "USD")
		require.NoError(t, err)
		b, err := kernel.NewMoney(100, "EUR")
		require.NoError(t, err)

		_, err = a.Add(b)
		assert.Equal(t, kernel.ErrCurrencyMismatch, err)
	})

	t.Run("unconstructed operand fails", func(t *testing.T) {
		a, err := kernel.NewMoney(100, "USD")
		require.NoError(t, err)
		var b kernel.Money

		_, err = a.Add(b)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_MultiplyBy(t *testing.T) {
	t.Run("scales the amount", func(t *testing.T) {
		price, err := kernel.NewMoney(500, "USD")
		require.NoError(t, err)

		total, err := price.MultiplyBy(3)
		require.NoError(t, err)

		assert.Equal(t, int64(1500), total.Amount())
		assert.Equal(t, int64(500), price.Amount())
	})

	t.Run("non-positive factor fails", func(t *testing.T) {
		price, err := kernel.NewMoney(500, "USD")
		require.NoError(t, err)

		_, err = price.MultiplyBy(0)

		var validationErr *validation.Error
		require.ErrorAs(t, err, &validationErr)
		assert.True(t, validationErr.Has("factor", validation.MustBePositive))
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, err := kernel.NewMoney(100, "USD")
	require.NoError(t, err)
	b, err := kernel.NewMoney(100, "USD")
	require.NoError(t, err)
	c, err := kernel.NewMoney(100, "EUR")
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestMoney_String(t *testing.T) {
	money, err := kernel.NewMoney(1999, "usd")
	require.NoError(t, err)

	assert.Equal(t, "1999 USD", money.String())
}
