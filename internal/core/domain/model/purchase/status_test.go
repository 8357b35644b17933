package purchase_test

import (
	"testing"

	"purchasing/internal/core/domain/model/purchase"
	"purchasing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  purchase.Status
		wantErr bool
	}{
		{name: "draft is valid", status: purchase.Draft},
		{name: "placed is valid", status: purchase.Placed},
		{name: "settled is valid", status: purchase.Settled},
		{name: "unknown is invalid", status: purchase.Unknown, wantErr: true},
		{name: "out of range is invalid", status: purchase.Status(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", purchase.Draft.String())
	assert.Equal(t, "Placed", purchase.Placed.String())
	assert.Equal(t, "Settled", purchase.Settled.String())
	assert.Equal(t, "Unknown", purchase.Unknown.String())
	assert.Equal(t, "Unknown", purchase.Status(42).String())
}

func TestStatus_Place(t *testing.T) {
	t.Run("draft can be placed", func(t *testing.T) {
		status, err := purchase.Draft.Place()
		require.NoError(t, err)
		assert.Equal(t, purchase.Placed, status)
	})

	for _, status := range []purchase.Status{purchase.Placed, purchase.Settled, purchase.Unknown} {
		t.Run(status.String()+" cannot be placed", func(t *testing.T) {
			_, err := status.Place()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestStatus_Settle(t *testing.T) {
	t.Run("placed can be settled", func(t *testing.T) {
		status, err := purchase.Placed.Settle()
		require.NoError(t, err)
		assert.Equal(t, purchase.Settled, status)
	})

	for _, status := range []purchase.Status{purchase.Draft, purchase.Settled, purchase.Unknown} {
		t.Run(status.String()+" cannot be settled", func(t *testing.T) {
			_, err := status.Settle()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestStatus_ValidateAmend(t *testing.T) {
	require.NoError(t, purchase.Draft.ValidateAmend())

	for _, status := range []purchase.Status{purchase.Placed, purchase.Settled, purchase.Unknown} {
		t.Run(status.String()+" is not amendable", func(t *testing.T) {
			assert.Error(t, status.ValidateAmend())
		})
	}
}
