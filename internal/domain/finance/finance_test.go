package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

func TestExchangeRate_BaseIsImmutable(t *testing.T) {
	base, err := NewBaseCurrency(valueobject.USD)
	require.NoError(t, err)
	assert.True(t, base.IsBase)
	assert.True(t, base.Rate.Equal(decimal.NewFromInt(1)))

	err = base.UpdateRate(decimal.NewFromFloat(36.5))
	require.ErrorIs(t, err, shared.ErrBaseRateImmutable)
	assert.True(t, base.Rate.Equal(decimal.NewFromInt(1)))
}

func TestExchangeRate_UpdateRate(t *testing.T) {
	rate, err := NewExchangeRate(valueobject.VES, decimal.NewFromFloat(36.5))
	require.NoError(t, err)

	require.NoError(t, rate.UpdateRate(decimal.NewFromFloat(40.25)))
	assert.True(t, rate.Rate.Equal(decimal.NewFromFloat(40.25)))

	require.Error(t, rate.UpdateRate(decimal.Zero))
	require.Error(t, rate.UpdateRate(decimal.NewFromInt(-1)))
}

func TestNewExchangeRate_Validation(t *testing.T) {
	_, err := NewExchangeRate("BOLIVAR", decimal.NewFromInt(1))
	require.Error(t, err)

	rate, err := NewExchangeRate("ves", decimal.NewFromInt(36))
	require.NoError(t, err)
	assert.Equal(t, valueobject.VES, rate.Currency)
}

func TestFormatControlNumber(t *testing.T) {
	assert.Equal(t, "00-00000001", FormatControlNumber(1))
	assert.Equal(t, "00-00000042", FormatControlNumber(42))
	assert.Equal(t, "00-12345678", FormatControlNumber(12345678))
}

func TestNewInvoice(t *testing.T) {
	t.Run("derives control number and total", func(t *testing.T) {
		invoice, err := NewInvoice(uuid.New(), 7, decimal.NewFromFloat(1022.404), decimal.NewFromFloat(163.58))
		require.NoError(t, err)

		assert.Equal(t, int64(7), invoice.Number)
		assert.Equal(t, "00-00000007", invoice.ControlNumber)
		assert.Equal(t, "1022.40", invoice.Subtotal.StringFixed(2))
		assert.Equal(t, "1185.98", invoice.Total.StringFixed(2))
		assert.False(t, invoice.IssuedAt.IsZero())
	})

	t.Run("rejects non-positive number", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), 0, decimal.NewFromInt(10), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects missing order", func(t *testing.T) {
		_, err := NewInvoice(uuid.Nil, 1, decimal.NewFromInt(10), decimal.Zero)
		require.Error(t, err)
	})
}
