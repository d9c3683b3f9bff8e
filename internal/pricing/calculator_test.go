package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []LineItem {
	return []LineItem{
		NewLineItem(10, 2),
		NewLineItem(15, 1),
	}
}

func TestQuote_Breakdown(t *testing.T) {
	b := Quote(sampleItems(), 0.1, 0.08, 5.99, CurrencyUSD)

	assert.Equal(t, 35.0, b.Subtotal)
	assert.Equal(t, 3.5, b.DiscountAmount)
	assert.Equal(t, 31.5, b.AfterDiscount)
	assert.Equal(t, 2.52, b.TaxAmount)
	assert.Equal(t, 34.02, b.BeforeShipping)
	assert.Equal(t, 40.01, b.WithShipping)
	assert.Equal(t, 1.0, b.CurrencyRate)
	assert.Equal(t, 40.01, b.Total)
}

func TestCalculateTotal_Currencies(t *testing.T) {
	tests := []struct {
		currency string
		want     float64
	}{
		{CurrencyUSD, 40.01},
		{CurrencyEUR, 34.01}, // 34.0085
		{CurrencyGBP, 30.01}, // 30.0075
		{"JPY", 40.01},
		{"", 40.01},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotal(sampleItems(), 0.1, 0.08, 5.99, tt.currency))
		})
	}
}

func TestSubtotal_SkipsIncompleteItems(t *testing.T) {
	price := 4.0
	qty := 3.0
	items := []LineItem{
		NewLineItem(2.5, 2),
		{Price: &price},
		{Quantity: &qty},
		{},
	}
	assert.Equal(t, 5.0, Subtotal(items))
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestRateGating(t *testing.T) {
	assert.Equal(t, 0.0, DiscountAmount(100, 0))
	assert.Equal(t, 0.0, DiscountAmount(100, 1))
	assert.Equal(t, 0.0, DiscountAmount(100, 1.5))
	assert.Equal(t, 0.0, DiscountAmount(100, -0.2))
	assert.Equal(t, 25.0, DiscountAmount(100, 0.25))

	assert.Equal(t, 0.0, TaxAmount(100, 1))
	assert.Equal(t, 8.0, TaxAmount(100, 0.08))
}

func TestApplyShipping(t *testing.T) {
	assert.Equal(t, 10.0, ApplyShipping(10, 0))
	assert.Equal(t, 10.0, ApplyShipping(10, -3))
	assert.Equal(t, 15.5, ApplyShipping(10, 5.5))
}

func TestCurrencyRate_FallsBackToUSD(t *testing.T) {
	assert.Equal(t, 0.85, CurrencyRate(CurrencyEUR))
	assert.Equal(t, 0.75, CurrencyRate(CurrencyGBP))
	assert.Equal(t, 1.0, CurrencyRate("usd"))
	assert.Equal(t, 85.0, ConvertCurrency(100, CurrencyEUR))
}

func TestRoundToCents_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.01, RoundToCents(1.005))
	assert.Equal(t, -1.01, RoundToCents(-1.005))
	assert.Equal(t, 0.13, RoundToCents(0.125))
	assert.Equal(t, 2.0, RoundToCents(1.999))
}

func TestCalculatePaymentWithFee(t *testing.T) {
	assert.Equal(t, 103.0, CalculatePaymentWithFee(100, "credit"))
	assert.Equal(t, 101.0, CalculatePaymentWithFee(100, "DEBIT"))
	assert.Equal(t, 103.5, CalculatePaymentWithFee(100, "PayPal"))
	assert.Equal(t, 100.0, CalculatePaymentWithFee(100, "unknown"))
	assert.Equal(t, 0.0, CalculatePaymentWithFee(0, "credit"))

	_, ok := FeeRate("cash")
	assert.False(t, ok)
}
