// Package pricing computes order totals and payment surcharges.
//
// Every stage of the total pipeline is exported on its own so callers can
// show intermediate amounts. Arithmetic runs on decimal values and results
// are converted back to float64 at the boundary.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Currency codes with a known conversion rate.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"
)

const centsPlaces = 2

var currencyRates = map[string]float64{
	CurrencyUSD: 1.0,
	CurrencyEUR: 0.85,
	CurrencyGBP: 0.75,
}

// LineItem is one entry of an order. A nil Price or Quantity makes the item
// contribute nothing to the subtotal.
type LineItem struct {
	Price    *float64 `json:"price" yaml:"price"`
	Quantity *float64 `json:"quantity" yaml:"quantity"`
}

// NewLineItem returns a LineItem with both fields set.
func NewLineItem(price, quantity float64) LineItem {
	return LineItem{Price: &price, Quantity: &quantity}
}

// Breakdown holds every intermediate amount of CalculateTotal.
type Breakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	AfterDiscount  float64 `json:"after_discount"`
	TaxAmount      float64 `json:"tax_amount"`
	BeforeShipping float64 `json:"before_shipping"`
	WithShipping   float64 `json:"with_shipping"`
	CurrencyRate   float64 `json:"currency_rate"`
	Total          float64 `json:"total"`
}

// Subtotal sums price * quantity over items.
func Subtotal(items []LineItem) float64 {
	return subtotal(items).InexactFloat64()
}

// DiscountAmount returns amount * rate when 0 < rate < 1, and 0 otherwise.
func DiscountAmount(amount, rate float64) float64 {
	return fraction(decimal.NewFromFloat(amount), rate).InexactFloat64()
}

// TaxAmount is gated the same way as DiscountAmount.
func TaxAmount(amount, rate float64) float64 {
	return fraction(decimal.NewFromFloat(amount), rate).InexactFloat64()
}

// ApplyShipping adds shipping only when it is positive.
func ApplyShipping(amount, shipping float64) float64 {
	return withShipping(decimal.NewFromFloat(amount), shipping).InexactFloat64()
}

// CurrencyRate returns the conversion rate for code, falling back to USD.
func CurrencyRate(code string) float64 {
	if rate, ok := currencyRates[code]; ok {
		return rate
	}
	return currencyRates[CurrencyUSD]
}

// ConvertCurrency converts a USD amount into code.
func ConvertCurrency(amount float64, code string) float64 {
	return convert(decimal.NewFromFloat(amount), code).InexactFloat64()
}

// RoundToCents rounds half away from zero to two decimal places. Rounding is
// done on the decimal value of amount, so 1.005 becomes 1.01; scaling the
// float by 100 first would give 1.00 because 1.005*100 is 100.49999999999999.
func RoundToCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(centsPlaces).InexactFloat64()
}

// CalculateTotal runs the full pipeline and returns the rounded total.
func CalculateTotal(items []LineItem, discountRate, taxRate, shippingCost float64, currency string) float64 {
	return Quote(items, discountRate, taxRate, shippingCost, currency).Total
}

// Quote runs the full pipeline and returns every intermediate amount.
func Quote(items []LineItem, discountRate, taxRate, shippingCost float64, currency string) Breakdown {
	sub := subtotal(items)
	discount := fraction(sub, discountRate)
	afterDiscount := sub.Sub(discount)
	tax := fraction(afterDiscount, taxRate)
	beforeShipping := afterDiscount.Add(tax)
	shipped := withShipping(beforeShipping, shippingCost)
	total := convert(shipped, currency).Round(centsPlaces)

	return Breakdown{
		Subtotal:       sub.InexactFloat64(),
		DiscountAmount: discount.InexactFloat64(),
		AfterDiscount:  afterDiscount.InexactFloat64(),
		TaxAmount:      tax.InexactFloat64(),
		BeforeShipping: beforeShipping.InexactFloat64(),
		WithShipping:   shipped.InexactFloat64(),
		CurrencyRate:   CurrencyRate(currency),
		Total:          total.InexactFloat64(),
	}
}

func subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if item.Price == nil || item.Quantity == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*item.Price).Mul(decimal.NewFromFloat(*item.Quantity)))
	}
	return sum
}

func fraction(amount decimal.Decimal, rate float64) decimal.Decimal {
	if !isFractionalRate(rate) {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromFloat(rate))
}

func withShipping(amount decimal.Decimal, shipping float64) decimal.Decimal {
	if shipping <= 0 {
		return amount
	}
	return amount.Add(decimal.NewFromFloat(shipping))
}

func convert(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(CurrencyRate(code)))
}

func isFractionalRate(rate float64) bool {
	return rate > 0 && rate < 1
}
