package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Payment methods accepted by CalculatePaymentWithFee. Matching is
// case-insensitive.
const (
	PaymentCredit = "CREDIT"
	PaymentDebit  = "DEBIT"
	PaymentPayPal = "PAYPAL"
)

var paymentFeeRates = map[string]float64{
	PaymentCredit: 0.03,
	PaymentDebit:  0.01,
	PaymentPayPal: 0.035,
}

// FeeRate returns the surcharge for method and whether the method is known.
func FeeRate(method string) (float64, bool) {
	rate, ok := paymentFeeRates[strings.ToUpper(method)]
	return rate, ok
}

// CalculatePaymentWithFee returns amount * (1 + fee rate). Unknown methods
// carry no fee.
func CalculatePaymentWithFee(amount float64, method string) float64 {
	rate, ok := FeeRate(method)
	if !ok {
		return amount
	}
	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(rate))
	return decimal.NewFromFloat(amount).Mul(multiplier).InexactFloat64()
}
