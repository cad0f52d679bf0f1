package order

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceQuantity converts free-text quantity input to a non-negative
// integer. The presentation layer filters non-digit keystrokes before text
// reaches the core; anything malformed that still arrives degrades to 0
// rather than failing. Empty text means 0.
func CoerceQuantity(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// CoerceRate parses a percentage. ok is false when the text does not parse
// to a non-negative decimal; callers keep the previous rate in that case.
func CoerceRate(text string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// CoerceFee parses a monetary amount, yielding 0.00 on any parse failure or
// negative value. The reset-to-zero policy intentionally differs from
// CoerceRate's keep-prior policy.
func CoerceFee(text string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FeeOnFulfillmentChange computes the delivery fee after a fulfillment
// toggle. Switching to delivery raises a below-minimum fee to minimum but
// leaves an operator-quoted fee at or above minimum untouched; switching to
// pickup always yields 0.00.
func FeeOnFulfillmentChange(target Fulfillment, currentFee, minimum decimal.Decimal) decimal.Decimal {
	if target != FulfillmentDelivery {
		return decimal.Zero
	}
	if currentFee.LessThan(minimum) {
		return minimum
	}
	return currentFee
}

// ApplyTaxRateText applies a raw tax-rate edit, keeping the prior rate when
// the text does not parse.
func (o *Order) ApplyTaxRateText(text string) {
	if rate, ok := CoerceRate(text); ok {
		o.TaxRatePercent = rate
	}
}

// ApplyDeliveryFeeText applies a raw delivery-fee edit, resetting the fee to
// zero when the text does not parse.
func (o *Order) ApplyDeliveryFeeText(text string) {
	o.DeliveryFee = CoerceFee(text)
}
