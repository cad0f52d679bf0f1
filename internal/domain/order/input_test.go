package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCoerceQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"3", 3},
		{" 12 ", 12},
		{"abc", 0},
		{"3.5", 0},
		{"-4", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceQuantity(tt.in), "CoerceQuantity(%q)", tt.in)
	}
}

func TestCoerceRate_KeepsPriorOnFailure(t *testing.T) {
	rate, ok := CoerceRate("7.25")
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("7.25").Equal(rate))

	_, ok = CoerceRate("six percent")
	assert.False(t, ok)

	_, ok = CoerceRate("")
	assert.False(t, ok)

	_, ok = CoerceRate("-1")
	assert.False(t, ok)
}

func TestCoerceFee_ResetsToZeroOnFailure(t *testing.T) {
	assert.True(t, decimal.RequireFromString("55.50").Equal(CoerceFee("55.50")))
	assert.True(t, decimal.Zero.Equal(CoerceFee("forty")))
	assert.True(t, decimal.Zero.Equal(CoerceFee("")))
	assert.True(t, decimal.Zero.Equal(CoerceFee("-5")))
}

func TestFeeOnFulfillmentChange(t *testing.T) {
	min := decimal.RequireFromString("40.00")

	tests := []struct {
		name    string
		target  Fulfillment
		current string
		want    string
	}{
		{"delivery raises zero fee to minimum", FulfillmentDelivery, "0.00", "40.00"},
		{"delivery raises below-minimum fee", FulfillmentDelivery, "25.00", "40.00"},
		{"delivery keeps quoted fee at minimum", FulfillmentDelivery, "40.00", "40.00"},
		{"delivery keeps quoted fee above minimum", FulfillmentDelivery, "75.00", "75.00"},
		{"pickup zeroes any fee", FulfillmentPickup, "75.00", "0.00"},
		{"pickup zeroes zero fee", FulfillmentPickup, "0.00", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeeOnFulfillmentChange(tt.target, decimal.RequireFromString(tt.current), min)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestApplyTaxRateText(t *testing.T) {
	o := New(nil, testDefaults())

	o.ApplyTaxRateText("7.00")
	assert.True(t, decimal.RequireFromString("7.00").Equal(o.TaxRatePercent))

	// Invalid edits keep the previous rate.
	o.ApplyTaxRateText("oops")
	assert.True(t, decimal.RequireFromString("7.00").Equal(o.TaxRatePercent))
}

func TestApplyDeliveryFeeText(t *testing.T) {
	o := New(nil, testDefaults())

	o.ApplyDeliveryFeeText("52.00")
	assert.True(t, decimal.RequireFromString("52.00").Equal(o.DeliveryFee))

	// Invalid edits reset the fee to zero.
	o.ApplyDeliveryFeeText("oops")
	assert.True(t, decimal.Zero.Equal(o.DeliveryFee))
}
