package app

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := &Config{Order: OrderConfig{TaxRatePercent: "6.00", DeliveryMinimum: "40.00"}}

	d, err := cfg.Defaults()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6.00").Equal(d.TaxRatePercent))
	assert.True(t, decimal.RequireFromString("40.00").Equal(d.DeliveryMinimum))
	assert.Equal(t, order.DefaultNotes, d.Notes)
}

func TestConfig_DefaultsInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  OrderConfig
	}{
		{"bad rate", OrderConfig{TaxRatePercent: "six", DeliveryMinimum: "40.00"}},
		{"negative rate", OrderConfig{TaxRatePercent: "-1", DeliveryMinimum: "40.00"}},
		{"bad minimum", OrderConfig{TaxRatePercent: "6.00", DeliveryMinimum: "cheap"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Config{Order: tt.cfg}).Defaults()
			assert.Error(t, err)
		})
	}
}
