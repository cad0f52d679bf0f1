package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"10.3", "$10.30"},
		{"54.59", "$54.59"},
		{"1234.56", "$1,234.56"},
		{"1234567.891", "$1,234,567.89"},
	}
	for _, tt := range tests {
		got := Display(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "Display(%s)", tt.in)
	}
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "0.00", Plain(decimal.Zero))
	assert.Equal(t, "10.30", Plain(decimal.RequireFromString("10.3")))
	assert.Equal(t, "1234.56", Plain(decimal.RequireFromString("1234.56")))
}
