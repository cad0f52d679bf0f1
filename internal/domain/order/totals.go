package order

import (
	"github.com/shopspring/decimal"

	"github.com/varners-greenhouse/order-form/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// Totals holds the derived monetary fields of an order. They are never
// stored on the aggregate; callers recompute after every mutation so a
// stale value can never be read.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Delivery decimal.Decimal
	Total    decimal.Decimal
}

// Recompute derives the totals from the order's current fields. It is pure
// over the order state, idempotent, and never fails: subtotal sums the
// active lines, tax applies only under taxable status, and the delivery fee
// contributes only under delivery fulfillment.
func (o *Order) Recompute() Totals {
	subtotal := decimal.Zero
	for _, l := range o.Lines {
		if l.Active() {
			subtotal = subtotal.Add(l.Total())
		}
	}

	tax := decimal.Zero
	if o.TaxStatus == TaxStatusTaxable {
		tax = subtotal.Mul(o.TaxRatePercent).Div(hundred)
	}

	delivery := decimal.Zero
	if o.Fulfillment == FulfillmentDelivery {
		delivery = o.DeliveryFee
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Delivery: delivery,
		Total:    subtotal.Add(tax).Add(delivery),
	}
}

// DisplayTotals is the $-formatted rendition of Totals for live binding.
type DisplayTotals struct {
	Subtotal string
	Tax      string
	Delivery string
	Total    string
}

// Display formats the totals for the live display surface.
func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal: money.Display(t.Subtotal),
		Tax:      money.Display(t.Tax),
		Delivery: money.Display(t.Delivery),
		Total:    money.Display(t.Total),
	}
}
