// Package order holds the wholesale order aggregate: one line per catalog
// variant, customer metadata, tax/fulfillment selections, and the derived
// totals. All monetary math is exact decimal; rounding happens only when a
// value is formatted for display or export.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/varners-greenhouse/order-form/internal/domain/catalog"
)

// PaymentTerms selects how the customer settles the order.
type PaymentTerms string

const (
	PaymentCOD   PaymentTerms = "C.O.D."
	PaymentNet30 PaymentTerms = "NET 30"
)

// TaxStatus reports whether the purchase is subject to sales tax.
type TaxStatus string

const (
	TaxStatusTaxable TaxStatus = "PAYS SALES TAX"
	TaxStatusExempt  TaxStatus = "SALES TAX EXEMPT"
)

// Fulfillment is how the order reaches the customer.
type Fulfillment string

const (
	FulfillmentDelivery Fulfillment = "DELIVERY"
	FulfillmentPickup   Fulfillment = "PICK UP"
)

// DefaultNotes is the combo-request placeholder printed on the paper form.
const DefaultNotes = "If you want specific color combos, please request on a separate document and include it with this order; otherwise we'll provide the best-looking mixed combos."

// Line binds an entered quantity to one catalog variant. A line is active,
// and therefore part of totals and exports, iff Quantity > 0.
type Line struct {
	Variant  catalog.Variant
	Quantity int
}

// Total returns Quantity times the variant's unit price, exact.
func (l Line) Total() decimal.Decimal {
	return l.Variant.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Active reports whether the line contributes to totals and exports.
func (l Line) Active() bool {
	return l.Quantity > 0
}

// Defaults carries the session configuration applied to a new order.
// Tests vary these independently of the global config.
type Defaults struct {
	TaxRatePercent  decimal.Decimal
	DeliveryMinimum decimal.Decimal
	Notes           string
}

// Order is the aggregate for a single entry session. It owns one Line per
// catalog variant for its whole lifetime; lines are mutated, never added or
// removed. There is exactly one writer (the input boundary), so in-place
// mutation is safe.
type Order struct {
	Reference      string
	CreatedAt      time.Time
	BusinessName   string
	ContactName    string
	CellPhone      string
	BusinessPhone  string
	PaymentTerms   PaymentTerms
	TaxStatus      TaxStatus
	TaxRatePercent decimal.Decimal
	Fulfillment    Fulfillment
	DeliveryFee    decimal.Decimal
	Notes          string
	Lines          []Line

	defaults Defaults
}

// New creates an order with one zero-quantity line per variant and the
// session defaults applied.
func New(variants []catalog.Variant, d Defaults) *Order {
	o := &Order{
		Lines:    make([]Line, len(variants)),
		defaults: d,
	}
	for i, v := range variants {
		o.Lines[i] = Line{Variant: v}
	}
	o.applyDefaults()
	return o
}

func (o *Order) applyDefaults() {
	o.Reference = uuid.New().String()
	o.CreatedAt = time.Now()
	o.BusinessName = ""
	o.ContactName = ""
	o.CellPhone = ""
	o.BusinessPhone = ""
	o.PaymentTerms = PaymentCOD
	o.TaxStatus = TaxStatusTaxable
	o.TaxRatePercent = o.defaults.TaxRatePercent
	o.Fulfillment = FulfillmentPickup
	o.DeliveryFee = decimal.Zero
	o.Notes = o.defaults.Notes
}

// Reset returns every field to its default and zeroes all quantities,
// starting a fresh order under a new reference. The confirmation gate
// belongs to the presentation layer.
func (o *Order) Reset() {
	for i := range o.Lines {
		o.Lines[i].Quantity = 0
	}
	o.applyDefaults()
}

// SetQuantity sets the quantity of the line at index. Out-of-range indexes
// and negative quantities are ignored; quantity entry never fails.
func (o *Order) SetQuantity(index, qty int) {
	if index < 0 || index >= len(o.Lines) || qty < 0 {
		return
	}
	o.Lines[index].Quantity = qty
}

// ActiveLines returns the lines with quantity > 0, in catalog order.
func (o *Order) ActiveLines() []Line {
	var out []Line
	for _, l := range o.Lines {
		if l.Active() {
			out = append(out, l)
		}
	}
	return out
}

// SetFulfillment switches the fulfillment mode and applies the delivery-fee
// assist: switching to delivery raises a below-minimum fee to the configured
// minimum, switching to pickup zeroes the fee.
func (o *Order) SetFulfillment(target Fulfillment) {
	o.DeliveryFee = FeeOnFulfillmentChange(target, o.DeliveryFee, o.defaults.DeliveryMinimum)
	o.Fulfillment = target
}
