package export

import (
	"time"

	"github.com/go-faster/jx"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
	"github.com/varners-greenhouse/order-form/pkg/money"
)

// JSONRecord renders the record export as a JSON object with the same
// content as the CSV record. Monetary values are plain two-decimal strings
// so no precision is lost to float encoding.
func JSONRecord(o *order.Order, now time.Time) ([]byte, error) {
	lines := o.ActiveLines()
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	totals := o.Recompute()

	var e jx.Encoder
	e.SetIdent(2)
	e.ObjStart()

	for _, row := range metadataRows(o, now, totals) {
		e.FieldStart(jsonKey(row[0]))
		e.Str(row[1])
	}

	e.FieldStart("lines")
	e.ArrStart()
	for _, l := range lines {
		e.ObjStart()
		e.FieldStart("group")
		e.Str(l.Variant.Group)
		e.FieldStart("item")
		e.Str(l.Variant.Name)
		e.FieldStart("qty")
		e.Int(l.Quantity)
		e.FieldStart("unit_price")
		e.Str(money.Plain(l.Variant.UnitPrice))
		e.FieldStart("line_total")
		e.Str(money.Plain(l.Total()))
		e.ObjEnd()
	}
	e.ArrEnd()

	e.FieldStart("totals")
	e.ObjStart()
	e.FieldStart("subtotal")
	e.Str(money.Plain(totals.Subtotal))
	e.FieldStart("sales_tax")
	e.Str(money.Plain(totals.Tax))
	e.FieldStart("delivery")
	e.Str(money.Plain(totals.Delivery))
	e.FieldStart("total")
	e.Str(money.Plain(totals.Total))
	e.ObjEnd()

	e.ObjEnd()
	return e.Bytes(), nil
}

// WriteJSONRecord renders the JSON record and writes it atomically to path.
func WriteJSONRecord(o *order.Order, now time.Time, path string) error {
	data, err := JSONRecord(o, now)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// jsonKey maps a metadata display key to its snake_case JSON field name.
func jsonKey(display string) string {
	switch display {
	case "Order Reference":
		return "order_reference"
	case "Date":
		return "date"
	case "Business Name":
		return "business_name"
	case "Contact Name":
		return "contact_name"
	case "Cell Phone":
		return "cell_phone"
	case "Business Phone":
		return "business_phone"
	case "Payment Terms":
		return "payment_terms"
	case "Sales Tax Status":
		return "sales_tax_status"
	case "Sales Tax Rate (%)":
		return "sales_tax_rate_percent"
	case "Fulfillment":
		return "fulfillment"
	case "Delivery Fee":
		return "delivery_fee"
	case "Notes":
		return "notes"
	default:
		return display
	}
}
