package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
	"github.com/varners-greenhouse/order-form/pkg/money"
)

// summaryTitle is the banner printed at the top of the summary, matching the
// paper order form.
const summaryTitle = "Varner's Greenhouse & Nursery - 2025 Fall Wholesale Order Form"

const (
	groupWidth = 34
	itemWidth  = 28
)

// Summary renders the printable fixed-width order summary. It returns
// ErrEmptyOrder when no line is active.
func Summary(o *order.Order, now time.Time) (string, error) {
	lines := o.ActiveLines()
	if len(lines) == 0 {
		return "", ErrEmptyOrder
	}
	totals := o.Recompute()

	notes := strings.TrimSpace(o.Notes)
	if notes == "" {
		notes = "-"
	}

	var b strings.Builder
	push := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	push("%s", summaryTitle)
	push("%s", strings.Repeat("-", 80))
	push("Date: %s", now.Format("2006-01-02 15:04"))
	push("Reference: %s", o.Reference)
	push("Business: %s", strings.TrimSpace(o.BusinessName))
	push("Contact: %s | Cell: %s | Business: %s",
		strings.TrimSpace(o.ContactName),
		strings.TrimSpace(o.CellPhone),
		strings.TrimSpace(o.BusinessPhone),
	)
	push("Terms: %s | Tax Status: %s (%s%%)",
		o.PaymentTerms, o.TaxStatus, o.TaxRatePercent.StringFixed(2))
	push("Fulfillment: %s | Delivery Fee: %s",
		o.Fulfillment, money.Display(totals.Delivery))
	push("Notes on combos:")
	push("%s", notes)
	push("")

	push("%-*s  %-*s  %5s  %10s  %12s",
		groupWidth, "Group", itemWidth, "Item", "Qty", "Unit", "Line Total")
	push("%s", strings.Repeat("-", 95))
	for _, l := range lines {
		push("%-*s  %-*s  %5d  %10s  %12s",
			groupWidth, truncate(l.Variant.Group, groupWidth),
			itemWidth, truncate(l.Variant.Name, itemWidth),
			l.Quantity,
			money.Plain(l.Variant.UnitPrice),
			money.Plain(l.Total()),
		)
	}
	push("%s", strings.Repeat("-", 95))

	push("Subtotal: %s", money.Display(totals.Subtotal))
	push("Sales Tax: %s", money.Display(totals.Tax))
	push("Delivery: %s", money.Display(totals.Delivery))
	push("TOTAL:    %s", money.Display(totals.Total))

	return b.String(), nil
}

// WriteSummary renders the summary and writes it atomically to path.
func WriteSummary(o *order.Order, now time.Time, path string) error {
	text, err := Summary(o, now)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, []byte(text))
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
