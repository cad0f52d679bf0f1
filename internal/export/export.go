// Package export serializes a completed order to its three one-shot file
// formats: the CSV record, the printable text summary, and the JSON record.
// Exporters read the order, never mutate it, and refuse to produce a file
// for an order with no active lines.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
	"github.com/varners-greenhouse/order-form/pkg/money"
)

// ErrEmptyOrder is returned when an export is requested for an order with no
// active lines. The caller must prompt the operator instead of writing a
// vacuous file.
var ErrEmptyOrder = errors.New("order has no items")

// WriteError reports a failed write to a destination path. The destination
// is left without a partial file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

const timestampLayout = "20060102_150405"

// RecordFilename returns the suggested CSV record filename for ts.
func RecordFilename(ts time.Time) string {
	return fmt.Sprintf("varners_order_%s.csv", ts.Format(timestampLayout))
}

// SummaryFilename returns the suggested printable summary filename for ts.
func SummaryFilename(ts time.Time) string {
	return fmt.Sprintf("varners_order_summary_%s.txt", ts.Format(timestampLayout))
}

// JSONFilename returns the suggested JSON record filename for ts.
func JSONFilename(ts time.Time) string {
	return fmt.Sprintf("varners_order_%s.json", ts.Format(timestampLayout))
}

// writeFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so a failure never leaves a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".varners-order-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// metadataRows builds the ordered key/value header shared by the record
// exports. Free-text fields are trimmed here, at the output boundary.
func metadataRows(o *order.Order, now time.Time, t order.Totals) [][2]string {
	return [][2]string{
		{"Order Reference", o.Reference},
		{"Date", now.Format("2006-01-02 15:04:05")},
		{"Business Name", strings.TrimSpace(o.BusinessName)},
		{"Contact Name", strings.TrimSpace(o.ContactName)},
		{"Cell Phone", strings.TrimSpace(o.CellPhone)},
		{"Business Phone", strings.TrimSpace(o.BusinessPhone)},
		{"Payment Terms", string(o.PaymentTerms)},
		{"Sales Tax Status", string(o.TaxStatus)},
		{"Sales Tax Rate (%)", o.TaxRatePercent.StringFixed(2)},
		{"Fulfillment", string(o.Fulfillment)},
		{"Delivery Fee", money.Plain(t.Delivery)},
		{"Notes", strings.TrimSpace(o.Notes)},
	}
}

// totalsRows builds the ordered totals section shared by the record exports.
func totalsRows(t order.Totals) [][2]string {
	return [][2]string{
		{"Subtotal", money.Plain(t.Subtotal)},
		{"Sales Tax", money.Plain(t.Tax)},
		{"Delivery", money.Plain(t.Delivery)},
		{"Total", money.Plain(t.Total)},
	}
}
