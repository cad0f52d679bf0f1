package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/go-faster/errors"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
	"github.com/varners-greenhouse/order-form/pkg/money"
)

// lineHeader is the column header of the line-item section in both record
// exports.
var lineHeader = []string{"Group", "Item", "Qty", "Unit Price", "Line Total"}

// CSVRecord renders the structured record export: metadata key/value rows, a
// blank separator, the line-item table for active lines in catalog order, a
// blank separator, and the totals rows. Monetary values are plain
// two-decimal text with no currency symbol.
func CSVRecord(o *order.Order, now time.Time) ([]byte, error) {
	lines := o.ActiveLines()
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	totals := o.Recompute()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, row := range metadataRows(o, now, totals) {
		if err := w.Write(row[:]); err != nil {
			return nil, errors.Wrap(err, "write metadata row")
		}
	}
	if err := w.Write([]string{}); err != nil {
		return nil, errors.Wrap(err, "write separator")
	}

	if err := w.Write(lineHeader); err != nil {
		return nil, errors.Wrap(err, "write line header")
	}
	for _, l := range lines {
		row := []string{
			l.Variant.Group,
			l.Variant.Name,
			strconv.Itoa(l.Quantity),
			money.Plain(l.Variant.UnitPrice),
			money.Plain(l.Total()),
		}
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "write line row")
		}
	}
	if err := w.Write([]string{}); err != nil {
		return nil, errors.Wrap(err, "write separator")
	}

	for _, row := range totalsRows(totals) {
		if err := w.Write(row[:]); err != nil {
			return nil, errors.Wrap(err, "write totals row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}
	return buf.Bytes(), nil
}

// WriteCSVRecord renders the record export and writes it atomically to path.
func WriteCSVRecord(o *order.Order, now time.Time, path string) error {
	data, err := CSVRecord(o, now)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}
