package console

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/varners-greenhouse/order-form/internal/domain/catalog"
	"github.com/varners-greenhouse/order-form/internal/domain/order"
	"github.com/varners-greenhouse/order-form/internal/export"
)

var sessionTime = time.Date(2025, 9, 14, 10, 30, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*Session, string) {
	t.Helper()
	dir := t.TempDir()
	ord := order.New(catalog.Variants(), order.Defaults{
		TaxRatePercent:  decimal.RequireFromString("6.00"),
		DeliveryMinimum: decimal.RequireFromString("40.00"),
		Notes:           order.DefaultNotes,
	})
	s := New(Config{OutputDir: dir}, ord, zap.NewNop(), func() time.Time { return sessionTime })
	return s, dir
}

func runScript(t *testing.T, s *Session, script string) string {
	t.Helper()
	var out strings.Builder
	err := s.Run(context.Background(), strings.NewReader(script), &out)
	require.NoError(t, err)
	return out.String()
}

func TestSession_QuantityAndTotals(t *testing.T) {
	s, _ := newTestSession(t)

	// Line 1 is AUTUMN MIX, line 12 is PANSY SOLID COLORS / BLACK.
	out := runScript(t, s, "qty 1 3\nqty 12 2\nquit\n")

	assert.Contains(t, out, "Subtotal: $51.50 | Sales Tax: $3.09 | Delivery: $0.00 | Total: $54.59")
}

func TestSession_FulfillmentToggleAppliesMinimum(t *testing.T) {
	s, _ := newTestSession(t)

	out := runScript(t, s, "qty 1 3\nqty 12 2\nfulfill\nquit\n")

	assert.Contains(t, out, "fulfillment: DELIVERY")
	assert.Contains(t, out, "Total: $94.59")
}

func TestSession_RejectsNonDigitQuantity(t *testing.T) {
	s, _ := newTestSession(t)

	out := runScript(t, s, "qty 1 abc\nquit\n")

	assert.Contains(t, out, "quantity must be digits")
	assert.Contains(t, out, "Total: $0.00")
}

func TestSession_ExportEmptyOrderWritesNoFile(t *testing.T) {
	s, dir := newTestSession(t)

	out := runScript(t, s, "csv\ntxt\njson\nquit\n")

	assert.Contains(t, out, "Please enter at least one quantity")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSession_ExportWritesSummary(t *testing.T) {
	s, dir := newTestSession(t)

	out := runScript(t, s, "qty 1 3\ntxt\nquit\n")

	path := filepath.Join(dir, export.SummaryFilename(sessionTime))
	assert.Contains(t, out, "saved "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AUTUMN MIX")
}

func TestSession_ResetNeedsConfirmation(t *testing.T) {
	s, _ := newTestSession(t)

	out := runScript(t, s, "qty 1 3\nreset\nn\ntotals\nquit\n")
	assert.Contains(t, out, "Total: $32.75") // 30.90 + 6% tax, unchanged by declined reset

	out = runScript(t, s, "reset\ny\nquit\n")
	assert.Contains(t, out, "Total: $0.00")
}

func TestSession_CustomerEntry(t *testing.T) {
	s, _ := newTestSession(t)

	runScript(t, s, "customer\n Flower Barn \nPat\n555-0101\n555-0102\nquit\n")

	assert.Equal(t, "Flower Barn", s.ord.BusinessName)
	assert.Equal(t, "Pat", s.ord.ContactName)
}
