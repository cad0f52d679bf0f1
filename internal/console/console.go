// Package console is the interactive presentation boundary. It feeds raw
// operator input into the order core, triggers a recompute after every
// mutating event, and renders the derived totals back. No business logic
// lives here.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
	"github.com/varners-greenhouse/order-form/internal/export"
	"github.com/varners-greenhouse/order-form/pkg/money"
)

// Config holds the non-dependency settings for a console session.
type Config struct {
	// OutputDir is where export files are written.
	OutputDir string
}

// Session drives one interactive order-entry session over a line-based
// reader/writer pair.
type Session struct {
	cfg   Config
	ord   *order.Order
	lg    *zap.Logger
	clock func() time.Time

	out io.Writer
}

// New creates a Session for the given order. clock supplies the export
// timestamps; pass time.Now outside of tests.
func New(cfg Config, ord *order.Order, lg *zap.Logger, clock func() time.Time) *Session {
	return &Session{cfg: cfg, ord: ord, lg: lg, clock: clock}
}

// Run reads commands from in until quit, EOF, or context cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.out = out
	scanner := bufio.NewScanner(in)

	s.printf("%s\n", "Varner's Greenhouse & Nursery - 2025 Fall Wholesale Order Form")
	s.printHelp()
	s.printTotals()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printf("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "read input")
			}
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		if s.dispatch(scanner, strings.ToLower(cmd), strings.TrimSpace(arg)) {
			return nil
		}
	}
}

// dispatch runs one command, returning true when the session should end.
func (s *Session) dispatch(scanner *bufio.Scanner, cmd, arg string) bool {
	switch cmd {
	case "help", "?":
		s.printHelp()
	case "list", "l":
		s.printCatalog()
	case "qty", "q":
		s.setQuantity(arg)
		s.printTotals()
	case "customer", "c":
		s.enterCustomer(scanner)
	case "terms":
		s.toggleTerms()
		s.printTotals()
	case "tax":
		s.toggleTaxStatus()
		s.printTotals()
	case "rate":
		s.ord.ApplyTaxRateText(arg)
		s.printTotals()
	case "fulfill", "f":
		s.toggleFulfillment()
		s.printTotals()
	case "fee":
		s.ord.ApplyDeliveryFeeText(arg)
		s.printTotals()
	case "notes":
		s.ord.Notes = arg
	case "totals", "t":
		s.printTotals()
	case "csv":
		s.export("csv")
	case "txt":
		s.export("txt")
	case "json":
		s.export("json")
	case "reset":
		s.reset(scanner)
	case "quit", "exit":
		s.lg.Info("session ended", zap.String("order", s.ord.Reference))
		return true
	default:
		s.printf("unknown command %q, type 'help'\n", cmd)
	}
	return false
}

func (s *Session) printHelp() {
	s.printf(`commands:
  list               show catalog with line numbers and quantities
  qty <n> <count>    set quantity for line n
  customer           enter business/contact/phone fields
  terms              toggle payment terms (C.O.D. / NET 30)
  tax                toggle sales tax status
  rate <percent>     set sales tax rate
  fulfill            toggle DELIVERY / PICK UP
  fee <amount>       set delivery fee
  notes <text>       set the combo notes
  totals             show current totals
  csv | txt | json   export the order
  reset              clear the form
  quit               exit
`)
}

func (s *Session) printCatalog() {
	group := ""
	for i, l := range s.ord.Lines {
		if l.Variant.Group != group {
			group = l.Variant.Group
			s.printf("%s  - unit price %s\n", group, money.Display(l.Variant.UnitPrice))
		}
		s.printf("  %2d. %-28s qty %5d  line total %s\n",
			i+1, l.Variant.Name, l.Quantity, money.Display(l.Total()))
	}
}

// setQuantity parses "qty <n> <count>", applying the same digits-only filter
// the original entry widget enforced before text reached the core.
func (s *Session) setQuantity(arg string) {
	idxText, qtyText, ok := strings.Cut(arg, " ")
	if !ok {
		s.printf("usage: qty <line> <count>\n")
		return
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxText))
	if err != nil || idx < 1 || idx > len(s.ord.Lines) {
		s.printf("no such line %q\n", idxText)
		return
	}
	qtyText = strings.TrimSpace(qtyText)
	if !digitsOnly(qtyText) {
		s.printf("quantity must be digits\n")
		return
	}
	s.ord.SetQuantity(idx-1, order.CoerceQuantity(qtyText))
}

func (s *Session) enterCustomer(scanner *bufio.Scanner) {
	s.ord.BusinessName = s.prompt(scanner, "Business Name")
	s.ord.ContactName = s.prompt(scanner, "Contact Name")
	s.ord.CellPhone = s.prompt(scanner, "Cell Phone #")
	s.ord.BusinessPhone = s.prompt(scanner, "Business Phone #")
}

func (s *Session) toggleTerms() {
	if s.ord.PaymentTerms == order.PaymentCOD {
		s.ord.PaymentTerms = order.PaymentNet30
	} else {
		s.ord.PaymentTerms = order.PaymentCOD
	}
	s.printf("payment terms: %s\n", s.ord.PaymentTerms)
}

func (s *Session) toggleTaxStatus() {
	if s.ord.TaxStatus == order.TaxStatusTaxable {
		s.ord.TaxStatus = order.TaxStatusExempt
	} else {
		s.ord.TaxStatus = order.TaxStatusTaxable
	}
	s.printf("tax status: %s\n", s.ord.TaxStatus)
}

func (s *Session) toggleFulfillment() {
	if s.ord.Fulfillment == order.FulfillmentPickup {
		s.ord.SetFulfillment(order.FulfillmentDelivery)
	} else {
		s.ord.SetFulfillment(order.FulfillmentPickup)
	}
	s.printf("fulfillment: %s\n", s.ord.Fulfillment)
}

func (s *Session) printTotals() {
	d := s.ord.Recompute().Display()
	s.printf("Subtotal: %s | Sales Tax: %s | Delivery: %s | Total: %s\n",
		d.Subtotal, d.Tax, d.Delivery, d.Total)
}

// reset clears the form after an explicit confirmation, mirroring the
// original yes/no dialog.
func (s *Session) reset(scanner *bufio.Scanner) {
	answer := s.prompt(scanner, "Clear all inputs and start over? (y/n)")
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return
	}
	s.ord.Reset()
	s.lg.Info("order reset", zap.String("order", s.ord.Reference))
	s.printTotals()
}

func (s *Session) export(kind string) {
	now := s.clock()

	var (
		path string
		err  error
	)
	switch kind {
	case "csv":
		path = filepath.Join(s.cfg.OutputDir, export.RecordFilename(now))
		err = export.WriteCSVRecord(s.ord, now, path)
	case "txt":
		path = filepath.Join(s.cfg.OutputDir, export.SummaryFilename(now))
		err = export.WriteSummary(s.ord, now, path)
	case "json":
		path = filepath.Join(s.cfg.OutputDir, export.JSONFilename(now))
		err = export.WriteJSONRecord(s.ord, now, path)
	}

	switch {
	case errors.Is(err, export.ErrEmptyOrder):
		s.printf("Please enter at least one quantity before exporting.\n")
	case err != nil:
		s.lg.Error("export failed", zap.String("path", path), zap.Error(err))
		s.printf("export failed: %v\n", err)
	default:
		s.lg.Info("export written",
			zap.String("kind", kind),
			zap.String("path", path),
			zap.String("order", s.ord.Reference),
		)
		s.printf("saved %s\n", path)
	}
}

func (s *Session) prompt(scanner *bufio.Scanner, label string) string {
	s.printf("%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func digitsOnly(text string) bool {
	if text == "" {
		return true
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
