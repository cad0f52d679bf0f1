// Command order-form runs the interactive wholesale order-entry session.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/varners-greenhouse/order-form/internal/app"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "order-form:", err)
		os.Exit(1)
	}

	lg, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "order-form:", err)
		os.Exit(1)
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.Run(ctx, lg, cfg); err != nil {
		lg.Error("session failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "order-form:", err)
		os.Exit(1)
	}
}

// newLogger builds a file-backed zap logger so structured logs never mix
// with the interactive prompt on stdout. An empty path disables logging.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
