// Package app wires the order-entry session together: configuration,
// catalog, order aggregate, and the interactive console.
package app

import (
	"context"
	"os"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/varners-greenhouse/order-form/internal/console"
	"github.com/varners-greenhouse/order-form/internal/domain/catalog"
	"github.com/varners-greenhouse/order-form/internal/domain/order"
)

// Run builds all dependencies and drives the interactive console on
// stdin/stdout until the operator quits or ctx is cancelled. It is the
// single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	defaults, err := cfg.Defaults()
	if err != nil {
		return err
	}

	if info, err := os.Stat(cfg.OutputDir); err != nil || !info.IsDir() {
		return errors.Errorf("output directory %q is not usable", cfg.OutputDir)
	}

	ord := order.New(catalog.Variants(), defaults)
	lg.Info("session started",
		zap.String("order", ord.Reference),
		zap.String("output_dir", cfg.OutputDir),
	)

	sess := console.New(console.Config{OutputDir: cfg.OutputDir}, ord, lg, time.Now)
	return sess.Run(ctx, os.Stdin, os.Stdout)
}
