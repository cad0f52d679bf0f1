package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/varners-greenhouse/order-form/internal/domain/order"
)

// Config holds the complete application configuration, loadable from
// environment variables (VARNERS_ prefix), flags, or YAML config files.
type Config struct {
	OutputDir string `default:"." usage:"Directory where order exports are written" flag:"output-dir"`
	LogFile   string `default:"" usage:"Structured log destination; empty disables logging" flag:"log-file"`
	Order     OrderConfig
}

// OrderConfig carries the order-entry defaults so tests and deployments can
// vary them without code changes.
type OrderConfig struct {
	TaxRatePercent  string `default:"6.00" usage:"Default sales tax rate in percent" flag:"tax-rate"`
	DeliveryMinimum string `default:"40.00" usage:"Minimum fee applied when switching to delivery" flag:"delivery-minimum"`
}

// LoadConfig loads configuration from environment variables, flags, and
// optional YAML config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "VARNERS",
		Files:     []string{"config.yaml", "/etc/varners/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}

// Defaults parses the order defaults out of the configuration.
func (c *Config) Defaults() (order.Defaults, error) {
	rate, err := decimal.NewFromString(c.Order.TaxRatePercent)
	if err != nil || rate.IsNegative() {
		return order.Defaults{}, errors.Errorf("invalid tax rate %q", c.Order.TaxRatePercent)
	}
	minimum, err := decimal.NewFromString(c.Order.DeliveryMinimum)
	if err != nil || minimum.IsNegative() {
		return order.Defaults{}, errors.Errorf("invalid delivery minimum %q", c.Order.DeliveryMinimum)
	}
	return order.Defaults{
		TaxRatePercent:  rate,
		DeliveryMinimum: minimum,
		Notes:           order.DefaultNotes,
	}, nil
}
