package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Surface names accepted by Config.Surface.
const (
	SurfaceCheckout         = "checkout"
	SurfaceAddress          = "address"
	SurfaceAdminUser        = "admin-user"
	SurfaceAdminOrder       = "admin-order"
	SurfacePrivacyCustomer  = "privacy-customer"
	SurfacePrivacyOrder     = "privacy-order"
	SurfaceAddressFormat    = "address-format"
	SurfaceFormattedAddress = "formatted-address"
	SurfaceGuestCheckout    = "guest-checkout"
	SurfaceVariations       = "variations"
)

// Surfaces lists every surface name in usage order.
func Surfaces() []string {
	return []string{
		SurfaceCheckout, SurfaceAddress, SurfaceAdminUser, SurfaceAdminOrder,
		SurfacePrivacyCustomer, SurfacePrivacyOrder, SurfaceAddressFormat,
		SurfaceFormattedAddress, SurfaceGuestCheckout, SurfaceVariations,
	}
}

// Config holds all the necessary configuration for an App instance to run.
// Fields with env tags take their defaults from the environment.
type Config struct {
	// FieldPaths are .hcl/.yaml/.yml/.json files or directories.
	FieldPaths   []string `env:"CHECKOUTFIELDS_FIELDS" envSeparator:","`
	// DocumentPath is the host mapping to merge into.
	DocumentPath string

	Surface string
	// Target empty means billing for single-target surfaces and all targets
	// for variations.
	Target  string
	Country string
	Lang    string `env:"CHECKOUTFIELDS_LANG" envDefault:"en"`

	LogFormat string `env:"CHECKOUTFIELDS_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"CHECKOUTFIELDS_LOG_LEVEL" envDefault:"info"`
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if !slices.Contains(Surfaces(), cfg.Surface) {
		return nil, fmt.Errorf("unknown surface %q: must be one of %s", cfg.Surface, strings.Join(Surfaces(), ", "))
	}
	if cfg.DocumentPath == "" && cfg.Surface != SurfaceVariations {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}

	paths := make([]string, 0, len(cfg.FieldPaths))
	for _, p := range cfg.FieldPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	cfg.FieldPaths = paths

	return &cfg, nil
}

// target returns the configured target, or fallback when none is set.
func (c *Config) target(fallback string) string {
	if c.Target == "" {
		return fallback
	}
	return c.Target
}
