package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/specialistvlad/checkoutfields/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. Defaults are read from
// CHECKOUTFIELDS_* environment variables and flags override them. It returns
// a populated Config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cfg app.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse env: %v", err)}
	}

	flagSet := flag.NewFlagSet("checkoutfields", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
checkoutfields - Declarative custom fields for WooCommerce checkout forms.

Usage:
  checkoutfields [options] DOCUMENT

Arguments:
  DOCUMENT
    YAML or JSON file holding the host mapping to merge fields into.
    Not needed for -surface variations.

Surfaces:
  %s

Environment:
  CHECKOUTFIELDS_FIELDS, CHECKOUTFIELDS_LANG, CHECKOUTFIELDS_LOG_FORMAT and
  CHECKOUTFIELDS_LOG_LEVEL set the defaults of the matching options.

Options:
`, strings.Join(app.Surfaces(), ", "))
		flagSet.PrintDefaults()
	}

	fieldsFlag := flagSet.String("fields", strings.Join(cfg.FieldPaths, ","), "Comma-separated field definition files or directories.")
	flagSet.StringVar(&cfg.Surface, "surface", app.SurfaceCheckout, "Surface to merge the document into.")
	flagSet.StringVar(&cfg.Target, "target", "", "Target of single-target surfaces. Defaults to billing.")
	flagSet.StringVar(&cfg.Country, "country", "", "Country code passed to address form hooks.")
	flagSet.StringVar(&cfg.Lang, "lang", cfg.Lang, "Language of target words in labels.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg.FieldPaths = strings.Split(*fieldsFlag, ",")
	cfg.DocumentPath = flagSet.Arg(0)
	slog.Debug("Document path determined.", "path", cfg.DocumentPath)

	if cfg.DocumentPath == "" && cfg.Surface != app.SurfaceVariations {
		slog.Debug("No document provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
