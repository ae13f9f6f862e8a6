package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/checkoutfields/internal/ctxlog"
	"github.com/specialistvlad/checkoutfields/internal/i18n"
	"github.com/specialistvlad/checkoutfields/internal/registry"
	"github.com/specialistvlad/checkoutfields/internal/weave"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	weaver   *weave.Weaver
}

// NewApp is the constructor for the main application. Logs go to logW and
// results to outW. Modules register Go-defined fields before definition
// files are loaded. The registry is validated and sealed before NewApp
// returns; a loading or validation failure is a fatal startup error and
// panics.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Go modules registered.", "count", len(modules), "fields", reg.Len())

	if err := reg.LoadFieldsRecursively(ctx, cfg.FieldPaths...); err != nil {
		panic(fmt.Errorf("failed to load field definitions: %w", err))
	}

	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	reg.Seal()
	logger.Debug("Registry validated and sealed.", "fields", reg.Len())

	labels := i18n.NewLabels(cfg.Lang)
	logger.Debug("Labels configured.", "lang", labels.Tag().String())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		weaver:   weave.New(reg, weave.WithLogger(logger), weave.WithLabels(labels)),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
