package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/adventgrid/internal/config"
	"github.com/specialistvlad/adventgrid/internal/hcl"
	"github.com/specialistvlad/adventgrid/internal/registry"
	"github.com/specialistvlad/adventgrid/internal/yamlconfig"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
	loaders  map[string]config.Loader
}

// NewApp is the constructor for the main application. Answers are written to
// outW and logs to logW. With no modules given, every core day is registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New(modules...)
	logger.Debug("All Go modules registered.", "modules", len(modules), "solvers", reg.Len())

	yamlLoader := yamlconfig.NewLoader()
	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   cfg,
		loaders: map[string]config.Loader{
			".hcl":  hcl.NewLoader(),
			".yaml": yamlLoader,
			".yml":  yamlLoader,
		},
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
