package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/hcl_adapter"
	"github.com/vk/pbxpatch/internal/registry"
	"github.com/vk/pbxpatch/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	plan     *config.Plan
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, the
// plan loaded and validated, and CLI overrides already applied.
//
// A failure to load or validate the plan is a fatal startup error and
// panics; entrypoints recover and report it.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	plan, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		panic(fmt.Errorf("failed to load plan: %w", err))
	}
	applyOverrides(plan, appConfig)
	if err := plan.Validate(); err != nil {
		panic(fmt.Errorf("invalid plan: %w", err))
	}
	logger.Debug("Plan loaded and validated.",
		"project", plan.ProjectPath, "stale", len(plan.Stale), "additions", len(plan.Additions))

	// Create and populate the registry with operation handlers.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All operation modules registered.", "count", len(modules))

	if err := reg.ValidatePipeline(defaultPipeline); err != nil {
		// A mismatch between the pipeline and the registered handlers is a
		// programmer error.
		panic(err)
	}
	logger.Debug("Pipeline validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		plan:     plan,
	}
}

// applyOverrides folds CLI-level settings into the loaded plan.
func applyOverrides(plan *config.Plan, appConfig *Config) {
	if appConfig.ProjectPath != "" {
		plan.ProjectPath = appConfig.ProjectPath
	}
	if appConfig.OnMissingAnchor != "" {
		plan.OnMissingAnchor = appConfig.OnMissingAnchor
	}
	if appConfig.Backup {
		plan.Backup = true
	}
}

// Plan returns the loaded patch plan. This is primarily for testing.
func (a *App) Plan() *config.Plan {
	return a.plan
}

// Registry returns the application's registry. This is primarily for
// testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// LoaderFor selects the plan loader matching the path's file extension:
// YAML for .yaml/.yml, HCL otherwise (including directories of .hcl files).
func LoaderFor(path string) config.Loader {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader()
	default:
		return hcl_adapter.NewLoader()
	}
}
