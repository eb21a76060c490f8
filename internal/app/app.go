package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/K4R-IAI/UROSActionLib/internal/config"
	"github.com/K4R-IAI/UROSActionLib/internal/hcl_adapter"
	"github.com/K4R-IAI/UROSActionLib/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Generated output
// (dry runs) goes to outW, logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// loaderFor picks the project loader by file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl_adapter.NewLoader(), nil
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported project file %s: expected .hcl, .yaml or .yml", config.ErrInvalidProject, path)
	}
}

// loadProject reads the configured project file.
func (a *App) loadProject(ctx context.Context) (*config.Model, error) {
	loader, err := loaderFor(a.config.ProjectPath)
	if err != nil {
		return nil, err
	}
	model, err := loader.Load(ctx, a.config.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return model, nil
}
