package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ActionPaths []string // .action files or directories holding them
	ProjectPath string   // .hcl / .yaml project file

	// Overrides for ActionPaths; derived from the file location when empty.
	Package   string
	OutputDir string

	MakeDirs    bool
	DryRun      bool
	Watch       bool
	WorkerCount int

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ActionPaths) == 0 && cfg.ProjectPath == "" {
		return nil, errors.New("either action paths or a project file is required")
	}
	if len(cfg.ActionPaths) > 0 && cfg.ProjectPath != "" {
		return nil, errors.New("action paths and a project file cannot be combined")
	}
	if cfg.ProjectPath != "" && (cfg.Package != "" || cfg.OutputDir != "") {
		return nil, errors.New("package and output overrides only apply to action paths")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("worker count must be at least 1")
	}

	return &cfg, nil
}
