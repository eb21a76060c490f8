package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/K4R-IAI/UROSActionLib/internal/actionpath"
	"github.com/K4R-IAI/UROSActionLib/internal/ctxlog"
	"github.com/K4R-IAI/UROSActionLib/internal/fsutil"
	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
)

// ErrInvalidProject is matched by errors.Is for every validation failure
// reported by Model.Targets and for project files a Loader cannot decode.
var ErrInvalidProject = errors.New("invalid project file")

// Model is the unified representation of a project file.
type Model struct {
	// Path is the project file the model was loaded from. Relative paths in
	// the model resolve against its directory.
	Path     string
	Packages []*Package
}

// Package groups the actions generated into one ROS package.
type Package struct {
	Name      string
	OutputDir string
	SourceDir string
	Actions   []*Action
}

// Action is an explicitly listed action definition.
type Action struct {
	Stem   string
	Source string
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProject, fmt.Sprintf(format, args...))
}

// BaseDir returns the directory relative paths are resolved against.
func (m *Model) BaseDir() string {
	return filepath.Dir(m.Path)
}

func (m *Model) resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.BaseDir(), p)
}

// Targets validates the model and expands it into compile targets: the
// explicit actions of each package in declaration order, followed by the
// actions discovered under its source directory that were not listed.
func (m *Model) Targets(ctx context.Context) ([]actionpath.Target, error) {
	logger := ctxlog.FromContext(ctx)

	var targets []actionpath.Target
	seenPackages := make(map[string]struct{})

	for i, pkg := range m.Packages {
		if pkg.Name == "" {
			return nil, invalid("package #%d has no name", i+1)
		}
		if _, dup := seenPackages[pkg.Name]; dup {
			return nil, invalid("package %q is declared more than once", pkg.Name)
		}
		seenPackages[pkg.Name] = struct{}{}

		sourceDir := m.resolvePath(pkg.SourceDir)
		outputDir := m.resolvePath(pkg.OutputDir)
		switch {
		case outputDir != "":
		case sourceDir != "":
			outputDir = filepath.Join(sourceDir, "..", "msg")
		default:
			outputDir = filepath.Join(m.BaseDir(), pkg.Name, "msg")
		}

		seenStems := make(map[string]struct{})
		explicitSources := make(map[string]struct{})
		for _, action := range pkg.Actions {
			if action.Source == "" {
				return nil, invalid("package %q: action %q has no source", pkg.Name, action.Stem)
			}
			stem := action.Stem
			if stem == "" {
				stem = actionpath.Stem(action.Source)
			}
			if _, dup := seenStems[stem]; dup {
				return nil, invalid("package %q: action %q is declared more than once", pkg.Name, stem)
			}
			seenStems[stem] = struct{}{}
			source := m.resolvePath(action.Source)
			explicitSources[sameFileKey(source)] = struct{}{}
			targets = append(targets, actionpath.Target{
				Source:    source,
				Identity:  msggen.Identity{Package: pkg.Name, Stem: stem},
				OutputDir: outputDir,
			})
		}

		if sourceDir == "" {
			continue
		}
		explicit := make(map[string]struct{}, len(seenStems))
		for stem := range seenStems {
			explicit[stem] = struct{}{}
		}
		files, err := fsutil.FindFilesByExtension(sourceDir, actionpath.Extension)
		if err != nil {
			return nil, fmt.Errorf("package %q: failed to discover actions: %w", pkg.Name, err)
		}
		for _, file := range files {
			stem := actionpath.Stem(file)
			_, sameFile := explicitSources[sameFileKey(file)]
			if _, sameStem := explicit[stem]; sameFile || sameStem {
				logger.Debug("Discovered action already listed explicitly, skipping.", "package", pkg.Name, "file", file)
				continue
			}
			if _, dup := seenStems[stem]; dup {
				return nil, invalid("package %q: more than one %s%s under %s", pkg.Name, stem, actionpath.Extension, sourceDir)
			}
			seenStems[stem] = struct{}{}
			targets = append(targets, actionpath.Target{
				Source:    file,
				Identity:  msggen.Identity{Package: pkg.Name, Stem: stem},
				OutputDir: outputDir,
			})
		}
		logger.Debug("Package resolved.", "package", pkg.Name, "discovered", len(files), "output_dir", outputDir)
	}

	return targets, nil
}

// sameFileKey normalizes path so that an explicit source and a discovered
// file naming the same file compare equal.
func sameFileKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
