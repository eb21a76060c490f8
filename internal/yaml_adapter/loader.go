// Package yaml_adapter loads YAML project files into the config model.
//
//	packages:
//	  - name: robot_actions
//	    source_dir: robot_actions/action
//	    output_dir: ${OUT_ROOT}/robot_actions/msg
//	    actions:
//	      - stem: Fetch
//	        source: robot_actions/action/Fetch.action
//
// ${VAR} references are expanded from the environment before decoding.
// Unknown keys are rejected.
package yaml_adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/K4R-IAI/UROSActionLib/internal/config"
	"github.com/K4R-IAI/UROSActionLib/internal/ctxlog"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML project loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

type fileRoot struct {
	Packages []packageEntry `yaml:"packages"`
}

type packageEntry struct {
	Name      string        `yaml:"name"`
	SourceDir string        `yaml:"source_dir"`
	OutputDir string        `yaml:"output_dir"`
	Actions   []actionEntry `yaml:"actions"`
}

type actionEntry struct {
	Stem   string `yaml:"stem"`
	Source string `yaml:"source"`
}

// Load reads and decodes the YAML project file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioerr.Wrap("read", path, err)
	}
	data = []byte(os.ExpandEnv(string(data)))

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML file %s: %w", config.ErrInvalidProject, path, err)
	}

	model := &config.Model{Path: path}
	for _, p := range root.Packages {
		pkg := &config.Package{
			Name:      p.Name,
			SourceDir: p.SourceDir,
			OutputDir: p.OutputDir,
		}
		for _, a := range p.Actions {
			pkg.Actions = append(pkg.Actions, &config.Action{Stem: a.Stem, Source: a.Source})
		}
		model.Packages = append(model.Packages, pkg)
	}

	logger.Debug("YAML loading complete.", "packages", len(model.Packages))
	return model, nil
}
