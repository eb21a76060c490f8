// Package hcl_adapter loads HCL project files into the config model.
//
//	package "robot_actions" {
//	  source_dir = "robot_actions/action"
//	  output_dir = "${project_dir}/robot_actions/msg"
//
//	  action "Fetch" {
//	    source = "robot_actions/action/Fetch.action"
//	  }
//	}
//
// Attribute expressions are evaluated with two variables: env, an object of
// the process environment, and project_dir, the directory of the project
// file. The lower and upper functions are available as well.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/K4R-IAI/UROSActionLib/internal/config"
	"github.com/K4R-IAI/UROSActionLib/internal/ctxlog"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL project loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// fileRoot is the top-level structure of a project file.
type fileRoot struct {
	Packages []*packageBlock `hcl:"package,block"`
}

type packageBlock struct {
	Name      string         `hcl:"name,label"`
	SourceDir string         `hcl:"source_dir,optional"`
	OutputDir string         `hcl:"output_dir,optional"`
	Actions   []*actionBlock `hcl:"action,block"`
}

type actionBlock struct {
	Stem   string `hcl:"stem,label"`
	Source string `hcl:"source"`
}

// Load parses and decodes the HCL project file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, ioerr.Wrap("read", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", config.ErrInvalidProject, path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(filepath.Dir(path)), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL file %s: %w", config.ErrInvalidProject, path, diags)
	}

	model := &config.Model{Path: path}
	for _, pkg := range root.Packages {
		model.Packages = append(model.Packages, translatePackage(pkg))
	}

	logger.Debug("HCL loading complete.", "packages", len(model.Packages))
	return model, nil
}

func translatePackage(b *packageBlock) *config.Package {
	pkg := &config.Package{
		Name:      b.Name,
		SourceDir: b.SourceDir,
		OutputDir: b.OutputDir,
	}
	for _, a := range b.Actions {
		pkg.Actions = append(pkg.Actions, &config.Action{Stem: a.Stem, Source: a.Source})
	}
	return pkg
}

// evalContext exposes the environment and the project directory to
// attribute expressions.
func evalContext(projectDir string) *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":         cty.ObjectVal(env),
			"project_dir": cty.StringVal(projectDir),
		},
		Functions: map[string]function.Function{
			"lower": stdlib.LowerFunc,
			"upper": stdlib.UpperFunc,
		},
	}
}
