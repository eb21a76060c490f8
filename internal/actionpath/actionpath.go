// Package actionpath derives an action's identity and output directory from
// where its .action file lives.
//
// ROS packages keep action definitions in <package>/action/<Name>.action and
// generated messages in the sibling <package>/msg directory, so the package
// name is the directory two levels above the file.
package actionpath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
)

// Extension is the conventional suffix of action definition files.
const Extension = ".action"

// ErrIdentity is matched by errors.Is for every *IdentityError.
var ErrIdentity = errors.New("cannot derive action identity")

// IdentityError reports a path from which no package name or stem can be
// derived.
type IdentityError struct {
	Path   string
	Reason string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *IdentityError) Unwrap() error {
	return ErrIdentity
}

// Overrides replace derived values when non-empty.
type Overrides struct {
	Package   string
	OutputDir string
}

// Target is a fully resolved compile job.
type Target struct {
	Source    string
	Identity  msggen.Identity
	OutputDir string
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PackageName returns the name of the directory two levels above path.
func PackageName(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &IdentityError{Path: path, Reason: err.Error()}
	}
	pkgDir := filepath.Dir(filepath.Dir(abs))
	name := filepath.Base(pkgDir)
	if pkgDir == filepath.Dir(pkgDir) || name == "" || name == "." {
		return "", &IdentityError{Path: path, Reason: "file is not inside a <package>/<dir>/ layout, pass a package name explicitly"}
	}
	return name, nil
}

// DefaultOutputDir returns the msg directory next to the one holding path.
func DefaultOutputDir(path string) string {
	return filepath.Join(filepath.Dir(path), "..", "msg")
}

// Resolve builds the Target for the action file at path.
func Resolve(path string, o Overrides) (Target, error) {
	stem := Stem(path)
	if stem == "" {
		return Target{}, &IdentityError{Path: path, Reason: "empty action name"}
	}

	pkg := o.Package
	if pkg == "" {
		var err error
		if pkg, err = PackageName(path); err != nil {
			return Target{}, err
		}
	}

	outDir := o.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir(path)
	}

	return Target{
		Source:    path,
		Identity:  msggen.Identity{Package: pkg, Stem: stem},
		OutputDir: outDir,
	}, nil
}
