// Package fsutil provides file system helpers shared by the project loader
// and the app.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
)

// FindFilesByExtension recursively searches rootPath for regular files whose
// name ends with extension and returns their paths in lexical order. Hidden
// directories (".git", ".cache", ...) are skipped.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != rootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, ioerr.Wrap("walk", rootPath, err)
	}

	sort.Strings(files)
	return files, nil
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return ioerr.Wrap("mkdir", dir, os.MkdirAll(dir, 0o755))
}
