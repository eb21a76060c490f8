package inmemorystore

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
	"github.com/K4R-IAI/UROSActionLib/internal/msgstore"
)

// Store keeps documents keyed by their would-be path on disk. Each compiled
// action writes distinct keys, so sync.Map serves the concurrent project
// build without a global lock.
type Store struct {
	docs sync.Map // Key: filepath.Join(dir, FileName), Value: msggen.Document
}

// New creates a new, empty in-memory document store.
func New() *Store {
	return &Store{}
}

var _ msgstore.Writer = (*Store)(nil)

// Write records doc, replacing any document previously stored at the same path.
func (s *Store) Write(ctx context.Context, dir string, doc msggen.Document) error {
	lines := make([]string, len(doc.Lines))
	copy(lines, doc.Lines)
	s.docs.Store(filepath.Join(dir, doc.FileName), msggen.Document{FileName: doc.FileName, Lines: lines})
	return nil
}

// Get returns the document stored for dir and fileName.
func (s *Store) Get(dir, fileName string) (msggen.Document, bool) {
	v, ok := s.docs.Load(filepath.Join(dir, fileName))
	if !ok {
		return msggen.Document{}, false
	}
	return v.(msggen.Document), true
}

// Paths returns the paths of all stored documents in lexical order.
func (s *Store) Paths() []string {
	var paths []string
	s.docs.Range(func(k, _ any) bool {
		paths = append(paths, k.(string))
		return true
	})
	sort.Strings(paths)
	return paths
}
