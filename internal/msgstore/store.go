// Package msgstore defines where generated message documents go.
//
// The compiler only knows how to hand a finished msggen.Document and its
// target directory to a Writer. Disk persists it as a file; the
// inmemorystore package keeps it for dry runs and tests.
//
// Implementations must be safe for concurrent use: project builds compile
// several actions at once and share one Writer. Two documents with the same
// directory and file name overwrite each other (last writer wins).
package msgstore

import (
	"context"

	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
)

// Writer stores a named schema document.
type Writer interface {
	// Write stores doc under dir/doc.FileName, replacing any previous
	// document at that location.
	Write(ctx context.Context, dir string, doc msggen.Document) error
}

// Disk writes documents to the file system. The target directory must
// already exist.
type Disk struct{}

// NewDisk returns a Writer backed by the file system.
func NewDisk() Writer {
	return Disk{}
}

// Write implements Writer.
func (Disk) Write(ctx context.Context, dir string, doc msggen.Document) error {
	return msggen.Save(doc, dir)
}
