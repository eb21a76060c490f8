// Package compiler turns one .action file into its six .msg documents.
package compiler

import (
	"context"
	"fmt"

	"github.com/K4R-IAI/UROSActionLib/internal/actiondef"
	"github.com/K4R-IAI/UROSActionLib/internal/ctxlog"
	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
	"github.com/K4R-IAI/UROSActionLib/internal/msgstore"
)

// Compile parses the action definition at inputPath and writes the six
// derived documents for id into outputDir through w.
//
// Parsing finishes before the first write, so a malformed definition
// writes nothing. A failed write stops the compile; documents written
// before it are left in place.
func Compile(ctx context.Context, inputPath string, id msggen.Identity, outputDir string, w msgstore.Writer) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing action definition.", "path", inputPath)

	def, err := actiondef.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse action definition: %w", err)
	}
	logger.Debug("Action definition parsed.",
		"goal_fields", len(def.Goal),
		"result_fields", len(def.Result),
		"feedback_fields", len(def.Feedback),
	)

	return Emit(ctx, def, id, outputDir, w)
}

// Emit builds and writes the six documents for an already parsed definition.
func Emit(ctx context.Context, def *actiondef.Definition, id msggen.Identity, outputDir string, w msgstore.Writer) error {
	logger := ctxlog.FromContext(ctx)

	for _, doc := range msggen.BuildAll(id, def) {
		if err := w.Write(ctx, outputDir, doc); err != nil {
			return fmt.Errorf("failed to save %s: %w", doc.FileName, err)
		}
		logger.Debug("Message written.", "file", doc.FileName, "lines", len(doc.Lines))
	}
	return nil
}
