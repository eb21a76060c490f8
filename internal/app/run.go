package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/K4R-IAI/UROSActionLib/internal/actionpath"
	"github.com/K4R-IAI/UROSActionLib/internal/compiler"
	"github.com/K4R-IAI/UROSActionLib/internal/ctxlog"
	"github.com/K4R-IAI/UROSActionLib/internal/fsutil"
	"github.com/K4R-IAI/UROSActionLib/internal/inmemorystore"
	"github.com/K4R-IAI/UROSActionLib/internal/ioerr"
	"github.com/K4R-IAI/UROSActionLib/internal/msggen"
	"github.com/K4R-IAI/UROSActionLib/internal/msgstore"
)

// Run resolves the configured targets and generates their messages. In
// watch mode it keeps regenerating on change until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger.With("run_id", uuid.NewString()))
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	targets, err := a.targets(ctx)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		logger.Warn("No action definitions found, nothing to generate.")
	} else {
		logger.Info("Generating messages.", "actions", len(targets), "workers", a.config.WorkerCount)
		if err := a.generate(ctx, targets); err != nil {
			return err
		}
	}

	if a.config.Watch {
		return a.watch(ctx, targets)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// targets resolves the configured inputs into compile targets.
func (a *App) targets(ctx context.Context) ([]actionpath.Target, error) {
	if a.config.ProjectPath != "" {
		model, err := a.loadProject(ctx)
		if err != nil {
			return nil, err
		}
		return model.Targets(ctx)
	}

	overrides := actionpath.Overrides{Package: a.config.Package, OutputDir: a.config.OutputDir}
	var targets []actionpath.Target
	for _, p := range a.config.ActionPaths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, ioerr.Wrap("read", p, err)
		}

		files := []string{p}
		if info.IsDir() {
			if files, err = fsutil.FindFilesByExtension(p, actionpath.Extension); err != nil {
				return nil, err
			}
		}
		for _, f := range files {
			t, err := actionpath.Resolve(f, overrides)
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}
	}
	return targets, nil
}

func (a *App) writer() msgstore.Writer {
	if a.config.DryRun {
		return inmemorystore.New()
	}
	return msgstore.NewDisk()
}

// generate compiles targets with at most WorkerCount compiles in flight.
// The first failure cancels compiles that have not started yet.
func (a *App) generate(ctx context.Context, targets []actionpath.Target) error {
	w := a.writer()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return a.compileTarget(gctx, t, w)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if store, ok := w.(*inmemorystore.Store); ok {
		return a.printDocuments(store, targets)
	}
	return nil
}

func (a *App) compileTarget(ctx context.Context, t actionpath.Target, w msgstore.Writer) error {
	ctx = ctxlog.With(ctx, "package", t.Identity.Package, "action", t.Identity.Stem)
	logger := ctxlog.FromContext(ctx)

	if a.config.MakeDirs && !a.config.DryRun {
		if err := fsutil.EnsureDir(t.OutputDir); err != nil {
			return fmt.Errorf("action %s/%s: %w", t.Identity.Package, t.Identity.Stem, err)
		}
	}

	if err := compiler.Compile(ctx, t.Source, t.Identity, t.OutputDir, w); err != nil {
		logger.Error("Action compilation failed.", "source", t.Source, "error", err)
		return fmt.Errorf("action %s/%s: %w", t.Identity.Package, t.Identity.Stem, err)
	}
	logger.Info("Action compiled.", "source", t.Source, "output_dir", t.OutputDir)
	return nil
}

// printDocuments writes every generated document to the app output in
// target order, each preceded by a "==> path <==" banner.
func (a *App) printDocuments(store *inmemorystore.Store, targets []actionpath.Target) error {
	for _, t := range targets {
		for _, v := range msggen.Variants {
			doc, ok := store.Get(t.OutputDir, v.FileName(t.Identity))
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(a.outW, "==> %s <==\n%s", filepath.Join(t.OutputDir, doc.FileName), doc.Bytes()); err != nil {
				return err
			}
		}
	}
	return nil
}
