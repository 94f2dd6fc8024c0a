package app

import (
	"context"
	"fmt"

	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/executor"
	"github.com/vk/pbxpatch/internal/pbx"
)

// Run executes the patch: load the project file, apply the pipeline, and
// save the result unless the run is a dry run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := pbx.Load(a.plan.ProjectPath)
	if err != nil {
		return err
	}
	a.logger.Info("Project file loaded.", "path", doc.Path())

	exec := executor.New(a.registry, defaultPipeline)
	results, err := exec.Run(ctx, doc, a.plan)
	if err != nil {
		return fmt.Errorf("patch failed: %w", err)
	}

	changed := 0
	for _, result := range results {
		changed += result.Changed
	}

	if a.config.DryRun {
		a.logger.Info("Dry run: project file left untouched.", "would_change", changed)
		fmt.Fprintf(a.outW, "Dry run: %d declaration(s) would change in %s\n", changed, a.plan.ProjectPath)
		return nil
	}

	if err := doc.Save(a.plan.Backup); err != nil {
		return err
	}

	a.logger.Info("Project file patched.", "path", a.plan.ProjectPath, "changed", changed)
	fmt.Fprintf(a.outW, "Patched %s: %d declaration(s) changed\n", a.plan.ProjectPath, changed)

	a.logger.Debug("App.Run method finished.")
	return nil
}
