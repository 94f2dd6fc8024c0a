// Package addfiles implements the operation that inserts new build-file
// declarations before the plan's anchor.
package addfiles

import (
	"context"
	"fmt"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/pbx"
	"github.com/vk/pbxpatch/internal/registry"
)

// OpName is the pipeline identifier for this operation.
const OpName = "insert_files"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Apply synthesizes one build-file declaration per addition and inserts it
// before the anchor. Files already mentioned anywhere in the document are
// skipped so re-running a plan never duplicates entries.
func Apply(ctx context.Context, doc *pbx.Document, plan *config.Plan) (*registry.Result, error) {
	logger := ctxlog.FromContext(ctx)
	result := &registry.Result{Op: OpName}

	if len(plan.Additions) == 0 {
		logger.Debug("No additions in plan, nothing to insert.")
		return result, nil
	}

	report, err := doc.InsertBuildFiles(plan.Additions, plan.Anchor, plan.Policy())
	if err != nil {
		return nil, err
	}

	if !report.AnchorFound {
		result.Warnings = append(result.Warnings, fmt.Sprintf("anchor %q not found; new entries inserted at the top of the document", plan.Anchor))
	}
	for _, name := range report.Skipped {
		result.Warnings = append(result.Warnings, fmt.Sprintf("addition %s already present; skipped", name))
	}
	for _, add := range report.Inserted {
		result.Changed++
		logger.Debug("Inserted build-file declaration.", "file", add.FileName, "ref", add.RefID, "build", add.BuildID)
	}

	return result, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp(OpName, Apply)
}
