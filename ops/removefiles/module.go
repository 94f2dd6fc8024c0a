// Package removefiles implements the operation that strips stale source
// file declarations from the project document.
package removefiles

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/pbx"
	"github.com/vk/pbxpatch/internal/registry"
)

// OpName is the pipeline identifier for this operation.
const OpName = "remove_stale"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Apply removes every declaration of the three known shapes for each stale
// filename in the plan. Entries that are already absent are reported as
// warnings, not errors.
func Apply(ctx context.Context, doc *pbx.Document, plan *config.Plan) (*registry.Result, error) {
	logger := ctxlog.FromContext(ctx)
	result := &registry.Result{Op: OpName}

	if len(plan.Stale) == 0 {
		logger.Debug("No stale entries in plan, nothing to remove.")
		return result, nil
	}

	report := doc.RemoveStale(plan.Stale)
	for _, name := range plan.Stale {
		counts := report[name]
		result.Changed += counts.Total()
		logger.Debug("Removed declarations.",
			"file", name,
			"build_files", counts.BuildFiles,
			"file_refs", counts.FileRefs,
			"phase_entries", counts.PhaseEntries)
	}

	misses := report.Misses()
	sort.Strings(misses)
	for _, name := range misses {
		result.Warnings = append(result.Warnings, fmt.Sprintf("stale entry %s matched no declaration; already absent", name))
	}

	return result, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp(OpName, Apply)
}
