// Package verify implements the post-patch invariant check: no stale
// declaration survives, and every addition appears exactly once.
package verify

import (
	"context"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/pbx"
	"github.com/vk/pbxpatch/internal/registry"
)

// OpName is the pipeline identifier for this operation.
const OpName = "verify"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Apply re-checks the document against the plan. It runs last, so a
// failure here means an earlier operation left the document in a state the
// plan does not describe, and the run aborts before saving.
func Apply(ctx context.Context, doc *pbx.Document, plan *config.Plan) (*registry.Result, error) {
	logger := ctxlog.FromContext(ctx)

	if err := doc.Verify(plan.Stale, plan.Additions); err != nil {
		return nil, err
	}

	logger.Debug("Document verified against plan.")
	return &registry.Result{Op: OpName}, nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterOp(OpName, Apply)
}
