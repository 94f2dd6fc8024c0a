package executor

import (
	"context"
	"fmt"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/pbx"
	"github.com/vk/pbxpatch/internal/registry"
)

// Executor orchestrates the end-to-end execution of the patch pipeline.
type Executor struct {
	registry *registry.Registry
	pipeline []string
}

// New creates an Executor for the given registry and operation order. The
// pipeline must already have been validated against the registry.
func New(reg *registry.Registry, pipeline []string) *Executor {
	return &Executor{registry: reg, pipeline: pipeline}
}

// Run applies every operation in order against the document. It returns
// the per-operation results, or the first error encountered.
func (e *Executor) Run(ctx context.Context, doc *pbx.Document, plan *config.Plan) ([]*registry.Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]*registry.Result, 0, len(e.pipeline))

	for _, name := range e.pipeline {
		handler, ok := e.registry.Handler(name)
		if !ok {
			return results, fmt.Errorf("no handler registered for operation %q", name)
		}

		logger.Debug("Running operation.", "op", name)
		result, err := handler(ctx, doc, plan)
		if err != nil {
			return results, fmt.Errorf("operation %s failed: %w", name, err)
		}

		for _, warning := range result.Warnings {
			logger.Warn(warning, "op", name)
		}
		logger.Info("Operation finished.", "op", name, "changed", result.Changed)
		results = append(results, result)
	}

	return results, nil
}
