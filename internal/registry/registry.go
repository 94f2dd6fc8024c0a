package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/pbx"
)

// Module is the interface that all operation packages implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Handler applies one patch operation to the in-memory document.
type Handler func(ctx context.Context, doc *pbx.Document, plan *config.Plan) (*Result, error)

// Result describes what one operation did, for reporting.
type Result struct {
	// Op is the name of the operation that produced this result.
	Op string
	// Changed counts declarations added or removed by the operation.
	Changed int
	// Warnings lists conditions worth surfacing that are not errors,
	// such as stale entries that were already absent.
	Warnings []string
}

// Registry holds all registered operation handlers for a single
// application instance.
type Registry struct {
	handlers map[string]Handler
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// RegisterOp binds an operation name to its handler. Registering the same
// name twice is a programmer error.
func (r *Registry) RegisterOp(name string, h Handler) {
	if _, dup := r.handlers[name]; dup {
		panic(fmt.Sprintf("registry: operation %q registered twice", name))
	}
	r.handlers[name] = h
}

// Handler looks up the handler for an operation name.
func (r *Registry) Handler(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns all registered operation names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidatePipeline checks that every operation in the pipeline has a
// registered handler.
func (r *Registry) ValidatePipeline(pipeline []string) error {
	for _, name := range pipeline {
		if _, ok := r.handlers[name]; !ok {
			return fmt.Errorf("pipeline references unregistered operation %q (registered: %v)", name, r.Names())
		}
	}
	return nil
}
