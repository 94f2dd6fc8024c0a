// Package registry provides the central "glue" for the operation system.
//
// The Registry stores mappings between operation names used by the patch
// pipeline (e.g. "remove_stale") and the compiled Go handlers that
// implement them. The pipeline is validated against the registry during
// application startup, so a missing handler is caught before any file is
// touched.
package registry
