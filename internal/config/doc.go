// Package config defines the format-agnostic patch plan model along with
// the Loader interface for reading plans from various sources.
//
// The `config.Plan` is the single source of truth for the executor: it
// names the project file to edit, the stale entries to remove, and the new
// entries to insert. Concrete loaders, such as for HCL and YAML, live in
// separate packages.
package config
