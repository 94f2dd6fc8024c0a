// Package hcl_adapter implements the config.Loader interface for patch
// plans written in HCL.
package hcl_adapter
