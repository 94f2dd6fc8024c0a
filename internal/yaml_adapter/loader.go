// Package yaml_adapter implements the config.Loader interface for patch
// plans written in YAML.
package yaml_adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/pbx"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// planFile mirrors the YAML document layout of a plan.
type planFile struct {
	Project         string     `yaml:"project"`
	Remove          []string   `yaml:"remove"`
	Add             []addEntry `yaml:"add"`
	Anchor          string     `yaml:"anchor"`
	OnMissingAnchor string     `yaml:"on_missing_anchor"`
	Backup          bool       `yaml:"backup"`
}

type addEntry struct {
	File  string `yaml:"file"`
	Ref   string `yaml:"ref"`
	Build string `yaml:"build"`
}

// Load reads a single YAML plan file. Unlike the HCL loader, a YAML plan
// is always one file; directories are rejected.
func (l *Loader) Load(ctx context.Context, path string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing plan path %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("YAML plan path %s is a directory; point at a single file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("plan file %s is empty", path)
	}

	var file planFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, err)
	}

	plan := &config.Plan{
		ProjectPath:     file.Project,
		Stale:           file.Remove,
		Anchor:          file.Anchor,
		OnMissingAnchor: file.OnMissingAnchor,
		Backup:          file.Backup,
	}
	for _, add := range file.Add {
		plan.Additions = append(plan.Additions, pbx.Addition{
			FileName: add.File,
			RefID:    add.Ref,
			BuildID:  add.Build,
		})
	}

	logger.Debug("YAML plan loaded.", "stale", len(plan.Stale), "additions", len(plan.Additions))
	return plan, nil
}
