package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pbxpatch/internal/config"
	"github.com/vk/pbxpatch/internal/ctxlog"
	"github.com/vk/pbxpatch/internal/fsutil"
	"github.com/vk/pbxpatch/internal/pbx"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a plan file.
type fileRoot struct {
	Patches []*patchBlock `hcl:"patch,block"`
}

// patchBlock mirrors one `patch` block.
type patchBlock struct {
	Project         string      `hcl:"project"`
	Remove          []string    `hcl:"remove,optional"`
	Anchor          string      `hcl:"anchor,optional"`
	OnMissingAnchor string      `hcl:"on_missing_anchor,optional"`
	Backup          bool        `hcl:"backup,optional"`
	Adds            []*addBlock `hcl:"add,block"`
}

// addBlock mirrors one `add "<filename>"` block inside a patch.
type addBlock struct {
	FileName string `hcl:"name,label"`
	RefID    string `hcl:"ref,optional"`
	BuildID  string `hcl:"build,optional"`
}

// Load reads the plan at path, which may be a single .hcl file or a
// directory containing exactly one plan split across .hcl files. Exactly
// one `patch` block must be present across all parsed files.
func (l *Loader) Load(ctx context.Context, path string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.planFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl plan files found at %s", path)
	}
	logger.Debug("Discovered HCL plan files.", "count", len(files))

	parser := hclparse.NewParser()
	var patches []*patchBlock

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		patches = append(patches, root.Patches...)
	}

	if len(patches) == 0 {
		return nil, fmt.Errorf("no patch block found in %s", path)
	}
	if len(patches) > 1 {
		return nil, fmt.Errorf("expected exactly one patch block, found %d", len(patches))
	}

	plan := translate(patches[0])
	logger.Debug("HCL plan loaded.", "stale", len(plan.Stale), "additions", len(plan.Additions))
	return plan, nil
}

// translate converts the decoded HCL block into the format-agnostic plan.
func translate(block *patchBlock) *config.Plan {
	plan := &config.Plan{
		ProjectPath:     block.Project,
		Stale:           block.Remove,
		Anchor:          block.Anchor,
		OnMissingAnchor: block.OnMissingAnchor,
		Backup:          block.Backup,
	}
	for _, add := range block.Adds {
		plan.Additions = append(plan.Additions, pbx.Addition{
			FileName: add.FileName,
			RefID:    add.RefID,
			BuildID:  add.BuildID,
		})
	}
	return plan
}

// planFiles resolves path to the list of .hcl files to parse.
func (l *Loader) planFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing plan path %s: %w", path, err)
	}
	if info.IsDir() {
		return fsutil.FindFilesByExtension(path, ".hcl")
	}
	return []string{path}, nil
}
