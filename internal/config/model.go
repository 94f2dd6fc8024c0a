package config

import (
	"fmt"

	"github.com/vk/pbxpatch/internal/pbx"
)

// Plan is the unified, format-agnostic representation of one patch run
// against a single project file.
type Plan struct {
	// ProjectPath locates the project.pbxproj file to edit.
	ProjectPath string

	// Stale lists source filenames whose declarations must be removed.
	Stale []string

	// Additions lists new source files to declare. Object IDs may be left
	// empty and are generated during insertion.
	Additions []pbx.Addition

	// Anchor is the exact substring of an existing declaration before
	// which new entries are inserted. Required when Additions is
	// non-empty.
	Anchor string

	// OnMissingAnchor decides what happens when Anchor is absent from the
	// document. Empty means the default policy (fail).
	OnMissingAnchor string

	// Backup preserves the pre-patch file content with a .bak suffix.
	Backup bool
}

// Policy returns the validated missing-anchor policy, applying the default
// when the plan leaves it unset.
func (p *Plan) Policy() pbx.MissingAnchorPolicy {
	if p.OnMissingAnchor == "" {
		return pbx.AnchorFail
	}
	policy, err := pbx.ParseMissingAnchorPolicy(p.OnMissingAnchor)
	if err != nil {
		// Validate rejects unknown policies before execution starts.
		return pbx.AnchorFail
	}
	return policy
}

// Validate checks the plan for internal consistency. It is called once by
// the application after loading, before any file is touched.
func (p *Plan) Validate() error {
	if p.ProjectPath == "" {
		return fmt.Errorf("plan is missing the project file path")
	}
	if len(p.Stale) == 0 && len(p.Additions) == 0 {
		return fmt.Errorf("plan has no work: neither stale entries nor additions")
	}
	if len(p.Additions) > 0 && p.Anchor == "" {
		return fmt.Errorf("plan declares additions but no anchor to insert before")
	}
	if p.OnMissingAnchor != "" {
		if _, err := pbx.ParseMissingAnchorPolicy(p.OnMissingAnchor); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(p.Additions))
	for _, add := range p.Additions {
		if add.FileName == "" {
			return fmt.Errorf("addition is missing a filename")
		}
		if _, dup := seen[add.FileName]; dup {
			return fmt.Errorf("addition %s is declared more than once", add.FileName)
		}
		seen[add.FileName] = struct{}{}

		if add.RefID != "" && !pbx.IsObjectID(add.RefID) {
			return fmt.Errorf("addition %s has malformed ref ID %q: expected 24 hex digits", add.FileName, add.RefID)
		}
		if add.BuildID != "" && !pbx.IsObjectID(add.BuildID) {
			return fmt.Errorf("addition %s has malformed build ID %q: expected 24 hex digits", add.FileName, add.BuildID)
		}
	}

	for _, name := range p.Stale {
		if name == "" {
			return fmt.Errorf("stale entry list contains an empty filename")
		}
	}

	return nil
}
