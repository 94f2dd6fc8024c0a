package pbx

import (
	"fmt"
	"strings"
)

// MissingAnchorPolicy controls what happens when the anchor substring is not
// present in the document.
type MissingAnchorPolicy string

const (
	// AnchorFail aborts the insertion step with an error. This is the
	// default: silently inserting at the top of the file is almost never
	// what the user wants.
	AnchorFail MissingAnchorPolicy = "fail"

	// AnchorPrepend falls back to inserting at position 0 of the document,
	// reproducing the legacy behavior of naive find-based insertion.
	AnchorPrepend MissingAnchorPolicy = "prepend"
)

// ParseMissingAnchorPolicy validates and converts a policy string.
func ParseMissingAnchorPolicy(s string) (MissingAnchorPolicy, error) {
	switch MissingAnchorPolicy(s) {
	case AnchorFail, AnchorPrepend:
		return MissingAnchorPolicy(s), nil
	}
	return "", fmt.Errorf("invalid on_missing_anchor policy %q: must be 'fail' or 'prepend'", s)
}

// Addition describes one new source file to declare in the project.
// RefID and BuildID are 24-digit hex object identifiers; either may be left
// empty in which case EnsureIDs generates one.
type Addition struct {
	FileName string
	RefID    string
	BuildID  string
}

// EnsureIDs fills in any missing object identifiers with freshly generated
// ones and returns the completed addition.
func (a Addition) EnsureIDs() Addition {
	if a.RefID == "" {
		a.RefID = NewObjectID()
	}
	if a.BuildID == "" {
		a.BuildID = NewObjectID()
	}
	return a
}

// InsertReport records the outcome of an insertion run.
type InsertReport struct {
	// Inserted holds the additions that were written, with their final
	// (possibly generated) identifiers.
	Inserted []Addition
	// Skipped holds filenames that already appeared somewhere in the
	// document and were therefore left alone.
	Skipped []string
	// AnchorFound reports whether the anchor substring was located.
	AnchorFound bool
}

// InsertBuildFiles synthesizes one PBXBuildFile declaration per addition
// and places it immediately before the first occurrence of the anchor
// substring. Additions whose filename already appears anywhere in the
// document are skipped, so the operation never duplicates an entry.
//
// When the anchor is absent the policy decides: AnchorFail returns an error
// without touching the document, AnchorPrepend inserts at position 0.
func (d *Document) InsertBuildFiles(adds []Addition, anchor string, policy MissingAnchorPolicy) (InsertReport, error) {
	report := InsertReport{}

	pos := strings.Index(d.content, anchor)
	report.AnchorFound = pos >= 0
	if pos < 0 {
		switch policy {
		case AnchorPrepend:
			pos = 0
		default:
			return report, fmt.Errorf("anchor %q not found in document", anchor)
		}
	}

	for _, add := range adds {
		if d.Contains(add.FileName) {
			report.Skipped = append(report.Skipped, add.FileName)
			continue
		}

		add = add.EnsureIDs()
		line := BuildFileLine(add.BuildID, add.RefID, add.FileName)
		d.content = d.content[:pos] + line + d.content[pos:]
		pos += len(line)

		report.Inserted = append(report.Inserted, add)
	}

	return report, nil
}
