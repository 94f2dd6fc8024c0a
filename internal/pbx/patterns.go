package pbx

import (
	"fmt"
	"regexp"
)

// The three line shapes a source file takes inside a serialized pbxproj:
//
//	ID /* Name.swift in Sources */ = {isa = PBXBuildFile; fileRef = REF /* Name.swift */; };
//	REF /* Name.swift */ = {isa = PBXFileReference; ... };
//	ID /* Name.swift in Sources */,
//
// The first associates a file with the Sources build phase, the second
// declares the file itself, and the third lists the build file inside the
// phase's files block. Matching is purely textual; the declaration body is
// consumed as an opaque brace-delimited blob.

// buildFileEntryPattern matches a PBXBuildFile declaration for filename,
// including its leading whitespace and trailing semicolon.
func buildFileEntryPattern(filename string) *regexp.Regexp {
	return regexp.MustCompile(`\s*\w+\s*/\* ` + regexp.QuoteMeta(filename) + ` in Sources \*/ = \{[^}]+\};`)
}

// fileRefEntryPattern matches a standalone PBXFileReference declaration for
// filename.
func fileRefEntryPattern(filename string) *regexp.Regexp {
	return regexp.MustCompile(`\s*\w+\s*/\* ` + regexp.QuoteMeta(filename) + ` \*/ = \{[^}]+\};`)
}

// phaseMembershipPattern matches the membership line that lists the build
// file inside a build phase's files block, up to and including the trailing
// comma separator.
func phaseMembershipPattern(filename string) *regexp.Regexp {
	return regexp.MustCompile(`\s*\w+\s*/\* ` + regexp.QuoteMeta(filename) + ` in Sources \*/,`)
}

// BuildFileLine renders a new PBXBuildFile declaration in the same shape
// buildFileEntryPattern matches, indented for the PBXBuildFile section.
func BuildFileLine(buildID, refID, filename string) string {
	return fmt.Sprintf("\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n", buildID, filename, refID, filename)
}
