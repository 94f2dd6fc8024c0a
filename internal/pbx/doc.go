// Package pbx implements the text-level editing engine for Xcode
// project.pbxproj files.
//
// The project file is treated as an opaque document: entries are located by
// the line shapes they take in the serialized format (build-file entry,
// file-reference entry, build-phase membership line) rather than by parsing
// the full pbxproj grammar. All mutation happens in memory; Save persists
// the result atomically.
package pbx
