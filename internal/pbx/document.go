package pbx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document holds the full text of a project file along with its on-disk
// location. The content is mutated in place by the removal and insertion
// operations and written back with Save.
type Document struct {
	path     string
	content  string
	original string
	mode     os.FileMode
}

// Load reads the project file at path into memory. A missing or unreadable
// file is a fatal error for the run; no partial recovery is attempted.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("project path %s is a directory, not a file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", path, err)
	}

	return &Document{
		path:     path,
		content:  string(data),
		original: string(data),
		mode:     info.Mode().Perm(),
	}, nil
}

// NewDocument creates an in-memory document that is not backed by a file.
// Saving such a document is an error; it exists for exercising the editing
// operations directly.
func NewDocument(content string) *Document {
	return &Document{content: content, original: content, mode: 0644}
}

// Path returns the on-disk location the document was loaded from, or an
// empty string for purely in-memory documents.
func (d *Document) Path() string {
	return d.path
}

// String returns the current document text.
func (d *Document) String() string {
	return d.content
}

// Contains reports whether the given filename appears anywhere in the
// current document text. This is the duplicate guard used before inserting
// new entries.
func (d *Document) Contains(filename string) bool {
	return strings.Contains(d.content, filename)
}

// Modified reports whether any operation changed the document since Load.
func (d *Document) Modified() bool {
	return d.content != d.original
}

// Save writes the current content back to the original path. The write goes
// to a temporary file in the same directory first and is renamed over the
// original, so a crash mid-write cannot truncate the project file. When
// backup is true the pre-patch content is preserved next to the original
// with a .bak suffix before the rename.
func (d *Document) Save(backup bool) error {
	if d.path == "" {
		return fmt.Errorf("document has no backing file to save to")
	}

	if backup {
		bakPath := d.path + ".bak"
		if err := os.WriteFile(bakPath, []byte(d.original), d.mode); err != nil {
			return fmt.Errorf("failed to write backup file %s: %w", bakPath, err)
		}
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, ".pbxpatch-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(d.content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temporary file %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(d.mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set mode on temporary file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temporary file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, d.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace project file %s: %w", d.path, err)
	}

	return nil
}
