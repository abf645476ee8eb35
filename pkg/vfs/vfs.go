// Package vfs splits one sample into the virtual files it declares.
package vfs

import (
	"path"

	"github.com/spf13/afero"
	"github.com/walteh/gotwoslash/pkg/directive"
	"gitlab.com/tozd/go/errors"
)

// VirtualFile is a named slice of the original document.
type VirtualFile struct {
	Filename string `json:"filename"`
	// Offset is the position of Content's first byte in the original document.
	Offset  int    `json:"offset"`
	Content string `json:"content"`
}

// End is the offset just past the file's last byte.
func (f VirtualFile) End() int {
	return f.Offset + len(f.Content)
}

// Owns reports whether the document offset falls inside this file.
func (f VirtualFile) Owns(offset int) bool {
	return offset >= f.Offset && offset < f.End()
}

// Split partitions doc at each "// @filename: name" line. The directive line
// itself belongs to no file. Empty segments are dropped.
func Split(doc string, events []directive.Event, defaultName, root string) []VirtualFile {
	current := path.Join(root, defaultName)
	files := make([]VirtualFile, 0, 1)

	index := 0
	for _, ev := range events {
		if ev.Kind != directive.FilenameDirective {
			continue
		}
		if content := doc[index:ev.Start]; content != "" {
			files = append(files, VirtualFile{Filename: current, Offset: index, Content: content})
		}
		current = path.Join(root, ev.Value)
		index = ev.End
	}

	if index < len(doc) {
		files = append(files, VirtualFile{Filename: current, Offset: index, Content: doc[index:]})
	}

	return files
}

// FileAt returns the file owning offset.
func FileAt(files []VirtualFile, offset int) (VirtualFile, bool) {
	for _, f := range files {
		if f.Owns(offset) {
			return f, true
		}
	}
	return VirtualFile{}, false
}

// Mount writes every file into fs, creating parent directories.
func Mount(fs afero.Fs, files []VirtualFile) error {
	for _, f := range files {
		if err := fs.MkdirAll(path.Dir(f.Filename), 0o755); err != nil {
			return errors.Errorf("creating directory for %s: %w", f.Filename, err)
		}
		if err := afero.WriteFile(fs, f.Filename, []byte(f.Content), 0o644); err != nil {
			return errors.Errorf("writing %s: %w", f.Filename, err)
		}
	}
	return nil
}
