package structure

import (
	"path"
	"path/filepath"
	"strings"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

// Entry is the value side of a description node. It is implemented by
// EmptyFile, FileList and Subdirectory only.
type Entry interface {
	isEntry()
}

// EmptyFile marks the node's key as a file created with no content.
type EmptyFile struct{}

// FileList marks the node's key as a directory. Every non-empty name is
// created as an empty file inside it; empty names are placeholders and
// create nothing.
type FileList struct {
	Names []string
}

// Subdirectory marks the node's key as a directory described by a nested
// description.
type Subdirectory struct {
	Description Description
}

func (EmptyFile) isEntry()    {}
func (FileList) isEntry()     {}
func (Subdirectory) isEntry() {}

// Node is one key of a description together with its entry.
type Node struct {
	Name  string
	Entry Entry
}

// Description is an ordered list of nodes. Order follows the source document
// where the format allows it.
type Description []Node

// Lookup returns the entry stored under name.
func (d Description) Lookup(name string) (Entry, bool) {
	for _, n := range d {
		if n.Name == name {
			return n.Entry, true
		}
	}
	return nil, false
}

// set appends name, or replaces the entry of an earlier node with the same
// name. index maps names to their position in d.
func (d Description) set(index map[string]int, name string, entry Entry) Description {
	if i, ok := index[name]; ok {
		d[i].Entry = entry
		return d
	}
	index[name] = len(d)
	return append(d, Node{Name: name, Entry: entry})
}

// Kind is the kind of filesystem entry a planned path resolves to.
type Kind int

const (
	// KindDir is a directory
	KindDir Kind = iota
	// KindFile is an empty regular file
	KindFile
)

func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

// joinKeyPath builds the slash separated key path used in error messages.
func joinKeyPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "/" + key
}

// validateSegment rejects names that would land outside the directory they
// are declared in. Nested separators are allowed.
func validateSegment(keyPath, name string) error {
	if name == "" {
		return seederrors.NewStructureError(keyPath, "empty names are not allowed")
	}
	slashed := filepath.ToSlash(name)
	if strings.HasPrefix(slashed, "/") || filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return seederrors.NewStructureError(keyPath, "absolute paths are not allowed")
	}
	cleaned := path.Clean(slashed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return seederrors.NewStructureError(keyPath, "path escapes its parent directory")
	}
	return nil
}
