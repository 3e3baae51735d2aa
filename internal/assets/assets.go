// Package assets resolves card asset filenames against the category
// subdirectories of the input folder and defines the file-level error
// types shared by the renderers.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Asset categories, each one a fixed subdirectory of the input root.
const (
	Landscapes = "landscapes"
	Flags      = "flags"
	Transport  = "transport_icons"
	Continents = "continents"
)

// MissingAssetError reports a referenced asset file that does not exist.
type MissingAssetError struct {
	Category string
	Name     string
	Path     string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("missing %s asset %q (looked in %s)", e.Category, e.Name, e.Path)
}

// WriteError reports an output path that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Library resolves asset references against an input root directory.
type Library struct {
	Root string
}

// NewLibrary returns a library rooted at the given input folder.
func NewLibrary(root string) *Library {
	return &Library{Root: root}
}

// Resolve joins name under the category directory and verifies the file
// exists. Absolute names are used as-is, matching the original resolution
// rule: no search, plain concatenation.
func (l *Library) Resolve(category, name string) (string, error) {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(l.Root, category, name)
	}
	if _, err := os.Stat(path); err != nil {
		return "", &MissingAssetError{Category: category, Name: name, Path: path}
	}
	return path, nil
}

// Landscape resolves a landscape photo filename.
func (l *Library) Landscape(name string) (string, error) {
	return l.Resolve(Landscapes, name)
}

// Flag resolves a flag image filename.
func (l *Library) Flag(name string) (string, error) {
	return l.Resolve(Flags, name)
}

// TransportIcon resolves a transport icon identifier; icons are stored as
// "<id>.png" under the transport_icons directory.
func (l *Library) TransportIcon(id string) (string, error) {
	return l.Resolve(Transport, id+".png")
}

// ContinentOutline resolves the outline raster for a continent identifier,
// as produced by the continent extractor.
func (l *Library) ContinentOutline(id string) (string, error) {
	return l.Resolve(Continents, id+"_outline.png")
}

// DeckFont looks for a TTF/OTF font file directly under the input root
// and returns its path, or "" when the deck has no custom font. With
// several candidates the first in name order wins.
func (l *Library) DeckFont() string {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".ttf", ".otf":
			return filepath.Join(l.Root, entry.Name())
		}
	}
	return ""
}

// EnsureDir creates dir (and parents) if absent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: dir, Err: err}
	}
	return nil
}
