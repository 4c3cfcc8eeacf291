// Package layouts loads initial Ascend boards from YAML files.
package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/ascend/internal/games/ascend/board"
	"github.com/vovakirdan/ascend/internal/games/ascend/layouts/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Layout is a validated initial board.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Pieces   []board.Piece
	Metadata map[string]string
	FilePath string
}

// Board returns the board geometry for this layout. Without boss colors
// the defaults are used.
func (l Layout) Board(bossColors ...string) board.Board {
	return board.New(l.Rows, l.Cols, bossColors...)
}

// Snapshot returns a copy of the layout pieces, safe to hand to a game.
func (l Layout) Snapshot() []board.Piece {
	return board.Clone(l.Pieces)
}

// Loader loads layouts from a directory tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader for the directory at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Embedded returns a loader for the layouts compiled into the binary.
func Embedded() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("layouts: builtin: %v", err))
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// Open loads a single layout file from an arbitrary path.
func Open(file string) (Layout, error) {
	return NewLoader(filepath.Dir(file)).LoadFile(filepath.Base(file))
}

// LoadAll recursively scans and loads all layout files.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		layout, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("layouts: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadFile loads and validates a single layout file. The path is relative
// to the loader root.
func (l *Loader) LoadFile(p string) (Layout, error) {
	full := filepath.Join(l.Root, filepath.FromSlash(p))

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: reading file %s: %w", full, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: parsing file %s: %w", full, err)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	layout := Layout{
		ID:       id,
		Name:     parsed.Name,
		Rows:     parsed.Rows,
		Cols:     parsed.Cols,
		Pieces:   parsed.Pieces,
		Metadata: parsed.Metadata,
		FilePath: full,
	}
	if layout.Name == "" {
		layout.Name = id
	}

	if err := layout.Board().Validate(layout.Pieces); err != nil {
		return Layout{}, fmt.Errorf("layouts: %s: %w", full, err)
	}

	return layout, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("layouts: layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, layout := range layouts {
		ids[i] = layout.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
