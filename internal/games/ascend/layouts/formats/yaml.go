// Package formats provides layout file parsers.
package formats

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ascend/internal/games/ascend/board"
)

// DefaultColor is used for pieces that name no color.
const DefaultColor = "blue"

// YAMLLayout is the on-disk shape of a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     int               `yaml:"rows,omitempty"`
	Cols     int               `yaml:"cols,omitempty"`
	Pieces   []YAMLPiece       `yaml:"pieces"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLPiece is a single piece in a layout file.
type YAMLPiece struct {
	ID    string `yaml:"id,omitempty"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Width int    `yaml:"width"`
	Color string `yaml:"color,omitempty"`
}

// Layout is a parsed layout. It is not validated against the board rules.
type Layout struct {
	ID       string
	Name     string
	Rows     int
	Cols     int
	Pieces   []board.Piece
	Metadata map[string]string
}

// ParseYAML parses a layout file. Missing dimensions fall back to the
// default board and pieces without an id get a random UUID.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows, cols := yl.Rows, yl.Cols
	if rows == 0 {
		rows = board.DefaultRows
	}
	if cols == 0 {
		cols = board.DefaultCols
	}

	layout := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     rows,
		Cols:     cols,
		Pieces:   make([]board.Piece, 0, len(yl.Pieces)),
		Metadata: yl.Metadata,
	}

	for _, p := range yl.Pieces {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		color := p.Color
		if color == "" {
			color = DefaultColor
		}
		layout.Pieces = append(layout.Pieces, board.Piece{
			ID:    id,
			Row:   p.Row,
			Col:   p.Col,
			Width: p.Width,
			Color: color,
		})
	}

	return layout, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
