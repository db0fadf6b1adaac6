package components

import (
	"image/color"
	"strings"
)

// Cell classifies a single grid position
type Cell uint8

// Cell types
const (
	CellWall Cell = iota
	CellOpen
)

// Cells lists every Cell variant in declaration order
var Cells = []Cell{CellWall, CellOpen}

func (c Cell) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellOpen:
		return "open"
	}
	return "unknown"
}

// Grid stores the dungeon cells in a fixed row-major buffer
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid creates a new grid with the given dimensions, every cell a wall
func NewGrid(width, height int) *Grid {
	// CellWall is the zero value
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// InBounds reports whether (row, col) lies on the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// At returns the cell at (row, col). Out of bounds is considered a wall.
func (g *Grid) At(row, col int) Cell {
	if !g.InBounds(row, col) {
		return CellWall
	}
	return g.cells[row*g.Width+col]
}

// IsWall returns true if the cell at (row, col) is a wall
func (g *Grid) IsWall(row, col int) bool {
	return g.At(row, col) == CellWall
}

// SetCell sets the cell at the given position, ignoring positions off the grid
func (g *Grid) SetCell(row, col int, c Cell) {
	if g.InBounds(row, col) {
		g.cells[row*g.Width+col] = c
	}
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(row, col int, c Cell)) {
	for i, c := range g.cells {
		fn(i/g.Width, i%g.Width, c)
	}
}

// Row returns a copy of one row
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.Height {
		return nil
	}
	out := make([]Cell, g.Width)
	copy(out, g.cells[row*g.Width:(row+1)*g.Width])
	return out
}

// Count returns how many cells have the given type
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// FillBorder forces the outermost ring of the grid to walls
func (g *Grid) FillBorder() {
	for col := 0; col < g.Width; col++ {
		g.SetCell(0, col, CellWall)
		g.SetCell(g.Height-1, col, CellWall)
	}
	for row := 0; row < g.Height; row++ {
		g.SetCell(row, 0, CellWall)
		g.SetCell(row, g.Width-1, CellWall)
	}
}

// String renders the grid with the default tile mapping, one line per row
func (g *Grid) String() string {
	return g.Render(NewTileMapping())
}

// Render draws the grid as text using the glyphs of the given mapping
func (g *Grid) Render(mapping *TileMapping) string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for row := 0; row < g.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Width; col++ {
			b.WriteRune(mapping.Get(g.At(row, col)).Glyph)
		}
	}
	return b.String()
}

// TileDefinition describes the visual appearance of a cell type
type TileDefinition struct {
	Glyph rune        // Character used by text renderers
	FG    color.Color // Foreground color
	BG    color.Color // Background color (optional)
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
	}
}

// TileMapping maps cell types to their visual representation
type TileMapping struct {
	Definitions map[Cell]TileDefinition
}

// NewTileMapping creates the default mapping
func NewTileMapping() *TileMapping {
	mapping := &TileMapping{
		Definitions: make(map[Cell]TileDefinition),
	}
	mapping.Definitions[CellWall] = NewTileDefinition('#', color.RGBA{64, 64, 64, 255})
	mapping.Definitions[CellOpen] = NewTileDefinition('.', color.RGBA{210, 190, 150, 255})
	return mapping
}

// Get returns the visual definition for a given cell type
func (t *TileMapping) Get(c Cell) TileDefinition {
	if def, exists := t.Definitions[c]; exists {
		return def
	}

	// Return a default if the cell type isn't defined
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined cells
	}
}
