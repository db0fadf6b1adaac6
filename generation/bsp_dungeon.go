package generation

import (
	"fmt"

	"rogue-dungeon/components"
)

// Section is a rectangle produced by partitioning the map
type Section struct {
	Row, Col, Height, Width int
}

// Room represents a room within the dungeon
type Room struct {
	Row, Col, Height, Width int
}

// Contains reports whether (row, col) lies inside the section
func (s Section) Contains(row, col int) bool {
	return row >= s.Row && row < s.Row+s.Height && col >= s.Col && col < s.Col+s.Width
}

// InteriorContains reports whether (row, col) lies inside the section without
// touching its edge
func (s Section) InteriorContains(row, col int) bool {
	return row > s.Row && row < s.Row+s.Height-1 && col > s.Col && col < s.Col+s.Width-1
}

// Overlaps reports whether two sections share at least one cell
func (s Section) Overlaps(other Section) bool {
	return s.Row < other.Row+other.Height && other.Row < s.Row+s.Height &&
		s.Col < other.Col+other.Width && other.Col < s.Col+s.Width
}

// Touches reports whether the rooms overlap or sit directly next to each other
func (r Room) Touches(other Room) bool {
	return r.Row <= other.Row+other.Height && other.Row <= r.Row+r.Height &&
		r.Col <= other.Col+other.Width && other.Col <= r.Col+r.Width
}

// CanSplit reports whether a span of size cells can be cut in two while
// leaving both halves above min
func CanSplit(size, min int) bool {
	return (size-3)/2 > min
}

// GenerateBSPDungeon creates a dungeon using binary space partitioning
func (g *DungeonGenerator) GenerateBSPDungeon() (*components.Grid, error) {
	// The grid starts as solid rock
	grid := components.NewGrid(g.width, g.height)

	// The root excludes the outer ring, so the border is never carved
	root := Section{Row: 1, Col: 1, Height: g.height - 2, Width: g.width - 2}

	sections, err := g.Partition(root)
	if err != nil {
		return nil, err
	}

	var rooms []Room
	for _, section := range sections {
		room, err := g.carveRoom(grid, section)
		if err != nil {
			return nil, err
		}
		if room != nil {
			rooms = append(rooms, *room)
		}
	}

	g.sections = sections
	g.rooms = rooms

	return grid, nil
}

// Partition recursively splits a section and returns the leaves
func (g *DungeonGenerator) Partition(section Section) ([]Section, error) {
	splitH := CanSplit(section.Height, g.config.MinSectionHeight)
	splitV := CanSplit(section.Width, g.config.MinSectionWidth)

	if !splitH && !splitV {
		return []Section{section}, nil
	}

	var first, second Section

	// Prefer vertical cuts for wide sections so leaves don't get elongated
	if !splitH || (splitV && section.Width > 2*section.Height) {
		at, err := g.splitPoint(section.Width, g.config.MinSectionWidth)
		if err != nil {
			return nil, fmt.Errorf("split %+v vertically: %w", section, err)
		}
		first = Section{Row: section.Row, Col: section.Col, Height: section.Height, Width: at}
		second = Section{
			Row:    section.Row,
			Col:    section.Col + at + 1,
			Height: section.Height,
			Width:  section.Width - at - 1,
		}
	} else {
		at, err := g.splitPoint(section.Height, g.config.MinSectionHeight)
		if err != nil {
			return nil, fmt.Errorf("split %+v horizontally: %w", section, err)
		}
		first = Section{Row: section.Row, Col: section.Col, Height: at, Width: section.Width}
		second = Section{
			Row:    section.Row + at + 1,
			Col:    section.Col,
			Height: section.Height - at - 1,
			Width:  section.Width,
		}
	}

	leaves, err := g.Partition(first)
	if err != nil {
		return nil, err
	}
	rest, err := g.Partition(second)
	if err != nil {
		return nil, err
	}
	return append(leaves, rest...), nil
}

// splitPoint returns the size of the first child. The cell right after it
// is the gap between the two children.
func (g *DungeonGenerator) splitPoint(size, min int) (int, error) {
	mid := (size - 1) / 2
	offset := ((size - 3) - 2*min) / 2
	if offset == 0 {
		return mid, nil
	}

	delta, err := randRange(g.rng, -offset, offset)
	if err != nil {
		return 0, err
	}
	return mid + delta, nil
}

// carveRoom opens a random room inside the section interior. It returns nil
// when the section is left as solid rock.
func (g *DungeonGenerator) carveRoom(grid *components.Grid, section Section) (*Room, error) {
	if chance(g.rng, g.config.SkipRoomProbability) {
		return nil, nil
	}

	// The last row and column a room may occupy
	lastRow := section.Row + section.Height - 2
	lastCol := section.Col + section.Width - 2

	row, err := randRange(g.rng, section.Row+1, lastRow-g.config.MinRoomHeight+1)
	if err != nil {
		return nil, fmt.Errorf("room row in %+v: %w", section, err)
	}
	col, err := randRange(g.rng, section.Col+1, lastCol-g.config.MinRoomWidth+1)
	if err != nil {
		return nil, fmt.Errorf("room column in %+v: %w", section, err)
	}
	height, err := randRange(g.rng, g.config.MinRoomHeight, lastRow-row+1)
	if err != nil {
		return nil, fmt.Errorf("room height in %+v: %w", section, err)
	}
	width, err := randRange(g.rng, g.config.MinRoomWidth, lastCol-col+1)
	if err != nil {
		return nil, fmt.Errorf("room width in %+v: %w", section, err)
	}

	room := &Room{Row: row, Col: col, Height: height, Width: width}

	for y := room.Row; y < room.Row+room.Height; y++ {
		for x := room.Col; x < room.Col+room.Width; x++ {
			// Leave the odd cell as rock for a rougher outline
			if chance(g.rng, g.config.SkipCellProbability) {
				continue
			}
			grid.SetCell(y, x, components.CellOpen)
		}
	}

	return room, nil
}
