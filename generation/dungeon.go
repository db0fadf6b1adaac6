package generation

import (
	"fmt"
	"math/rand"
	"time"

	"rogue-dungeon/components"
)

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	width   int
	height  int
	config  Config
	rng     Random
	logFunc func(string)

	// Results of the most recent generation
	sections []Section
	rooms    []Room
}

// NewDungeonGenerator creates a generator for a width x height map.
// The config is validated here so that a bad option never reaches the recursion.
func NewDungeonGenerator(width, height int, config Config) (*DungeonGenerator, error) {
	if err := config.Validate(width, height); err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if config.Seed != nil {
		seed = *config.Seed
	}

	return &DungeonGenerator{
		width:  width,
		height: height,
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate builds a single dungeon grid. Identical arguments with a seed set
// always produce identical grids.
func Generate(width, height int, config Config) (*components.Grid, error) {
	g, err := NewDungeonGenerator(width, height, config)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetRandom replaces the random source
func (g *DungeonGenerator) SetRandom(rng Random) {
	g.rng = rng
}

// SetLogFunc installs a sink for generation summaries. Nil disables logging.
func (g *DungeonGenerator) SetLogFunc(logFunc func(string)) {
	g.logFunc = logFunc
}

// Config returns the validated options
func (g *DungeonGenerator) Config() Config {
	return g.config
}

// Sections returns the leaf sections of the most recent BSP generation
func (g *DungeonGenerator) Sections() []Section {
	return append([]Section(nil), g.sections...)
}

// Rooms returns the rooms carved by the most recent generation
func (g *DungeonGenerator) Rooms() []Room {
	return append([]Room(nil), g.rooms...)
}

// Generate runs the configured strategy and returns a complete grid.
// On error no grid is returned.
func (g *DungeonGenerator) Generate() (*components.Grid, error) {
	var (
		grid *components.Grid
		err  error
	)

	switch g.config.Strategy {
	case DungeonTypeRandomRooms:
		grid, err = g.GenerateRandomRooms()
	default:
		grid, err = g.GenerateBSPDungeon()
	}
	if err != nil {
		return nil, err
	}

	g.logf("Generated %s dungeon %dx%d: %d sections, %d rooms, %d open cells",
		g.config.Strategy, g.width, g.height, len(g.sections), len(g.rooms), grid.Count(components.CellOpen))

	return grid, nil
}

// GenerateRandomRooms places up to MaxRooms random rooms, rejecting any room
// that touches or overlaps one already placed
func (g *DungeonGenerator) GenerateRandomRooms() (*components.Grid, error) {
	grid := components.NewGrid(g.width, g.height)
	g.sections = nil
	g.rooms = nil

	for i := 0; i < g.config.PlacementAttempts && len(g.rooms) < g.config.MaxRooms; i++ {
		room, err := g.randomRoom()
		if err != nil {
			return nil, err
		}

		overlaps := false
		for _, other := range g.rooms {
			if room.Touches(other) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			g.rooms = append(g.rooms, room)
		}
	}

	for _, room := range g.rooms {
		for row := room.Row; row < room.Row+room.Height; row++ {
			for col := room.Col; col < room.Col+room.Width; col++ {
				grid.SetCell(row, col, components.CellOpen)
			}
		}
	}

	return grid, nil
}

// randomRoom picks a room anywhere inside the border
func (g *DungeonGenerator) randomRoom() (Room, error) {
	row, err := randRange(g.rng, 1, g.height-g.config.MaxRoomHeight-1)
	if err != nil {
		return Room{}, err
	}
	col, err := randRange(g.rng, 1, g.width-g.config.MaxRoomWidth-2)
	if err != nil {
		return Room{}, err
	}
	height, err := randRange(g.rng, g.config.MinRoomHeight, g.config.MaxRoomHeight)
	if err != nil {
		return Room{}, err
	}
	width, err := randRange(g.rng, g.config.MinRoomWidth, g.config.MaxRoomWidth)
	if err != nil {
		return Room{}, err
	}
	return Room{Row: row, Col: col, Height: height, Width: width}, nil
}

func (g *DungeonGenerator) logf(format string, args ...any) {
	if g.logFunc != nil {
		g.logFunc(fmt.Sprintf(format, args...))
	}
}
