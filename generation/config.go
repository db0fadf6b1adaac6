package generation

import (
	"fmt"
	"math"
	"strings"
)

// DungeonType enum to identify different dungeon generation methods
type DungeonType int

const (
	// DungeonTypeBSP partitions the map into sections and carves one room per section
	DungeonTypeBSP DungeonType = iota
	// DungeonTypeRandomRooms drops random non-overlapping rooms onto the map
	DungeonTypeRandomRooms
)

func (t DungeonType) String() string {
	switch t {
	case DungeonTypeBSP:
		return "bsp"
	case DungeonTypeRandomRooms:
		return "rooms"
	}
	return fmt.Sprintf("DungeonType(%d)", int(t))
}

// UnmarshalText parses "bsp" or "rooms"
func (t *DungeonType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "bsp", "":
		*t = DungeonTypeBSP
	case "rooms", "random", "random-rooms":
		*t = DungeonTypeRandomRooms
	default:
		return fmt.Errorf("unknown dungeon type %q", string(text))
	}
	return nil
}

// Default generator options
const (
	DefaultMinSectionHeight    = 6
	DefaultMinSectionWidth     = 8
	DefaultMinRoomHeight       = 4
	DefaultMinRoomWidth        = 6
	DefaultSkipRoomProbability = 0.20
	DefaultSkipCellProbability = 0.05

	DefaultMaxRooms          = 8
	DefaultMaxRoomHeight     = 7
	DefaultMaxRoomWidth      = 9
	DefaultPlacementAttempts = 5000
)

// Config holds the options recognised by the generator
type Config struct {
	Strategy DungeonType `env:"DUNGEON_STRATEGY"`

	MinSectionHeight int `env:"DUNGEON_MIN_SECTION_HEIGHT"`
	MinSectionWidth  int `env:"DUNGEON_MIN_SECTION_WIDTH"`
	MinRoomHeight    int `env:"DUNGEON_MIN_ROOM_HEIGHT"`
	MinRoomWidth     int `env:"DUNGEON_MIN_ROOM_WIDTH"`

	SkipRoomProbability float64 `env:"DUNGEON_SKIP_ROOM_PROBABILITY"`
	SkipCellProbability float64 `env:"DUNGEON_SKIP_CELL_PROBABILITY"`

	// Used by DungeonTypeRandomRooms only
	MaxRooms          int `env:"DUNGEON_MAX_ROOMS"`
	MaxRoomHeight     int `env:"DUNGEON_MAX_ROOM_HEIGHT"`
	MaxRoomWidth      int `env:"DUNGEON_MAX_ROOM_WIDTH"`
	PlacementAttempts int `env:"DUNGEON_PLACEMENT_ATTEMPTS"`

	// Seed makes generation reproducible. Nil seeds from the clock.
	Seed *int64 `env:"DUNGEON_SEED"`
}

// DefaultConfig returns the default BSP options
func DefaultConfig() Config {
	return Config{
		Strategy:            DungeonTypeBSP,
		MinSectionHeight:    DefaultMinSectionHeight,
		MinSectionWidth:     DefaultMinSectionWidth,
		MinRoomHeight:       DefaultMinRoomHeight,
		MinRoomWidth:        DefaultMinRoomWidth,
		SkipRoomProbability: DefaultSkipRoomProbability,
		SkipCellProbability: DefaultSkipCellProbability,
		MaxRooms:            DefaultMaxRooms,
		MaxRoomHeight:       DefaultMaxRoomHeight,
		MaxRoomWidth:        DefaultMaxRoomWidth,
		PlacementAttempts:   DefaultPlacementAttempts,
	}
}

// WithSeed returns a copy of the config pinned to seed
func (c Config) WithSeed(seed int64) Config {
	c.Seed = &seed
	return c
}

// Validate checks the options against a width x height grid
func (c Config) Validate(width, height int) error {
	if width < 3 || height < 3 {
		return configErrorf("grid", "%dx%d is too small", width, height)
	}
	if c.MinRoomHeight < 1 {
		return configErrorf("min_room_height", "must be at least 1, got %d", c.MinRoomHeight)
	}
	if c.MinRoomWidth < 1 {
		return configErrorf("min_room_width", "must be at least 1, got %d", c.MinRoomWidth)
	}
	if err := validateProbability("skip_room_probability", c.SkipRoomProbability); err != nil {
		return err
	}
	if err := validateProbability("skip_cell_probability", c.SkipCellProbability); err != nil {
		return err
	}

	switch c.Strategy {
	case DungeonTypeBSP:
		return c.validateBSP(width, height)
	case DungeonTypeRandomRooms:
		return c.validateRandomRooms(width, height)
	}
	return configErrorf("strategy", "unknown value %d", int(c.Strategy))
}

func (c Config) validateBSP(width, height int) error {
	// A split child is at least MinSection+1 cells and a room needs one
	// cell of padding on each side.
	if c.MinSectionHeight <= c.MinRoomHeight {
		return configErrorf("min_section_height", "must exceed min_room_height (%d), got %d",
			c.MinRoomHeight, c.MinSectionHeight)
	}
	if c.MinSectionWidth <= c.MinRoomWidth {
		return configErrorf("min_section_width", "must exceed min_room_width (%d), got %d",
			c.MinRoomWidth, c.MinSectionWidth)
	}
	if 2*c.MinSectionHeight >= height {
		return configErrorf("min_section_height", "must be less than half the grid height (%d), got %d",
			height, c.MinSectionHeight)
	}
	if 2*c.MinSectionWidth >= width {
		return configErrorf("min_section_width", "must be less than half the grid width (%d), got %d",
			width, c.MinSectionWidth)
	}
	return nil
}

func (c Config) validateRandomRooms(width, height int) error {
	if c.MaxRooms < 1 {
		return configErrorf("max_rooms", "must be at least 1, got %d", c.MaxRooms)
	}
	if c.PlacementAttempts < 1 {
		return configErrorf("placement_attempts", "must be at least 1, got %d", c.PlacementAttempts)
	}
	if c.MaxRoomHeight < c.MinRoomHeight {
		return configErrorf("max_room_height", "must be at least min_room_height (%d), got %d",
			c.MinRoomHeight, c.MaxRoomHeight)
	}
	if c.MaxRoomWidth < c.MinRoomWidth {
		return configErrorf("max_room_width", "must be at least min_room_width (%d), got %d",
			c.MinRoomWidth, c.MaxRoomWidth)
	}
	// Rooms start at row 1 and must stop short of the bottom border
	if c.MaxRoomHeight+2 > height {
		return configErrorf("max_room_height", "does not fit a grid of height %d, got %d",
			height, c.MaxRoomHeight)
	}
	if c.MaxRoomWidth+3 > width {
		return configErrorf("max_room_width", "does not fit a grid of width %d, got %d",
			width, c.MaxRoomWidth)
	}
	return nil
}

func validateProbability(field string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return configErrorf(field, "must be within [0, 1], got %v", p)
	}
	return nil
}
