package generation

import (
	"rogue-dungeon/components"
)

// MapGenerator defines the interface for map generation functionality.
// Renderers depend on this rather than on a concrete strategy.
type MapGenerator interface {
	Generate() (*components.Grid, error)
	SetSeed(seed int64)
}

var _ MapGenerator = (*DungeonGenerator)(nil)
