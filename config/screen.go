package config

// Map and screen layout configuration
const (
	// Dungeon dimensions in cells
	MapWidth  = 80
	MapHeight = 29

	// Tile size in pixels
	TileSize = 12

	// Window dimensions in pixels (derived from map dimensions)
	WindowWidth  = MapWidth * TileSize
	WindowHeight = MapHeight * TileSize
)

// GetScreenDimensions returns the logical screen size in pixels for a map of the given size
func GetScreenDimensions(mapWidth, mapHeight int) (width, height int) {
	return mapWidth * TileSize, mapHeight * TileSize
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
