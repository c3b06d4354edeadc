package tilegrid

// Config includes settings for a Grid
type Config struct {
	// in tiles
	MapHeight uint
	MapWidth  uint

	// in pixels
	TileWidth  uint
	TileHeight uint

	// which child of the level root holds the tiles
	LayerIndex int

	// if set, the tile layer is the first root child with this tag
	// & LayerIndex is ignored
	LayerName string
}

// DefaultConfig returns the config of a bg.oel level: 16x15 tiles of 16px,
// tiles held by the third child of the root.
func DefaultConfig() *Config {
	return &Config{
		TileWidth:  16,
		TileHeight: 16,
		MapWidth:   16,
		MapHeight:  15,
		LayerIndex: 2,
	}
}
