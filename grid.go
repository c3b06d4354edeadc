/* file adds the grid we project level tiles on to.
 */
package tilegrid

import (
	"fmt"
)

// Empty is the id of a cell nothing was placed on
const Empty = "0"

// Grid is a fixed size, row major array of tile ids.
type Grid struct {
	Width      int // in tiles
	Height     int // in tiles
	TileWidth  int // in pixels
	TileHeight int // in pixels
	cells      [][]string
}

// New returns a grid with every cell set to Empty.
func New(cfg *Config) *Grid {
	g := &Grid{
		Width:      int(cfg.MapWidth),
		Height:     int(cfg.MapHeight),
		TileWidth:  int(cfg.TileWidth),
		TileHeight: int(cfg.TileHeight),
		cells:      make([][]string, cfg.MapHeight),
	}
	for row := range g.cells {
		g.cells[row] = make([]string, cfg.MapWidth)
		for col := range g.cells[row] {
			g.cells[row][col] = Empty
		}
	}
	return g
}

// Convert builds a grid from the tile layer of the given level.
// Placements are applied in document order, so the last tile placed on
// a cell wins.
func Convert(l *Level, cfg *Config) (*Grid, error) {
	var (
		layer *Layer
		err   error
	)
	if cfg.LayerName != "" {
		layer, err = l.LayerByName(cfg.LayerName)
	} else {
		layer, err = l.Layer(cfg.LayerIndex)
	}
	if err != nil {
		return nil, err
	}

	g := New(cfg)
	for i, p := range layer.Placements {
		if err := g.Place(p); err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
	}
	return g, nil
}

// Place sets the cell under the placement's pixel position to its id.
func (g *Grid) Place(p *Placement) error {
	x, y, err := p.Coords()
	if err != nil {
		return err
	}
	id, err := p.TileID()
	if err != nil {
		return err
	}
	return g.Set(floorDiv(y, g.TileHeight), floorDiv(x, g.TileWidth), id)
}

// Set the cell at (row, col) to `id`.
func (g *Grid) Set(row, col int, id string) error {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return fmt.Errorf("%w: (row %d, col %d) is outside %dx%d", ErrOutOfRange, row, col, g.Height, g.Width)
	}
	g.cells[row][col] = id
	return nil
}

// At returns the id at (row, col) or Empty if out of bounds.
func (g *Grid) At(row, col int) string {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return Empty
	}
	return g.cells[row][col]
}

// Rows returns a copy of the grid, top to bottom.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.cells))
	for i, r := range g.cells {
		out[i] = append([]string{}, r...)
	}
	return out
}

// Count returns how many cells are not Empty
func (g *Grid) Count() int {
	n := 0
	for _, r := range g.cells {
		for _, id := range r {
			if id != Empty {
				n++
			}
		}
	}
	return n
}

// floorDiv rounds towards negative infinity, unlike `/`.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
