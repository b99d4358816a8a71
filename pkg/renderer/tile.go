package renderer

import (
	"image"
	"math/rand"
)

// tileSeedStride spreads tile seeds apart so neighbouring tiles of runs with
// adjacent base seeds do not share streams
const tileSeedStride = 7919

// Tile is a rectangular block of image pixels rendered by one worker
type Tile struct {
	ID     int             // Unique tile identifier, row-major from the top left
	Bounds image.Rectangle // Pixel bounds in image coordinates (row 0 at the top)
}

// NewTileGrid splits a width x height image into tiles of at most tileSize pixels per side
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	tileID := 0

	// Ceiling division
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// Random returns the tile's own deterministic random stream for a base seed
func (t Tile) Random(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed*tileSeedStride + int64(t.ID) + 1))
}
