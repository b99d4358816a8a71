package renderer

import (
	"image"
	"testing"
)

func TestNewTileGridCoversImageOnce(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"ragged edges", 100, 50, 32, 8},
		{"tile larger than image", 10, 7, 32, 1},
		{"single pixel tiles", 3, 2, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := make([]int, tt.width*tt.height)
			frame := image.Rect(0, 0, tt.width, tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile %d to have ID %d, got %d", i, i, tile.ID)
				}
				if !tile.Bounds.In(frame) {
					t.Errorf("Tile %d bounds %v exceed the image %v", i, tile.Bounds, frame)
				}
				if tile.Bounds.Dx() > tt.tileSize || tile.Bounds.Dy() > tt.tileSize {
					t.Errorf("Tile %d bounds %v larger than tile size %d", i, tile.Bounds, tt.tileSize)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}

			for i, count := range covered {
				if count != 1 {
					t.Fatalf("Pixel (%d,%d) covered %d times", i%tt.width, i/tt.width, count)
				}
			}
		})
	}
}

func TestTileRandomIsDeterministicAndDistinct(t *testing.T) {
	tiles := NewTileGrid(64, 32, 32)

	a := tiles[0].Random(42).Int63()
	b := tiles[0].Random(42).Int63()
	if a != b {
		t.Errorf("Same tile and seed should give the same stream: %d vs %d", a, b)
	}

	if c := tiles[1].Random(42).Int63(); c == a {
		t.Error("Different tiles should get different streams")
	}
	if d := tiles[0].Random(43).Int63(); d == a {
		t.Error("Different seeds should give different streams")
	}
}
