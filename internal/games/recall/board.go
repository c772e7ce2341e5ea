package recall

import (
	"math/rand"
	"strings"
)

// TileStatus is the face state of a single board tile.
type TileStatus int

const (
	TileHidden TileStatus = iota
	TileFlipped
	TileMatched
)

// Tile is one cell on the board. Value identifies its match group.
type Tile struct {
	Value  string
	Status TileStatus
}

// dealTiles builds a fresh face-down board for the given layout. Each
// symbol appears exactly MatchSize times. Cells that do not divide
// evenly into groups are dealt pre-matched with an empty value so the
// board stays rectangular.
func dealTiles(grid GridSpec, symbols string, rng *rand.Rand) []Tile {
	total := grid.Total()
	groupCount := total / grid.MatchSize
	remainder := total % grid.MatchSize

	pool := splitSymbols(symbols)
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	values := make([]string, 0, total)
	for i := 0; i < groupCount; i++ {
		symbol := pool[i%len(pool)]
		for j := 0; j < grid.MatchSize; j++ {
			values = append(values, symbol)
		}
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	tiles := make([]Tile, 0, total)
	for _, value := range values {
		tiles = append(tiles, Tile{Value: value, Status: TileHidden})
	}
	for i := 0; i < remainder; i++ {
		tiles = append(tiles, Tile{Status: TileMatched})
	}
	return tiles
}

// reshuffleHiddenValues permutes the values of hidden tiles in place.
// Flipped and matched tiles keep their positions. Boards with fewer
// than two hidden tiles are left untouched.
func reshuffleHiddenValues(tiles []Tile, rng *rand.Rand) {
	var indices []int
	var values []string
	for i, tile := range tiles {
		if tile.Status == TileHidden {
			indices = append(indices, i)
			values = append(values, tile.Value)
		}
	}
	if len(indices) < 2 {
		return
	}

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	for k, idx := range indices {
		tiles[idx].Value = values[k]
	}
}

// hiddenIndices returns the positions of all face-down tiles.
func hiddenIndices(tiles []Tile) []int {
	var out []int
	for i, tile := range tiles {
		if tile.Status == TileHidden {
			out = append(out, i)
		}
	}
	return out
}

func countHidden(tiles []Tile) int {
	n := 0
	for _, tile := range tiles {
		if tile.Status == TileHidden {
			n++
		}
	}
	return n
}

func allMatched(tiles []Tile) bool {
	for _, tile := range tiles {
		if tile.Status != TileMatched {
			return false
		}
	}
	return len(tiles) > 0
}

func splitSymbols(symbols string) []string {
	out := make([]string, 0, len(symbols))
	for _, r := range symbols {
		if strings.TrimSpace(string(r)) == "" {
			continue
		}
		out = append(out, string(r))
	}
	if len(out) == 0 {
		out = []string{"?"}
	}
	return out
}
