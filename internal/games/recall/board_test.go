package recall

import (
	"math/rand"
	"testing"

	"github.com/azolotarev/tui-recall/internal/config"
)

func testSymbols() string {
	return config.DefaultRecallConfig().Board.Symbols
}

func TestDealTilesGroupCounts(t *testing.T) {
	grids := []GridSpec{
		ClassicGrid(DifficultyEasy),
		ClassicGrid(DifficultyMedium),
		ClassicGrid(DifficultyHard),
		ClassicGrid(DifficultyImpossible),
		TriGrid(1), TriGrid(2), TriGrid(3), TriGrid(4),
	}

	for _, grid := range grids {
		rng := rand.New(rand.NewSource(7))
		tiles := dealTiles(grid, testSymbols(), rng)

		if len(tiles) != grid.Total() {
			t.Fatalf("grid %dx%d: dealt %d tiles, want %d", grid.Cols, grid.Rows, len(tiles), grid.Total())
		}

		counts := make(map[string]int)
		for _, tile := range tiles {
			if tile.Status != TileHidden {
				t.Fatalf("grid %dx%d: dealt tile face-up", grid.Cols, grid.Rows)
			}
			counts[tile.Value]++
		}
		for value, n := range counts {
			if n != grid.MatchSize {
				t.Errorf("grid %dx%d: value %q appears %d times, want %d", grid.Cols, grid.Rows, value, n, grid.MatchSize)
			}
		}
	}
}

func TestDealTilesRemainderPreMatched(t *testing.T) {
	grid := GridSpec{Cols: 5, Rows: 1, MatchSize: 2}
	rng := rand.New(rand.NewSource(7))
	tiles := dealTiles(grid, testSymbols(), rng)

	if len(tiles) != 5 {
		t.Fatalf("dealt %d tiles, want 5", len(tiles))
	}
	last := tiles[4]
	if last.Status != TileMatched || last.Value != "" {
		t.Errorf("remainder tile = %+v, want pre-matched filler", last)
	}
}

func TestDealTilesDeterministic(t *testing.T) {
	grid := ClassicGrid(DifficultyImpossible)
	a := dealTiles(grid, testSymbols(), rand.New(rand.NewSource(42)))
	b := dealTiles(grid, testSymbols(), rand.New(rand.NewSource(42)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d differs between same-seed deals: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestReshuffleHiddenPreservesMultiset(t *testing.T) {
	grid := ClassicGrid(DifficultyMedium)
	rng := rand.New(rand.NewSource(3))
	tiles := dealTiles(grid, testSymbols(), rng)

	// Pin a few tiles face-up and matched; they must not move.
	tiles[0].Status = TileMatched
	tiles[1].Status = TileFlipped
	pinnedMatched := tiles[0].Value
	pinnedFlipped := tiles[1].Value

	before := make(map[string]int)
	for _, tile := range tiles {
		if tile.Status == TileHidden {
			before[tile.Value]++
		}
	}

	reshuffleHiddenValues(tiles, rng)

	if tiles[0].Value != pinnedMatched || tiles[1].Value != pinnedFlipped {
		t.Error("reshuffle moved a non-hidden tile")
	}

	after := make(map[string]int)
	for _, tile := range tiles {
		if tile.Status == TileHidden {
			after[tile.Value]++
		}
	}
	if len(before) != len(after) {
		t.Fatalf("hidden value set changed: %v vs %v", before, after)
	}
	for value, n := range before {
		if after[value] != n {
			t.Errorf("value %q count changed from %d to %d", value, n, after[value])
		}
	}
}

func TestReshuffleHiddenNeedsTwoTiles(t *testing.T) {
	tiles := []Tile{
		{Value: "A", Status: TileHidden},
		{Value: "A", Status: TileMatched},
		{Value: "B", Status: TileMatched},
		{Value: "B", Status: TileMatched},
	}
	reshuffleHiddenValues(tiles, rand.New(rand.NewSource(1)))
	if tiles[0].Value != "A" {
		t.Error("single hidden tile should not move")
	}
}
