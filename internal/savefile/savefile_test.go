package savefile

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleRun() *SavedRun {
	return &SavedRun{
		Mode:           "medium",
		TriLevel:       3,
		EndlessLevel:   1,
		EndlessRound:   1,
		SecondsElapsed: 42,
		RunMismatches:  3,
		RunMatches:     5,
		LastFirstPick:  -1,
		FlippedIndices: []int{7},
		Tiles: []SavedTile{
			{Status: TileFlipped, Value: "A"},
			{Status: TileHidden, Value: "A"},
			{Status: TileMatched, Value: "B"},
			{Status: TileMatched, Value: "B"},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save(sampleRun()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil {
		t.Fatal("load returned no run")
	}

	want := sampleRun()
	want.Version = Version
	if got.Mode != want.Mode || got.SecondsElapsed != want.SecondsElapsed {
		t.Errorf("loaded run = %+v, want %+v", got, want)
	}
	if got.LastFirstPick != -1 {
		t.Errorf("last first pick = %d, want -1", got.LastFirstPick)
	}
	if len(got.Tiles) != len(want.Tiles) {
		t.Fatalf("loaded %d tiles, want %d", len(got.Tiles), len(want.Tiles))
	}
	for i, tile := range want.Tiles {
		if got.Tiles[i] != tile {
			t.Errorf("tile %d = %+v, want %+v", i, got.Tiles[i], tile)
		}
	}
	if len(got.FlippedIndices) != 1 || got.FlippedIndices[0] != 7 {
		t.Errorf("flipped = %v, want [7]", got.FlippedIndices)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	run, err := store.Load()
	if err != nil {
		t.Fatalf("load of empty slot errored: %v", err)
	}
	if run != nil {
		t.Errorf("load of empty slot = %+v, want nil", run)
	}
	if store.Has() {
		t.Error("empty slot reports a save")
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	raw := []byte("version: 99\nmode: medium\ntiles:\n  - status: hidden\n    value: A\n")
	if err := os.WriteFile(filepath.Join(dir, saveFileName), raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load errored: %v", err)
	}
	if got != nil {
		t.Errorf("wrong version loaded: %+v", got)
	}
}

func TestLoadTreatsGarbageAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, saveFileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	run, err := store.Load()
	if err != nil {
		t.Fatalf("load errored: %v", err)
	}
	if run != nil {
		t.Errorf("garbage loaded: %+v", run)
	}
}

func TestLoadClampsLevels(t *testing.T) {
	store := NewStore(t.TempDir())

	run := sampleRun()
	run.TriLevel = 9
	run.EndlessLevel = 0
	run.EndlessRound = 0
	if err := store.Save(run); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil || got == nil {
		t.Fatalf("load = %+v, %v", got, err)
	}
	if got.TriLevel != 4 || got.EndlessLevel != 1 || got.EndlessRound != 1 {
		t.Errorf("levels = tri %d endless %d round %d, want clamped 4/1/1",
			got.TriLevel, got.EndlessLevel, got.EndlessRound)
	}
}

func TestSaveRefusesEmptyBoard(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save(&SavedRun{Mode: "easy"}); err == nil {
		t.Error("empty board saved without error")
	}
}

func TestClear(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Clear(); err != nil {
		t.Errorf("clearing an empty slot errored: %v", err)
	}

	if err := store.Save(sampleRun()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !store.Has() {
		t.Fatal("slot not reported after save")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if store.Has() {
		t.Error("slot still reported after clear")
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	store := NewStore(t.TempDir())

	first := sampleRun()
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}

	second := sampleRun()
	second.Mode = "tri"
	second.SecondsElapsed = 99
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.Load()
	if err != nil || got == nil {
		t.Fatalf("load = %+v, %v", got, err)
	}
	if got.Mode != "tri" || got.SecondsElapsed != 99 {
		t.Errorf("slot = %+v, want the second save", got)
	}
}
