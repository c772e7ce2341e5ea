// Package savefile persists the last interrupted run to disk so a
// player can resume it after quitting mid-round. One slot, last
// writer wins.
package savefile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version identifies the save format. Files with any other version
// are treated as absent.
const Version = 1

const saveFileName = "last_run.yaml"

// Tile status codes used inside saved runs.
const (
	TileHidden  = "hidden"
	TileFlipped = "flipped"
	TileMatched = "matched"
)

// SavedTile is one board tile as stored on disk.
type SavedTile struct {
	Status string `yaml:"status"`
	Value  string `yaml:"value"`
}

// SavedRun is a complete snapshot of an interrupted run.
type SavedRun struct {
	Version         int    `yaml:"version"`
	Mode            string `yaml:"mode"` // easy, medium, hard, impossible, tri, endless
	TriLevel        int    `yaml:"tri_level"`
	EndlessLevel    int    `yaml:"endless_level"`
	EndlessRound    uint32 `yaml:"endless_round"`
	SecondsElapsed  uint32 `yaml:"seconds_elapsed"`
	RunMismatches   uint32 `yaml:"run_mismatches"`
	RunMatches      uint32 `yaml:"run_matches"`
	MismatchStreak  int    `yaml:"mismatch_streak"`
	PunishStage     int    `yaml:"punish_stage"`
	LastFirstPick   int    `yaml:"last_first_pick"` // -1 when no pick recorded
	SameFirstStreak int    `yaml:"same_first_streak"`

	FlippedIndices []int       `yaml:"flipped_indices,omitempty"`
	Tiles          []SavedTile `yaml:"tiles"`
}

// Store reads and writes the single save slot under a directory.
// A nil Store has no slot: saves are dropped and loads find nothing.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir resolves to
// ~/.recall.
func NewStore(dir string) *Store {
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, ".recall")
		}
	}
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, saveFileName)
}

// Save writes the run atomically: the data lands in a temp file that
// is renamed over the slot, so a crash mid-write never corrupts an
// existing save.
func (s *Store) Save(run *SavedRun) error {
	if s == nil {
		return nil
	}
	if s.dir == "" {
		return fmt.Errorf("savefile: no save directory")
	}
	if len(run.Tiles) == 0 {
		return fmt.Errorf("savefile: refusing to save empty board")
	}

	run.Version = Version
	data, err := yaml.Marshal(run)
	if err != nil {
		return fmt.Errorf("savefile: marshal: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("savefile: create dir: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("savefile: write temp: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("savefile: rename: %w", err)
	}
	return nil
}

// Load reads the save slot. Returns (nil, nil) when no usable save
// exists: missing file, unreadable YAML, wrong version, or an empty
// board all count as "no save".
func (s *Store) Load() (*SavedRun, error) {
	if s == nil || s.dir == "" {
		return nil, nil
	}
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("savefile: read: %w", err)
	}

	var run SavedRun
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, nil
	}
	if run.Version != Version || len(run.Tiles) == 0 {
		return nil, nil
	}

	run.TriLevel = clampLevel(run.TriLevel)
	run.EndlessLevel = clampLevel(run.EndlessLevel)
	if run.EndlessRound < 1 {
		run.EndlessRound = 1
	}
	return &run, nil
}

// Has reports whether a loadable save exists.
func (s *Store) Has() bool {
	run, err := s.Load()
	return err == nil && run != nil
}

// Clear removes the save slot. Missing files are not an error.
func (s *Store) Clear() error {
	if s == nil || s.dir == "" {
		return nil
	}
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("savefile: remove: %w", err)
	}
	return nil
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}
