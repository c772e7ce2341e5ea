// Package config provides YAML-based configuration loading for the
// recall game: board symbols, timing parameters, and punishment tiers.
package config

// RecallConfig contains all tunable parameters for the recall game.
type RecallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Penalty PenaltyConfig `yaml:"penalty"`
}

// BoardConfig defines the symbol pool used to populate boards.
type BoardConfig struct {
	// Symbols is the pool of distinct glyphs assigned to tile groups.
	// Must contain at least as many runes as the largest board has groups.
	Symbols string `yaml:"symbols"`
}

// TimingConfig defines all timing parameters in the game loop.
type TimingConfig struct {
	Preview  PreviewTimings  `yaml:"preview"`
	Mismatch MismatchTimings `yaml:"mismatch"`

	// FlipBeatMS is the short beat between a pick resolving and the
	// board reacting (mismatch hide, match lock-in).
	FlipBeatMS int `yaml:"flip_beat_ms"`

	// ReshuffleMS is how long the punishment reshuffle of hidden tiles takes.
	ReshuffleMS int `yaml:"reshuffle_ms"`

	// ReshuffleFastMS replaces ReshuffleMS for tiers flagged with
	// fast_endgame_shuffle once a third or fewer tiles remain hidden.
	ReshuffleFastMS int `yaml:"reshuffle_fast_ms"`

	// RoundGapMS is the pause between endless rounds.
	RoundGapMS int `yaml:"round_gap_ms"`
}

// PreviewTimings defines how long all tiles stay face-up at round start.
// Values are in seconds.
type PreviewTimings struct {
	Easy       float64   `yaml:"easy"`
	Medium     float64   `yaml:"medium"`
	Hard       float64   `yaml:"hard"`
	Impossible float64   `yaml:"impossible"`
	Tri        []float64 `yaml:"tri"` // indexed by level-1

	// Endless-mode preview shrinks per round: max(Floor, Base - Step*(round-1)).
	EndlessBase  float64 `yaml:"endless_base"`
	EndlessStep  float64 `yaml:"endless_step"`
	EndlessFloor float64 `yaml:"endless_floor"`
}

// MismatchTimings defines how long a failed pick stays visible before
// flipping back. Values are in milliseconds.
type MismatchTimings struct {
	Easy    int   `yaml:"easy"`
	Default int   `yaml:"default"` // all classic tiers above Easy
	Tri     []int `yaml:"tri"`     // indexed by level-1
}

// PenaltyConfig holds the punishment tier tables for both match-2 and
// match-3 play. Each tier is fully data-driven; the engine itself has
// no per-difficulty branching.
type PenaltyConfig struct {
	Classic ClassicPenalties `yaml:"classic"`
	Tri     TriPenalties     `yaml:"tri"`
}

// ClassicPenalties maps classic difficulties to punishment tiers.
type ClassicPenalties struct {
	Easy       PenaltyTier `yaml:"easy"`
	Medium     PenaltyTier `yaml:"medium"`
	Hard       PenaltyTier `yaml:"hard"`
	Impossible PenaltyTier `yaml:"impossible"`
}

// TriPenalties maps tri levels to punishment tiers.
type TriPenalties struct {
	Level1 PenaltyTier `yaml:"level1"`
	Level2 PenaltyTier `yaml:"level2"`
	Level3 PenaltyTier `yaml:"level3"`
	Level4 PenaltyTier `yaml:"level4"`
}

// PenaltyTier describes when a punishment fires and what it does.
type PenaltyTier struct {
	// Enabled gates the whole tier. Disabled tiers never punish.
	Enabled bool `yaml:"enabled"`

	// MismatchThreshold fires a punishment after this many consecutive
	// mismatches.
	MismatchThreshold int `yaml:"mismatch_threshold"`

	// RepeatPickThreshold fires a punishment after picking the same
	// first tile this many times in a row. Zero disables the trigger.
	RepeatPickThreshold int `yaml:"repeat_pick_threshold"`

	// RevealCount is how many hidden tiles are flashed face-up after
	// the reshuffle. Zero means reveal every hidden tile.
	RevealCount int `yaml:"reveal_count"`

	// RevealMS is how long the flashed tiles stay visible.
	RevealMS int `yaml:"reveal_ms"`

	// FastEndgameShuffle shortens the reshuffle phase once a third or
	// fewer of the board's tiles remain hidden.
	FastEndgameShuffle bool `yaml:"fast_endgame_shuffle"`

	// Stages, when non-empty, escalates the punishment: each firing
	// advances to the next stage, and the final stage repeats. Stage
	// progress survives consecutive-mismatch resets within a run.
	Stages []PenaltyStage `yaml:"stages"`
}

// PenaltyStage is one step of an escalating punishment ladder.
type PenaltyStage struct {
	RevealCount int `yaml:"reveal_count"`
	RevealMS    int `yaml:"reveal_ms"`
}

// ClassicTier returns the punishment tier for a classic difficulty code.
func (p PenaltyConfig) ClassicTier(code string) PenaltyTier {
	switch code {
	case "easy":
		return p.Classic.Easy
	case "medium":
		return p.Classic.Medium
	case "hard":
		return p.Classic.Hard
	case "impossible":
		return p.Classic.Impossible
	default:
		return PenaltyTier{}
	}
}

// TriTier returns the punishment tier for a tri level (1-4).
func (p PenaltyConfig) TriTier(level int) PenaltyTier {
	switch level {
	case 1:
		return p.Tri.Level1
	case 2:
		return p.Tri.Level2
	case 3:
		return p.Tri.Level3
	case 4:
		return p.Tri.Level4
	default:
		return PenaltyTier{}
	}
}

// TriPreviewSeconds returns the preview duration for a tri level (1-4).
func (t PreviewTimings) TriPreviewSeconds(level int) float64 {
	if level >= 1 && level <= len(t.Tri) {
		return t.Tri[level-1]
	}
	return t.Easy
}

// EndlessPreviewSeconds returns the shrinking preview for an endless round.
func (t PreviewTimings) EndlessPreviewSeconds(round uint32) float64 {
	secs := t.EndlessBase - t.EndlessStep*float64(round-1)
	if secs < t.EndlessFloor {
		secs = t.EndlessFloor
	}
	return secs
}

// TriMismatchMS returns the mismatch pause for a tri level (1-4).
func (m MismatchTimings) TriMismatchMS(level int) int {
	if level >= 1 && level <= len(m.Tri) {
		return m.Tri[level-1]
	}
	return m.Default
}
