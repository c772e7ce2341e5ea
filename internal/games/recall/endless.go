package recall

import "fmt"

// Endless mode chains rounds forever. The board level and punishment
// tier ramp with the round number.
const (
	endlessStartLevel     = 1
	endlessEasyEndRound   = 3
	endlessNormalEndRound = 6
	endlessHardEndRound   = 10
)

// LevelUp describes a board-size promotion between endless rounds.
type LevelUp struct {
	FromLevel int
	ToLevel   int
	Round     uint32
}

// Milestone marks every fifth survived round inside the Hard and
// Expert segments.
type Milestone struct {
	Segment  Difficulty // DifficultyHard or DifficultyImpossible
	Survived uint32
}

// EndlessLevelForRound returns the board level (1-4) for a round.
func EndlessLevelForRound(round uint32) int {
	switch {
	case round <= endlessEasyEndRound:
		return 1
	case round <= endlessNormalEndRound:
		return 2
	case round <= endlessHardEndRound:
		return 3
	default:
		return 4
	}
}

// EndlessSegmentForRound returns the classic difficulty whose
// punishment tier governs a round.
func EndlessSegmentForRound(round uint32) Difficulty {
	switch {
	case round <= endlessEasyEndRound:
		return DifficultyEasy
	case round <= endlessNormalEndRound:
		return DifficultyMedium
	case round <= endlessHardEndRound:
		return DifficultyHard
	default:
		return DifficultyImpossible
	}
}

// SurvivalRounds counts rounds survived since entering the Hard
// segment. The counter keeps running into the Expert segment; the
// first Hard round counts as zero.
func SurvivalRounds(round uint32) uint32 {
	hardStart := uint32(endlessNormalEndRound + 1)
	if round <= hardStart {
		return 0
	}
	return round - hardStart
}

// MilestoneForRound returns the survival milestone reached at a round,
// or nil. Milestones land on every fifth survived round once the Hard
// segment begins, tagged with the segment active at that round.
func MilestoneForRound(round uint32) *Milestone {
	segment := EndlessSegmentForRound(round)
	if segment != DifficultyHard && segment != DifficultyImpossible {
		return nil
	}
	survived := SurvivalRounds(round)
	if survived > 0 && survived%5 == 0 {
		return &Milestone{Segment: segment, Survived: survived}
	}
	return nil
}

// EndlessModeLabel renders the HUD label for an endless round: plain
// round numbers early on, a survival counter once the board stops
// growing.
func EndlessModeLabel(round uint32, level int) string {
	if EndlessSegmentForRound(round) == DifficultyImpossible {
		return fmt.Sprintf("Endless Expert Survival %d", SurvivalRounds(round))
	}
	if level >= 3 {
		return fmt.Sprintf("Endless Hard Survival %d", SurvivalRounds(round))
	}
	return fmt.Sprintf("Endless Round %d", round)
}

// endlessRoundForLevel returns the first round of a level segment.
// Used by the debug level-jump shortcut.
func endlessRoundForLevel(level int) uint32 {
	switch clampLevel(level) {
	case 1:
		return 1
	case 2:
		return endlessEasyEndRound + 1
	case 3:
		return endlessNormalEndRound + 1
	default:
		return endlessHardEndRound + 1
	}
}
