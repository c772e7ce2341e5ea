package recall

// Rank grades a finished run by pick precision.
type Rank int

const (
	RankC Rank = iota
	RankB
	RankA
	RankS
)

// String returns the single-letter grade.
func (r Rank) String() string {
	switch r {
	case RankS:
		return "S"
	case RankA:
		return "A"
	case RankB:
		return "B"
	default:
		return "C"
	}
}

// RankFromString parses a single-letter grade.
func RankFromString(s string) (Rank, bool) {
	switch s {
	case "S":
		return RankS, true
	case "A":
		return RankA, true
	case "B":
		return RankB, true
	case "C":
		return RankC, true
	default:
		return RankC, false
	}
}

// PrecisionPct computes pick precision as a rounded percentage.
// A run with no attempts counts as perfect.
func PrecisionPct(matches, mismatches uint32) int {
	attempts := matches + mismatches
	if attempts == 0 {
		return 100
	}
	return int(float64(matches)/float64(attempts)*100.0 + 0.5)
}

// RankForPrecision grades a precision percentage. Higher levels demand
// more accuracy for A and B grades; S always requires a perfect run.
func RankForPrecision(level, precisionPct int) Rank {
	if precisionPct >= 100 {
		return RankS
	}

	var aThreshold, bThreshold int
	switch clampLevel(level) {
	case 1:
		aThreshold, bThreshold = 85, 70
	case 2:
		aThreshold, bThreshold = 90, 80
	case 3:
		aThreshold, bThreshold = 88, 75
	default:
		aThreshold, bThreshold = 85, 70
	}

	switch {
	case precisionPct >= aThreshold:
		return RankA
	case precisionPct >= bThreshold:
		return RankB
	default:
		return RankC
	}
}

// VictoryTitle returns the headline shown on the victory screen.
func VictoryTitle(rank Rank) string {
	switch rank {
	case RankS:
		return "Flawless Memory!"
	case RankA:
		return "Sharp Mind!"
	case RankB:
		return "Keep the Momentum!"
	default:
		return "Growing Strong!"
	}
}

// RoundResult summarizes a finished classic or tri run.
type RoundResult struct {
	Mode         string // "classic" or "tri"
	Level        int    // 1-4
	TimeSecs     uint32
	PrecisionPct int
	Rank         Rank
}

// EndlessRoundResult summarizes one cleared endless round.
type EndlessRoundResult struct {
	Round           uint32
	SegmentLevel    int // 1-4
	SegmentSurvival uint32
	TimeSecs        uint32
}

// newEndlessRoundResult captures the record payload for a cleared
// round. Survival counts start at the Hard breakpoint; earlier
// segments report the raw round number.
func newEndlessRoundResult(round uint32, timeSecs uint32) EndlessRoundResult {
	segment := EndlessSegmentForRound(round)
	survival := round
	if segment == DifficultyHard || segment == DifficultyImpossible {
		survival = SurvivalRounds(round)
	}
	return EndlessRoundResult{
		Round:           round,
		SegmentLevel:    ClassicLevel(segment),
		SegmentSurvival: survival,
		TimeSecs:        timeSecs,
	}
}
