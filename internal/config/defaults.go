package config

import (
	_ "embed"
)

//go:embed defaults/recall.yaml
var defaultRecallYAML []byte

// DefaultRecallConfig returns the default recall configuration.
func DefaultRecallConfig() RecallConfig {
	return RecallConfig{
		Board: BoardConfig{
			Symbols: "ABCDEFGHJKLMNPQRSTUVWXYZ023456789@#$%&*+=",
		},
		Timing: TimingConfig{
			Preview: PreviewTimings{
				Easy:         3.0,
				Medium:       2.0,
				Hard:         1.2,
				Impossible:   1.4,
				Tri:          []float64{3.6, 2.6, 1.8, 1.4},
				EndlessBase:  2.5,
				EndlessStep:  0.15,
				EndlessFloor: 0.7,
			},
			Mismatch: MismatchTimings{
				Easy:    750,
				Default: 500,
				Tri:     []int{800, 650, 550, 500},
			},
			FlipBeatMS:      260,
			ReshuffleMS:     760,
			ReshuffleFastMS: 620,
			RoundGapMS:      500,
		},
		Penalty: PenaltyConfig{
			Classic: ClassicPenalties{
				Easy: PenaltyTier{Enabled: false},
				Medium: PenaltyTier{
					Enabled:           true,
					MismatchThreshold: 5,
					RevealCount:       2,
					RevealMS:          320,
				},
				Hard: PenaltyTier{
					Enabled:           true,
					MismatchThreshold: 2,
					RevealCount:        0, // all hidden tiles
					RevealMS:           950,
					FastEndgameShuffle: true,
				},
				Impossible: PenaltyTier{
					Enabled:             true,
					MismatchThreshold:   3,
					RepeatPickThreshold: 2,
					Stages: []PenaltyStage{
						{RevealCount: 7, RevealMS: 650},
						{RevealCount: 5, RevealMS: 540},
						{RevealCount: 4, RevealMS: 430},
					},
				},
			},
			Tri: TriPenalties{
				Level1: PenaltyTier{Enabled: false},
				Level2: PenaltyTier{
					Enabled:           true,
					MismatchThreshold: 5,
					RevealCount:       3,
					RevealMS:          340,
				},
				Level3: PenaltyTier{
					Enabled:           true,
					MismatchThreshold: 3,
					RevealCount:       0,
					RevealMS:          950,
				},
				Level4: PenaltyTier{
					Enabled:             true,
					MismatchThreshold:   3,
					RepeatPickThreshold: 2,
					Stages: []PenaltyStage{
						{RevealCount: 9, RevealMS: 700},
						{RevealCount: 7, RevealMS: 590},
						{RevealCount: 5, RevealMS: 480},
					},
				},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRecallYAML
}
