package recall

import (
	"github.com/azolotarev/tui-recall/internal/config"
)

// PressureState accumulates mismatch pressure within a round. It is
// reset after every successful match and whenever a punishment fires,
// except that the escalation stage survives punishments so repeat
// offenders face shorter and shorter reveals.
type PressureState struct {
	MismatchStreak  int
	PunishStage     int
	LastFirstPick   int // -1 when no pick recorded
	SameFirstStreak int
}

// NewPressureState returns an empty pressure tracker.
func NewPressureState() PressureState {
	return PressureState{LastFirstPick: -1}
}

// Reset clears all accumulated pressure including the escalation stage.
func (p *PressureState) Reset() {
	p.MismatchStreak = 0
	p.PunishStage = 0
	p.LastFirstPick = -1
	p.SameFirstStreak = 0
}

// clearTriggers resets the firing conditions but keeps the stage.
func (p *PressureState) clearTriggers() {
	p.MismatchStreak = 0
	p.LastFirstPick = -1
	p.SameFirstStreak = 0
}

// PunishmentPlan describes what happens to the board after the
// mismatch pause: hidden tiles get reshuffled and a subset is flashed
// face-up before play resumes.
type PunishmentPlan struct {
	RevealCount        int
	RevealMS           int
	RevealAllHidden    bool
	ReshuffleHidden    bool
	FastEndgameShuffle bool
}

// registerMismatch records one failed pick against the tier and
// returns a punishment plan when a trigger fires, nil otherwise.
//
// Plain tiers fire on a consecutive-mismatch threshold and reset all
// pressure. Staged tiers additionally fire when the same first tile
// is picked RepeatPickThreshold times in a row, and each firing
// advances the escalation ladder.
func registerMismatch(tier config.PenaltyTier, p *PressureState, firstPick int) *PunishmentPlan {
	if !tier.Enabled {
		return nil
	}

	if len(tier.Stages) == 0 {
		p.MismatchStreak++
		if p.MismatchStreak < tier.MismatchThreshold {
			return nil
		}
		p.Reset()
		return &PunishmentPlan{
			RevealCount:        tier.RevealCount,
			RevealMS:           tier.RevealMS,
			RevealAllHidden:    tier.RevealCount == 0,
			ReshuffleHidden:    true,
			FastEndgameShuffle: tier.FastEndgameShuffle,
		}
	}

	if p.LastFirstPick == firstPick {
		p.SameFirstStreak++
	} else {
		p.LastFirstPick = firstPick
		p.SameFirstStreak = 1
	}
	p.MismatchStreak++

	thresholdHit := p.MismatchStreak >= tier.MismatchThreshold
	repeatHit := tier.RepeatPickThreshold > 0 && p.SameFirstStreak >= tier.RepeatPickThreshold
	if !thresholdHit && !repeatHit {
		return nil
	}

	p.clearTriggers()
	p.PunishStage++
	stage := tier.Stages[len(tier.Stages)-1]
	if p.PunishStage <= len(tier.Stages) {
		stage = tier.Stages[p.PunishStage-1]
	}

	return &PunishmentPlan{
		RevealCount:        stage.RevealCount,
		RevealMS:           stage.RevealMS,
		ReshuffleHidden:    true,
		FastEndgameShuffle: tier.FastEndgameShuffle,
	}
}

// resetAfterMatch clears pressure following a successful match. Tiers
// without punishments have nothing to clear.
func resetAfterMatch(tier config.PenaltyTier, p *PressureState) {
	if tier.Enabled {
		p.Reset()
	}
}
