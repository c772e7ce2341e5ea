package recall

import (
	"testing"

	"github.com/azolotarev/tui-recall/internal/config"
)

func defaultPenalties() config.PenaltyConfig {
	return config.DefaultRecallConfig().Penalty
}

func TestEasyTierNeverPunishes(t *testing.T) {
	tier := defaultPenalties().ClassicTier("easy")
	p := NewPressureState()

	for i := 0; i < 50; i++ {
		if plan := registerMismatch(tier, &p, i%4); plan != nil {
			t.Fatalf("easy tier punished after %d mismatches", i+1)
		}
	}
}

func TestMediumTierFiresOnFifthMismatch(t *testing.T) {
	tier := defaultPenalties().ClassicTier("medium")
	p := NewPressureState()

	for i := 0; i < 4; i++ {
		if plan := registerMismatch(tier, &p, i); plan != nil {
			t.Fatalf("medium tier fired after %d mismatches", i+1)
		}
	}
	plan := registerMismatch(tier, &p, 4)
	if plan == nil {
		t.Fatal("medium tier did not fire on fifth mismatch")
	}
	if plan.RevealCount != 2 || plan.RevealMS != 320 || !plan.ReshuffleHidden || plan.RevealAllHidden {
		t.Errorf("medium plan = %+v", plan)
	}
	if p.MismatchStreak != 0 {
		t.Error("pressure not cleared after punishment")
	}
}

func TestHardTierRevealsAllHidden(t *testing.T) {
	tier := defaultPenalties().ClassicTier("hard")
	p := NewPressureState()

	if plan := registerMismatch(tier, &p, 0); plan != nil {
		t.Fatal("hard tier fired after one mismatch")
	}
	plan := registerMismatch(tier, &p, 1)
	if plan == nil {
		t.Fatal("hard tier did not fire on second mismatch")
	}
	if !plan.RevealAllHidden || plan.RevealMS != 950 {
		t.Errorf("hard plan = %+v", plan)
	}
	if !plan.FastEndgameShuffle {
		t.Error("hard plan should use the fast endgame shuffle")
	}
}

func TestExpertStagedEscalation(t *testing.T) {
	tier := defaultPenalties().ClassicTier("impossible")
	p := NewPressureState()

	fire := func() *PunishmentPlan {
		t.Helper()
		// Distinct first picks so only the mismatch threshold triggers.
		var plan *PunishmentPlan
		for i := 0; plan == nil && i < 3; i++ {
			plan = registerMismatch(tier, &p, p.MismatchStreak*10+i*3)
		}
		if plan == nil {
			t.Fatal("expert tier did not fire within threshold")
		}
		return plan
	}

	want := []struct {
		count int
		ms    int
	}{
		{7, 650},
		{5, 540},
		{4, 430},
		{4, 430}, // final stage repeats
	}
	for stage, w := range want {
		plan := fire()
		if plan.RevealCount != w.count || plan.RevealMS != w.ms {
			t.Errorf("stage %d: plan (%d, %d), want (%d, %d)",
				stage+1, plan.RevealCount, plan.RevealMS, w.count, w.ms)
		}
	}
}

func TestExpertRepeatFirstPickTrigger(t *testing.T) {
	tier := defaultPenalties().ClassicTier("impossible")
	p := NewPressureState()

	if plan := registerMismatch(tier, &p, 5); plan != nil {
		t.Fatal("fired on first mismatch")
	}
	plan := registerMismatch(tier, &p, 5)
	if plan == nil {
		t.Fatal("picking the same first tile twice must fire immediately")
	}
	if plan.RevealCount != 7 || plan.RevealMS != 650 {
		t.Errorf("plan = %+v, want first stage", plan)
	}
}

func TestExpertStageSurvivesPunishment(t *testing.T) {
	tier := defaultPenalties().ClassicTier("impossible")
	p := NewPressureState()

	registerMismatch(tier, &p, 5)
	registerMismatch(tier, &p, 5) // fires, stage 1
	if p.PunishStage != 1 {
		t.Fatalf("stage = %d after first punishment, want 1", p.PunishStage)
	}
	if p.MismatchStreak != 0 || p.SameFirstStreak != 0 || p.LastFirstPick != -1 {
		t.Error("triggers not cleared after punishment")
	}
}

func TestResetAfterMatchClearsStage(t *testing.T) {
	tier := defaultPenalties().ClassicTier("impossible")
	p := NewPressureState()

	registerMismatch(tier, &p, 5)
	registerMismatch(tier, &p, 5)
	resetAfterMatch(tier, &p)
	if p.PunishStage != 0 {
		t.Error("stage should reset after a successful match")
	}

	// Next punishment starts the ladder over.
	registerMismatch(tier, &p, 8)
	plan := registerMismatch(tier, &p, 8)
	if plan == nil || plan.RevealCount != 7 {
		t.Errorf("plan = %+v, want first stage after reset", plan)
	}
}

func TestTriTiers(t *testing.T) {
	penalties := defaultPenalties()

	p := NewPressureState()
	tier1 := penalties.TriTier(1)
	for i := 0; i < 20; i++ {
		if registerMismatch(tier1, &p, i) != nil {
			t.Fatal("tri level 1 must never punish")
		}
	}

	p = NewPressureState()
	tier2 := penalties.TriTier(2)
	var plan *PunishmentPlan
	for i := 0; i < 5; i++ {
		plan = registerMismatch(tier2, &p, i)
	}
	if plan == nil || plan.RevealCount != 3 || plan.RevealMS != 340 {
		t.Errorf("tri level 2 plan = %+v", plan)
	}

	p = NewPressureState()
	tier3 := penalties.TriTier(3)
	for i := 0; i < 3; i++ {
		plan = registerMismatch(tier3, &p, i)
	}
	if plan == nil || !plan.RevealAllHidden || plan.RevealMS != 950 {
		t.Errorf("tri level 3 plan = %+v", plan)
	}

	p = NewPressureState()
	tier4 := penalties.TriTier(4)
	plan = registerMismatch(tier4, &p, 2)
	if plan != nil {
		t.Fatal("tri level 4 fired on first mismatch")
	}
	plan = registerMismatch(tier4, &p, 2)
	if plan == nil || plan.RevealCount != 9 || plan.RevealMS != 700 {
		t.Errorf("tri level 4 plan = %+v, want first stage", plan)
	}
}
