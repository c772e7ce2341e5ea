package recall

import "testing"

func TestEndlessLevelForRound(t *testing.T) {
	cases := []struct {
		round uint32
		level int
	}{
		{1, 1}, {3, 1},
		{4, 2}, {6, 2},
		{7, 3}, {10, 3},
		{11, 4}, {100, 4},
	}
	for _, c := range cases {
		if got := EndlessLevelForRound(c.round); got != c.level {
			t.Errorf("EndlessLevelForRound(%d) = %d, want %d", c.round, got, c.level)
		}
	}
}

func TestEndlessSegmentForRound(t *testing.T) {
	cases := []struct {
		round   uint32
		segment Difficulty
	}{
		{1, DifficultyEasy}, {3, DifficultyEasy},
		{4, DifficultyMedium}, {6, DifficultyMedium},
		{7, DifficultyHard}, {10, DifficultyHard},
		{11, DifficultyImpossible},
	}
	for _, c := range cases {
		if got := EndlessSegmentForRound(c.round); got != c.segment {
			t.Errorf("EndlessSegmentForRound(%d) = %v, want %v", c.round, got, c.segment)
		}
	}
}

func TestSurvivalCounts(t *testing.T) {
	cases := []struct {
		round uint32
		want  uint32
	}{
		{1, 0}, {7, 0}, {8, 1}, {10, 3}, {12, 5}, {17, 10},
	}
	for _, c := range cases {
		if got := SurvivalRounds(c.round); got != c.want {
			t.Errorf("SurvivalRounds(%d) = %d, want %d", c.round, got, c.want)
		}
	}
}

func TestMilestoneForRound(t *testing.T) {
	if m := MilestoneForRound(10); m != nil {
		t.Errorf("round 10 milestone = %+v, want none", m)
	}
	if m := MilestoneForRound(11); m != nil {
		t.Errorf("round 11 milestone = %+v, want none", m)
	}

	m := MilestoneForRound(12) // five rounds past the hard breakpoint
	if m == nil || m.Segment != DifficultyImpossible || m.Survived != 5 {
		t.Errorf("round 12 milestone = %+v, want expert x5", m)
	}

	if m := MilestoneForRound(16); m != nil {
		t.Errorf("round 16 milestone = %+v, want none", m)
	}

	m = MilestoneForRound(17)
	if m == nil || m.Segment != DifficultyImpossible || m.Survived != 10 {
		t.Errorf("round 17 milestone = %+v, want expert x10", m)
	}
}

func TestEndlessModeLabel(t *testing.T) {
	cases := []struct {
		round uint32
		level int
		want  string
	}{
		{1, 1, "Endless Round 1"},
		{5, 2, "Endless Round 5"},
		{8, 3, "Endless Hard Survival 1"},
		{12, 4, "Endless Expert Survival 5"},
	}
	for _, c := range cases {
		if got := EndlessModeLabel(c.round, c.level); got != c.want {
			t.Errorf("EndlessModeLabel(%d, %d) = %q, want %q", c.round, c.level, got, c.want)
		}
	}
}

func TestEndlessRoundForLevel(t *testing.T) {
	cases := []struct {
		level int
		round uint32
	}{
		{1, 1}, {2, 4}, {3, 7}, {4, 11},
	}
	for _, c := range cases {
		if got := endlessRoundForLevel(c.level); got != c.round {
			t.Errorf("endlessRoundForLevel(%d) = %d, want %d", c.level, got, c.round)
		}
	}
}
