package recall

import "testing"

func TestPrecisionPct(t *testing.T) {
	cases := []struct {
		matches, mismatches uint32
		want                int
	}{
		{0, 0, 100},
		{6, 0, 100},
		{6, 2, 75},
		{1, 2, 33},
		{2, 1, 67},
	}
	for _, c := range cases {
		if got := PrecisionPct(c.matches, c.mismatches); got != c.want {
			t.Errorf("PrecisionPct(%d, %d) = %d, want %d", c.matches, c.mismatches, got, c.want)
		}
	}
}

func TestRankForPrecision(t *testing.T) {
	cases := []struct {
		level, pct int
		want       Rank
	}{
		{1, 100, RankS},
		{1, 99, RankA},
		{1, 85, RankA},
		{1, 84, RankB},
		{1, 70, RankB},
		{1, 69, RankC},
		{2, 89, RankB}, // level 2 demands 90 for an A
		{2, 90, RankA},
		{2, 79, RankC},
		{3, 88, RankA},
		{3, 75, RankB},
		{4, 85, RankA},
		{4, 70, RankB},
	}
	for _, c := range cases {
		if got := RankForPrecision(c.level, c.pct); got != c.want {
			t.Errorf("RankForPrecision(%d, %d) = %v, want %v", c.level, c.pct, got, c.want)
		}
	}
}

func TestVictoryTitle(t *testing.T) {
	cases := map[Rank]string{
		RankS: "Flawless Memory!",
		RankA: "Sharp Mind!",
		RankB: "Keep the Momentum!",
		RankC: "Growing Strong!",
	}
	for rank, want := range cases {
		if got := VictoryTitle(rank); got != want {
			t.Errorf("VictoryTitle(%v) = %q, want %q", rank, got, want)
		}
	}
}

func TestNewEndlessRoundResult(t *testing.T) {
	res := newEndlessRoundResult(2, 30)
	if res.SegmentLevel != 1 || res.SegmentSurvival != 2 {
		t.Errorf("round 2 result = %+v", res)
	}

	res = newEndlessRoundResult(8, 120)
	if res.SegmentLevel != 3 || res.SegmentSurvival != 1 {
		t.Errorf("round 8 result = %+v, want hard survival 1", res)
	}

	res = newEndlessRoundResult(13, 300)
	if res.SegmentLevel != 4 || res.SegmentSurvival != 6 {
		t.Errorf("round 13 result = %+v, want expert survival 6", res)
	}
}
