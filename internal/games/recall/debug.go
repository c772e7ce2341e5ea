package recall

// Debug shortcuts. Only reachable when the platform was started with
// the debug flag; they mutate the board directly and bypass the step
// queue.

// DebugNearWin collapses the board so exactly one match group stays
// hidden, for exercising the victory path. Returns the number of
// tiles left to match, or false when no full group remains.
func (s *Session) DebugNearWin() (int, bool) {
	if len(s.tiles) == 0 {
		return 0, false
	}

	byValue := make(map[string][]int)
	for idx, tile := range s.tiles {
		if tile.Value == "" {
			continue
		}
		byValue[tile.Value] = append(byValue[tile.Value], idx)
	}

	var group []int
	for _, indices := range byValue {
		if len(indices) >= s.grid.MatchSize {
			group = indices[:s.grid.MatchSize]
			break
		}
	}
	if group == nil {
		return 0, false
	}

	keep := make(map[int]bool, len(group))
	for _, idx := range group {
		keep[idx] = true
	}

	s.preview = false
	s.timerRunning = false
	s.lockInput = false
	s.flipped = nil
	s.pending = nil
	for idx := range s.tiles {
		if keep[idx] {
			s.tiles[idx].Status = TileHidden
		} else {
			s.tiles[idx].Status = TileMatched
		}
	}
	return len(group), true
}

// DebugJumpEndless fast-forwards an endless run to the first round of
// the given level. No-op outside endless mode.
func (s *Session) DebugJumpEndless(level int) {
	if s.mode != DifficultyEndless {
		return
	}
	s.endlessRound = endlessRoundForLevel(level)
	s.applyEndlessLevel(EndlessLevelForRound(s.endlessRound))
	s.startRound(true)
}
