package recall

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/azolotarev/tui-recall/internal/config"
	"github.com/azolotarev/tui-recall/internal/core"
	"github.com/azolotarev/tui-recall/internal/savefile"
)

// stepKind identifies a deferred board action.
type stepKind int

const (
	stepEndPreview stepKind = iota
	stepHideMismatch
	stepPunishReveal
	stepPunishHide
	stepFinishMatch
	stepEndlessAdvance
)

// step is one queued board action. Each step carries the board
// generation it was scheduled against; steps from a superseded board
// are dropped when they come due.
type step struct {
	kind    stepKind
	boardID uint64
	dueMS   int64
	indices []int
	plan    *PunishmentPlan
}

// Session is the full round state machine: board, picks, pressure,
// timer, and the queue of deferred actions. It advances on an
// injected millisecond clock and never touches wall time, which keeps
// every timing path deterministic under test.
type Session struct {
	cfg config.RecallConfig
	rng *rand.Rand

	mode         Difficulty
	triLevel     int
	endlessLevel int
	endlessRound uint32

	grid    GridSpec
	tiles   []Tile
	flipped []int

	pressure      PressureState
	runMatches    uint32
	runMismatches uint32

	boardID   uint64
	lockInput bool
	preview   bool
	started   bool
	completed bool
	result    *RoundResult

	secondsElapsed uint32
	timerRunning   bool
	timerAccMS     int64

	clockMS      int64
	previewEndMS int64
	pending      []step
	events       []core.Event
	dirty        bool
}

// NewSession creates a session in classic Easy with a dealt board.
func NewSession(cfg config.RecallConfig, rng *rand.Rand) *Session {
	s := &Session{
		cfg:          cfg,
		rng:          rng,
		triLevel:     3,
		endlessLevel: 2,
		endlessRound: 1,
		pressure:     NewPressureState(),
	}
	s.SetMode(DifficultyEasy)
	return s
}

// SetMode switches the active mode, clears pressure, and deals a
// fresh board. Endless mode restarts from round one.
func (s *Session) SetMode(d Difficulty) {
	s.mode = d
	s.pressure.Reset()
	if d == DifficultyEndless {
		s.endlessRound = 1
	}
	s.grid = s.gridForMode()
	s.resetBoard()
}

// SetTriLevel selects the tri board size (1-4) and redeals when tri
// is the active mode.
func (s *Session) SetTriLevel(level int) {
	s.triLevel = clampLevel(level)
	if s.mode == DifficultyTri {
		s.grid = TriGrid(s.triLevel)
		s.resetBoard()
	}
}

// SetEndlessLevel selects the endless board size (1-4) and redeals
// when endless is the active mode.
func (s *Session) SetEndlessLevel(level int) {
	s.endlessLevel = clampLevel(level)
	if s.mode == DifficultyEndless {
		s.grid = EndlessGrid(s.endlessLevel)
		s.resetBoard()
	}
}

// applyEndlessLevel swaps the board layout without redealing. The
// caller is responsible for starting the next round.
func (s *Session) applyEndlessLevel(level int) {
	s.endlessLevel = clampLevel(level)
	s.grid = EndlessGrid(s.endlessLevel)
}

func (s *Session) gridForMode() GridSpec {
	switch s.mode {
	case DifficultyTri:
		return TriGrid(s.triLevel)
	case DifficultyEndless:
		return EndlessGrid(s.endlessLevel)
	default:
		return ClassicGrid(s.mode)
	}
}

// resetBoard deals a new board and bumps the board generation so any
// queued steps from the previous board are dropped.
func (s *Session) resetBoard() {
	s.boardID++
	s.tiles = dealTiles(s.grid, s.cfg.Board.Symbols, s.rng)
	s.flipped = nil
	s.lockInput = false
	s.preview = false
	s.completed = false
	s.result = nil
	s.pressure.Reset()
	if s.mode != DifficultyEndless || s.endlessRound <= 1 {
		s.runMatches = 0
		s.runMismatches = 0
	}
}

// StartRun begins a fresh run in the active mode: timer zeroed, board
// dealt, preview shown. Endless runs restart from round one at the
// smallest board.
func (s *Session) StartRun() {
	if s.mode == DifficultyEndless {
		s.endlessRound = 1
		s.applyEndlessLevel(endlessStartLevel)
	}
	s.started = false
	s.startRound(false)
}

// startRound deals the board and opens the preview phase. The run
// timer keeps counting between consecutive endless rounds and resets
// everywhere else.
func (s *Session) startRound(carryTimer bool) {
	s.resetBoard()
	if !carryTimer {
		s.secondsElapsed = 0
		s.timerAccMS = 0
	}
	s.timerRunning = false

	for i := range s.tiles {
		if s.tiles[i].Status == TileHidden {
			s.tiles[i].Status = TileFlipped
		}
	}
	s.preview = true
	s.lockInput = true

	previewMS := int64(s.previewSeconds() * 1000)
	s.previewEndMS = s.clockMS + previewMS
	s.schedule(s.clockMS, stepEndPreview, previewMS, nil, nil)
}

func (s *Session) previewSeconds() float64 {
	p := s.cfg.Timing.Preview
	switch s.mode {
	case DifficultyEasy:
		return p.Easy
	case DifficultyMedium:
		return p.Medium
	case DifficultyHard:
		return p.Hard
	case DifficultyImpossible:
		return p.Impossible
	case DifficultyTri:
		return p.TriPreviewSeconds(s.triLevel)
	case DifficultyEndless:
		return p.EndlessPreviewSeconds(s.endlessRound)
	default:
		return p.Easy
	}
}

// currentTier resolves the punishment tier governing the board right
// now. Endless rounds borrow the classic tier of their segment.
func (s *Session) currentTier() config.PenaltyTier {
	switch s.mode {
	case DifficultyTri:
		return s.cfg.Penalty.TriTier(s.triLevel)
	case DifficultyEndless:
		return s.cfg.Penalty.ClassicTier(EndlessSegmentForRound(s.endlessRound).Code())
	default:
		return s.cfg.Penalty.ClassicTier(s.mode.Code())
	}
}

func (s *Session) mismatchPauseMS() int {
	m := s.cfg.Timing.Mismatch
	switch s.mode {
	case DifficultyTri:
		return m.TriMismatchMS(s.triLevel)
	case DifficultyEndless:
		if EndlessSegmentForRound(s.endlessRound) == DifficultyEasy {
			return m.Easy
		}
		return m.Default
	case DifficultyEasy:
		return m.Easy
	default:
		return m.Default
	}
}

// HandleFlip picks the tile at index. Returns false when the pick is
// rejected: input locked, preview running, run finished, or the tile
// is not face-down.
func (s *Session) HandleFlip(index int) bool {
	if s.completed || s.lockInput || index < 0 || index >= len(s.tiles) {
		return false
	}
	if s.tiles[index].Status != TileHidden {
		return false
	}

	s.tiles[index].Status = TileFlipped
	s.flipped = append(s.flipped, index)
	s.started = true
	s.markDirty()

	flipBeat := int64(s.cfg.Timing.FlipBeatMS)
	indices := append([]int(nil), s.flipped...)

	switch s.evaluateOutcome(index) {
	case outcomeMismatch:
		s.runMismatches++
		firstPick := s.flipped[0]
		tier := s.currentTier()
		plan := registerMismatch(tier, &s.pressure, firstPick)
		s.lockInput = true
		s.schedule(s.clockMS, stepHideMismatch, flipBeat+int64(s.mismatchPauseMS()), indices, plan)

	case outcomeCompleteMatch:
		s.runMatches++
		resetAfterMatch(s.currentTier(), &s.pressure)
		s.lockInput = true
		s.schedule(s.clockMS, stepFinishMatch, flipBeat, indices, nil)
	}

	return true
}

type flipOutcome int

const (
	outcomeContinue flipOutcome = iota
	outcomeMismatch
	outcomeCompleteMatch
)

func (s *Session) evaluateOutcome(latest int) flipOutcome {
	if len(s.flipped) > 1 {
		if s.tiles[s.flipped[0]].Value != s.tiles[latest].Value {
			return outcomeMismatch
		}
	}
	if len(s.flipped) == s.grid.MatchSize {
		return outcomeCompleteMatch
	}
	return outcomeContinue
}

// Advance moves the clock forward and runs every queued step that has
// come due, in due order. Returns the events emitted along the way.
func (s *Session) Advance(deltaMS int64) []core.Event {
	s.clockMS += deltaMS

	if s.timerRunning {
		s.timerAccMS += deltaMS
		for s.timerAccMS >= 1000 {
			s.timerAccMS -= 1000
			s.secondsElapsed++
		}
	}

	for {
		idx := s.nextDueStep()
		if idx < 0 {
			break
		}
		st := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		s.runStep(st)
	}

	events := s.events
	s.events = nil
	return events
}

// nextDueStep finds the earliest pending step at or before the clock.
func (s *Session) nextDueStep() int {
	best := -1
	for i, st := range s.pending {
		if st.dueMS > s.clockMS {
			continue
		}
		if best < 0 || st.dueMS < s.pending[best].dueMS {
			best = i
		}
	}
	return best
}

func (s *Session) schedule(baseMS int64, kind stepKind, delayMS int64, indices []int, plan *PunishmentPlan) {
	s.pending = append(s.pending, step{
		kind:    kind,
		boardID: s.boardID,
		dueMS:   baseMS + delayMS,
		indices: indices,
		plan:    plan,
	})
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].dueMS < s.pending[j].dueMS
	})
}

func (s *Session) runStep(st step) {
	if st.boardID != s.boardID {
		return
	}

	switch st.kind {
	case stepEndPreview:
		for i := range s.tiles {
			if s.tiles[i].Status == TileFlipped {
				s.tiles[i].Status = TileHidden
			}
		}
		s.flipped = nil
		s.preview = false
		s.lockInput = false
		s.timerRunning = true

	case stepHideMismatch:
		for _, idx := range st.indices {
			if s.tiles[idx].Status == TileFlipped {
				s.tiles[idx].Status = TileHidden
			}
		}
		s.flipped = nil
		if st.plan == nil {
			s.lockInput = false
			s.markDirty()
			return
		}
		shuffleMS := int64(s.cfg.Timing.ReshuffleMS)
		if st.plan.FastEndgameShuffle && countHidden(s.tiles)*3 <= len(s.tiles) {
			shuffleMS = int64(s.cfg.Timing.ReshuffleFastMS)
		}
		s.schedule(st.dueMS, stepPunishReveal, shuffleMS, nil, st.plan)

	case stepPunishReveal:
		if st.plan.ReshuffleHidden {
			reshuffleHiddenValues(s.tiles, s.rng)
		}
		hidden := hiddenIndices(s.tiles)
		s.rng.Shuffle(len(hidden), func(i, j int) {
			hidden[i], hidden[j] = hidden[j], hidden[i]
		})
		reveal := hidden
		if !st.plan.RevealAllHidden {
			n := st.plan.RevealCount
			if n > len(hidden) {
				n = len(hidden)
			}
			reveal = hidden[:n]
		}
		for _, idx := range reveal {
			s.tiles[idx].Status = TileFlipped
		}
		s.flipped = nil
		s.lockInput = true
		s.emit(core.EventPunishment, *st.plan)
		s.schedule(st.dueMS, stepPunishHide, int64(st.plan.RevealMS), reveal, nil)

	case stepPunishHide:
		for _, idx := range st.indices {
			if s.tiles[idx].Status == TileFlipped {
				s.tiles[idx].Status = TileHidden
			}
		}
		s.flipped = nil
		s.lockInput = false
		s.markDirty()

	case stepFinishMatch:
		for _, idx := range st.indices {
			s.tiles[idx].Status = TileMatched
		}
		s.flipped = nil
		s.lockInput = false
		if !allMatched(s.tiles) {
			return
		}
		s.timerRunning = false
		if s.mode == DifficultyEndless {
			res := newEndlessRoundResult(s.endlessRound, s.secondsElapsed)
			s.emit(core.EventRoundComplete, res)
			s.markDirty()
			s.lockInput = true
			s.schedule(st.dueMS, stepEndlessAdvance, int64(s.cfg.Timing.RoundGapMS), nil, nil)
			return
		}
		res := s.finishResult()
		s.result = &res
		s.completed = true
		s.started = false
		s.lockInput = true
		s.emit(core.EventRoundComplete, res)

	case stepEndlessAdvance:
		s.advanceEndlessRound()
		if m := MilestoneForRound(s.endlessRound); m != nil {
			s.emit(core.EventMilestone, *m)
		}
		s.startRound(true)
	}
}

// advanceEndlessRound bumps the round, clears pressure at segment
// borders, and grows the board when the level steps up.
func (s *Session) advanceEndlessRound() {
	prevSegment := EndlessSegmentForRound(s.endlessRound)
	prevLevel := s.endlessLevel
	s.endlessRound++
	if EndlessSegmentForRound(s.endlessRound) != prevSegment {
		s.pressure.Reset()
	}
	target := EndlessLevelForRound(s.endlessRound)
	if target != prevLevel {
		s.applyEndlessLevel(target)
		s.emit(core.EventLevelUp, LevelUp{
			FromLevel: prevLevel,
			ToLevel:   target,
			Round:     s.endlessRound,
		})
	}
}

func (s *Session) finishResult() RoundResult {
	modeName := "classic"
	level := ClassicLevel(s.mode)
	if s.mode == DifficultyTri {
		modeName = "tri"
		level = s.triLevel
	}
	prec := PrecisionPct(s.runMatches, s.runMismatches)
	return RoundResult{
		Mode:         modeName,
		Level:        level,
		TimeSecs:     s.secondsElapsed,
		PrecisionPct: prec,
		Rank:         RankForPrecision(level, prec),
	}
}

func (s *Session) emit(kind core.EventKind, payload any) {
	s.events = append(s.events, core.Event{Kind: kind, Payload: payload})
}

func (s *Session) markDirty() { s.dirty = true }

// Dirty reports whether run state changed since the last persistence
// flush. ClearDirty acknowledges the flush.
func (s *Session) Dirty() bool { return s.dirty }
func (s *Session) ClearDirty() { s.dirty = false }

// SavedRun snapshots the run for the save slot. Returns nil when
// there is nothing worth saving yet.
func (s *Session) SavedRun() *savefile.SavedRun {
	if !s.started || len(s.tiles) == 0 {
		return nil
	}

	tiles := make([]savefile.SavedTile, len(s.tiles))
	for i, tile := range s.tiles {
		tiles[i] = savefile.SavedTile{
			Status: savedStatus(tile.Status),
			Value:  tile.Value,
		}
	}

	return &savefile.SavedRun{
		Version:         savefile.Version,
		Mode:            s.mode.Code(),
		TriLevel:        s.triLevel,
		EndlessLevel:    s.endlessLevel,
		EndlessRound:    s.endlessRound,
		SecondsElapsed:  s.secondsElapsed,
		RunMismatches:   s.runMismatches,
		RunMatches:      s.runMatches,
		MismatchStreak:  s.pressure.MismatchStreak,
		PunishStage:     s.pressure.PunishStage,
		LastFirstPick:   s.pressure.LastFirstPick,
		SameFirstStreak: s.pressure.SameFirstStreak,
		FlippedIndices:  append([]int(nil), s.flipped...),
		Tiles:           tiles,
	}
}

// Resume restores an interrupted run. Returns an error when the save
// does not fit the board the mode would deal; the caller should then
// discard the save.
func (s *Session) Resume(run *savefile.SavedRun) error {
	d, ok := DifficultyFromCode(run.Mode)
	if !ok {
		return fmt.Errorf("recall: unknown saved mode %q", run.Mode)
	}

	s.triLevel = clampLevel(run.TriLevel)
	s.endlessLevel = clampLevel(run.EndlessLevel)
	s.SetMode(d)
	if d == DifficultyEndless {
		s.endlessRound = run.EndlessRound
		if s.endlessRound < 1 {
			s.endlessRound = 1
		}
	}

	if len(s.tiles) != len(run.Tiles) {
		return fmt.Errorf("recall: saved board has %d tiles, mode deals %d", len(run.Tiles), len(s.tiles))
	}

	for i, saved := range run.Tiles {
		s.tiles[i] = Tile{Value: saved.Value, Status: parseSavedStatus(saved.Status)}
	}
	s.flipped = nil
	for _, idx := range run.FlippedIndices {
		if idx >= 0 && idx < len(s.tiles) && s.tiles[idx].Status == TileFlipped {
			s.flipped = append(s.flipped, idx)
		}
	}

	s.secondsElapsed = run.SecondsElapsed
	s.runMismatches = run.RunMismatches
	s.runMatches = run.RunMatches
	s.pressure = PressureState{
		MismatchStreak:  run.MismatchStreak,
		PunishStage:     run.PunishStage,
		LastFirstPick:   run.LastFirstPick,
		SameFirstStreak: run.SameFirstStreak,
	}

	s.preview = false
	s.lockInput = false
	s.completed = false
	s.started = true
	s.timerRunning = true
	s.timerAccMS = 0
	s.pending = nil
	return nil
}

func savedStatus(st TileStatus) string {
	switch st {
	case TileFlipped:
		return savefile.TileFlipped
	case TileMatched:
		return savefile.TileMatched
	default:
		return savefile.TileHidden
	}
}

func parseSavedStatus(code string) TileStatus {
	switch code {
	case savefile.TileFlipped:
		return TileFlipped
	case savefile.TileMatched:
		return TileMatched
	default:
		return TileHidden
	}
}

// ModeLabel renders the HUD title for the current board.
func (s *Session) ModeLabel() string {
	switch s.mode {
	case DifficultyTri:
		return "Tri " + LevelName(s.triLevel)
	case DifficultyEndless:
		return EndlessModeLabel(s.endlessRound, s.endlessLevel)
	default:
		return "Classic " + s.mode.Name()
	}
}

// RemainingPreviewMS reports how long the current preview has left.
func (s *Session) RemainingPreviewMS() int64 {
	if !s.preview {
		return 0
	}
	remaining := s.previewEndMS - s.clockMS
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Accessors.

func (s *Session) Mode() Difficulty { return s.mode }
func (s *Session) TriLevel() int { return s.triLevel }
func (s *Session) EndlessLevel() int { return s.endlessLevel }
func (s *Session) EndlessRound() uint32 { return s.endlessRound }
func (s *Session) Grid() GridSpec { return s.grid }
func (s *Session) Tiles() []Tile { return s.tiles }
func (s *Session) FlippedIndices() []int { return s.flipped }
func (s *Session) SecondsElapsed() uint32 { return s.secondsElapsed }
func (s *Session) RunMatches() uint32 { return s.runMatches }
func (s *Session) RunMismatches() uint32 { return s.runMismatches }
func (s *Session) PreviewActive() bool { return s.preview }
func (s *Session) InputLocked() bool { return s.lockInput }
func (s *Session) Completed() bool { return s.completed }
func (s *Session) Started() bool { return s.started }
func (s *Session) Pressure() PressureState { return s.pressure }

// Result returns the final scorecard of a completed classic or tri
// run, nil while the run is still going.
func (s *Session) Result() *RoundResult { return s.result }
