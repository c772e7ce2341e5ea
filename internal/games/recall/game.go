package recall

import (
	"fmt"
	"math/rand"

	"github.com/azolotarev/tui-recall/internal/config"
	"github.com/azolotarev/tui-recall/internal/core"
	"github.com/azolotarev/tui-recall/internal/registry"
	"github.com/azolotarev/tui-recall/internal/savefile"
)

// Mode selects which ruleset a Game instance runs.
type Mode int

const (
	ModeClassic Mode = iota
	ModeTri
	ModeEndless
)

// configPath stores the custom config path set via CLI
var configPath string

// saveDir stores the save-slot directory set via CLI
var saveDir string

// debugMode gates the debug shortcuts, set via CLI at startup
var debugMode bool

// startLevel is the menu-selected level (1-4) for classic and tri
var startLevel = 1

// pendingResume holds a loaded save consumed by the next Reset
var pendingResume *savefile.SavedRun

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSaveDir overrides the directory holding the save slot.
func SetSaveDir(dir string) {
	saveDir = dir
}

// SetDebug enables the debug shortcuts for this process.
func SetDebug(enabled bool) {
	debugMode = enabled
}

// SetStartLevel selects the level (1-4) for the next classic or tri run.
func SetStartLevel(level int) {
	startLevel = clampLevel(level)
}

// SetResume hands a loaded save to the next Reset of the matching mode.
func SetResume(run *savefile.SavedRun) {
	pendingResume = run
}

// bannerSeconds is how long transient HUD messages stay visible.
const bannerSeconds = 3

// Game adapts a Session to the platform game interface: fixed ticks
// in, screen buffers out.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.RecallConfig
	session *Session
	store   *savefile.Store

	cursorX int
	cursorY int
	paused  bool
	tickMS  int64

	banner      string
	bannerTicks int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game instance for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	switch g.mode {
	case ModeTri:
		return "tri"
	case ModeEndless:
		return "endless"
	default:
		return "classic"
	}
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	switch g.mode {
	case ModeTri:
		return "Tri (match three)"
	case ModeEndless:
		return "Endless"
	default:
		return "Classic"
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRecall(configPath)
	if err != nil {
		cfg = config.DefaultRecallConfig()
	}
	g.cfg = cfg

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.session = NewSession(cfg, rng)
	if runtime.Ephemeral {
		// Remote sessions never own the local player's slot.
		g.store = nil
	} else {
		g.store = savefile.NewStore(saveDir)
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 30
	}
	g.tickMS = int64(1000 / tickRate)
	if g.tickMS <= 0 {
		g.tickMS = 1
	}

	g.cursorX = 0
	g.cursorY = 0
	g.paused = false
	g.banner = ""
	g.bannerTicks = 0

	if !g.tryResume() {
		switch g.mode {
		case ModeClassic:
			g.session.SetMode(ClassicDifficultyForLevel(startLevel))
		case ModeTri:
			g.session.SetTriLevel(startLevel)
			g.session.SetMode(DifficultyTri)
		case ModeEndless:
			g.session.SetMode(DifficultyEndless)
		}
		g.session.StartRun()
	}

	g.computeMinScreen()
}

// tryResume consumes a pending save when it belongs to this mode.
func (g *Game) tryResume() bool {
	if pendingResume == nil {
		return false
	}
	d, ok := DifficultyFromCode(pendingResume.Mode)
	if !ok || modeForDifficulty(d) != g.mode {
		return false
	}

	run := pendingResume
	pendingResume = nil
	if err := g.session.Resume(run); err != nil {
		// The save no longer fits the board this mode deals.
		g.store.Clear()
		return false
	}
	return true
}

func modeForDifficulty(d Difficulty) Mode {
	switch d {
	case DifficultyTri:
		return ModeTri
	case DifficultyEndless:
		return ModeEndless
	default:
		return ModeClassic
	}
}

// Resize updates the runtime screen bounds without touching the run.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.computeMinScreen()
}

func (g *Game) computeMinScreen() {
	grid := g.session.Grid()
	g.minScreenW = grid.Cols*tileCellW + boardMarginX*2
	g.minScreenH = grid.Rows*tileCellH + boardTop + 3
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.StartRun()
		g.store.Clear()
		g.paused = false
		g.banner = ""
		g.bannerTicks = 0
		g.computeMinScreen()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Completed() {
		g.paused = !g.paused
	}

	if (debugMode || g.runtime.Debug) && in.Has(core.ActionDebug) {
		g.handleDebugKey(in.DebugKey)
	}

	if !g.paused {
		g.handleMovement(in)
		if in.Has(core.ActionFlip) || in.Has(core.ActionConfirm) {
			g.session.HandleFlip(g.cursorIndex())
		}
	}

	var events []core.Event
	if !g.paused {
		events = g.session.Advance(g.tickMS)
		g.processEvents(events)
	}

	g.flushSave(events)

	if g.bannerTicks > 0 {
		g.bannerTicks--
		if g.bannerTicks == 0 {
			g.banner = ""
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) handleMovement(in core.InputFrame) {
	grid := g.session.Grid()
	if in.Has(core.ActionLeft) && g.cursorX > 0 {
		g.cursorX--
	}
	if in.Has(core.ActionRight) && g.cursorX < grid.Cols-1 {
		g.cursorX++
	}
	if in.Has(core.ActionUp) && g.cursorY > 0 {
		g.cursorY--
	}
	if in.Has(core.ActionDown) && g.cursorY < grid.Rows-1 {
		g.cursorY++
	}
}

func (g *Game) cursorIndex() int {
	return g.cursorY*g.session.Grid().Cols + g.cursorX
}

func (g *Game) processEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLevelUp:
			if up, ok := ev.Payload.(LevelUp); ok {
				g.setBanner(fmt.Sprintf("LEVEL UP: %s!", LevelName(up.ToLevel)))
				g.clampCursor()
			}
		case core.EventMilestone:
			if m, ok := ev.Payload.(Milestone); ok {
				prefix := "HARD"
				if m.Segment == DifficultyImpossible {
					prefix = "EXPERT"
				}
				g.setBanner(fmt.Sprintf("%s X%d!", prefix, m.Survived))
			}
		case core.EventPunishment:
			g.setBanner("Reshuffled!")
		}
	}
}

// flushSave persists dirty run state and clears the slot once a
// classic or tri run is won.
func (g *Game) flushSave(events []core.Event) {
	for _, ev := range events {
		if ev.Kind != core.EventRoundComplete {
			continue
		}
		if _, finished := ev.Payload.(RoundResult); finished {
			g.store.Clear()
		}
	}

	if !g.session.Dirty() {
		return
	}
	g.session.ClearDirty()
	if run := g.session.SavedRun(); run != nil {
		g.store.Save(run)
	}
}

func (g *Game) handleDebugKey(key int) {
	switch key {
	case 'n', 'N':
		if remaining, ok := g.session.DebugNearWin(); ok {
			g.setBanner(fmt.Sprintf("DEBUG | Near-win ready (%d)", remaining))
		}
	case '1', '2', '3', '4':
		level := key - '0'
		switch g.mode {
		case ModeClassic:
			g.session.SetMode(ClassicDifficultyForLevel(level))
			g.session.StartRun()
			g.setBanner("DEBUG | Classic " + ClassicDifficultyForLevel(level).Name())
		case ModeTri:
			g.session.SetTriLevel(level)
			g.session.StartRun()
			g.setBanner(fmt.Sprintf("DEBUG | Tri level %d", level))
		case ModeEndless:
			g.session.DebugJumpEndless(level)
			g.setBanner("DEBUG | Endless " + LevelName(level))
		}
		g.cursorX, g.cursorY = 0, 0
		g.computeMinScreen()
	}
}

func (g *Game) setBanner(text string) {
	g.banner = text
	g.bannerTicks = bannerSeconds * g.runtime.TickRate
	if g.bannerTicks <= 0 {
		g.bannerTicks = bannerSeconds * 30
	}
}

func (g *Game) clampCursor() {
	grid := g.session.Grid()
	if g.cursorX >= grid.Cols {
		g.cursorX = grid.Cols - 1
	}
	if g.cursorY >= grid.Rows {
		g.cursorY = grid.Rows - 1
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := int(g.session.RunMatches())
	if g.session.Mode() == DifficultyEndless {
		score = int(g.session.EndlessRound())
	}
	return core.GameState{
		Score:    score,
		GameOver: g.session.Completed(),
		Paused:   g.paused,
	}
}

// Session exposes the underlying state machine for the platform's
// record storage and for tests.
func (g *Game) Session() *Session {
	return g.session
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register("tri", func() registry.Game {
		return New(ModeTri)
	})
	registry.Register("endless", func() registry.Game {
		return New(ModeEndless)
	})
}
