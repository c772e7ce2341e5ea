package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/azolotarev/tui-recall/internal/core"
	"github.com/azolotarev/tui-recall/internal/games/recall"
	"github.com/azolotarev/tui-recall/internal/registry"
	"github.com/azolotarev/tui-recall/internal/storage"
)

// GameModel is the Bubble Tea model for running a recall game.
// It drives the fixed-tick loop, maps keys to actions, and persists
// finished rounds to the records database.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu when the board is idle enough to leave
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The board itself is untouched; the game re-checks whether it
	// still fits on the next render.
	if g, ok := m.game.(*recall.Game); ok {
		g.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.saveRecords(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRecords persists round results carried by game events.
func (m GameModel) saveRecords(events []core.Event) {
	if m.store == nil {
		return
	}
	for _, ev := range events {
		if ev.Kind != core.EventRoundComplete {
			continue
		}
		switch res := ev.Payload.(type) {
		case recall.RoundResult:
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveModeRecord(storage.ModeRecord{
				Mode:         res.Mode,
				Level:        res.Level,
				TimeSecs:     int(res.TimeSecs),
				PrecisionPct: res.PrecisionPct,
				Rank:         res.Rank.String(),
			})
		case recall.EndlessRoundResult:
			//nolint:errcheck // Best-effort save
			m.store.SaveEndlessRecord(storage.EndlessRecord{
				Round:           int(res.Round),
				SegmentLevel:    res.SegmentLevel,
				SegmentSurvival: int(res.SegmentSurvival),
				TimeSecs:        int(res.TimeSecs),
			})
		}
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
