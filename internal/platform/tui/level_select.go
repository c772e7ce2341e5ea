package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/azolotarev/tui-recall/internal/core"
)

// LevelSelection holds the user's choice from a level picker.
type LevelSelection struct {
	Level int // 1-based
}

// LevelSelectModel lets users choose a starting level for classic or
// tri runs.
type LevelSelectModel struct {
	title     string
	levels    []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection *LevelSelection
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level picker with the given entries.
func NewLevelSelectModel(title string, levels []string, width, height int) LevelSelectModel {
	return LevelSelectModel{
		title:     title,
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection = &LevelSelection{Level: m.cursor + 1}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level picker.
func (m LevelSelectModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")

	for i, name := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// RunLevelSelector shows a level picker and returns the selection.
// A nil selection means the user backed out or quit.
func RunLevelSelector(title string, levels []string, cfg core.RuntimeConfig) (*LevelSelection, core.RuntimeConfig, error) {
	model := NewLevelSelectModel(title, levels, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(LevelSelectModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height
	return m.selection, cfg, nil
}
