package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/azolotarev/tui-recall/internal/games/recall"
	"github.com/azolotarev/tui-recall/internal/storage"
)

// maxRecords caps how many rows the records screen loads per mode.
const maxRecords = 100

// recordTab is one page of the records screen.
type recordTab struct {
	id    string // "classic", "tri", "endless"
	title string
}

var recordTabs = []recordTab{
	{id: "classic", title: "Classic"},
	{id: "tri", title: "Tri"},
	{id: "endless", title: "Endless"},
}

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel is the Bubble Tea model for the records screen.
type RecordsModel struct {
	store     *storage.Store
	tabCursor int
	table     table.Model
	help      help.Model
	keys      RecordsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRecordsModel creates a new records model.
func NewRecordsModel(store *storage.Store, width, height int) RecordsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordsModel{
		store:  store,
		keys:   DefaultRecordsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRecords()
	return m
}

// createTable creates a table with columns for the active tab.
func (m *RecordsModel) createTable() table.Model {
	var columns []table.Column
	if recordTabs[m.tabCursor].id == "endless" {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Round", Width: 7},
			{Title: "Segment", Width: 9},
			{Title: "Survival", Width: 9},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 4},
			{Title: "Level", Width: 9},
			{Title: "Rank", Width: 5},
			{Title: "Precision", Width: 10},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 14},
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRecords fills the table with rows for the active tab.
func (m *RecordsModel) loadRecords() {
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	var rows []table.Row
	if recordTabs[m.tabCursor].id == "endless" {
		records, err := m.store.TopEndlessRecords(maxRecords)
		if err == nil {
			for i, r := range records {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", r.Round),
					recall.LevelName(r.SegmentLevel),
					fmt.Sprintf("%d", r.SegmentSurvival),
					formatSecs(r.TimeSecs),
					formatDate(r.CreatedAt),
				})
			}
		}
	} else {
		records, err := m.store.TopModeRecords(recordTabs[m.tabCursor].id, maxRecords)
		if err == nil {
			for i, r := range records {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					recall.LevelName(r.Level),
					r.Rank,
					fmt.Sprintf("%d%%", r.PrecisionPct),
					formatSecs(r.TimeSecs),
					formatDate(r.CreatedAt),
				})
			}
		}
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatSecs(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 02 15:04")
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			m.tabCursor = (m.tabCursor + 1) % len(recordTabs)
			m.table = m.createTable()
			m.loadRecords()
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			m.tabCursor--
			if m.tabCursor < 0 {
				m.tabCursor = len(recordTabs) - 1
			}
			m.table = m.createTable()
			m.loadRecords()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRecords()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RECORDS - %s", recordTabs[m.tabCursor].title)

	return titleStyle.Render(centerText(title, m.width)) + "\n" +
		m.table.View() + "\n" +
		m.help.View(m.keys)
}

// RunRecords shows the records screen. Returns true when the user
// backed out to the menu rather than quitting.
func RunRecords(store *storage.Store, width, height int) (bool, error) {
	model := NewRecordsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RecordsModel)
	if !ok {
		return false, nil
	}
	return m.goingBack, nil
}
