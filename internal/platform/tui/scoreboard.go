package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/registry"
	"github.com/vovakirdan/hugrun/internal/storage"
)

// Hall of fame layout constants
const (
	minWidthForGameList = 80  // Minimum width to show the game list
	gameListWidth       = 24  // Width of the game list
	maxTimes            = 100 // Max completions to load
)

// ScoreboardKeyMap defines the key bindings for the hall of fame screen.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Order    key.Binding
	Clear    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Order, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Order, k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "fastest/latest"),
		),
		// Enabled only for local play, see enableClear.
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear times"),
			key.WithDisabled(),
		),
	}
}

// boardOrder selects which completions the hall of fame lists.
type boardOrder int

const (
	orderFastest boardOrder = iota
	orderLatest
)

// ScoreboardModel is the Bubble Tea model for the hall of fame screen:
// the completions of every session in this process, per variant, fastest
// or latest first.
type ScoreboardModel struct {
	games        []registry.GameInfo // List of available games
	gameCursor   int                 // Currently selected game index
	store        *storage.Store
	times        []storage.Completion
	stats        *storage.GameStats
	counts       map[string]int // Completions per game ID
	order        boardOrder
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool // True if user pressed back (not quit)
	showList     bool // Whether to show the game list
	confirmClear bool // Clear pressed once, waiting for the second press
}

// NewScoreboardModel creates a new hall of fame model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:      registry.List(),
		gameCursor: 0,
		store:      store,
		keys:       keys,
		help:       h,
		width:      width,
		height:     height,
		showList:   width >= minWidthForGameList,
	}

	if len(m.games) > 0 {
		m.loadTimes(m.games[0].ID)
	} else {
		m.table = m.createTable()
	}

	return m
}

// createTable creates the times table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 8 // Margins and border
	if m.showList {
		tableWidth -= gameListWidth + 3
	}

	t := newTimesTable(m.times, tableWidth, m.height-10, true, "")
	t.Focus()

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

// enableClear lets the player wipe a game's times. Only local sessions
// own their hall of fame, so SSH sessions never enable it.
func (m *ScoreboardModel) enableClear() {
	m.keys.Clear.SetEnabled(true)
}

// loadTimes loads the completions for the given game ID in the current
// order, plus the per-game counts shown in the game list.
func (m *ScoreboardModel) loadTimes(gameID string) {
	m.times = nil
	m.stats = nil
	m.counts = nil
	if m.store != nil {
		load := m.store.TopTimes
		if m.order == orderLatest {
			load = m.store.RecentCompletions
		}
		if times, err := load(gameID, maxTimes); err == nil {
			m.times = times
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
		if all, err := m.store.GetAllGamesStats(); err == nil {
			m.counts = make(map[string]int, len(all))
			for id, s := range all {
				m.counts[id] = s.Completions
			}
		}
	}
	m.table = m.createTable()
}

// clearTimes wipes the selected game's hall of fame.
func (m *ScoreboardModel) clearTimes() {
	if m.store == nil || len(m.games) == 0 {
		return
	}
	id := m.games[m.gameCursor].ID
	if err := m.store.ClearCompletions(id); err != nil {
		return
	}
	m.loadTimes(id)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Clear) {
			if m.confirmClear {
				m.clearTimes()
			}
			m.confirmClear = !m.confirmClear
			return m, nil
		}
		m.confirmClear = false

		switch {
		case key.Matches(msg, m.keys.Order):
			if m.order == orderFastest {
				m.order = orderLatest
			} else {
				m.order = orderFastest
			}
			if len(m.games) > 0 {
				m.loadTimes(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadTimes(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor--
				if m.gameCursor < 0 {
					m.gameCursor = len(m.games) - 1
				}
				m.loadTimes(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showList = m.width >= minWidthForGameList
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HALL OF FAME"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HALL OF FAME - %s", m.games[m.gameCursor].Title)
	}
	if m.order == orderLatest {
		title += " (latest)"
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showList {
		// Wide layout: game list + table
		b.WriteString(m.renderWideLayout())
	} else {
		// Narrow layout: game tabs + table
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	if m.confirmClear && len(m.games) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
		b.WriteString(warnStyle.Render(fmt.Sprintf("Press x again to clear all %s times", m.games[m.gameCursor].Title)))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the game list next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	// Sidebar (game list)
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(gameListWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", gameListWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		count := fmt.Sprintf(" %d", m.counts[g.ID])
		maxLen := gameListWidth - 6 - len(count)
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		pad := strings.Repeat(" ", maxLen-len(name))
		sidebar.WriteString(style.Render(cursor + name + pad + count))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableContent := m.renderTableContent()
	tableRendered := tableStyle.Render(tableContent)

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the scoreboard with game tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	// Game tabs (horizontal)
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		shortName := g.Title
		if len(shortName) > 14 {
			shortName = shortName[:13] + "."
		}
		shortName = fmt.Sprintf("%s (%d)", shortName, m.counts[g.ID])
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = tabStyle.Render(" " + shortName + " ")
		}
	}

	// Wrap tabs if needed
	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show current game with arrows
		current := m.games[m.gameCursor].Title
		tabLine = fmt.Sprintf("< %s >", current)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the stats line and table, or the empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.times) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No completions yet.\nReach the goal to get on the board!")
	}

	statsLine := ""
	if m.stats != nil {
		statsLine = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(fmt.Sprintf(
			"%d completions  best %s  avg %s",
			m.stats.Completions,
			core.FormatSeconds(m.stats.Best),
			core.FormatSeconds(m.stats.Average),
		)) + "\n\n"
	}
	return statsLine + m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
