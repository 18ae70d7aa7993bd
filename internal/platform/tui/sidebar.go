package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/storage"
)

// Sidebar layout constants
const (
	minWidthForSidebar = 64 // Minimum width to show the score sidebar
	sidebarWidth       = 28 // Width of the score sidebar
	hallOfFameSize     = 5  // Entries shown in the sidebar
)

var (
	sidebarTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sidebarLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sidebarBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Width(sidebarWidth - 2).
				Padding(0, 1)
)

// hallOfFame is the sidebar's view of the shared store for one game.
type hallOfFame struct {
	table     table.Model
	entries   int
	record    time.Duration
	hasRecord bool
	mine      *storage.Completion // This player's last saved round, if any
	mineShown bool                // mine is one of the table rows
}

// newTimesTable creates a table of completion times. The row whose round ID
// equals mark gets a "*" next to its rank.
func newTimesTable(entries []storage.Completion, width, height int, withDate bool, mark string) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Time", Width: 7},
		{Title: "Player", Width: max(width-14, 6)},
	}
	if withDate {
		columns[2].Width = max(width-32, 6)
		columns = append(columns, table.Column{Title: "When", Width: 14})
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rank := fmt.Sprintf("%d", i+1)
		if mark != "" && e.RoundID == mark {
			rank += "*"
		}
		rows[i] = table.Row{
			rank,
			core.FormatSeconds(e.Duration),
			e.Player,
		}
		if withDate {
			rows[i] = append(rows[i], e.CreatedAt.Format("Jan 02 15:04"))
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(height, 2)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// renderSidebar renders the timer, this session's scores and the hall of
// fame shared by every session of the process.
func renderSidebar(title string, scene core.Scene, hof hallOfFame) string {
	var b strings.Builder

	b.WriteString(sidebarTitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", core.FormatSeconds(scene.Elapsed)))
	b.WriteString(sidebarLabelStyle.Render(strings.ToUpper(scene.Phase.String())))
	b.WriteString("\n\n")

	switch scene.Scores.Kind {
	case core.ScoreBest:
		b.WriteString(fmt.Sprintf("Last: %s\n", formatOptional(scene.Scores.Last, scene.Scores.HasLast)))
		b.WriteString(fmt.Sprintf("Best: %s\n", formatOptional(scene.Scores.Best, scene.Scores.HasBest)))
	default:
		b.WriteString(sidebarLabelStyle.Render("Recent Times"))
		b.WriteString("\n")
		if len(scene.Scores.Recent) == 0 {
			b.WriteString(sidebarLabelStyle.Render("No times yet"))
			b.WriteString("\n")
		}
		for i, d := range scene.Scores.Recent {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, core.FormatSeconds(d)))
		}
	}

	b.WriteString("\n")
	b.WriteString(sidebarLabelStyle.Render("Hall of Fame"))
	b.WriteString("\n")
	if hof.hasRecord {
		b.WriteString(fmt.Sprintf("Record: %s\n", core.FormatSeconds(hof.record)))
	}
	if hof.entries > 0 {
		b.WriteString(hof.table.View())
	} else {
		b.WriteString(sidebarLabelStyle.Render("Be the first!"))
	}
	if hof.mine != nil && !hof.mineShown {
		b.WriteString("\n")
		b.WriteString(sidebarLabelStyle.Render(fmt.Sprintf("You: %s", core.FormatSeconds(hof.mine.Duration))))
	}

	return sidebarBoxStyle.Render(b.String())
}

func formatOptional(d time.Duration, ok bool) string {
	if !ok {
		return "--"
	}
	return core.FormatSeconds(d)
}
