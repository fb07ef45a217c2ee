package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sgoral/voe/internal/ui/components"
	"github.com/sgoral/voe/internal/ui/styles"
)

// View renders the dashboard
func (m Model) View() string {
	if m.loading && !m.haveSnapshot {
		return styles.TitleStyle.Render("vim or emacs") + "\n" + m.spinner.ViewWithLabel() + "\n"
	}

	sections := []string{
		styles.TitleStyle.Render("vim or emacs"),
		m.renderWinnerCard(),
		m.renderSummaryCard(),
		m.renderRecentCard(),
		m.renderHistoryCard(),
		m.renderFooter(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderWinnerCard() string {
	title := styles.CardTitleStyle.Render("Winner")
	text := styles.ForEditor(m.snapshot.Winner.EditorKey).Bold(true).Render(m.snapshot.Winner.Text)
	if m.lastErr != nil {
		text = styles.ErrorStyle.Render(m.snapshot.Winner.Text)
	}
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, text))
}

func (m Model) renderSummaryCard() string {
	label := styles.LabelStyle.Render
	lines := []string{
		styles.CardTitleStyle.Render("Votes"),
		label("First vote:  ") + m.snapshot.First.Text,
		label("Latest vote: ") + m.snapshot.Latest.Text,
		label("Tally:       ") + m.snapshot.Tally.Text,
	}
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderRecentCard() string {
	lines := []string{styles.CardTitleStyle.Render("Recent votes")}
	if len(m.snapshot.Recent) == 0 {
		lines = append(lines, styles.HelpStyle.Render("none yet"))
	}
	for _, item := range m.snapshot.Recent {
		lines = append(lines, styles.ForEditor(item.EditorKey).Render(item.Text))
	}
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderHistoryCard() string {
	title := styles.CardTitleStyle.Render("History")

	if m.historyErr != nil {
		body := styles.ErrorStyle.Render(fmt.Sprintf("history unavailable: %v", m.historyErr))
		return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	}

	width := m.width - 10
	if width < 20 {
		width = 20
	}
	chart := components.RenderVoteHistory(m.directory, m.history, width, 8, m.historyCaption())

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, chart))
}

// historyCaption names the latest vote in relative terms
func (m Model) historyCaption() string {
	all := m.history.All()
	if len(all) == 0 {
		return ""
	}
	last := all[len(all)-1].Record.Voted
	at := time.UnixMilli(int64(math.Floor(last * 1000)))
	return "latest vote " + humanize.Time(at)
}

func (m Model) renderFooter() string {
	status := ""
	if m.loading {
		status = m.spinner.ViewWithLabel() + "  "
	} else if !m.refreshedAt.IsZero() {
		status = styles.HelpStyle.Render("refreshed "+humanize.Time(m.refreshedAt)) + "  "
	}
	return status + styles.HelpStyle.Render("r refresh • q quit")
}
