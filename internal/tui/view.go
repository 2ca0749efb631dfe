package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/reflex/internal/summary"
)

var (
	timerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	iconStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	endStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch {
	case m.errMsg != "":
		content = errorStyle.Render(m.errMsg) + "\n\n" + footerStyle.Render(fmt.Sprintf("press %s to retry", m.keys.restart.Help().Key))
	case m.endVisible:
		content = m.renderEndScreen()
	default:
		content = m.renderPlayfield()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderPlayfield() string {
	icon := " "
	if m.iconVisible {
		icon = m.icon
	}
	lines := []string{
		timerStyle.Render(m.timerText),
		iconStyle.Render(icon),
		shake(scoreStyle.Render(m.scoreText), m.shakeOffset()),
	}
	if m.streakVisible {
		lines = append(lines, streakStyle.Render(fmt.Sprintf("Streak: %d", m.streakCount)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderEndScreen() string {
	s := m.summary
	lines := []string{
		scoreStyle.Render("Time's up"),
		"",
		fmt.Sprintf("Score: %d", s.TotalScore),
		summary.AverageText(s),
		summary.HighestStreakText(s),
		"",
		timerStyle.Render(fmt.Sprintf("base %d  streak %.1f  reaction %d", s.BaseScore, s.TotalStreakScore, s.TotalReactionScore)),
	}
	if spark := summary.Sparkline(s.Reactions); spark != "" {
		lines = append(lines, "", timerStyle.Render("reaction ["+spark+"]"))
	}
	return endStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	bindings := []key.Binding{m.keys.quit}
	if m.endVisible || m.errMsg != "" {
		bindings = []key.Binding{m.keys.restart, m.keys.quit}
	}
	return footerStyle.Render(m.help.ShortHelpView(bindings))
}

func (m *Model) shakeOffset() int {
	if m.rumble == nil {
		return 0
	}
	return m.rumble.Offset(m.rnd)
}

// shake shifts a centered line by offset columns.
func shake(line string, offset int) string {
	switch {
	case offset > 0:
		return strings.Repeat(" ", 2*offset) + line
	case offset < 0:
		return line + strings.Repeat(" ", -2*offset)
	default:
		return line
	}
}
