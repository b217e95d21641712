package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/haruapp/haru/internal/ui"
)

type styles struct {
	base  lipgloss.Style
	goal  lipgloss.Style
	clock lipgloss.Style
	hint  lipgloss.Style
}

var defaultStyles = styles{
	base: lipgloss.NewStyle().Padding(1, padding),
	goal: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{
			Light: ui.ColorAccent,
			Dark:  ui.ColorAccentDark,
		}),
	clock: lipgloss.NewStyle().Bold(true),
	hint: lipgloss.NewStyle().
		Faint(true),
}

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Timer) formatTimeRemaining() string {
	total := int(t.clock.Timeout.Seconds())
	m := total / 60
	s := total % 60

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(defaultStyles.goal.Render(t.Goal))

	if !t.clock.Running() && !t.clock.Timedout() {
		s.WriteString(defaultStyles.hint.Render("  [paused]"))
	} else {
		endTime := t.StartTime.Add(t.duration)
		s.WriteString(
			defaultStyles.hint.Render("  until " + endTime.Format("03:04 PM")),
		)
	}

	percent := t.clock.Timeout.Seconds() / t.duration.Seconds()

	s.WriteString("\n\n")
	s.WriteString(defaultStyles.clock.Render(t.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(1 - percent))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.stop,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.done || t.clock.Timedout() {
		return ""
	}

	return defaultStyles.base.Render(t.timerView())
}
