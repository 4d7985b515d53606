package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/ui/layout"
	"github.com/abhisek/echoz/internal/ui/theme"
)

// maxRows caps the per-attempt list.
const maxRows = 12

// SummaryScreen displays the round summary.
type SummaryScreen struct {
	summary *practice.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *practice.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.summary == nil {
		return nil
	}
	total := s.summary.TotalScore
	return func() tea.Msg { return screen.ScoreMsg{Total: total} }
}

func (s *SummaryScreen) Title() string {
	return "Round Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Round complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	scope := sum.Language
	if sum.Category != "" {
		scope += " · " + sum.Category
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s   Duration: %d:%02d", scope, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Prompts: %d      Accuracy: %.0f%%      Score: %+d  (★ %d)",
		sum.Served, sum.Accuracy*100, sum.ScoreGained, sum.TotalScore)
	b.WriteString(center(theme.Body.Render(statsLine)))
	b.WriteString("\n")

	tiers := strings.Join([]string{
		tierCount("excellent", sum.Excellent),
		tierCount("close", sum.Close),
		tierCount("retry", sum.Retry),
		tierCount("unscored", sum.Unscored),
	}, "   ")
	b.WriteString(center(tiers))
	b.WriteString("\n\n")

	if len(sum.Attempts) == 0 {
		b.WriteString(center(theme.Hint.Render("No attempts this round.")))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Attempts")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	textWidth := max(min(width-8, 60)-16, 10)
	for i, a := range sum.Attempts {
		if i == maxRows {
			more := fmt.Sprintf("… and %d more", len(sum.Attempts)-maxRows)
			b.WriteString(center(theme.Hint.Render(more)))
			b.WriteString("\n")
			break
		}
		b.WriteString(center(attemptLine(a, textWidth)))
		b.WriteString("\n")
	}

	if n := len(sum.MissedPromptIDs); n > 0 {
		b.WriteString("\n")
		note := fmt.Sprintf("%d sentence(s) will come up more often next time.", n)
		b.WriteString(center(theme.Hint.Render(note)))
	}

	return b.String()
}

func tierCount(tier string, n int) string {
	return lipgloss.NewStyle().Foreground(theme.TierColor(tier)).
		Render(fmt.Sprintf("%s %d", tier, n))
}

func attemptLine(a practice.Attempt, textWidth int) string {
	text := truncate(a.Prompt.Text, textWidth)
	text += strings.Repeat(" ", max(textWidth-lipgloss.Width(text), 0))

	if !a.Scored {
		return theme.Body.Render(text) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-9s", "—"))
	}
	tier := string(a.Outcome.Tier)
	mark := lipgloss.NewStyle().Foreground(theme.TierColor(tier)).
		Render(fmt.Sprintf("%-9s %3d%%", tier, int(a.Outcome.Similarity*100+0.5)))
	return theme.Body.Render(text) + "  " + mark
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
