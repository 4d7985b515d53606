package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/store"
	"github.com/abhisek/echoz/internal/ui/layout"
	"github.com/abhisek/echoz/internal/ui/theme"
)

const (
	roundLimit   = 50
	attemptLimit = 1000
)

type historyLoadedMsg struct {
	Rounds   []store.RoundSummaryRecord
	Attempts map[string][]store.AttemptRecord // roundID → attempts, oldest first
	Err      error
}

// HistoryScreen displays past rounds and their attempts.
type HistoryScreen struct {
	eventRepo store.EventRepo
	rounds    []store.RoundSummaryRecord
	attempts  map[string][]store.AttemptRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rounds, err := s.eventRepo.RoundSummaries(ctx, store.QueryOpts{Limit: roundLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		byRound := make(map[string][]store.AttemptRecord)
		all, err := s.eventRepo.QueryAttempts(ctx, store.QueryOpts{Limit: attemptLimit})
		if err != nil {
			return historyLoadedMsg{Rounds: rounds, Attempts: byRound}
		}
		// Newest first from the repo; details read better in spoken order.
		for i := len(all) - 1; i >= 0; i-- {
			a := all[i]
			byRound[a.RoundID] = append(byRound[a.RoundID], a)
		}
		return historyLoadedMsg{Rounds: rounds, Attempts: byRound}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Rounds
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.rounds {
		dateStr := r.Timestamp.Format("Jan 02, 2006 15:04")
		durationStr := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d prompts  %.0f%%  %+d",
			prefix, dateStr, r.Language, durationStr, r.PromptsServed, r.Accuracy()*100, r.ScoreGained)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetails(r, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetails(r store.RoundSummaryRecord, width int) string {
	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	counts := fmt.Sprintf("    excellent %d · close %d · retry %d · unscored %d · total ★ %d",
		r.Excellent, r.Close, r.Retry, r.Unscored, r.TotalScore)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(counts)))
	b.WriteString("\n")

	attempts := s.attempts[r.RoundID]
	if len(attempts) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No attempt details")))
		b.WriteString("\n")
		return b.String()
	}
	for _, a := range attempts {
		var line string
		switch a.Outcome {
		case store.OutcomeScored:
			line = fmt.Sprintf("    %-9s %3.0f%%  %s", a.Tier, a.Similarity*100, a.ExpectedText)
		default:
			line = fmt.Sprintf("    %-9s       %s", a.Outcome, a.ExpectedText)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TierColor(a.Tier)).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
