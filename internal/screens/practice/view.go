package practice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/echoz/internal/coach"
	prac "github.com/abhisek/echoz/internal/practice"
	"github.com/abhisek/echoz/internal/recording"
	"github.com/abhisek/echoz/internal/ui/components"
	"github.com/abhisek/echoz/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.round == nil || s.phase == phaseLoading {
		return s.renderCentered(width, s.spinner.View()+" Picking prompts...")
	}
	if s.phase == phaseEnding {
		return s.renderCentered(width, s.spinner.View()+" Saving round...")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(s.renderInfoLine(cw))
	b.WriteString("\n\n")
	b.WriteString(s.renderTarget(cw))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseReady:
		b.WriteString(s.renderReady(cw))
	case phaseListening:
		b.WriteString(s.renderListening(cw))
	case phaseScoring:
		b.WriteString(theme.Hint.Render(s.spinner.View() + " Scoring..."))
	case phaseFeedback:
		b.WriteString(s.renderFeedback(cw))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(s.notice))
	}
	if s.quitConfirm {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("End this round now? (y/n)"))
	}

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).PaddingTop(1).Render(b.String())
}

func (s *PracticeScreen) renderCentered(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n" + msg)
}

func (s *PracticeScreen) renderError(width int) string {
	msg := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Could not run the round")
	detail := theme.Body.Render(s.errMsg)
	hint := theme.Hint.Render("Press any key to go back")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render("\n\n" + msg + "\n\n" + detail + "\n\n" + hint)
}

func (s *PracticeScreen) renderInfoLine(cw int) string {
	pos := fmt.Sprintf("Prompt %d/%d", s.round.Index+1, len(s.round.Prompts))
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(pos)

	scope := s.round.Language
	if s.round.Category != "" {
		scope += " · " + s.round.Category
	}
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(scope)

	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (s *PracticeScreen) renderTarget(cw int) string {
	prompt, _ := prac.Current(s.round)
	text := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt.Text)
	return components.Card(text, cw)
}

func (s *PracticeScreen) renderReady(cw int) string {
	if s.deps.Typist != nil {
		return theme.Hint.Render("Press Enter, then type what you would say.")
	}
	return theme.Hint.Render("Press Space and read the sentence aloud.")
}

func (s *PracticeScreen) renderListening(cw int) string {
	var b strings.Builder

	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.spinner.View() + " Waiting for microphone...")
	if s.state == recording.Listening || s.state == recording.Finalizing {
		label := "● Listening"
		if s.state == recording.Finalizing {
			label = "● Finishing"
		}
		status = lipgloss.NewStyle().Foreground(theme.Live).Bold(true).Render(label)
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	live := s.live
	if live == "" {
		live = theme.Hint.Render("...")
	} else {
		live = theme.Body.Render(live)
	}
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(live))
	b.WriteString("\n\n")

	b.WriteString(s.renderTimeBar(cw))

	if s.deps.Typist != nil {
		b.WriteString("\n\n")
		b.WriteString(s.input.View())
	}
	return b.String()
}

func (s *PracticeScreen) renderTimeBar(cw int) string {
	var elapsed time.Duration
	if !s.started.IsZero() && s.now.After(s.started) {
		elapsed = s.now.Sub(s.started)
	}
	limit := s.deps.MaxDuration
	pct := 0.0
	if limit > 0 {
		pct = min(float64(elapsed)/float64(limit), 1)
	}
	bar := components.NewProgressBar("", pct, cw)
	bar.Trailer = formatClock(elapsed)
	bar.Fill = theme.Live
	return bar.View()
}

func (s *PracticeScreen) renderFeedback(cw int) string {
	a := s.attempt
	if a == nil {
		return ""
	}

	var b strings.Builder
	if !a.Scored {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("Not scored"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(unscoredReason(a.Result)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(nextHint(s.round)))
		return b.String()
	}

	tier := string(a.Outcome.Tier)
	head := lipgloss.NewStyle().Foreground(theme.TierColor(tier)).Bold(true).
		Render(fmt.Sprintf("%s  %d%%", strings.ToUpper(tier), int(a.Outcome.Similarity*100+0.5)))
	delta := fmt.Sprintf("%+d", a.ScoreApplied)
	deltaColor := theme.Success
	if a.ScoreApplied < 0 {
		deltaColor = theme.Error
	} else if a.ScoreApplied == 0 {
		deltaColor = theme.TextDim
	}
	b.WriteString(head + "   " + lipgloss.NewStyle().Foreground(deltaColor).Render(delta))
	b.WriteString("\n\n")

	heard := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Heard: ") +
		theme.Body.Render(a.Result.Transcript)
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(heard))

	if tip := renderTip(a.Feedback, cw); tip != "" {
		b.WriteString("\n\n")
		b.WriteString(tip)
	}
	if s.tip != nil && s.tip != a.Feedback {
		b.WriteString("\n\n")
		b.WriteString(renderTip(s.tip, cw))
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(nextHint(s.round)))
	return b.String()
}

func renderTip(f *coach.Feedback, cw int) string {
	if f == nil || f.Tip == "" {
		return ""
	}
	label := "Tip"
	if f.Source == coach.SourceLLM {
		label = "Coach"
	}
	head := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label + ": ")
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(head + theme.Body.Render(f.Tip))
}

func unscoredReason(res recording.Result) string {
	var rerr *recording.RecognizerError
	switch {
	case errors.Is(res.Err, recording.ErrEmptyUtterance):
		return "Nothing was heard. Try speaking a little louder."
	case errors.Is(res.Err, recording.ErrCancelled):
		return "Stopped before listening began."
	case errors.Is(res.Err, recording.ErrPermissionDenied):
		return "Microphone access was denied."
	case errors.Is(res.Err, recording.ErrDeviceUnavailable):
		return "No microphone is available."
	case errors.As(res.Err, &rerr):
		return "Speech recognition failed: " + rerr.Code
	case res.Err != nil:
		return res.Err.Error()
	}
	return "The attempt was stopped."
}

func nextHint(r *prac.Round) string {
	if prac.Remaining(r) > 1 {
		return "Enter for the next sentence"
	}
	return "Enter to finish the round"
}

func formatClock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
