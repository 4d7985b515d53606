package home

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/echoz/internal/router"
	"github.com/abhisek/echoz/internal/screen"
	"github.com/abhisek/echoz/internal/screens/history"
	"github.com/abhisek/echoz/internal/store"
	"github.com/abhisek/echoz/internal/ui/components"
	"github.com/abhisek/echoz/internal/ui/theme"
)

// Deps wires the home screen. NewRound builds a fresh practice screen;
// when nil the start entry is disabled.
type Deps struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	NewRound  func() screen.Screen

	// Scope is shown under the title, e.g. "en-US · greetings".
	Scope string
}

type statsLoadedMsg struct {
	Data store.SnapshotData
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats store.SnapshotData
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START ROUND", Disabled: deps.NewRound == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: deps.NewRound()}
			}
		}},
		{Label: "HISTORY", Disabled: deps.Events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{deps: deps, menu: components.NewMenu(items)}
}

// Init reloads the learner totals; it runs again whenever the router
// returns to this screen.
func (h *HomeScreen) Init() tea.Cmd {
	snaps := h.deps.Snapshots
	if snaps == nil {
		return nil
	}
	return func() tea.Msg {
		snap, err := snaps.Latest(context.Background())
		if err != nil || snap == nil {
			return statsLoadedMsg{}
		}
		return statsLoadedMsg{Data: snap.Data}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.stats = msg.Data
		total := msg.Data.TotalScore
		return h, func() tea.Msg { return screen.ScoreMsg{Total: total} }
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.deps.Scope, cw))
	sections = append(sections, renderStats(h.stats, cw))
	sections = append(sections, components.Card(h.menu.View(), cw))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(scope string, cw int) string {
	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).Render("E C H O Z")
	sub := "Read it. Say it. Hear how close you got."
	if scope != "" {
		sub = scope
	}
	return title + "\n" + theme.Subtitle.Width(cw).Render(sub)
}

func renderStats(d store.SnapshotData, cw int) string {
	accuracy := "—"
	if d.Attempts > 0 {
		accuracy = fmt.Sprintf("%.0f%%", float64(d.Excellent)/float64(d.Attempts)*100)
	}
	cell := func(label, value string, fg color.Color) string {
		return lipgloss.NewStyle().Bold(true).Foreground(fg).Render(value) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}
	line := strings.Join([]string{
		cell("score", fmt.Sprintf("★ %d", d.TotalScore), theme.Accent),
		cell("rounds", fmt.Sprint(d.RoundsPlayed), theme.Secondary),
		cell("accuracy", accuracy, theme.Success),
	}, "    ")
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(line)
}
