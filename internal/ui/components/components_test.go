package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenu_SkipsDisabledItems(t *testing.T) {
	var fired string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			fired = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Start", Action: action("start")},
		{Label: "Also off", Disabled: true},
		{Label: "Quit", Action: action("quit")},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down: Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up: Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "start" {
		t.Errorf("enter fired %q, want start", fired)
	}
	if !strings.Contains(m.View(), "▸ Start") {
		t.Errorf("view does not mark the selection:\n%s", m.View())
	}
}

func TestProgressBar_Width(t *testing.T) {
	p := NewProgressBar("", 0.5, 30)
	p.Trailer = "0:15"
	view := p.View()
	if !strings.Contains(view, "0:15") {
		t.Errorf("trailer missing: %q", view)
	}
}

func TestContentWidth(t *testing.T) {
	cases := map[int]int{10: 20, 50: 44, 200: 64}
	for in, want := range cases {
		if got := ContentWidth(in); got != want {
			t.Errorf("ContentWidth(%d) = %d, want %d", in, got, want)
		}
	}
}
