package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
)

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if len(m.items) != 3 {
		t.Fatalf("menu has %d items, expected 3", len(m.items))
	}

	// Cursor stops at the last item
	for i := 0; i < 5; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if m.Selected() == nil || m.Selected().LayoutID != "random" {
		t.Errorf("Selected() = %v, expected random", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
}

func TestMenuViewListsLayouts(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()

	for _, title := range []string{"Empty Box", "Prism", "Random Walls"} {
		if !strings.Contains(view, title) {
			t.Errorf("View() missing %q", title)
		}
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, cmd := m.Update(runeKey("q"))
	m = next.(MenuModel)

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestSessionMenuRoundTrip(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 30, Seed: 1}
	s := NewSessionModel(config.Default(), cfg, "tester")

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.sim == nil {
		t.Fatal("enter should start a simulation")
	}
	if s.sim.sim.ID() != "box" {
		t.Errorf("started %q, expected box", s.sim.sim.ID())
	}

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	if s.sim.State().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", s.sim.State().Tick)
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.sim != nil {
		t.Error("esc should return to the menu")
	}
	if cmd != nil {
		t.Error("returning to the menu should not quit the session")
	}
	if s.quitting {
		t.Error("session should still be running")
	}
}
