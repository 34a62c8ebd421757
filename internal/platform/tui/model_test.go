package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/geom"
	"github.com/vovakirdan/raycast-arena/internal/scene"
	"github.com/vovakirdan/raycast-arena/internal/sim"
)

func newTestModel(t *testing.T, layout string) (Model, *sim.Arena) {
	t.Helper()
	l, ok := sim.Lookup(layout)
	if !ok {
		t.Fatalf("Lookup(%q) failed", layout)
	}
	arena := sim.New(l, config.Default())
	m := NewModel(arena, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7})
	m.Init()
	return m, arena
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return out, cmd
}

func TestModelReservesHelpRow(t *testing.T) {
	m, arena := newTestModel(t, "box")

	if got := arena.View().Area; got != core.NewRect(0, 1, 80, 23) {
		t.Errorf("arena area = %+v, expected 80x23 below the HUD", got)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 25 {
		t.Errorf("View() has %d lines, expected 25", len(lines))
	}
}

func TestModelTickSteps(t *testing.T) {
	m, arena := newTestModel(t, "box")

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should schedule the next tick")
		}
	}
	if arena.State().Tick != 3 {
		t.Errorf("Tick = %d, expected 3", arena.State().Tick)
	}
	if m.State().Tick != 3 {
		t.Errorf("model State().Tick = %d, expected 3", m.State().Tick)
	}
}

func TestModelClickRepositions(t *testing.T) {
	m, arena := newTestModel(t, "box")

	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg(time.Now()))

	want := arena.View().ToWorld(10, 5)
	if got := arena.Scene().Emitter.Position(); got != want {
		t.Errorf("Position() = %v, expected %v", got, want)
	}
}

func TestModelRestartReseeds(t *testing.T) {
	m, arena := newTestModel(t, "random")
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, runeKey("r"))
	update(t, m, TickMsg(time.Now()))

	if arena.State().Tick != 0 {
		t.Errorf("Tick = %d after restart, expected 0", arena.State().Tick)
	}
	if arena.State().Walls != 4+5 {
		t.Errorf("Walls = %d after restart, expected 9", arena.State().Walls)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m, _ := newTestModel(t, "box")

	back, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || cmd == nil {
		t.Error("esc should request the menu and quit a standalone program")
	}

	m.embedded = true
	back, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || cmd != nil {
		t.Error("esc inside a session should only set BackToMenu")
	}

	quit, cmd := update(t, m, runeKey("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelInspectorFreezesScene(t *testing.T) {
	m, arena := newTestModel(t, "box")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.inspector == nil {
		t.Fatal("tab should open the inspector")
	}
	if !strings.Contains(m.View(), "RAY HITS") {
		t.Error("inspector view should be shown")
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if arena.State().Tick != 0 {
		t.Errorf("Tick = %d with inspector open, expected 0", arena.State().Tick)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.inspector != nil {
		t.Fatal("esc should close the inspector")
	}
	if m.BackToMenu() {
		t.Error("closing the inspector should not leave the arena")
	}
	update(t, m, TickMsg(time.Now()))
	if arena.State().Tick != 1 {
		t.Errorf("Tick = %d after closing inspector, expected 1", arena.State().Tick)
	}
}

func TestInspectorFilter(t *testing.T) {
	s := boxScene(t)
	insp := NewInspectorModel(s, 100, 30)

	if got := len(insp.Visible()); got != 4 {
		t.Fatalf("Visible() = %d rows, expected 4", got)
	}

	insp, _ = insp.Update(tea.KeyMsg{Type: tea.KeyRight})
	rows := insp.Visible()
	if len(rows) != 1 || rows[0].Wall != 0 {
		t.Errorf("wall 0 filter = %+v, expected the single left-wall hit", rows)
	}

	// Wrap backwards from "all" to the last wall
	insp, _ = insp.Update(tea.KeyMsg{Type: tea.KeyLeft})
	insp, _ = insp.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if rows := insp.Visible(); len(rows) != 1 || rows[0].Wall != 3 {
		t.Errorf("wall 3 filter = %+v, expected the single top-wall hit", rows)
	}
}

func boxScene(t *testing.T) *scene.Scene {
	t.Helper()
	s, err := scene.New(scene.Params{
		Origin:     geom.Pt(1, 1),
		Width:      80,
		Height:     46,
		Directions: 4,
	})
	if err != nil {
		t.Fatalf("scene.New() failed: %v", err)
	}
	return s
}
