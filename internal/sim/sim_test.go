package sim

import (
	"strings"
	"testing"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/geom"
	"github.com/vovakirdan/raycast-arena/internal/registry"
)

func runtime80x24(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func newArena(t *testing.T, id string, cfg config.Config) *Arena {
	t.Helper()
	l, ok := Lookup(id)
	if !ok {
		t.Fatalf("Lookup(%q) failed", id)
	}
	a := New(l, cfg)
	a.Reset(runtime80x24(42))
	if a.Err() != nil {
		t.Fatalf("Reset() failed: %v", a.Err())
	}
	return a
}

func TestLayoutsRegistered(t *testing.T) {
	for _, id := range []string{"box", "prism", "random"} {
		if !registry.Exists(id) {
			t.Errorf("layout %q not registered", id)
		}
	}

	got := Layouts()
	if len(got) != 3 || got[0].ID != "box" || got[2].ID != "random" {
		t.Errorf("Layouts() = %v, expected sorted box, prism, random", got)
	}
}

func TestLayoutWallCounts(t *testing.T) {
	tests := []struct {
		id    string
		walls int
	}{
		{"random", 4 + 5},
		{"box", 4},
		{"prism", 4 + 3},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			a := newArena(t, tc.id, config.Default())
			if got := a.State().Walls; got != tc.walls {
				t.Errorf("Walls = %d, expected %d", got, tc.walls)
			}
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v := FitViewport(geom.Pt(1, 1), core.NewRect(0, 1, 80, 23))

	tests := []struct {
		name     string
		p        geom.Point
		col, row int
	}{
		{"origin is bottom-left", geom.Pt(1, 1), 0, 23},
		{"far corner is top-right", geom.Pt(80, 46), 79, 1},
		{"center", geom.Pt(41, 24), 40, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row := v.ToScreen(tc.p)
			if col != tc.col || row != tc.row {
				t.Errorf("ToScreen(%v) = (%d, %d), expected (%d, %d)", tc.p, col, row, tc.col, tc.row)
			}
		})
	}

	for _, cell := range [][2]int{{0, 23}, {79, 1}, {13, 7}} {
		col, row := v.ToScreen(v.ToWorld(cell[0], cell[1]))
		if col != cell[0] || row != cell[1] {
			t.Errorf("ToScreen(ToWorld(%v)) = (%d, %d)", cell, col, row)
		}
	}
}

func TestConfiguredArenaSizeScales(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Width = 1200
	cfg.Arena.Height = 900

	a := newArena(t, "box", cfg)
	v := a.View()
	if v.W != 1200 || v.H != 900 {
		t.Fatalf("View() extent = %gx%g, expected 1200x900", v.W, v.H)
	}

	col, row := v.ToScreen(geom.Pt(1200, 900))
	if col != 79 || row != 1 {
		t.Errorf("ToScreen(top-right) = (%d, %d), expected (79, 1)", col, row)
	}
}

func TestStepAndPause(t *testing.T) {
	a := newArena(t, "box", config.Default())

	for i := 0; i < 10; i++ {
		a.Step(core.NewInputFrame())
	}
	if a.State().Tick != 10 {
		t.Errorf("Tick = %d, expected 10", a.State().Tick)
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := a.Step(pause)
	if !res.State.Paused {
		t.Error("Paused = false after ActionPause")
	}

	before := a.Scene().Emitter.Position()
	for i := 0; i < 5; i++ {
		a.Step(core.NewInputFrame())
	}
	if a.State().Tick != 10 || a.Scene().Emitter.Position() != before {
		t.Error("paused arena should not advance")
	}

	a.Step(pause)
	if a.State().Paused || a.State().Tick != 11 {
		t.Errorf("after unpause: Paused=%v Tick=%d, expected false 11", a.State().Paused, a.State().Tick)
	}
}

func TestPlaceRepositions(t *testing.T) {
	a := newArena(t, "box", config.Default())

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Place(10, 5)
	a.Step(in)

	want := a.View().ToWorld(10, 5)
	if got := a.Scene().Emitter.Position(); got != want {
		t.Errorf("Position() = %v, expected %v", got, want)
	}

	// Clicks on the HUD row are ignored
	in = core.NewInputFrame()
	in.Place(10, 0)
	a.Step(in)
	if got := a.Scene().Emitter.Position(); got != want {
		t.Errorf("HUD click moved emitter to %v", got)
	}
}

func TestArrowKeepsSpeed(t *testing.T) {
	a := newArena(t, "box", config.Default())
	e := a.Scene().Emitter
	speed := e.Velocity().Len()

	tests := []struct {
		action core.Action
		want   geom.Vec
	}{
		{core.ActionRight, geom.V(speed, 0)},
		{core.ActionUp, geom.V(0, speed)},
		{core.ActionLeft, geom.V(-speed, 0)},
		{core.ActionDown, geom.V(0, -speed)},
	}

	for _, tc := range tests {
		in := core.NewInputFrame()
		in.Set(tc.action)
		a.Step(in)
		if got := e.Velocity(); got != tc.want {
			t.Errorf("%s: Velocity() = %v, expected %v", tc.action, got, tc.want)
		}
	}
}

func TestAimFanAndAddWall(t *testing.T) {
	a := newArena(t, "box", config.Default())

	in := core.NewInputFrame()
	in.Set(core.ActionAim)
	in.Set(core.ActionAddWall)
	res := a.Step(in)

	if res.State.Rays != 4 {
		t.Errorf("Rays after aim = %d, expected 4", res.State.Rays)
	}
	if res.State.Walls != 5 {
		t.Errorf("Walls after add = %d, expected 5", res.State.Walls)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionFan)
	res = a.Step(in)
	if res.State.Rays != 200 {
		t.Errorf("Rays after fan = %d, expected 200", res.State.Rays)
	}
}

func TestRender(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Rays = false
	cfg.Render.Hits = false
	a := newArena(t, "box", cfg)

	s := core.NewScreen(80, 24)
	a.Render(s)

	if !strings.Contains(s.Row(0), "Empty Box") {
		t.Errorf("HUD row = %q, expected layout title", s.Row(0))
	}
	if s.Get(40, 12) != GlyphEmitter {
		t.Errorf("emitter cell = %q, expected %q", s.Get(40, 12), GlyphEmitter)
	}
	for _, c := range [][2]int{{0, 1}, {0, 23}, {79, 1}, {79, 23}, {40, 1}, {40, 23}} {
		if s.Get(c[0], c[1]) != GlyphWall {
			t.Errorf("wall cell %v = %q, expected %q", c, s.Get(c[0], c[1]), GlyphWall)
		}
	}
	if s.GetCell(0, 1).Color != core.ColorWall {
		t.Errorf("wall color = %d, expected %d", s.GetCell(0, 1).Color, core.ColorWall)
	}
}

func TestRenderRays(t *testing.T) {
	a := newArena(t, "box", config.Default())

	s := core.NewScreen(80, 24)
	a.Render(s)

	out := s.String()
	if !strings.ContainsRune(out, GlyphRay) || !strings.ContainsRune(out, GlyphHit) {
		t.Error("Render() should draw rays and hit points")
	}
	if s.Get(40, 12) != GlyphEmitter {
		t.Error("rays must not cover the emitter")
	}
}

func TestTooSmallScreen(t *testing.T) {
	l, _ := Lookup("box")
	a := New(l, config.Default())
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 1, TickRate: 60})

	if a.Err() == nil {
		t.Fatal("Err() = nil for a one-row screen")
	}
	res := a.Step(core.NewInputFrame())
	if res.State.Tick != 0 {
		t.Errorf("Tick = %d, expected 0", res.State.Tick)
	}
}

func TestArenaDeterminism(t *testing.T) {
	run := func() uint64 {
		a := newArena(t, "random", config.Default())
		for i := 0; i < 500; i++ {
			in := core.NewInputFrame()
			switch i {
			case 100:
				in.Place(20, 10)
			case 200:
				in.Set(core.ActionAddWall)
			case 300:
				in.Set(core.ActionLeft)
			}
			a.Step(in)
		}
		snap := a.Scene().Snapshot(true)
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestPixelViewport(t *testing.T) {
	v := PixelViewport{Origin: geom.Pt(1, 1), W: 1200, H: 900}

	tests := []struct {
		p      geom.Point
		px, py float32
	}{
		{geom.Pt(1, 1), 0, 899},
		{geom.Pt(1200, 900), 1199, 0},
		{geom.Pt(600, 450), 599, 450},
	}

	for _, tc := range tests {
		x, y := v.ToScreen(tc.p)
		if x != tc.px || y != tc.py {
			t.Errorf("ToScreen(%v) = (%v, %v), expected (%v, %v)", tc.p, x, y, tc.px, tc.py)
		}
		if back := v.ToWorld(int(x), int(y)); back != tc.p {
			t.Errorf("ToWorld(%v, %v) = %v, expected %v", x, y, back, tc.p)
		}
	}
}

func TestNewPixelArena(t *testing.T) {
	l, _ := Lookup("box")
	cfg := config.Default()

	a, v, err := NewPixelArena(l, cfg, 1)
	if err != nil {
		t.Fatalf("NewPixelArena() failed: %v", err)
	}

	if v.W != 1200 || v.H != 900 {
		t.Errorf("viewport = %dx%d, expected 1200x900", v.W, v.H)
	}
	p := a.Scene().Params()
	if p.Width != 1200 || p.Height != 900 {
		t.Errorf("arena = %gx%g, expected 1200x900", p.Width, p.Height)
	}
	if got := a.Scene().Emitter.Velocity(); got != geom.V(10, 10) {
		t.Errorf("Velocity() = %v, expected window velocity {10 10}", got)
	}

	cfg.Window.Width = 0
	if _, _, err := NewPixelArena(l, cfg, 1); err == nil {
		t.Error("NewPixelArena() should fail for a zero-width window")
	}
}
