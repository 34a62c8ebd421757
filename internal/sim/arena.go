package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/emitter"
	"github.com/vovakirdan/raycast-arena/internal/geom"
	"github.com/vovakirdan/raycast-arena/internal/scene"
)

// Glyphs used by Render.
const (
	GlyphWall    = '#'
	GlyphRay     = '·'
	GlyphHit     = '+'
	GlyphEmitter = '@'
)

// Arena is a registry.Simulation over one scene.
type Arena struct {
	layout  Layout
	cfg     config.Config
	runtime core.RuntimeConfig

	scene  *scene.Scene
	view   Viewport
	err    error
	paused bool
}

// New creates an arena for layout. Reset must be called before Step.
func New(l Layout, cfg config.Config) *Arena {
	return &Arena{
		layout: l,
		cfg:    cfg,
	}
}

// ID returns the layout identifier.
func (a *Arena) ID() string {
	return a.layout.ID
}

// Title returns the layout display name.
func (a *Arena) Title() string {
	return a.layout.Title
}

// Reset rebuilds the arena below a one-row HUD, fitted to the screen.
func (a *Arena) Reset(cfg core.RuntimeConfig) {
	a.runtime = cfg
	a.paused = false

	area := core.NewRect(0, 1, cfg.ScreenW, cfg.ScreenH-1)
	origin := geom.Pt(a.cfg.Arena.Origin[0], a.cfg.Arena.Origin[1])
	a.view = FitViewport(origin, area)

	vel := geom.V(a.cfg.Emitter.Velocity[0], a.cfg.Emitter.Velocity[1])
	p := a.layout.Params(a.cfg, a.view.W, a.view.H, vel, cfg.Seed)
	a.view.W, a.view.H = p.Width, p.Height

	if area.Empty() {
		a.scene, a.err = nil, fmt.Errorf("sim: screen %dx%d too small", cfg.ScreenW, cfg.ScreenH)
		return
	}
	a.scene, a.err = scene.New(p)
}

// Err returns the error from the last Reset, if the arena could not be built.
func (a *Arena) Err() error {
	return a.err
}

// Scene returns the underlying scene, or nil before a successful Reset.
func (a *Arena) Scene() *scene.Scene {
	return a.scene
}

// View returns the current world to screen mapping.
func (a *Arena) View() Viewport {
	return a.view
}

// Step applies input, then advances the emitter unless paused.
func (a *Arena) Step(in core.InputFrame) core.StepResult {
	if a.scene == nil {
		return core.StepResult{State: a.State()}
	}

	if in.Has(core.ActionPause) {
		a.paused = !a.paused
	}
	a.applyInput(in)

	var res core.StepResult
	if !a.paused {
		res.Bounced = a.scene.Step().Hit
	}
	res.State = a.State()
	return res
}

func (a *Arena) applyInput(in core.InputFrame) {
	e := a.scene.Emitter

	if in.Has(core.ActionPlace) && in.Pointer != nil && a.view.Area.Contains(in.Pointer.X, in.Pointer.Y) {
		p := a.view.ToWorld(in.Pointer.X, in.Pointer.Y)
		e.Reposition(p.X, p.Y)
	}

	speed := e.Velocity().Len()
	if speed == 0 {
		speed = geom.V(a.cfg.Emitter.Velocity[0], a.cfg.Emitter.Velocity[1]).Len()
	}
	switch {
	case in.Has(core.ActionUp):
		e.SetVelocity(0, speed)
	case in.Has(core.ActionDown):
		e.SetVelocity(0, -speed)
	case in.Has(core.ActionLeft):
		e.SetVelocity(-speed, 0)
	case in.Has(core.ActionRight):
		e.SetVelocity(speed, 0)
	}

	if in.Has(core.ActionAim) {
		e.AimAt(a.scene.Corners()) //nolint:errcheck // four corners, never empty
	}
	if in.Has(core.ActionFan) {
		e.SetDirections(emitter.Fan(a.fanSize())) //nolint:errcheck // fanSize is positive
	}
	if in.Has(core.ActionAddWall) {
		a.scene.AddRandomWall()
	}
}

func (a *Arena) fanSize() int {
	if n := a.cfg.Emitter.Directions; n > 0 {
		return n
	}
	return emitter.DefaultDirections
}

// State returns the current counters.
func (a *Arena) State() core.SimState {
	st := core.SimState{Paused: a.paused}
	if a.scene == nil {
		return st
	}
	st.Tick = a.scene.Tick()
	st.Bounces = a.scene.Bounces()
	st.Speed = a.scene.Emitter.Velocity().Len()
	st.Rays = a.scene.Emitter.NumDirections()
	st.Walls = len(a.scene.Walls)
	return st
}

// Render draws the HUD row, then walls, rays, hit points and the emitter.
func (a *Arena) Render(dst *core.Screen) {
	if a.scene == nil {
		msg := "arena unavailable"
		if a.err != nil {
			msg = a.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg, core.ColorRed)
		return
	}

	a.renderHUD(dst)

	for _, w := range a.scene.Walls {
		x0, y0 := a.view.ToScreen(w.A)
		x1, y1 := a.view.ToScreen(w.B)
		dst.DrawLine(x0, y0, x1, y1, GlyphWall, a.color(core.ColorWall))
	}

	ex, ey := a.view.ToScreen(a.scene.Emitter.Position())
	hits := a.scene.Cast()
	if a.cfg.Render.Rays {
		for _, h := range hits {
			if !h.OK {
				continue
			}
			hx, hy := a.view.ToScreen(h.Point)
			dst.DrawLineUnder(ex, ey, hx, hy, GlyphRay, a.color(core.ColorRay))
		}
	}
	if a.cfg.Render.Hits {
		for _, h := range hits {
			if !h.OK {
				continue
			}
			hx, hy := a.view.ToScreen(h.Point)
			dst.SetColored(hx, hy, GlyphHit, a.color(core.ColorHit))
		}
	}

	dst.SetColored(ex, ey, GlyphEmitter, a.color(core.ColorEmitter))
}

func (a *Arena) renderHUD(dst *core.Screen) {
	st := a.State()

	var b strings.Builder
	fmt.Fprintf(&b, " %s  tick %d  bounces %d  speed %.2f  rays %d  walls %d",
		a.layout.Title, st.Tick, st.Bounces, st.Speed, st.Rays, st.Walls)
	if st.Paused {
		b.WriteString("  [PAUSED]")
	}
	dst.DrawText(0, 0, b.String(), a.color(core.ColorHUD))
}

func (a *Arena) color(c core.Color) core.Color {
	if !a.cfg.Render.Colors {
		return core.ColorDefault
	}
	return c
}
