// Package window runs an arena in a desktop window using Ebitengine.
// World units map one to one onto pixels.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/core"
	"github.com/vovakirdan/raycast-arena/internal/sim"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x14, 0xff}
	wallColor       = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	rayColor        = color.RGBA{0xf0, 0xd0, 0x40, 0x60}
	hitColor        = color.RGBA{0xff, 0x60, 0x60, 0xff}
	emitterColor    = color.RGBA{0x40, 0xc0, 0xff, 0xff}
)

// keyActions maps keys to the same actions the terminal driver uses.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyA:          core.ActionAim,
	ebiten.KeyF:          core.ActionFan,
	ebiten.KeyN:          core.ActionAddWall,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeySpace:      core.ActionPause,
}

// Game implements ebiten.Game over a sim.Arena.
type Game struct {
	layout sim.Layout
	cfg    config.Config
	logger *log.Logger

	arena *sim.Arena
	view  sim.PixelViewport
	seed  int64
	frame core.InputFrame
}

// New builds a window game for layout.
func New(l sim.Layout, cfg config.Config, seed int64, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{layout: l, cfg: cfg, logger: logger, seed: seed}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	a, v, err := sim.NewPixelArena(g.layout, g.cfg, g.seed)
	if err != nil {
		return err
	}
	g.arena, g.view = a, v
	g.logger.Debug("arena built", "layout", g.layout.ID, "seed", g.seed, "walls", len(a.Scene().Walls))
	return nil
}

// Update reads input and advances the arena by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		if err := g.reset(); err != nil {
			return err
		}
	}

	g.frame.Clear()
	for k, act := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			g.frame.Set(act)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p := g.view.ToWorld(x, y)
		g.arena.Scene().Emitter.Reposition(p.X, p.Y)
		g.logger.Debug("emitter moved", "x", p.X, "y", p.Y)
	}

	g.arena.Step(g.frame)
	return nil
}

// Draw strokes walls, rays, hit points and the emitter, with a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s := g.arena.Scene()
	for _, w := range s.Walls {
		x0, y0 := g.view.ToScreen(w.A)
		x1, y1 := g.view.ToScreen(w.B)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, wallColor, true)
	}

	ex, ey := g.view.ToScreen(s.Emitter.Position())
	hits := s.Cast()
	for _, h := range hits {
		if !h.OK {
			continue
		}
		hx, hy := g.view.ToScreen(h.Point)
		if g.cfg.Render.Rays {
			vector.StrokeLine(screen, ex, ey, hx, hy, 1, rayColor, true)
		}
		if g.cfg.Render.Hits {
			vector.DrawFilledCircle(screen, hx, hy, 3, hitColor, true)
		}
	}
	vector.DrawFilledCircle(screen, ex, ey, 5, emitterColor, true)

	st := g.arena.State()
	status := fmt.Sprintf("%s  tick %d  bounces %d  speed %.2f  rays %d  walls %d",
		g.layout.Title, st.Tick, st.Bounces, st.Speed, st.Rays, st.Walls)
	if st.Paused {
		status += "  [PAUSED]"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

// Layout keeps the logical canvas at the configured window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W, g.view.H
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, tps int) error {
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}
	ebiten.SetWindowSize(g.view.W, g.view.H)
	ebiten.SetWindowTitle("raycast - " + g.layout.Title)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}
