// Package sim drives a scene as a registry.Simulation: it fits the arena to
// a cell screen, turns input frames into emitter calls, and draws the result.
package sim

import (
	"math"
	"sort"

	"github.com/vovakirdan/raycast-arena/internal/config"
	"github.com/vovakirdan/raycast-arena/internal/geom"
	"github.com/vovakirdan/raycast-arena/internal/registry"
	"github.com/vovakirdan/raycast-arena/internal/scene"
)

// Layout is a named arena construction routine.
type Layout struct {
	ID    string
	Title string
	// Build adjusts params after the common fields are filled in.
	Build func(p *scene.Params)
}

var layouts = map[string]Layout{
	"random": {
		ID:    "random",
		Title: "Random Walls",
	},
	"box": {
		ID:    "box",
		Title: "Empty Box",
		Build: func(p *scene.Params) {
			p.RandomWalls = 0
		},
	},
	"prism": {
		ID:    "prism",
		Title: "Prism",
		Build: buildPrism,
	},
}

// buildPrism puts a triangle in the middle of the arena and, unless a
// position is configured, starts the emitter left of it.
func buildPrism(p *scene.Params) {
	p.RandomWalls = 0

	cx := p.Origin.X + p.Width/2
	cy := p.Origin.Y + p.Height/2
	r := math.Min(p.Width, p.Height) / 4
	dx := r * math.Cos(math.Pi/6)

	top := geom.Pt(cx, cy+r)
	left := geom.Pt(cx-dx, cy-r/2)
	right := geom.Pt(cx+dx, cy-r/2)
	p.Extra = append(p.Extra,
		geom.Segment{A: top, B: left},
		geom.Segment{A: left, B: right},
		geom.Segment{A: right, B: top},
	)

	if p.Position == nil {
		pos := geom.Pt(p.Origin.X+p.Width/6, cy)
		p.Position = &pos
	}
}

// Lookup returns the layout registered under id.
func Lookup(id string) (Layout, bool) {
	l, ok := layouts[id]
	return l, ok
}

// Layouts returns every layout sorted by ID.
func Layouts() []Layout {
	out := make([]Layout, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Params builds scene parameters for an arena of width x height world
// units from the configuration. Width and height override the configured
// arena size only when the configuration leaves it at zero.
func (l Layout) Params(cfg config.Config, width, height float64, velocity geom.Vec, seed int64) scene.Params {
	if cfg.Arena.Width > 0 {
		width = cfg.Arena.Width
	}
	if cfg.Arena.Height > 0 {
		height = cfg.Arena.Height
	}

	p := scene.Params{
		Origin:      geom.Pt(cfg.Arena.Origin[0], cfg.Arena.Origin[1]),
		Width:       width,
		Height:      height,
		RandomWalls: cfg.Arena.RandomWalls,
		Velocity:    velocity,
		Directions:  cfg.Emitter.Directions,
		Tolerance:   cfg.Emitter.Tolerance,
		Restitution: cfg.Emitter.Restitution,
		Seed:        seed,
	}
	if pos := cfg.Emitter.Position; pos != nil {
		pt := geom.Pt(pos[0], pos[1])
		p.Position = &pt
	}
	for _, t := range cfg.Emitter.Targets {
		p.Targets = append(p.Targets, geom.Pt(t[0], t[1]))
	}

	if l.Build != nil {
		l.Build(&p)
	}
	return p
}

func init() {
	for _, l := range layouts {
		l := l
		registry.Register(l.ID, func(cfg config.Config) registry.Simulation {
			return New(l, cfg)
		})
	}
}
