// Package scene bundles one emitter with the ordered wall list it moves in.
// A Scene is owned by a single driver and is not safe for concurrent use.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/raycast-arena/internal/emitter"
	"github.com/vovakirdan/raycast-arena/internal/geom"
)

// Params describes how to build a scene.
type Params struct {
	Origin      geom.Point // bottom-left corner of the arena
	Width       float64
	Height      float64
	RandomWalls int            // random walls appended after the rectangle
	Extra       []geom.Segment // fixed walls appended after the random ones

	Position    *geom.Point // nil centers the emitter in the arena
	Velocity    geom.Vec
	Directions  int
	Targets     []geom.Point // when set, AimAt replaces the fan
	Tolerance   float64
	Restitution float64

	Seed int64
}

// Scene is one emitter plus its walls and run counters.
type Scene struct {
	Emitter *emitter.Emitter
	Walls   []geom.Segment

	params  Params
	rng     *rand.Rand
	hits    []emitter.Hit
	tick    uint64
	bounces uint64
}

// New builds a scene: the bounding rectangle first, then RandomWalls seeded
// walls, then Extra.
func New(p Params) (*Scene, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("scene: arena size %gx%g must be positive", p.Width, p.Height)
	}

	rng := rand.New(rand.NewSource(p.Seed)) //#nosec G404 -- deterministic layout, not security

	walls := Rectangle(p.Origin, p.Height, p.Width)
	for i := 0; i < p.RandomWalls; i++ {
		walls = append(walls, RandomWall(rng, p.Origin, int(p.Width), int(p.Height)))
	}
	walls = append(walls, p.Extra...)

	pos := geom.Pt(p.Origin.X+p.Width/2, p.Origin.Y+p.Height/2)
	if p.Position != nil {
		pos = *p.Position
	}

	opts := []emitter.Option{emitter.WithVelocity(p.Velocity)}
	if p.Tolerance != 0 {
		opts = append(opts, emitter.WithTolerance(p.Tolerance))
	}
	if p.Restitution != 0 {
		opts = append(opts, emitter.WithRestitution(p.Restitution))
	}

	n := p.Directions
	if n == 0 {
		n = emitter.DefaultDirections
	}
	if n < 0 {
		return nil, fmt.Errorf("scene: direction count %d: %w", n, emitter.ErrNoDirections)
	}

	e, err := emitter.New(pos, emitter.Fan(n), opts...)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if len(p.Targets) > 0 {
		if err := e.AimAt(p.Targets); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}

	return &Scene{
		Emitter: e,
		Walls:   walls,
		params:  p,
		rng:     rng,
		hits:    make([]emitter.Hit, 0, n),
	}, nil
}

// Rectangle returns the four walls of an arena with the given origin and
// extent, in the order left, right, bottom, top. Far edges sit at
// origin+extent-1 so the whole arena fits in extent integer cells.
func Rectangle(origin geom.Point, height, width float64) []geom.Segment {
	x, y := origin.X, origin.Y
	right := x + width - 1
	top := y + height - 1
	return []geom.Segment{
		geom.Seg(x, y, x, top),
		geom.Seg(right, y, right, top),
		geom.Seg(x, y, right, y),
		geom.Seg(x, top, right, top),
	}
}

// RandomWall returns a wall with both endpoints drawn uniformly from the
// integer lattice [1,width] x [1,height], offset by origin-(1,1).
func RandomWall(rng *rand.Rand, origin geom.Point, width, height int) geom.Segment {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	ox, oy := origin.X-1, origin.Y-1
	x1 := ox + float64(1+rng.Intn(width))
	y1 := oy + float64(1+rng.Intn(height))
	x2 := ox + float64(1+rng.Intn(width))
	y2 := oy + float64(1+rng.Intn(height))
	return geom.Seg(x1, y1, x2, y2)
}

// Params returns the parameters the scene was built from.
func (s *Scene) Params() Params {
	return s.params
}

// Tick returns the number of steps taken.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// Bounces returns the number of collisions resolved so far.
func (s *Scene) Bounces() uint64 {
	return s.bounces
}

// Step advances the emitter by one tick.
func (s *Scene) Step() emitter.Collision {
	c := s.Emitter.Step(s.Walls)
	s.tick++
	if c.Hit {
		s.bounces++
	}
	return c
}

// Cast runs the visibility query. The returned slice is reused by the next
// call.
func (s *Scene) Cast() []emitter.Hit {
	s.hits = s.Emitter.CastRaysInto(s.hits, s.Walls)
	return s.hits
}

// AddWall appends a wall. Existing walls are never edited.
func (s *Scene) AddWall(w geom.Segment) {
	s.Walls = append(s.Walls, w)
}

// AddRandomWall appends a random wall inside the arena and returns it.
func (s *Scene) AddRandomWall() geom.Segment {
	w := RandomWall(s.rng, s.params.Origin, int(s.params.Width), int(s.params.Height))
	s.AddWall(w)
	return w
}

// Corners returns the four arena corners, counter-clockwise from the origin.
func (s *Scene) Corners() []geom.Point {
	x, y := s.params.Origin.X, s.params.Origin.Y
	r := x + s.params.Width - 1
	t := y + s.params.Height - 1
	return []geom.Point{geom.Pt(x, y), geom.Pt(r, y), geom.Pt(r, t), geom.Pt(x, t)}
}
