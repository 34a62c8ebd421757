package emitter

import "github.com/vovakirdan/raycast-arena/internal/geom"

// Hit is an optional ray endpoint. OK is false when the ray escapes every
// wall, which cannot happen inside a closed arena.
type Hit struct {
	Point geom.Point
	Wall  int
	OK    bool
}

// CastRays returns, in direction order, the nearest wall intersection of
// each ray cast from the current position. It never mutates the emitter.
func (e *Emitter) CastRays(walls []geom.Segment) []Hit {
	return e.CastRaysInto(make([]Hit, 0, len(e.directions)), walls)
}

// CastRaysInto is CastRays appending into dst[:0], for render loops that
// reuse a buffer.
func (e *Emitter) CastRaysInto(dst []Hit, walls []geom.Segment) []Hit {
	dst = dst[:0]
	for _, d := range e.directions {
		idx, t := geom.NearestRay(e.position, d, walls, e.tolerance)
		if idx < 0 {
			dst = append(dst, Hit{Wall: -1})
			continue
		}
		dst = append(dst, Hit{
			Point: e.position.Add(d.Scale(t)),
			Wall:  idx,
			OK:    true,
		})
	}
	return dst
}
