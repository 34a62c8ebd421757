package emitter

import "github.com/vovakirdan/raycast-arena/internal/geom"

// Collision describes the bounce resolved by a Step, if any.
type Collision struct {
	Hit    bool
	Wall   int        // index into the walls slice passed to Step
	Lambda float64    // fraction of the step travelled before impact
	Point  geom.Point // impact point
}

// Step advances the emitter by one tick against walls.
//
// Without a hit the emitter translates by its velocity. With a hit at
// lambda on wall w the velocity is reflected about w's normal and scaled by
// the restitution, and the remaining 1-lambda of the step is travelled from
// the impact point with the new velocity. Only the nearest bounce is
// resolved per tick, even if the remainder crosses another wall.
func (e *Emitter) Step(walls []geom.Segment) Collision {
	idx, lambda := geom.NearestVector(e.position, e.velocity, walls, e.tolerance)
	if idx < 0 {
		e.position = e.position.Add(e.velocity)
		return Collision{Wall: -1}
	}

	impact := e.position.Add(e.velocity.Scale(lambda))
	v := geom.Reflect(e.velocity, walls[idx].Normal()).Scale(e.restitution)
	pos := impact.Add(v.Scale(1 - lambda))

	e.position, e.velocity = pos, v

	return Collision{
		Hit:    true,
		Wall:   idx,
		Lambda: lambda,
		Point:  impact,
	}
}
