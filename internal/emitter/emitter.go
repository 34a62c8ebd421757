// Package emitter implements the bouncing emitter: one mobile point with a
// velocity and a fan of cast directions. It owns the collision/reflection
// step and the visibility query. It has no dependency on any driver.
package emitter

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/raycast-arena/internal/geom"
)

const (
	// DefaultTolerance is the determinant magnitude below which a wall is
	// treated as parallel to the travel vector or ray.
	DefaultTolerance = 1e-8

	// DefaultRestitution scales every reflected velocity. Values above 1
	// add energy on each bounce.
	DefaultRestitution = 1.001

	// DefaultDirections is the fan size used when none is configured.
	DefaultDirections = 10
)

var (
	// ErrNoDirections is returned when a direction set would be empty.
	ErrNoDirections = errors.New("direction set is empty")

	// ErrTolerance is returned for a non-positive tolerance.
	ErrTolerance = errors.New("tolerance must be positive")
)

// Emitter is the single mobile point of a scene. It is not safe for
// concurrent use; the owner must serialize Step with the setters.
type Emitter struct {
	position    geom.Point
	velocity    geom.Vec
	directions  []geom.Vec
	tolerance   float64
	restitution float64
}

// Option configures an Emitter at construction.
type Option func(*Emitter)

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(e *Emitter) { e.tolerance = tol }
}

// WithRestitution overrides DefaultRestitution.
func WithRestitution(r float64) Option {
	return func(e *Emitter) { e.restitution = r }
}

// WithVelocity sets the initial per-tick displacement.
func WithVelocity(v geom.Vec) Option {
	return func(e *Emitter) { e.velocity = v }
}

// New creates an emitter at pos casting the given directions.
// The slice is copied.
func New(pos geom.Point, directions []geom.Vec, opts ...Option) (*Emitter, error) {
	e := &Emitter{
		position:    pos,
		tolerance:   DefaultTolerance,
		restitution: DefaultRestitution,
	}
	for _, opt := range opts {
		opt(e)
	}

	if len(directions) == 0 {
		return nil, fmt.Errorf("emitter: %w", ErrNoDirections)
	}
	if !(e.tolerance > 0) {
		return nil, fmt.Errorf("emitter: %w (got %g)", ErrTolerance, e.tolerance)
	}

	e.directions = append([]geom.Vec(nil), directions...)
	return e, nil
}

// Fan returns n unit vectors evenly spaced around the circle, starting at
// angle 0 and turning counter-clockwise.
func Fan(n int) []geom.Vec {
	dirs := make([]geom.Vec, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		dirs[i] = geom.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return dirs
}

// Position returns the current position.
func (e *Emitter) Position() geom.Point {
	return e.position
}

// Velocity returns the current per-tick displacement.
func (e *Emitter) Velocity() geom.Vec {
	return e.velocity
}

// Directions returns a copy of the direction set.
func (e *Emitter) Directions() []geom.Vec {
	return append([]geom.Vec(nil), e.directions...)
}

// NumDirections returns the size of the direction set.
func (e *Emitter) NumDirections() int {
	return len(e.directions)
}

// Tolerance returns the parallel-rejection threshold.
func (e *Emitter) Tolerance() float64 {
	return e.tolerance
}

// Restitution returns the bounce multiplier.
func (e *Emitter) Restitution() float64 {
	return e.restitution
}

// Reposition moves the emitter without any collision handling.
// Directions are not re-aimed.
func (e *Emitter) Reposition(x, y float64) {
	e.position = geom.Point{X: x, Y: y}
}

// SetVelocity replaces the per-tick displacement.
func (e *Emitter) SetVelocity(v1, v2 float64) {
	e.velocity = geom.Vec{X: v1, Y: v2}
}

// SetDirections replaces the direction set wholesale. An empty slice is
// rejected and leaves the current set in place.
func (e *Emitter) SetDirections(dirs []geom.Vec) error {
	if len(dirs) == 0 {
		return fmt.Errorf("emitter: %w", ErrNoDirections)
	}
	e.directions = append(e.directions[:0:0], dirs...)
	return nil
}

// AimAt sets one direction per target, each pointing from the current
// position to that target. The vectors are fixed at call time: once the
// emitter moves they no longer pass through the targets.
func (e *Emitter) AimAt(targets []geom.Point) error {
	if len(targets) == 0 {
		return fmt.Errorf("emitter: %w", ErrNoDirections)
	}
	dirs := make([]geom.Vec, len(targets))
	for i, t := range targets {
		dirs[i] = t.Sub(e.position)
	}
	e.directions = dirs
	return nil
}
