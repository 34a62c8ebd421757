package geom

import "math"

// IntersectVector tests the bounded travel vector p + lambda*v, lambda in
// [0,1], against segment s. mu is the fraction along s measured from A.
// ok is false when the pair is parallel within tol or either parameter
// falls outside [0,1].
func IntersectVector(p Point, v Vec, s Segment, tol float64) (lambda, mu float64, ok bool) {
	x1, y1, x2, y2 := s.A.X, s.A.Y, s.B.X, s.B.Y

	denom := v.X*(y1-y2) - v.Y*(x1-x2)
	if math.Abs(denom) < tol {
		return 0, 0, false
	}

	lambda = ((y1-y2)*(x1-p.X) + (x2-x1)*(y1-p.Y)) / denom
	mu = (v.X*(y1-p.Y) - v.Y*(x1-p.X)) / denom

	if mu < 0 || mu > 1 || lambda < 0 || lambda > 1 {
		return 0, 0, false
	}
	return lambda, mu, true
}

// IntersectRay tests the one-sided ray p + t*d, t >= 0, against segment s.
// The system is solved from endpoint B; mu is reported from A so it means the
// same thing as in IntersectVector.
func IntersectRay(p Point, d Vec, s Segment, tol float64) (t, mu float64, ok bool) {
	x1, y1, x2, y2 := s.A.X, s.A.Y, s.B.X, s.B.Y

	denom := d.X*(y2-y1) - d.Y*(x2-x1)
	if math.Abs(denom) < tol {
		return 0, 0, false
	}

	t = ((y2-y1)*(x2-p.X) + (x1-x2)*(y2-p.Y)) / denom
	fromB := (d.X*(y2-p.Y) - d.Y*(x2-p.X)) / denom

	if t < 0 || fromB < 0 || fromB > 1 {
		return 0, 0, false
	}
	return t, 1 - fromB, true
}

// NearestVector returns the wall with the smallest lambda hit by p + v.
// Exact ties keep the first wall. index is -1 when nothing is hit.
func NearestVector(p Point, v Vec, walls []Segment, tol float64) (index int, lambda float64) {
	index = -1
	lambda = math.Inf(1)
	for i := range walls {
		l, _, ok := IntersectVector(p, v, walls[i], tol)
		if ok && l < lambda {
			index, lambda = i, l
		}
	}
	return index, lambda
}

// NearestRay returns the wall with the smallest t hit by the ray p + t*d.
// index is -1 when the ray escapes.
func NearestRay(p Point, d Vec, walls []Segment, tol float64) (index int, t float64) {
	index = -1
	t = math.Inf(1)
	for i := range walls {
		tt, _, ok := IntersectRay(p, d, walls[i], tol)
		if ok && tt < t {
			index, t = i, tt
		}
	}
	return index, t
}
