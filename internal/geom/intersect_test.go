package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestIntersectVector(t *testing.T) {
	wall := Seg(10, 0, 10, 20)

	tests := []struct {
		name       string
		p          Point
		v          Vec
		wantOK     bool
		wantLambda float64
		wantMu     float64
	}{
		{"half step", Pt(5, 5), V(10, 0), true, 0.5, 0.25},
		{"exact reach", Pt(5, 10), V(5, 0), true, 1, 0.5},
		{"short of wall", Pt(5, 5), V(4, 0), false, 0, 0},
		{"moving away", Pt(5, 5), V(-10, 0), false, 0, 0},
		{"passes above", Pt(5, 25), V(10, 0), false, 0, 0},
		{"parallel", Pt(5, 5), V(0, 10), false, 0, 0},
		{"endpoint A", Pt(5, 0), V(10, 0), true, 0.5, 0},
		{"diagonal", Pt(0, 0), V(20, 20), true, 0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lambda, mu, ok := IntersectVector(tc.p, tc.v, wall, 1e-8)
			if ok != tc.wantOK {
				t.Fatalf("IntersectVector() ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if !near(lambda, tc.wantLambda) {
				t.Errorf("lambda = %v, expected %v", lambda, tc.wantLambda)
			}
			if !near(mu, tc.wantMu) {
				t.Errorf("mu = %v, expected %v", mu, tc.wantMu)
			}
		})
	}
}

func TestIntersectRay(t *testing.T) {
	wall := Seg(10, 0, 10, 20)

	tests := []struct {
		name   string
		p      Point
		d      Vec
		wantOK bool
		wantT  float64
		wantMu float64
	}{
		{"unit direction", Pt(5, 5), V(1, 0), true, 5, 0.25},
		{"long direction", Pt(5, 5), V(10, 0), true, 0.5, 0.25},
		{"behind origin", Pt(15, 5), V(1, 0), false, 0, 0},
		{"misses segment", Pt(5, 30), V(1, 0), false, 0, 0},
		{"parallel", Pt(5, 5), V(0, 1), false, 0, 0},
		{"hits endpoint B", Pt(0, 20), V(1, 0), true, 10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt, mu, ok := IntersectRay(tc.p, tc.d, wall, 1e-8)
			if ok != tc.wantOK {
				t.Fatalf("IntersectRay() ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if !near(tt, tc.wantT) {
				t.Errorf("t = %v, expected %v", tt, tc.wantT)
			}
			if !near(mu, tc.wantMu) {
				t.Errorf("mu = %v, expected %v", mu, tc.wantMu)
			}
		})
	}
}

func TestIntersectToleranceExcludesNearParallel(t *testing.T) {
	// denom = 1e-9 * 20, below a 1e-6 tolerance
	wall := Seg(10, 0, 10, 20)
	v := V(1e-9, 10)

	if _, _, ok := IntersectVector(Pt(9.99999999, 0), v, wall, 1e-6); ok {
		t.Error("IntersectVector should ignore a near-parallel wall")
	}
	if _, _, ok := IntersectRay(Pt(9.99999999, 0), v, wall, 1e-6); ok {
		t.Error("IntersectRay should ignore a near-parallel wall")
	}
}

func TestNearestVector(t *testing.T) {
	walls := []Segment{
		Seg(7, -5, 7, 5), // lambda 0.7
		Seg(3, -5, 3, 5), // lambda 0.3
		Seg(20, -5, 20, 5),
	}

	idx, lambda := NearestVector(Pt(0, 0), V(10, 0), walls, 1e-8)
	if idx != 1 {
		t.Errorf("NearestVector() index = %d, expected 1", idx)
	}
	if !near(lambda, 0.3) {
		t.Errorf("NearestVector() lambda = %v, expected 0.3", lambda)
	}

	idx, _ = NearestVector(Pt(0, 0), V(-10, 0), walls, 1e-8)
	if idx != -1 {
		t.Errorf("NearestVector() index = %d, expected -1 for no hit", idx)
	}
}

func TestNearestRayFirstWinsTie(t *testing.T) {
	walls := []Segment{
		Seg(5, -1, 5, 1),
		Seg(5, 1, 5, -1),
	}

	idx, tt := NearestRay(Pt(0, 0), V(1, 0), walls, 1e-8)
	if idx != 0 {
		t.Errorf("NearestRay() index = %d, expected 0", idx)
	}
	if !near(tt, 5) {
		t.Errorf("NearestRay() t = %v, expected 5", tt)
	}
}

func TestReflect(t *testing.T) {
	wall := Seg(10, 0, 10, 20)
	got := Reflect(V(3, 4), wall.Normal())
	if !near(got.X, -3) || !near(got.Y, 4) {
		t.Errorf("Reflect() = %v, expected {-3 4}", got)
	}

	floor := Seg(0, 0, 10, 0)
	got = Reflect(V(3, -4), floor.Normal())
	if !near(got.X, 3) || !near(got.Y, 4) {
		t.Errorf("Reflect() = %v, expected {3 4}", got)
	}
}

func TestSegmentHelpers(t *testing.T) {
	s := Seg(1, 2, 5, 2)

	if n := s.Normal(); n != V(0, 4) {
		t.Errorf("Normal() = %v, expected {0 4}", n)
	}
	if p := s.At(0.5); p != Pt(3, 2) {
		t.Errorf("At(0.5) = %v, expected {3 2}", p)
	}
	if l := s.Dir().Len(); !near(l, 4) {
		t.Errorf("Dir().Len() = %v, expected 4", l)
	}
}
