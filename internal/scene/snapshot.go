package scene

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/raycast-arena/internal/emitter"
)

// Snapshot is a plain-value copy of a scene for determinism checks and
// YAML dumps.
type Snapshot struct {
	Tick        uint64       `yaml:"tick"`
	Bounces     uint64       `yaml:"bounces"`
	Position    [2]float64   `yaml:"position,flow"`
	Velocity    [2]float64   `yaml:"velocity,flow"`
	Tolerance   float64      `yaml:"tolerance"`
	Restitution float64      `yaml:"restitution"`
	Directions  int          `yaml:"directions"`
	Walls       [][4]float64 `yaml:"walls,flow"`
	Hits        []HitRecord  `yaml:"hits,omitempty"`
}

// HitRecord is one ray result in a snapshot.
type HitRecord struct {
	Ray  int        `yaml:"ray"`
	Wall int        `yaml:"wall"`
	At   [2]float64 `yaml:"at,flow"`
}

// Snapshot captures the scene. When withHits is set the current
// visibility query is included; rays that escape are omitted.
func (s *Scene) Snapshot(withHits bool) Snapshot {
	e := s.Emitter
	pos, vel := e.Position(), e.Velocity()

	snap := Snapshot{
		Tick:        s.tick,
		Bounces:     s.bounces,
		Position:    [2]float64{pos.X, pos.Y},
		Velocity:    [2]float64{vel.X, vel.Y},
		Tolerance:   e.Tolerance(),
		Restitution: e.Restitution(),
		Directions:  e.NumDirections(),
		Walls:       make([][4]float64, len(s.Walls)),
	}
	for i, w := range s.Walls {
		snap.Walls[i] = [4]float64{w.A.X, w.A.Y, w.B.X, w.B.Y}
	}

	if withHits {
		snap.Hits = hitRecords(e.CastRays(s.Walls))
	}
	return snap
}

func hitRecords(hits []emitter.Hit) []HitRecord {
	out := make([]HitRecord, 0, len(hits))
	for i, h := range hits {
		if !h.OK {
			continue
		}
		out = append(out, HitRecord{Ray: i, Wall: h.Wall, At: [2]float64{h.Point.X, h.Point.Y}})
	}
	return out
}

// Hash returns an FNV-1a hash over the bit patterns of the snapshot.
// Two runs from the same parameters and inputs hash equal.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:]) //nolint:errcheck // hash.Hash never fails
	}
	putF := func(f float64) {
		putU(math.Float64bits(f))
	}

	putU(snap.Tick)
	putU(snap.Bounces)
	putF(snap.Position[0])
	putF(snap.Position[1])
	putF(snap.Velocity[0])
	putF(snap.Velocity[1])
	putF(snap.Tolerance)
	putF(snap.Restitution)
	putU(uint64(snap.Directions)) //#nosec G115 -- hash computation

	for _, w := range snap.Walls {
		for _, c := range w {
			putF(c)
		}
	}
	for _, r := range snap.Hits {
		putU(uint64(r.Ray))  //#nosec G115 -- hash computation
		putU(uint64(r.Wall)) //#nosec G115 -- hash computation
		putF(r.At[0])
		putF(r.At[1])
	}

	return h.Sum64()
}
