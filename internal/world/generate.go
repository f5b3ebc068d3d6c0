package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

// SpawnFunc creates an entity centred at (cx, cy) in room.
type SpawnFunc func(room *Room, cx, cy float64) *sim.Actor

// GenConfig controls floor generation.
type GenConfig struct {
	Floors          int
	MinRooms        int
	MaxRooms        int
	GridW           int     // Room grid X range is 1..GridW
	GridH           int     // Room grid Y range is 1..GridH
	CellSize        float64 // World units per grid cell
	ExtraEdgeFactor float64 // Extra random doors per floor, as a fraction of room count
	SpawnChance     float64 // Probability that a room gets one entity
	Spawn           SpawnFunc
}

// DefaultGenConfig returns the mansion layout parameters.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Floors:          4,
		MinRooms:        6,
		MaxRooms:        10,
		GridW:           8,
		GridH:           5,
		CellSize:        96,
		ExtraEdgeFactor: 0.5,
		SpawnChance:     0.5,
	}
}

// Validate rejects layouts that cannot be generated.
func (c GenConfig) Validate() error {
	switch {
	case c.Floors < 1:
		return core.Invalidf("floors", "must be at least 1, got %d", c.Floors)
	case c.MinRooms < 1:
		return core.Invalidf("min_rooms", "must be at least 1, got %d", c.MinRooms)
	case c.MaxRooms < c.MinRooms:
		return core.Invalidf("max_rooms", "%d is below min_rooms %d", c.MaxRooms, c.MinRooms)
	case c.Floors > 1 && c.MinRooms < 3:
		// The stairs go in a room that is neither the entry nor the last one.
		return core.Invalidf("min_rooms", "need at least 3 rooms per floor to place stairs, got %d", c.MinRooms)
	case c.GridW < 1 || c.GridH < 1:
		return core.Invalidf("grid", "must be positive, got %dx%d", c.GridW, c.GridH)
	case c.CellSize <= 0:
		return core.Invalidf("cell_size", "must be positive, got %v", c.CellSize)
	case c.ExtraEdgeFactor < 0:
		return core.Invalidf("extra_edge_factor", "must not be negative, got %v", c.ExtraEdgeFactor)
	case c.SpawnChance < 0 || c.SpawnChance > 1:
		return core.Invalidf("spawn_chance", "must be within [0, 1], got %v", c.SpawnChance)
	}
	return nil
}

// Generate builds cfg.Floors floors from rng.
//
// Each floor chains its rooms i <-> i+1, which keeps it connected, then adds
// random extra doors between distinct rooms, skipping pairs that are already
// adjacent. Every floor but the last gets one stairs room picked from the
// rooms that are neither first nor last.
func Generate(cfg GenConfig, rng *rand.Rand) ([]*Floor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("generate floors: nil random source")
	}

	floors := make([]*Floor, 0, cfg.Floors)
	for fi := 0; fi < cfg.Floors; fi++ {
		floors = append(floors, generateFloor(cfg, fi, rng))
	}
	return floors, nil
}

func generateFloor(cfg GenConfig, index int, rng *rand.Rand) *Floor {
	n := cfg.MinRooms + rng.Intn(cfg.MaxRooms-cfg.MinRooms+1)
	f := &Floor{Index: index, Rooms: make([]*Room, n)}
	for i := range f.Rooms {
		f.Rooms[i] = &Room{
			ID:    i,
			GridX: 1 + rng.Intn(cfg.GridW),
			GridY: 1 + rng.Intn(cfg.GridH),
		}
	}

	for i := 0; i < n-1; i++ {
		f.Rooms[i].connect(f.Rooms[i+1])
	}

	if n >= 2 {
		extra := int(float64(n) * cfg.ExtraEdgeFactor)
		for e := 0; e < extra; e++ {
			a := rng.Intn(n)
			b := rng.Intn(n - 1)
			if b >= a {
				b++
			}
			if !f.Rooms[a].HasDoor(b) {
				f.Rooms[a].connect(f.Rooms[b])
			}
		}
	}

	if index < cfg.Floors-1 {
		f.Rooms[1+rng.Intn(n-2)].HasStairs = true
	}

	for _, r := range f.Rooms {
		if rng.Float64() >= cfg.SpawnChance || cfg.Spawn == nil {
			continue
		}
		cx, cy := r.Center(cfg.CellSize)
		if e := cfg.Spawn(r, cx, cy); e != nil {
			r.Entities = append(r.Entities, e)
		}
	}
	return f
}
