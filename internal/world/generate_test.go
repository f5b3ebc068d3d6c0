package world

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

var update = flag.Bool("update", false, "rewrite golden files")

func ghostSpawn(_ *Room, cx, cy float64) *sim.Actor {
	return sim.NewChaser(cx, cy, 44, 44, 2, 0.8)
}

func TestGenerate_Properties(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Spawn = ghostSpawn

	for seed := int64(1); seed <= 50; seed++ {
		floors, err := Generate(cfg, core.NewRand(seed))
		require.NoError(t, err)
		require.Len(t, floors, cfg.Floors)

		for fi, f := range floors {
			n := len(f.Rooms)
			assert.GreaterOrEqual(t, n, cfg.MinRooms)
			assert.LessOrEqual(t, n, cfg.MaxRooms)
			assert.True(t, Connected(f), "seed %d floor %d: not connected", seed, fi)
			assert.True(t, Symmetric(f), "seed %d floor %d: asymmetric doors", seed, fi)

			stairs := 0
			for _, r := range f.Rooms {
				assert.GreaterOrEqual(t, r.GridX, 1)
				assert.LessOrEqual(t, r.GridX, cfg.GridW)
				assert.GreaterOrEqual(t, r.GridY, 1)
				assert.LessOrEqual(t, r.GridY, cfg.GridH)
				assert.NotContains(t, r.Doors, r.ID, "self door")
				assert.LessOrEqual(t, len(r.Entities), 1)
				if r.HasStairs {
					stairs++
					assert.NotEqual(t, 0, r.ID, "stairs in entry room")
					assert.NotEqual(t, n-1, r.ID, "stairs in last room")
				}
			}

			if fi < len(floors)-1 {
				assert.Equal(t, 1, stairs, "seed %d floor %d", seed, fi)
			} else {
				assert.Equal(t, 0, stairs, "top floor has no stairs")
			}
		}
	}
}

func TestGenerate_NoDuplicateDoors(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.ExtraEdgeFactor = 3

	floors, err := Generate(cfg, core.NewRand(99))
	require.NoError(t, err)

	for _, f := range floors {
		for _, r := range f.Rooms {
			seen := map[int]bool{}
			for _, d := range r.Doors {
				assert.False(t, seen[d], "room %d lists door %d twice", r.ID, d)
				seen[d] = true
			}
		}
	}
}

func TestGenerate_SpawnAtRoomCenter(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.SpawnChance = 1
	cfg.Spawn = ghostSpawn

	floors, err := Generate(cfg, core.NewRand(3))
	require.NoError(t, err)

	for _, r := range floors[0].Rooms {
		require.Len(t, r.Entities, 1)
		cx, cy := r.Center(cfg.CellSize)
		assert.Equal(t, core.V(cx, cy), r.Entities[0].Center())
		assert.Equal(t, float64(r.GridX)*96+48, cx)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	cfg := fixedConfig()

	a, err := Generate(cfg, core.NewRand(42))
	require.NoError(t, err)
	b, err := Generate(cfg, core.NewRand(42))
	require.NoError(t, err)

	assert.Equal(t, describe(a), describe(b))
}

// TestGenerate_Golden pins the graph for three floors of six rooms.
// Run with -update to rewrite testdata/floors_seed42.golden.
func TestGenerate_Golden(t *testing.T) {
	floors, err := Generate(fixedConfig(), core.NewRand(42))
	require.NoError(t, err)

	got := describe(floors)
	path := filepath.Join("testdata", "floors_seed42.golden")

	if *update {
		require.NoError(t, os.MkdirAll("testdata", 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
		t.Logf("wrote %s", path)
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err, "golden file missing, run with -update")
	assert.Equal(t, string(want), got)

	for _, f := range floors {
		assert.Len(t, f.Rooms, 6)
		assert.True(t, Connected(f))
	}
	assert.Equal(t, 1, floors[0].StairsRoom().ID)
	assert.Equal(t, 1, floors[1].StairsRoom().ID)
	assert.Nil(t, floors[2].StairsRoom())
	assert.Equal(t, []int{3, 5, 2}, floors[0].Rooms[4].Doors)
}

func TestGenConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*GenConfig)
		field string
	}{
		{"zero floors", func(c *GenConfig) { c.Floors = 0 }, "floors"},
		{"zero rooms", func(c *GenConfig) { c.MinRooms = 0 }, "min_rooms"},
		{"negative rooms", func(c *GenConfig) { c.MinRooms = -2 }, "min_rooms"},
		{"inverted range", func(c *GenConfig) { c.MaxRooms = c.MinRooms - 1 }, "max_rooms"},
		{"no room for stairs", func(c *GenConfig) { c.MinRooms, c.MaxRooms = 2, 2 }, "min_rooms"},
		{"empty grid", func(c *GenConfig) { c.GridW = 0 }, "grid"},
		{"bad chance", func(c *GenConfig) { c.SpawnChance = 1.5 }, "spawn_chance"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGenConfig()
			tc.mod(&cfg)

			_, err := Generate(cfg, core.NewRand(1))

			require.ErrorIs(t, err, core.ErrInvalidConfig)
			var cerr *core.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tc.field, cerr.Field)
		})
	}
}

func TestGenConfig_SingleFloorAllowsTinyRooms(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Floors, cfg.MinRooms, cfg.MaxRooms = 1, 1, 1

	floors, err := Generate(cfg, core.NewRand(1))

	require.NoError(t, err)
	require.Len(t, floors[0].Rooms, 1)
	assert.Nil(t, floors[0].StairsRoom())
}

func fixedConfig() GenConfig {
	cfg := DefaultGenConfig()
	cfg.Floors, cfg.MinRooms, cfg.MaxRooms = 3, 6, 6
	cfg.Spawn = ghostSpawn
	return cfg
}

func describe(floors []*Floor) string {
	var sb strings.Builder
	for _, f := range floors {
		fmt.Fprintf(&sb, "floor %d: %d rooms\n", f.Index, len(f.Rooms))
		for _, r := range f.Rooms {
			fmt.Fprintf(&sb, "  room %d at (%d,%d) doors %v stairs=%t entities=%d\n",
				r.ID, r.GridX, r.GridY, r.Doors, r.HasStairs, len(r.Entities))
		}
	}
	return sb.String()
}
