package world

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

func newTestMansion(t *testing.T) *Mansion {
	t.Helper()
	floors, err := Generate(fixedConfig(), core.NewRand(5))
	require.NoError(t, err)
	m, err := NewMansion(floors)
	require.NoError(t, err)
	return m
}

func TestMansion_StartsAtEntry(t *testing.T) {
	m := newTestMansion(t)

	assert.Equal(t, 0, m.FloorIndex)
	assert.Same(t, m.Floors[0].Entry(), m.Current)
	assert.True(t, m.Current.Visited)
}

func TestMansion_GotoRoom(t *testing.T) {
	m := newTestMansion(t)

	// Entry always has a door to room 1
	m.GotoRoom(1)

	assert.Equal(t, 1, m.Current.ID)
	assert.True(t, m.Current.Visited)
	assert.True(t, m.Floor().Contains(m.Current))
}

func TestMansion_GotoRoomWithoutDoorPanics(t *testing.T) {
	m := newTestMansion(t)
	target := -1
	for _, r := range m.Floor().Rooms {
		if r.ID != 0 && !m.Current.HasDoor(r.ID) {
			target = r.ID
			break
		}
	}
	if target < 0 {
		t.Skip("entry is adjacent to every room for this seed")
	}

	assert.PanicsWithValue(t,
		core.InvariantError{Msg: "room 0 has no door to " + strconv.Itoa(target)},
		func() { m.GotoRoom(target) })
}

func TestMansion_RandomDoor(t *testing.T) {
	m := newTestMansion(t)
	rng := core.NewRand(1)

	for i := 0; i < 20; i++ {
		id, ok := m.RandomDoor(rng)
		require.True(t, ok)
		assert.True(t, m.Current.HasDoor(id))
	}
}

func TestMansion_UpStairs(t *testing.T) {
	m := newTestMansion(t)

	for i := 1; i < len(m.Floors); i++ {
		require.True(t, m.UpStairs())
		assert.Equal(t, i, m.FloorIndex)
		assert.Same(t, m.Floors[i].Entry(), m.Current)
		assert.True(t, m.Current.Visited)
	}

	assert.True(t, m.LastFloor())
	assert.False(t, m.UpStairs(), "no stairs above the top floor")
	assert.Equal(t, len(m.Floors)-1, m.FloorIndex)
}

func TestNewMansion_RejectsEmpty(t *testing.T) {
	_, err := NewMansion(nil)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)

	_, err = NewMansion([]*Floor{{Index: 0}})
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}
