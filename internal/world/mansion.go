package world

import (
	"math/rand"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// Mansion tracks the player's floor and room.
// Current always belongs to Floors[FloorIndex]; breaking that panics.
type Mansion struct {
	Floors     []*Floor
	FloorIndex int
	Current    *Room
}

// NewMansion places the player in the entry room of the first floor.
func NewMansion(floors []*Floor) (*Mansion, error) {
	if len(floors) == 0 {
		return nil, core.Invalidf("floors", "mansion needs at least one floor")
	}
	for _, f := range floors {
		if len(f.Rooms) == 0 {
			return nil, core.Invalidf("rooms", "floor %d has no rooms", f.Index)
		}
	}
	m := &Mansion{Floors: floors}
	m.enter(floors[0].Entry())
	return m, nil
}

// Floor returns the current floor.
func (m *Mansion) Floor() *Floor {
	return m.Floors[m.FloorIndex]
}

// LastFloor reports whether the player is on the top floor.
func (m *Mansion) LastFloor() bool {
	return m.FloorIndex == len(m.Floors)-1
}

// GotoRoom walks through the door to room id.
func (m *Mansion) GotoRoom(id int) {
	core.Invariant(m.Current.HasDoor(id), "room %d has no door to %d", m.Current.ID, id)
	dst := m.Floor().Room(id)
	core.Invariant(dst != nil, "door target %d is not on floor %d", id, m.FloorIndex)
	m.enter(dst)
}

// RandomDoor picks one of the current room's doors.
func (m *Mansion) RandomDoor(rng *rand.Rand) (int, bool) {
	doors := m.Current.Doors
	if len(doors) == 0 {
		return 0, false
	}
	return doors[rng.Intn(len(doors))], true
}

// UpStairs moves to the entry of the next floor.
// Returns false on the top floor.
func (m *Mansion) UpStairs() bool {
	if m.LastFloor() {
		return false
	}
	m.FloorIndex++
	m.enter(m.Floor().Entry())
	return true
}

func (m *Mansion) enter(r *Room) {
	m.Current = r
	r.Visited = true
	core.Invariant(m.Floor().Contains(m.Current), "current room %d is not on floor %d", r.ID, m.FloorIndex)
}
