// Package world builds the multi-floor room graphs of the mansion game and
// tracks which room of which floor the player is standing in.
package world

import (
	"slices"

	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

// Room is one node of a floor's graph.
// Doors holds the IDs of adjacent rooms on the same floor.
type Room struct {
	ID        int
	GridX     int
	GridY     int
	Doors     []int
	HasStairs bool
	Visited   bool
	Entities  []*sim.Actor
}

// HasDoor reports whether the room connects to room id.
func (r *Room) HasDoor(id int) bool {
	return slices.Contains(r.Doors, id)
}

// Center returns the world position of the room's grid cell centre.
func (r *Room) Center(cell float64) (float64, float64) {
	return float64(r.GridX)*cell + cell/2, float64(r.GridY)*cell + cell/2
}

func (r *Room) connect(o *Room) {
	r.Doors = append(r.Doors, o.ID)
	o.Doors = append(o.Doors, r.ID)
}

// Floor is a connected set of rooms. Rooms[0] is the entry.
type Floor struct {
	Index int
	Rooms []*Room
}

// Entry returns the room the player arrives in.
func (f *Floor) Entry() *Room {
	return f.Rooms[0]
}

// Room returns the room with the given ID, or nil.
func (f *Floor) Room(id int) *Room {
	if id < 0 || id >= len(f.Rooms) {
		return nil
	}
	return f.Rooms[id]
}

// Contains reports whether r belongs to this floor.
func (f *Floor) Contains(r *Room) bool {
	return r != nil && f.Room(r.ID) == r
}

// StairsRoom returns the room holding the stairs, or nil on the top floor.
func (f *Floor) StairsRoom() *Room {
	for _, r := range f.Rooms {
		if r.HasStairs {
			return r
		}
	}
	return nil
}

// Connected reports whether every room is reachable from the entry.
func Connected(f *Floor) bool {
	if len(f.Rooms) == 0 {
		return true
	}
	seen := make([]bool, len(f.Rooms))
	seen[0] = true
	queue := []int{0}
	count := 1
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range f.Rooms[id].Doors {
			if next < 0 || next >= len(seen) || seen[next] {
				continue
			}
			seen[next] = true
			count++
			queue = append(queue, next)
		}
	}
	return count == len(f.Rooms)
}

// Symmetric reports whether every door has a matching door back.
func Symmetric(f *Floor) bool {
	for _, r := range f.Rooms {
		for _, id := range r.Doors {
			o := f.Room(id)
			if o == nil || !o.HasDoor(r.ID) {
				return false
			}
		}
	}
	return true
}
