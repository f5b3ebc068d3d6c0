package core

// Sound is a logical audio event emitted by the simulation.
// Mapping events to actual sound is up to the front-end.
type Sound string

const (
	SoundPaddleHit  Sound = "paddle-hit"
	SoundWallHit    Sound = "wall-hit"
	SoundBrickBreak Sound = "brick-break"
	SoundStun       Sound = "stun"
	SoundSuccess    Sound = "success"
	SoundFailure    Sound = "failure"
	SoundStep       Sound = "step"
	SoundStairs     Sound = "stairs"
	SoundStomp      Sound = "stomp"
	SoundHurt       Sound = "hurt"
)

// Sounds collects the events of one tick in emission order.
type Sounds []Sound

// Emit appends an event.
func (s *Sounds) Emit(ev Sound) {
	*s = append(*s, ev)
}

// Drain returns the collected events and empties the buffer.
func (s *Sounds) Drain() []Sound {
	if len(*s) == 0 {
		return nil
	}
	out := make([]Sound, len(*s))
	copy(out, *s)
	*s = (*s)[:0]
	return out
}
