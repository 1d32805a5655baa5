package pong

import (
	"golang.org/x/exp/rand"
)

// Serve controls the opening direction of the ball. It only applies at session start;
// a ball that leaves the board is re-centred with the velocity it already had.
type Serve struct {
	Random bool   `json:"random" toml:"random"`
	Seed   uint64 `json:"seed" toml:"seed"`
}

// Apply returns s with the ball's initial velocity signs chosen by the serve settings.
// The speed on each axis is unchanged.
func (sv Serve) Apply(s Snapshot) Snapshot {
	if !sv.Random {
		return s
	}
	r := rand.New(rand.NewSource(sv.Seed))
	s.Ball.Vel.X *= float64(r.Intn(2)*2 - 1)
	s.Ball.Vel.Y *= float64(r.Intn(2)*2 - 1)
	return s
}
