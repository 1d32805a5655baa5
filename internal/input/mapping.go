package input

import (
	"fmt"

	"termpong/internal/pong"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

type KeyMap struct {
	Up   Key `json:"up" toml:"up"`
	Down Key `json:"down" toml:"down"`
}

// Mapping binds keys to each paddle.
type Mapping struct {
	Left  KeyMap `json:"left" toml:"left"`
	Right KeyMap `json:"right" toml:"right"`
}

var DefaultMapping = Mapping{
	Left:  KeyMap{Up: W, Down: S},
	Right: KeyMap{Up: UpArrow, Down: DownArrow},
}

func (m Mapping) For(side Side) KeyMap {
	if side == Right {
		return m.Right
	}
	return m.Left
}

// DirectionFor derives one paddle's direction from the held keys. Holding both the up
// and the down key cancels out.
func (m Mapping) DirectionFor(side Side, held KeySet) pong.Direction {
	km := m.For(side)
	up, down := held.Has(km.Up), held.Has(km.Down)
	switch {
	case up && !down:
		return pong.Up
	case down && !up:
		return pong.Down
	}
	return pong.None
}

// Validate reports bindings that would leave a paddle unable to move or make two
// actions share a key.
func (m Mapping) Validate() error {
	seen := map[Key]string{}
	for _, b := range []struct {
		name string
		key  Key
	}{
		{"left.up", m.Left.Up},
		{"left.down", m.Left.Down},
		{"right.up", m.Right.Up},
		{"right.down", m.Right.Down},
	} {
		if b.key == Unknown {
			return fmt.Errorf("key binding %s is empty", b.name)
		}
		if !b.key.Valid() {
			return fmt.Errorf("key binding %s: %q is never reported by the terminal, use a lower case character, %q or %q", b.name, b.key, UpArrow, DownArrow)
		}
		if b.key == Quit {
			return fmt.Errorf("key binding %s uses the quit key %q", b.name, Quit)
		}
		if other, ok := seen[b.key]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", b.key, other, b.name)
		}
		seen[b.key] = b.name
	}
	return nil
}
