package pong

import (
	"math"
	"testing"
)

func TestServeFixedKeepsDefaults(t *testing.T) {
	s := NewSnapshot(DefaultBoard)
	if got := (Serve{}).Apply(s); got != s {
		t.Errorf("Expected fixed serve to keep %#v, got %#v", s, got)
	}
}

func TestServeRandomKeepsSpeed(t *testing.T) {
	s := NewSnapshot(DefaultBoard)
	for seed := uint64(0); seed < 32; seed++ {
		got := Serve{Random: true, Seed: seed}.Apply(s)
		if math.Abs(got.Ball.Vel.X) != math.Abs(s.Ball.Vel.X) || math.Abs(got.Ball.Vel.Y) != math.Abs(s.Ball.Vel.Y) {
			t.Errorf("Expected only velocity signs to change for seed %d, got %v", seed, got.Ball.Vel)
		}
		if got.Ball.Pos != s.Ball.Pos || got.Left != s.Left || got.Right != s.Right {
			t.Errorf("Expected serve to touch only ball velocity for seed %d", seed)
		}
	}
}

func TestServeRandomIsDeterministic(t *testing.T) {
	s := NewSnapshot(DefaultBoard)
	sv := Serve{Random: true, Seed: 42}
	if a, b := sv.Apply(s), sv.Apply(s); a != b {
		t.Errorf("Expected same seed to serve the same way, got %v and %v", a.Ball.Vel, b.Ball.Vel)
	}
}

func TestNewSnapshot(t *testing.T) {
	b := DefaultBoard
	s := NewSnapshot(b)

	if s.Ball.Pos != b.Center() {
		t.Errorf("Expected ball at %v, got %v", b.Center(), s.Ball.Pos)
	}
	if s.Ball.Radius <= 0 {
		t.Errorf("Expected positive radius, got %v", s.Ball.Radius)
	}
	if s.Left.Pos.X != 20 {
		t.Errorf("Expected left paddle at x=20, got %v", s.Left.Pos.X)
	}
	if s.Right.Pos.X != b.Width-25 {
		t.Errorf("Expected right paddle at x=%v, got %v", b.Width-25, s.Right.Pos.X)
	}
	if s.Left.Pos.Y != 110 || s.Right.Pos.Y != 110 {
		t.Errorf("Expected paddles centred at y=110, got %v and %v", s.Left.Pos.Y, s.Right.Pos.Y)
	}
}
