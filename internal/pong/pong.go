package pong

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Advance moves the game forward by delta milliseconds and returns the next snapshot.
// The paddles move first; the ball then either resets (when it has left the board)
// or bounces off paddles and walls and moves with its new velocity. With no elapsed
// time nothing happens to the ball.
func (b Board) Advance(delta float64, left, right Direction, s Snapshot) Snapshot {
	if delta < 0 || math.IsNaN(delta) {
		delta = 0
	}

	next := Snapshot{
		Left:  b.movePaddle(s.Left, left, delta),
		Right: b.movePaddle(s.Right, right, delta),
	}

	if delta == 0 {
		next.Ball = s.Ball
		return next
	}

	if s.Ball.OutOfBounds(b) {
		next.Ball = s.Ball
		next.Ball.Pos = b.Center()
		return next
	}

	next.Ball = b.moveBall(s.Ball, next.Left, next.Right, delta)
	return next
}

func (b Board) movePaddle(p Paddle, dir Direction, delta float64) Paddle {
	step := p.Vel.Y * float64(dir.normalize()) * delta
	p.Pos.Y = Clamp(p.Pos.Y+step, 0, b.Height-p.Height)
	return p
}

func (b Board) moveBall(ball Ball, left, right Paddle, delta float64) Ball {
	switch {
	case Within(ball, left):
		ball.Vel.X = math.Abs(ball.Vel.X)
	case Within(ball, right):
		ball.Vel.X = -math.Abs(ball.Vel.X)
	}

	switch {
	case ball.Pos.Y < ball.Radius:
		ball.Vel.Y = math.Abs(ball.Vel.Y)
	case ball.Pos.Y > b.Height-ball.Radius:
		ball.Vel.Y = -math.Abs(ball.Vel.Y)
	}

	ball.Pos.X += ball.Vel.X * delta
	ball.Pos.Y += ball.Vel.Y * delta
	return ball
}

// Within reports whether the ball centre is close enough to the paddle centre on both
// axes to count as a hit. Each axis is checked on its own, so this is a box test rather
// than an exact circle and rectangle overlap.
func Within(ball Ball, p Paddle) bool {
	c := p.Center()
	return near(c.X, p.Width/2+ball.Radius, ball.Pos.X) &&
		near(c.Y, p.Height/2+ball.Radius, ball.Pos.Y)
}

func near(k, tolerance, n float64) bool {
	return n >= k-tolerance && n <= k+tolerance
}

func (d Direction) normalize() Direction {
	switch {
	case d < 0:
		return Up
	case d > 0:
		return Down
	}
	return None
}

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
