package game

import (
	"math"

	"termpong/internal/pong"
)

type EventKind int

const (
	BounceLeft EventKind = iota
	BounceRight
	BounceTop
	BounceBottom
	Reset
)

func (k EventKind) String() string {
	switch k {
	case BounceLeft:
		return "bounce_left"
	case BounceRight:
		return "bounce_right"
	case BounceTop:
		return "bounce_top"
	case BounceBottom:
		return "bounce_bottom"
	case Reset:
		return "reset"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	Pos  pong.Vector
}

// Detect compares two consecutive snapshots and reports what happened to the ball.
// A reset hides any bounce in the same step since the core skips collisions then.
func Detect(b pong.Board, prev, next pong.Snapshot) []Event {
	pb, nb := prev.Ball, next.Ball
	if pb.OutOfBounds(b) && nb.Pos == b.Center() {
		return []Event{{Kind: Reset, Pos: pb.Pos}}
	}

	var events []Event
	if flipped(pb.Vel.X, nb.Vel.X) {
		kind := BounceLeft
		if nb.Vel.X < 0 {
			kind = BounceRight
		}
		events = append(events, Event{Kind: kind, Pos: pb.Pos})
	}
	if flipped(pb.Vel.Y, nb.Vel.Y) {
		kind := BounceTop
		if nb.Vel.Y < 0 {
			kind = BounceBottom
		}
		events = append(events, Event{Kind: kind, Pos: pb.Pos})
	}
	return events
}

func flipped(before, after float64) bool {
	return before != 0 && math.Signbit(before) != math.Signbit(after)
}
