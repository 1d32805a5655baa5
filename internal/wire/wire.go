// Package wire encodes frames in protobuf wire format so an external renderer can
// follow a headless session.
//
//	Frame  { 1: session bytes, 2: seq varint, 3: Ball, 4: Paddle left, 5: Paddle right, 6: Board }
//	Ball   { 1: x, 2: y, 3: vx, 4: vy, 5: radius }            doubles
//	Paddle { 1: x, 2: y, 3: vx, 4: vy, 5: width, 6: height } doubles
//	Board  { 1: width, 2: height }                            doubles
package wire

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"

	"termpong/internal/game"
	"termpong/internal/pong"
)

const (
	frameSession protowire.Number = 1
	frameSeq     protowire.Number = 2
	frameBall    protowire.Number = 3
	frameLeft    protowire.Number = 4
	frameRight   protowire.Number = 5
	frameBoard   protowire.Number = 6
)

var ErrBadSession = errors.New("session id must be 16 bytes")

func Marshal(f game.Frame) []byte {
	var b []byte
	b = protowire.AppendTag(b, frameSession, protowire.BytesType)
	b = protowire.AppendBytes(b, f.Session[:])
	b = protowire.AppendTag(b, frameSeq, protowire.VarintType)
	b = protowire.AppendVarint(b, f.Seq)
	b = appendMessage(b, frameBall, appendBall(nil, f.Snapshot.Ball))
	b = appendMessage(b, frameLeft, appendPaddle(nil, f.Snapshot.Left))
	b = appendMessage(b, frameRight, appendPaddle(nil, f.Snapshot.Right))
	b = appendMessage(b, frameBoard, appendDoubles(nil, f.Board.Width, f.Board.Height))
	return b
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendBall(b []byte, ball pong.Ball) []byte {
	return appendDoubles(b, ball.Pos.X, ball.Pos.Y, ball.Vel.X, ball.Vel.Y, ball.Radius)
}

func appendPaddle(b []byte, p pong.Paddle) []byte {
	return appendDoubles(b, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Width, p.Height)
}

// appendDoubles writes vals as fields 1..n.
func appendDoubles(b []byte, vals ...float64) []byte {
	for i, v := range vals {
		b = protowire.AppendTag(b, protowire.Number(i+1), protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	}
	return b
}

func Unmarshal(b []byte) (game.Frame, error) {
	var f game.Frame
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return f, fmt.Errorf("frame tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == frameSession && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return f, fmt.Errorf("frame session: %w", protowire.ParseError(n))
			}
			id, err := uuid.FromBytes(v)
			if err != nil {
				return f, fmt.Errorf("%w: %v", ErrBadSession, err)
			}
			f.Session = id
			b = b[n:]
		case num == frameSeq && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return f, fmt.Errorf("frame seq: %w", protowire.ParseError(n))
			}
			f.Seq = v
			b = b[n:]
		case num >= frameBall && num <= frameBoard && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return f, fmt.Errorf("frame field %d: %w", num, protowire.ParseError(n))
			}
			vals, err := parseDoubles(v)
			if err != nil {
				return f, fmt.Errorf("frame field %d: %w", num, err)
			}
			setMessage(&f, num, vals)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return f, fmt.Errorf("frame field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return f, nil
}

func setMessage(f *game.Frame, num protowire.Number, v [6]float64) {
	switch num {
	case frameBall:
		f.Snapshot.Ball = pong.Ball{
			Pos:    pong.Vector{X: v[0], Y: v[1]},
			Vel:    pong.Vector{X: v[2], Y: v[3]},
			Radius: v[4],
		}
	case frameLeft:
		f.Snapshot.Left = paddleFrom(v)
	case frameRight:
		f.Snapshot.Right = paddleFrom(v)
	case frameBoard:
		f.Board = pong.Board{Width: v[0], Height: v[1]}
	}
}

func paddleFrom(v [6]float64) pong.Paddle {
	return pong.Paddle{
		Pos:    pong.Vector{X: v[0], Y: v[1]},
		Vel:    pong.Vector{X: v[2], Y: v[3]},
		Width:  v[4],
		Height: v[5],
	}
}

// parseDoubles reads fixed64 fields 1..6; anything else is skipped.
func parseDoubles(b []byte) ([6]float64, error) {
	var vals [6]float64
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return vals, protowire.ParseError(n)
		}
		b = b[n:]
		if typ == protowire.Fixed64Type && num >= 1 && int(num) <= len(vals) {
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				return vals, protowire.ParseError(n)
			}
			vals[num-1] = math.Float64frombits(v)
			b = b[n:]
			continue
		}
		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return vals, protowire.ParseError(n)
		}
		b = b[n:]
	}
	return vals, nil
}
