package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"termpong/internal/input"
	"termpong/internal/pong"
)

// Frame is what sinks receive once per tick.
type Frame struct {
	Session  uuid.UUID
	Seq      uint64
	Board    pong.Board
	Snapshot pong.Snapshot
}

// Sink consumes frames read-only, e.g. a terminal renderer or a trace writer.
type Sink interface {
	Draw(Frame) error
}

// Input supplies the keys held at a point in time.
type Input interface {
	Held(now time.Time) input.KeySet
}

// Ticker calls fn once per frame with the elapsed milliseconds until ctx is done.
type Ticker interface {
	Run(ctx context.Context, rate int, fn func(delta float64)) error
}

type Session struct {
	ID       uuid.UUID
	board    pong.Board
	mapping  input.Mapping
	state    pong.Snapshot
	seq      uint64
	observer func(Event)
	now      func() time.Time
}

type Option func(*Session)

func WithMapping(m input.Mapping) Option {
	return func(s *Session) { s.mapping = m }
}

func WithServe(sv pong.Serve) Option {
	return func(s *Session) { s.state = sv.Apply(s.state) }
}

// WithObserver registers fn to be called for every bounce and reset.
func WithObserver(fn func(Event)) Option {
	return func(s *Session) { s.observer = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func NewSession(board pong.Board, opts ...Option) *Session {
	s := &Session{
		ID:      uuid.New(),
		board:   board,
		mapping: input.DefaultMapping,
		state:   pong.NewSnapshot(board),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Snapshot() pong.Snapshot {
	return s.state
}

func (s *Session) Frame() Frame {
	return Frame{Session: s.ID, Seq: s.seq, Board: s.board, Snapshot: s.state}
}

// Step samples the held keys once, advances the simulation by delta milliseconds and
// replaces the session snapshot.
func (s *Session) Step(delta float64, held input.KeySet) pong.Snapshot {
	left := s.mapping.DirectionFor(input.Left, held)
	right := s.mapping.DirectionFor(input.Right, held)

	prev := s.state
	s.state = s.board.Advance(delta, left, right, prev)
	s.seq++

	for _, ev := range Detect(s.board, prev, s.state) {
		slog.Debug("ball event",
			slog.String("session", s.ID.String()),
			slog.Uint64("frame", s.seq),
			slog.String("event", ev.Kind.String()),
			slog.Any("pos", ev.Pos))
		if s.observer != nil {
			s.observer(ev)
		}
	}
	return s.state
}

// Run drives the session from t until ctx is done or a sink fails.
func (s *Session) Run(ctx context.Context, t Ticker, rate int, in Input, sinks ...Sink) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	slog.Info("session started", slog.String("session", s.ID.String()), slog.Int("rate", rate))

	err := t.Run(ctx, rate, func(delta float64) {
		s.Step(delta, in.Held(s.now()))
		f := s.Frame()
		for _, sink := range sinks {
			if err := sink.Draw(f); err != nil {
				cancel(fmt.Errorf("frame %d: %w", f.Seq, err))
				return
			}
		}
	})

	if cause := context.Cause(ctx); cause != nil && cause != err {
		err = cause
	}
	slog.Info("session stopped", slog.String("session", s.ID.String()), slog.Uint64("frames", s.seq))
	return err
}
