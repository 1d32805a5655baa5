package input

import (
	"reflect"
	"testing"
	"time"

	"termpong/internal/pong"
)

func TestDirectionFor(t *testing.T) {
	m := DefaultMapping
	tests := []struct {
		name string
		side Side
		held KeySet
		want pong.Direction
	}{
		{"left up", Left, NewKeySet(W), pong.Up},
		{"left down", Left, NewKeySet(S), pong.Down},
		{"left idle", Left, NewKeySet(), pong.None},
		{"left both", Left, NewKeySet(W, S), pong.None},
		{"left ignores right keys", Left, NewKeySet(UpArrow), pong.None},
		{"right up", Right, NewKeySet(UpArrow), pong.Up},
		{"right down", Right, NewKeySet(DownArrow, W), pong.Down},
		{"right idle", Right, NewKeySet(), pong.None},
		{"nil set", Right, nil, pong.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.DirectionFor(tt.side, tt.held); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionForCustomMapping(t *testing.T) {
	m := Mapping{
		Left:  KeyMap{Up: O, Down: L},
		Right: KeyMap{Up: W, Down: S},
	}
	if got := m.DirectionFor(Left, NewKeySet(W)); got != pong.None {
		t.Errorf("Expected w to do nothing for the remapped left paddle, got %v", got)
	}
	if got := m.DirectionFor(Right, NewKeySet(W)); got != pong.Up {
		t.Errorf("Expected w to move the right paddle up, got %v", got)
	}
	if got := m.DirectionFor(Left, NewKeySet(L)); got != pong.Down {
		t.Errorf("Expected l to move the left paddle down, got %v", got)
	}
}

func TestHeldKeysDriveLeftPaddleToTop(t *testing.T) {
	b := pong.DefaultBoard
	s := pong.NewSnapshot(b)
	m := DefaultMapping
	leftHeld, rightHeld := NewKeySet(W), NewKeySet()

	if got := m.DirectionFor(Left, leftHeld); got != pong.Up {
		t.Fatalf("Expected -1 for left with w held, got %v", got)
	}
	if got := m.DirectionFor(Right, rightHeld); got != pong.None {
		t.Fatalf("Expected 0 for right with nothing held, got %v", got)
	}

	prev := s.Left.Pos.Y
	for i := 0; i < 100; i++ {
		s = b.Advance(16, m.DirectionFor(Left, leftHeld), m.DirectionFor(Right, rightHeld), s)
		y := s.Left.Pos.Y
		if prev > 0 && y >= prev {
			t.Fatalf("Expected y to decrease from %v on frame %d, got %v", prev, i, y)
		}
		if prev == 0 && y != 0 {
			t.Fatalf("Expected y to stay clamped at 0, got %v", y)
		}
		prev = y
	}
	if prev != 0 {
		t.Errorf("Expected left paddle at the top after 100 frames, got %v", prev)
	}
	if s.Right.Pos.Y != 110 {
		t.Errorf("Expected right paddle to stay at 110, got %v", s.Right.Pos.Y)
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []Key
	}{
		{"letter", []byte("w"), []Key{W}},
		{"upper case", []byte("S"), []Key{S}},
		{"repeat", []byte("ww"), []Key{W, W}},
		{"up arrow", []byte{27, '[', 'A'}, []Key{UpArrow}},
		{"down arrow", []byte{27, '[', 'B'}, []Key{DownArrow}},
		{"right arrow ignored", []byte{27, '[', 'C'}, nil},
		{"mixed", []byte{'w', 27, '[', 'B', 'q'}, []Key{W, DownArrow, Quit}},
		{"lone escape", []byte{27}, nil},
		{"control byte", []byte{3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKeys(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTracker(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(100 * time.Millisecond)

	tr.Press(start, W, UpArrow)
	held := tr.Held(start.Add(50 * time.Millisecond))
	if !held.Has(W) || !held.Has(UpArrow) {
		t.Errorf("Expected w and up held, got %v", held)
	}

	tr.Press(start.Add(80*time.Millisecond), W)
	held = tr.Held(start.Add(150 * time.Millisecond))
	if !held.Has(W) {
		t.Errorf("Expected repeated w to stay held, got %v", held)
	}
	if held.Has(UpArrow) {
		t.Errorf("Expected up to be released after the hold window, got %v", held)
	}

	held = tr.Held(start.Add(time.Second))
	if len(held) != 0 {
		t.Errorf("Expected nothing held, got %v", held)
	}
}

func TestMappingValidate(t *testing.T) {
	if err := DefaultMapping.Validate(); err != nil {
		t.Errorf("Expected default mapping to be valid, got %v", err)
	}

	bad := []Mapping{
		{Left: KeyMap{Up: W}, Right: DefaultMapping.Right},
		{Left: KeyMap{Up: W, Down: W}, Right: DefaultMapping.Right},
		{Left: KeyMap{Up: Quit, Down: S}, Right: DefaultMapping.Right},
		{Left: DefaultMapping.Left, Right: KeyMap{Up: S, Down: DownArrow}},
		{Left: KeyMap{Up: "W", Down: S}, Right: DefaultMapping.Right},
		{Left: DefaultMapping.Left, Right: KeyMap{Up: "Up", Down: DownArrow}},
		{Left: KeyMap{Up: "space", Down: S}, Right: DefaultMapping.Right},
	}
	for _, m := range bad {
		if err := m.Validate(); err == nil {
			t.Errorf("Expected an error for %+v", m)
		}
	}
}

func TestUpperCaseBindingNeverMoves(t *testing.T) {
	m := DefaultMapping
	m.Left.Up = "W"

	if err := m.Validate(); err == nil {
		t.Errorf("Expected upper case binding to be rejected")
	}
	held := NewKeySet(ParseKeys([]byte("W"))...)
	if got := m.DirectionFor(Left, held); got != pong.None {
		t.Errorf("Expected the terminal to never report %q, got direction %v", m.Left.Up, got)
	}
}

func TestKeyValid(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{W, true},
		{UpArrow, true},
		{DownArrow, true},
		{" ", true},
		{"1", true},
		{"W", false},
		{"Up", false},
		{"space", false},
		{"\x01", false},
		{Unknown, false},
	}
	for _, tt := range tests {
		if got := tt.key.Valid(); got != tt.want {
			t.Errorf("Expected Valid(%q)=%v, got %v", tt.key, tt.want, got)
		}
	}
}

func TestDecoderJoinsSplitEscapes(t *testing.T) {
	tests := []struct {
		name   string
		chunks [][]byte
		want   []Key
	}{
		{"split after bracket", [][]byte{{'w', 27, '['}, {'A'}}, []Key{W, UpArrow}},
		{"split after escape", [][]byte{{27}, {'[', 'B', 's'}}, []Key{DownArrow, S}},
		{"three reads", [][]byte{{27}, {'['}, {'A'}}, []Key{UpArrow}},
		{"escape then letter", [][]byte{{27}, {'w'}}, []Key{W}},
		{"whole sequence", [][]byte{{27, '[', 'A'}}, []Key{UpArrow}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			var got []Key
			for _, c := range tt.chunks {
				got = append(got, d.Decode(c)...)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
