package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"termpong/internal/game"
)

// maxFrameSize bounds a single length prefix so a corrupt stream cannot force a
// huge allocation.
const maxFrameSize = 1 << 16

type ByteReader interface {
	io.Reader
	io.ByteReader
}

// WriteFrame writes f with a varint length prefix.
func WriteFrame(w io.Writer, f game.Frame) error {
	_, err := w.Write(protowire.AppendBytes(nil, Marshal(f)))
	return err
}

// ReadFrame reads one length-prefixed frame. It returns io.EOF only when the stream
// ends cleanly between frames.
func ReadFrame(r ByteReader) (game.Frame, error) {
	size, err := binary.ReadUvarint(r)
	if err != nil {
		if err == io.EOF {
			return game.Frame{}, io.EOF
		}
		return game.Frame{}, fmt.Errorf("frame length: %w", err)
	}
	if size > maxFrameSize {
		return game.Frame{}, fmt.Errorf("frame length %d exceeds %d", size, maxFrameSize)
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return game.Frame{}, fmt.Errorf("frame body: %w", err)
	}
	return Unmarshal(buf)
}

// Trace is a sink that streams every frame to w.
type Trace struct {
	w io.Writer
}

func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

func (t *Trace) Draw(f game.Frame) error {
	if err := WriteFrame(t.w, f); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}
