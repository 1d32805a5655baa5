package renderer

import (
	"fmt"
	"io"
	"math"
	"strings"

	"termpong/internal/ansii"
	"termpong/internal/game"
	"termpong/internal/pong"
)

// Minimum terminal size the court is drawn in. Smaller terminals get a notice.
const (
	minCols = 12
	minRows = 6
)

// viewport maps board coordinates onto the cells inside the border.
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func newViewport(b pong.Board, cols, rows int) viewport {
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / b.Width,
		sy:   float64(rows) / b.Height,
	}
}

// cell returns the cell holding board point (x, y), and false when it falls
// outside the court.
func (v viewport) cell(x, y float64) (ansii.Offset, bool) {
	cx := int(math.Floor(x * v.sx))
	cy := int(math.Floor(y * v.sy))
	if cx < 0 || cy < 0 || cx >= v.cols || cy >= v.rows {
		return ansii.Offset{}, false
	}
	return ansii.Offset{X: cx + 1, Y: cy + 1}, true
}

func (v viewport) paddle(p pong.Paddle) (ansii.Offset, int, int) {
	top, _ := v.cell(p.Pos.X, p.Pos.Y)
	w := max(1, int(math.Round(p.Width*v.sx)))
	h := max(1, int(math.Round(p.Height*v.sy)))
	top.X = min(max(top.X, 1), v.cols-w+1)
	top.Y = min(max(top.Y, 1), v.rows-h+1)
	return top, w, h
}

// Render composes one terminal frame of cols x rows cells: the court border, both
// paddles, the ball and a status line on the last row.
func Render(f game.Frame, cols, rows int) string {
	var builder strings.Builder
	builder.WriteString(string(ansii.Screen.ClearScreen))

	if cols < minCols || rows < minRows {
		builder.WriteString(string(ansii.Screen.PlaceCursor(ansii.Offset{})))
		builder.WriteString("terminal too small")
		return builder.String()
	}

	ansii.DrawFrame(&builder, ansii.Offset{}, cols, rows-1, ansii.Colors.White)

	v := newViewport(f.Board, cols-2, rows-3)
	for _, p := range []pong.Paddle{f.Snapshot.Left, f.Snapshot.Right} {
		at, w, h := v.paddle(p)
		ansii.FillBox(&builder, at, w, h, ansii.Colors.Cyan)
	}
	if at, ok := v.cell(f.Snapshot.Ball.Pos.X, f.Snapshot.Ball.Pos.Y); ok {
		ansii.DrawPixelStyle(&builder, at, ansii.Colors.Yellow)
	}

	builder.WriteString(string(ansii.Screen.PlaceCursor(ansii.Offset{X: 0, Y: rows - 1})))
	builder.WriteString(fmt.Sprintf("Frame #: %d  q to quit", f.Seq))
	return builder.String()
}

// Terminal is a sink drawing frames to w, sized by size on every frame so window
// resizes are picked up.
type Terminal struct {
	w    io.Writer
	size func() (int, int, error)
}

func NewTerminal(w io.Writer, size func() (int, int, error)) *Terminal {
	return &Terminal{w: w, size: size}
}

func (t *Terminal) Draw(f game.Frame) error {
	cols, rows, err := t.size()
	if err != nil {
		return err
	}
	_, err = io.WriteString(t.w, Render(f, cols, rows))
	return err
}
