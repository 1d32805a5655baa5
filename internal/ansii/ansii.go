package ansii

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	underline   ANSI = "\033[4m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

// Offset is a terminal cell, zero based from the top left corner.
type Offset struct {
	X int
	Y int
}

type style struct {
	Reset     ANSI
	Plain     ANSI
	Bold      ANSI
	Underline ANSI
}

type color struct {
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block  string
	HLine  string
	VLine  string
	Corner string
}

var (
	Styles = style{Bold: bold, Underline: underline, Reset: reset, Plain: plain}
	Colors = color{Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█", HLine: "─", VLine: "│", Corner: "+"}
)

// PlaceCursor moves the cursor to a zero based cell. Terminals count from 1.
func (s screen) PlaceCursor(o Offset) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", o.Y+1, o.X+1))
}

func GetTermSize(f *os.File) (width int, height int, err error) {
	width, height, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return width, height, nil
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func MakeTermRaw(f *os.File) (*term.State, error) {
	return term.MakeRaw(int(f.Fd()))
}

func RestoreTerm(f *os.File, prev *term.State) error {
	return term.Restore(int(f.Fd()), prev)
}

// FillBox draws a solid width x height box with its top left cell at offset.
func FillBox(builder *strings.Builder, offset Offset, width, height int, style ANSI) {
	builder.WriteString(string(style))
	row := strings.Repeat(Blocks.Block, width)
	for hIdx := range height {
		builder.WriteString(string(Screen.PlaceCursor(Offset{X: offset.X, Y: offset.Y + hIdx})))
		builder.WriteString(row)
	}
	builder.WriteString(string(Styles.Reset))
}

// DrawFrame outlines a width x height rectangle with its top left cell at offset.
func DrawFrame(builder *strings.Builder, offset Offset, width, height int, style ANSI) {
	if width < 2 || height < 2 {
		return
	}
	builder.WriteString(string(style))
	edge := Blocks.Corner + strings.Repeat(Blocks.HLine, width-2) + Blocks.Corner
	builder.WriteString(string(Screen.PlaceCursor(offset)))
	builder.WriteString(edge)
	for hIdx := 1; hIdx < height-1; hIdx++ {
		builder.WriteString(string(Screen.PlaceCursor(Offset{X: offset.X, Y: offset.Y + hIdx})))
		builder.WriteString(Blocks.VLine)
		builder.WriteString(string(Screen.PlaceCursor(Offset{X: offset.X + width - 1, Y: offset.Y + hIdx})))
		builder.WriteString(Blocks.VLine)
	}
	builder.WriteString(string(Screen.PlaceCursor(Offset{X: offset.X, Y: offset.Y + height - 1})))
	builder.WriteString(edge)
	builder.WriteString(string(Styles.Reset))
}

func DrawPixelStyle(builder *strings.Builder, offset Offset, style ANSI) {
	builder.WriteString(string(style))
	builder.WriteString(string(Screen.PlaceCursor(offset)))
	builder.WriteString(Blocks.Block)
	builder.WriteString(string(Styles.Reset))
}
