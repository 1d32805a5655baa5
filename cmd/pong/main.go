package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"termpong/internal/ansii"
	"termpong/internal/clock"
	"termpong/internal/config"
	"termpong/internal/game"
	"termpong/internal/input"
	"termpong/internal/renderer"
	"termpong/internal/wire"
)

var errFrameLimit = errors.New("frame limit reached")

func main() {
	trace := flag.Bool("trace", false, "stream frames as length-prefixed protobuf to stdout instead of drawing")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until interrupted)")
	flag.Parse()

	if err := run(flag.Arg(0), *trace, *frames); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, trace bool, frames uint64) error {
	c := config.LoadConfig(configPath)
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	closeLog, err := setupLogging(c, !trace)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := game.NewSession(c.Board,
		game.WithMapping(c.Keys),
		game.WithServe(c.Serve),
	)
	tracker := input.NewTracker(c.HoldWindow())

	var sinks []game.Sink
	if trace {
		sinks = append(sinks, wire.NewTrace(os.Stdout))
	} else {
		restore, err := startTerminal(ctx, stop, tracker)
		if err != nil {
			return err
		}
		defer restore()
		sinks = append(sinks, renderer.NewTerminal(os.Stdout, func() (int, int, error) {
			return ansii.GetTermSize(os.Stdout)
		}))
	}
	if frames > 0 {
		sinks = append(sinks, frameLimit(frames))
	}

	err = session.Run(ctx, clock.New(), c.TickRate, tracker, sinks...)
	if errors.Is(err, context.Canceled) || errors.Is(err, errFrameLimit) {
		return nil
	}
	return err
}

// setupLogging sends logs to c.LogFile when set. Without one, interactive games discard
// logs since stderr shares the terminal the court is drawn on.
func setupLogging(c config.Configuration, interactive bool) (func(), error) {
	w, closeLog, err := logDestination(c, interactive)
	if err != nil {
		return nil, err
	}
	if w == nil {
		slog.SetLogLoggerLevel(slog.Level(c.LogLevel))
		return closeLog, nil
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(c.LogLevel)})
	slog.SetDefault(slog.New(h))
	return closeLog, nil
}

// logDestination returns a nil writer when logs may stay on stderr.
func logDestination(c config.Configuration, interactive bool) (io.Writer, func(), error) {
	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	case interactive:
		return io.Discard, func() {}, nil
	}
	return nil, func() {}, nil
}

// startTerminal puts the terminal in raw mode and feeds key presses to tracker.
// Pressing q stops the game.
func startTerminal(ctx context.Context, quit context.CancelFunc, tracker *input.Tracker) (func(), error) {
	if !ansii.IsTerminal(os.Stdin) {
		return nil, errors.New("stdin is not a terminal, use -trace for headless runs")
	}
	prev, err := ansii.MakeTermRaw(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to make terminal raw: %w", err)
	}
	os.Stdout.WriteString(string(ansii.Screen.HideCursor))

	// Input handler
	go func() {
		buf := make([]byte, 64)
		var dec input.Decoder
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				if err != io.EOF {
					slog.Debug("failed to read from stdin", slog.Any("error", err))
				}
				quit()
				return
			}
			keys := dec.Decode(buf[:n])
			for _, k := range keys {
				if k == input.Quit {
					quit()
					return
				}
			}
			tracker.Press(time.Now(), keys...)
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return func() {
		os.Stdout.WriteString(string(ansii.Screen.ShowCursor + ansii.Screen.ClearScreen + ansii.Screen.PlaceCursor(ansii.Offset{})))
		if err := ansii.RestoreTerm(os.Stdin, prev); err != nil {
			slog.Debug("failed to restore terminal", slog.Any("error", err))
		}
	}, nil
}

type frameLimit uint64

func (n frameLimit) Draw(f game.Frame) error {
	if f.Seq >= uint64(n) {
		return errFrameLimit
	}
	return nil
}
