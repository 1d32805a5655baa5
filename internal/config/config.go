package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"termpong/internal/input"
	"termpong/internal/pong"
)

const (
	defaultPath = "config.json"
	maxTickRate = 1000
)

type Configuration struct {
	LogLevel     int           `json:"logLevel" toml:"logLevel"`
	LogFile      string        `json:"logFile" toml:"logFile"`
	TickRate     int           `json:"tickRate" toml:"tickRate"`
	HoldWindowMs int           `json:"holdWindowMs" toml:"holdWindowMs"`
	Board        pong.Board    `json:"board" toml:"board"`
	Keys         input.Mapping `json:"keys" toml:"keys"`
	Serve        pong.Serve    `json:"serve" toml:"serve"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:     int(slog.LevelInfo),
		TickRate:     60,
		HoldWindowMs: 120,
		Board:        pong.DefaultBoard,
		Keys:         input.DefaultMapping,
	}
}

// LoadConfig reads path, or config.json when path is empty. Files ending in .toml are
// decoded as TOML, everything else as JSON. Fields missing from the file keep their
// defaults, and an unreadable file leaves the defaults in place.
func LoadConfig(path string) Configuration {
	c := Default()
	if path == "" {
		path = defaultPath
	}

	cf, err := os.ReadFile(path)
	if err != nil {
		slog.Info("failed to open config at path provided, using default config instead", slog.String("path", path))
		return c
	}

	if err := decode(path, cf, &c); err != nil {
		slog.Info("failed to read configuration, using default config instead", slog.Any("error", err))
		return Default()
	}
	return c
}

func decode(path string, data []byte, c *Configuration) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), c); err != nil {
			return fmt.Errorf("decode toml %s: %w", path, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode json %s: %w", path, err)
	}
	return nil
}

func (c Configuration) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMs) * time.Millisecond
}

// Validate reports every setting the game cannot run with.
func (c Configuration) Validate() error {
	var errs []error
	if !positiveFinite(c.Board.Width) || !positiveFinite(c.Board.Height) {
		errs = append(errs, fmt.Errorf("board must have positive size, got %vx%v", c.Board.Width, c.Board.Height))
	}
	if start := pong.NewSnapshot(c.Board); c.Board.Height > 0 && start.Left.Height > c.Board.Height {
		errs = append(errs, fmt.Errorf("board height %v is shorter than a paddle (%v)", c.Board.Height, start.Left.Height))
	}
	if c.TickRate <= 0 || c.TickRate > maxTickRate {
		errs = append(errs, fmt.Errorf("tickRate must be in [1, %d], got %d", maxTickRate, c.TickRate))
	}
	if c.HoldWindowMs <= 0 {
		errs = append(errs, fmt.Errorf("holdWindowMs must be positive, got %d", c.HoldWindowMs))
	}
	if err := c.Keys.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
