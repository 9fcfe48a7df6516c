package config

import (
	"os"
	"strconv"

	"classic-snake/game/types"

	"github.com/pkg/errors"
)

// Backends
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config holds everything the command needs to start a game. Defaults come
// from the environment and are then overridden by flags.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	Speed        int
	Backend      string
	Title        string
	Sound        bool
	LogLevel     string
	LogFile      string
	Seed         uint64
}

// FromEnv returns the defaults, overridden by SNAKE_* environment variables.
func FromEnv() Config {
	return Config{
		ScreenWidth:  getEnvInt("SNAKE_WIDTH", types.DefaultScreenWidth),
		ScreenHeight: getEnvInt("SNAKE_HEIGHT", types.DefaultScreenHeight),
		CellSize:     getEnvInt("SNAKE_CELL", types.DefaultCellSize),
		Speed:        getEnvInt("SNAKE_SPEED", types.DefaultSpeed),
		Backend:      getEnvString("SNAKE_BACKEND", BackendWindow),
		Title:        getEnvString("SNAKE_TITLE", "Змейка"),
		Sound:        getEnvBool("SNAKE_SOUND", false),
		LogLevel:     getEnvString("SNAKE_LOG_LEVEL", "info"),
		LogFile:      os.Getenv("SNAKE_LOG_FILE"),
	}
}

// Validate checks the playfield is a whole number of cells.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return errors.Errorf("screen size %dx%d is not a multiple of cell size %d",
			c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.Speed <= 0 {
		return errors.Errorf("speed must be positive, got %d", c.Speed)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{
		CellSize:     c.CellSize,
		ScreenWidth:  c.ScreenWidth,
		ScreenHeight: c.ScreenHeight,
	}
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvString(varName string, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}

func getEnvBool(varName string, defaults bool) bool {
	val, err := strconv.ParseBool(os.Getenv(varName))
	if err != nil {
		return defaults
	}
	return val
}
