package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classic-snake/clock"
	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/entity"
	"classic-snake/ui"
	"classic-snake/ui/sound"
	"classic-snake/ui/terminal"
	"classic-snake/ui/window"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg = config.FromEnv()

var rootCmd = &cobra.Command{
	Use:          "classic-snake",
	Short:        "classic-snake is the arcade snake: eat, grow, wrap around, don't bite yourself",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return run(c.Context(), cfg)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "screen width in pixels")
	flags.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "screen height in pixels")
	flags.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "grid cell size in pixels")
	flags.IntVar(&cfg.Speed, "speed", cfg.Speed, "ticks per second")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "surface to draw on: window or terminal")
	flags.StringVar(&cfg.Title, "title", cfg.Title, "window caption")
	flags.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play a chime when food is eaten")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 picks one from the clock")
}

// backend is a surface that also yields input events.
type backend interface {
	ui.Surface
	game.Input
	Close() error
}

func openBackend(c config.Config) (backend, error) {
	switch c.Backend {
	case config.BackendTerminal:
		return terminal.Open(c.CellSize)
	default:
		return window.Open(c.ScreenWidth, c.ScreenHeight, c.Title), nil
	}
}

// setupLogging returns a closer for the log file, if one was opened.
func setupLogging(c config.Config) (io.Closer, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	log.SetLevel(level)

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		log.SetOutput(f)
		return f, nil
	}
	if c.Backend == config.BackendTerminal {
		// stderr shares the tty with the game screen
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

func run(ctx context.Context, c config.Config) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	closer, err := setupLogging(c)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	b, err := openBackend(c)
	if err != nil {
		return errors.Wrapf(err, "open %s backend", c.Backend)
	}
	defer b.Close()

	grid := c.Grid()
	g := game.NewGame(grid, entity.NewRand(seed))
	log.WithFields(log.Fields{
		"session": g.UUID,
		"backend": c.Backend,
		"width":   c.ScreenWidth,
		"height":  c.ScreenHeight,
		"cell":    c.CellSize,
		"speed":   c.Speed,
		"seed":    seed,
	}).Info("starting snake")

	env := game.Env{
		Input:    b,
		Renderer: ui.NewRenderer(b, grid),
		Clock:    clock.NewLimiter(c.Speed),
	}
	if c.Sound {
		chime, err := sound.NewChime()
		if err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			defer chime.Close()
			env.Sound = chime
		}
	}

	return g.Run(ctx, env)
}
