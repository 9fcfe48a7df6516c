package game

import (
	"context"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Input is a poll-based event source, drained once per tick.
type Input interface {
	Poll() []types.Event
}

// Renderer draws one frame.
type Renderer interface {
	Draw(snake *entity.Snake, food *entity.Food)
}

// Clock blocks until the next tick is due.
type Clock interface {
	Wait(ctx context.Context) error
}

// Sound is played when the snake eats.
type Sound interface {
	Play()
}

// Env bundles the collaborators the loop runs against.
type Env struct {
	Input    Input
	Renderer Renderer
	Clock    Clock
	Sound    Sound // optional
}

type Game struct {
	UUID  string
	Grid  types.Grid
	Snake *entity.Snake
	Food  *entity.Food

	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	log          *log.Entry
}

func NewGame(grid types.Grid, rng entity.Rand) *Game {
	gameUUID := uuid.New().String()
	return &Game{
		UUID:         gameUUID,
		Grid:         grid,
		Snake:        entity.NewSnake(grid),
		Food:         entity.NewFood(grid, rng),
		collisionMgr: manager.NewCollisionManager(grid),
		stateMgr:     manager.NewStateManager(time.Now()),
		log:          log.WithField("session", gameUUID),
	}
}

// Tick applies the drained input and advances the game one step. It returns
// false when a quit was requested; nothing is moved in that case.
func (g *Game) Tick(events []types.Event) (running bool, ate bool) {
	for _, ev := range events {
		switch ev.Kind {
		case types.EventQuit:
			return false, false
		case types.EventDirection:
			g.Snake.SetPendingDirection(ev.Direction)
		}
	}

	g.stateMgr.RecordTick()

	if g.Snake.Advance() {
		g.stateMgr.RecordReset()
		g.log.WithField("best_length", g.stateMgr.Stats().BestLength).Debug("snake hit itself, reset")
	}

	if g.collisionMgr.IsFoodCollision(g.Snake, g.Food) {
		g.Snake.Grow()
		g.Food.Relocate()
		g.stateMgr.RecordFood(g.Snake.Length())
		entry := g.log.WithFields(log.Fields{
			"length": g.Snake.Length(),
			"food_x": g.Food.Position.X,
			"food_y": g.Food.Position.Y,
		})
		if g.collisionMgr.FoodOnBody(g.Snake, g.Food) {
			entry = entry.WithField("on_body", true)
		}
		entry.Debug("food eaten")
		return true, true
	}
	return true, false
}

// Run drives the loop until a quit event arrives or ctx is done. Both are a
// clean exit.
func (g *Game) Run(ctx context.Context, env Env) error {
	g.log.WithFields(log.Fields{
		"cols": g.Grid.Cols(),
		"rows": g.Grid.Rows(),
	}).Info("game started")
	defer func() {
		stats := g.stateMgr.Stats()
		g.log.WithFields(log.Fields{
			"ticks":       stats.Ticks,
			"food_eaten":  stats.FoodEaten,
			"resets":      stats.Resets,
			"best_length": stats.BestLength,
			"duration":    stats.Duration(time.Now()).Round(time.Second).String(),
		}).Info("game over")
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		running, ate := g.Tick(env.Input.Poll())
		if !running {
			return nil
		}
		if ate && env.Sound != nil {
			env.Sound.Play()
		}

		env.Renderer.Draw(g.Snake, g.Food)

		if err := env.Clock.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "frame clock")
		}
	}
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}
