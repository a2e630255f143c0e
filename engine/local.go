package engine

import (
	"errors"
	"fmt"
	"reversi/agent"
	"reversi/game"
	"reversi/metrics"
	"reversi/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Engine struct {
	Board  game.Board
	agents map[game.Color]agent.Agent
	logger zerolog.Logger
}

var _ Runner = (*Engine)(nil)

// LocalEngine pairs one agent per color on board. It panics unless the
// agents cover both colors exactly once.
func LocalEngine(board game.Board, agents ...agent.Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	byColor := make(map[game.Color]agent.Agent, 2)
	for _, a := range agents {
		byColor[a.Color()] = a
	}
	if len(byColor) != 2 {
		panic("agents must play different colors")
	}

	return &Engine{
		Board:  board,
		agents: byColor,
		logger: log.Logger,
	}
}

func (e *Engine) WithLogger(logger zerolog.Logger) *Engine {
	e.logger = logger
	return e
}

// Run executes the game loop until neither color can move. First moves
// first; an agent reporting no legal moves passes.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	gameMetric := metrics.GameMetric{StartTime: start}
	var moveMetrics []metrics.MoveMetric

	color := game.First
	for step := 1; !e.Board.Terminal() && step <= MaxMoves; step++ {
		action, searchMetric, err := e.agents[color].FindMove(e.Board)
		moveMetric := metrics.MoveMetric{
			Step:         step,
			Player:       color.String(),
			SearchMetric: searchMetric,
		}

		switch {
		case errors.Is(err, searcher.ErrNoLegalMoves):
			e.logger.Warn().Int("step", step).Stringer("color", color).Msg("no legal moves, passing")
			gameMetric.Passes++
		case err != nil:
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %s failed to move: %w", step, color, err)
		default:
			if err := e.Board.Apply(action, color); err != nil {
				return gameMetric, moveMetrics, fmt.Errorf("step %d: %s played %s: %w", step, color, action, err)
			}
			moveMetric.Action = action.String()
			gameMetric.TotalMoves++
			e.logger.Debug().Int("step", step).Stringer("color", color).Stringer("action", action).Msg("move played")
		}

		moveMetrics = append(moveMetrics, moveMetric)
		color = color.Opponent()
	}

	if !e.Board.Terminal() {
		e.logger.Warn().Int("max_moves", MaxMoves).Msg("stopped before the game ended")
	}

	outcome, margin := e.Board.Winner()
	gameMetric.Winner = outcome.String()
	gameMetric.Margin = margin
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)

	e.logger.Info().
		Str("winner", gameMetric.Winner).
		Int("margin", margin).
		Int("moves", gameMetric.TotalMoves).
		Int("passes", gameMetric.Passes).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
	return gameMetric, moveMetrics, nil
}
