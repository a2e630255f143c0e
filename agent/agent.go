package agent

import (
	"fmt"
	"reversi/game"
	"reversi/metrics"
	"reversi/searcher"
	"time"

	"golang.org/x/exp/rand"
)

type Agent interface {
	Color() game.Color
	// FindMove returns a move for the agent's color and search metrics (if
	// collected). It returns searcher.ErrNoLegalMoves when the agent must pass.
	FindMove(board game.Board) (game.Action, metrics.SearchMetric, error)
}

var _ Agent = (*searcher.MCTS)(nil)

type randomAgent struct {
	color game.Color
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves. A zero seed draws one from the clock.
func NewRandomAgent(color game.Color, seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{color: color, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Color() game.Color {
	return a.color
}

func (a *randomAgent) FindMove(board game.Board) (game.Action, metrics.SearchMetric, error) {
	actions := board.LegalActions(a.color)
	if len(actions) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w for %s", searcher.ErrNoLegalMoves, a.color)
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}
