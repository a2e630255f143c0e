package searcher

import (
	"fmt"
	"reversi/game"
	"reversi/metrics"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS searches for the best move of one color. It owns its random source
// and is not safe for concurrent use.
type MCTS struct {
	color       game.Color
	iterations  int
	exploration float64
	rng         *rand.Rand
	metrics     metrics.Collector
	logger      zerolog.Logger
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithRand routes every random choice of the search through r.
func WithRand(r *rand.Rand) Option {
	return func(m *MCTS) {
		if r != nil {
			m.rng = r
		}
	}
}

// WithSeed gives each search built from this option its own source seeded
// with seed, so one option value can be shared across goroutines.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *MCTS) {
		m.logger = logger
	}
}

func NewMCTS(color game.Color, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		color:       color,
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		metrics:     metrics.NewDummyCollector(),
		logger:      log.Logger,
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Color() game.Color {
	return m.color
}

// FindMove searches a private copy of board and returns the chosen action
// for the searcher's color. It fails with ErrNoLegalMoves when that color
// has nothing to play.
func (m *MCTS) FindMove(board game.Board) (game.Action, metrics.SearchMetric, error) {
	if len(board.LegalActions(m.color)) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("%w for %s", ErrNoLegalMoves, m.color)
	}

	root := newRoot(board.Copy(), m.color)
	m.metrics.Start(m.iterations, m.exploration)
	m.logger.Debug().Stringer("color", m.color).Int("iterations", m.iterations).Msg("search started")

	action := m.run(root)

	metric := m.metrics.Complete()
	m.logger.Debug().
		Stringer("color", m.color).
		Stringer("action", action).
		Int("children", len(root.children)).
		Dur("duration", metric.Duration).
		Msg("search finished")
	return action, metric, nil
}

func (m *MCTS) run(root *node) game.Action {
	for i := 0; i < m.iterations; i++ {
		m.simulate(root)
	}

	// The root has a legal action and at least one episode ran, so the first
	// episode expanded it.
	best := m.bestChild(root)
	if best == nil {
		panic("root has no children after search")
	}
	return best.action
}

func (m *MCTS) simulate(root *node) {
	frontier := m.selectThenExpand(root)
	if frontier == root {
		m.metrics.AddRootFrontier()
	}
	reward := m.rollout(frontier.board.Copy(), frontier.color)
	m.backup(frontier, reward)
	m.metrics.AddEpisode()
}

// SelectMove runs a fresh search of iterations episodes for color on board.
func SelectMove(board game.Board, color game.Color, iterations int, options ...Option) (game.Action, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("iteration budget must be positive, got %d", iterations)
	}
	options = append(options[:len(options):len(options)], WithIterations(iterations))
	action, _, err := NewMCTS(color, options...).FindMove(board)
	return action, err
}
