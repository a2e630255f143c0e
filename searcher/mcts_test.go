package searcher

import (
	"reversi/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// singleMove has exactly one legal action for First: C1.
var singleMove = []string{
	"XO......",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
}

// firstBlocked leaves First without a move while Second can still play.
var firstBlocked = []string{
	"OX......",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
}

func parse(t *testing.T, rows []string) *game.Othello {
	t.Helper()
	board, err := game.ParseOthello(rows)
	require.NoError(t, err)
	return board
}

func walk(n *node, visit func(*node)) {
	visit(n)
	for _, child := range n.children {
		walk(child, visit)
	}
}

func TestFindMove(t *testing.T) {
	t.Run("returning a legal opening move", func(t *testing.T) {
		board := game.NewOthello()
		m := NewMCTS(game.First, WithSeed(42), WithIterations(50))

		got, _, err := m.FindMove(board)

		require.NoError(t, err)
		require.Contains(t, board.LegalActions(game.First), got)
	})

	t.Run("reproducing a move from the same seed", func(t *testing.T) {
		first, _, err := NewMCTS(game.First, WithSeed(42), WithIterations(50)).FindMove(game.NewOthello())
		require.NoError(t, err)
		second, _, err := NewMCTS(game.First, WithSeed(42), WithIterations(50)).FindMove(game.NewOthello())
		require.NoError(t, err)

		require.Equal(t, first, second, "Same seed and inputs should choose the same move")
	})

	t.Run("searching as the second color", func(t *testing.T) {
		board := game.NewOthello()
		require.NoError(t, board.Apply(game.Square{Row: 2, Col: 3}, game.First))
		m := NewMCTS(game.Second, WithSeed(3), WithIterations(100))

		got, _, err := m.FindMove(board)

		require.NoError(t, err)
		require.Contains(t, board.LegalActions(game.Second), got)
	})

	t.Run("leaving the caller's board untouched", func(t *testing.T) {
		board := game.NewOthello()
		before := board.Rows()

		_, _, err := NewMCTS(game.First, WithSeed(1), WithIterations(30)).FindMove(board)

		require.NoError(t, err)
		require.Equal(t, before, board.Rows())
	})

	t.Run("forced move", func(t *testing.T) {
		for _, iterations := range []int{1, 2, 25} {
			m := NewMCTS(game.First, WithSeed(5), WithIterations(iterations))

			got, _, err := m.FindMove(parse(t, singleMove))

			require.NoError(t, err)
			require.Equal(t, game.Square{Row: 0, Col: 2}, got, "Should return the only legal move")
		}
	})

	t.Run("no legal moves", func(t *testing.T) {
		for _, board := range []game.Board{parse(t, firstBlocked), &game.Othello{}} {
			m := NewMCTS(game.First, WithSeed(5), WithIterations(10), WithMetrics())

			got, metric, err := m.FindMove(board)

			require.ErrorIs(t, err, ErrNoLegalMoves)
			require.Nil(t, got)
			require.Zero(t, metric.Episodes, "Should fail before searching")
		}
	})

	t.Run("collecting metrics", func(t *testing.T) {
		m := NewMCTS(game.First, WithSeed(9), WithIterations(40), WithExploration(1.5), WithMetrics())

		_, metric, err := m.FindMove(game.NewOthello())

		require.NoError(t, err)
		require.Equal(t, 40, metric.Iterations)
		require.Equal(t, 40, metric.Episodes)
		require.Equal(t, 1.5, metric.Exploration)
		require.Zero(t, metric.RootFrontiers)
		require.Positive(t, metric.NodesCreated)
		require.LessOrEqual(t, metric.NodesCreated, 40, "At most one expansion per episode")
	})
}

func TestRunTreeInvariants(t *testing.T) {
	const iterations = 300
	m := NewMCTS(game.First, WithSeed(11), WithIterations(iterations), WithMetrics())
	root := newRoot(game.NewOthello(), game.First)
	m.metrics.Start(iterations, m.exploration)

	action := m.run(root)
	metric := m.metrics.Complete()

	require.Contains(t, game.NewOthello().LegalActions(game.First), action)

	t.Run("root statistics are never updated", func(t *testing.T) {
		require.Equal(t, 1, root.visits)
		require.Zero(t, root.rewards)
	})

	t.Run("root children account for every episode", func(t *testing.T) {
		sum := 0
		for _, child := range root.children {
			sum += child.visits
		}
		require.Equal(t, iterations-metric.RootFrontiers, sum)
	})

	t.Run("average rewards stay within the score bounds", func(t *testing.T) {
		bound := WinBonus + game.MaxScoreMargin
		walk(root, func(n *node) {
			if n.visits == 0 {
				return
			}
			avg := n.rewards / float64(n.visits)
			require.GreaterOrEqual(t, avg, -bound)
			require.LessOrEqual(t, avg, bound)
		})
	})

	t.Run("siblings have distinct actions", func(t *testing.T) {
		walk(root, func(n *node) {
			seen := map[game.Action]bool{}
			for _, child := range n.children {
				require.False(t, seen[child.action], "Duplicate action %s", child.action)
				seen[child.action] = true
			}
		})
	})

	t.Run("children continue the parent position", func(t *testing.T) {
		walk(root, func(n *node) {
			for _, child := range n.children {
				expected := n.board.Copy()
				require.NoError(t, expected.Apply(child.action, n.color))
				require.Equal(t, expected, child.board)
				require.Equal(t, n.color.Opponent(), child.color)
			}
		})
	})

	t.Run("visits cover the children", func(t *testing.T) {
		walk(root, func(n *node) {
			if n.isRoot() {
				return
			}
			sum := 0
			for _, child := range n.children {
				sum += child.visits
			}
			require.GreaterOrEqual(t, n.visits, sum+1, "Node was the frontier at least once")
		})
	})
}

func TestSelectMove(t *testing.T) {
	t.Run("returning a legal move", func(t *testing.T) {
		board := game.NewOthello()

		got, err := SelectMove(board, game.First, 50, WithSeed(42))

		require.NoError(t, err)
		require.Contains(t, board.LegalActions(game.First), got)
	})

	t.Run("matching an explicitly configured search", func(t *testing.T) {
		got, err := SelectMove(game.NewOthello(), game.First, 50, WithSeed(42))
		require.NoError(t, err)
		expected, _, err := NewMCTS(game.First, WithSeed(42), WithIterations(50)).FindMove(game.NewOthello())
		require.NoError(t, err)

		require.Equal(t, expected, got)
	})

	t.Run("rejecting an empty budget", func(t *testing.T) {
		_, err := SelectMove(game.NewOthello(), game.First, 0)

		require.Error(t, err)
	})

	t.Run("no legal moves", func(t *testing.T) {
		_, err := SelectMove(parse(t, firstBlocked), game.First, 10, WithSeed(1))

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})
}
