package searcher

import (
	"math"
)

// selectThenExpand walks from root to the frontier node of one episode.
// It expands at most one node; a fully expanded node without children (a
// forced pass) is itself the frontier.
func (m *MCTS) selectThenExpand(root *node) *node {
	n := root
	for !n.board.Terminal() {
		if !n.fullyExpanded() {
			return m.expand(n)
		}
		child := m.bestChild(n)
		if child == nil {
			return n
		}
		n = child
	}
	return n
}

// expand adds one uniformly chosen untried action as a new child. The
// caller guarantees n is not fully expanded.
func (m *MCTS) expand(n *node) *node {
	untried := n.untried()
	action := untried[m.rng.Intn(len(untried))]
	m.metrics.AddNode()
	return n.addChild(action)
}

// bestChild returns the child with the highest UCT score, breaking ties
// uniformly at random. An unvisited child wins outright, first in order.
// It returns nil when n has no children.
func (m *MCTS) bestChild(n *node) *node {
	if len(n.children) == 0 {
		return nil
	}

	policy := newUCT(m.exploration, n.visits)
	maxScore := math.Inf(-1)
	var best []*node
	for _, child := range n.children {
		if child.visits == 0 {
			return child
		}
		score := policy.evaluate(child.rewards, child.visits)
		if score > maxScore {
			maxScore = score
			best = []*node{child}
		} else if score == maxScore {
			best = append(best, child)
		}
	}
	return best[m.rng.Intn(len(best))]
}
