package searcher

import (
	"fmt"
	"reversi/game"

	"github.com/samber/lo"
)

type node struct {
	parent   *node
	children []*node
	action   game.Action // Move that led here from parent, nil at the root
	board    game.Board  // Owned copy of the position
	color    game.Color  // Color to move
	rewards  float64     // Sum, from the perspective of the color that moved into this node
	visits   int
}

func newRoot(board game.Board, color game.Color) *node {
	// One visit keeps ln(N) defined when the root is first scored.
	return &node{board: board, color: color, visits: 1}
}

func (n *node) isRoot() bool {
	return n.parent == nil
}

func (n *node) addChild(action game.Action) *node {
	board := n.board.Copy()
	if err := board.Apply(action, n.color); err != nil {
		panic(fmt.Sprintf("board rejected legal action %s for %s: %v", action, n.color, err))
	}
	child := &node{
		parent: n,
		action: action,
		board:  board,
		color:  n.color.Opponent(),
	}
	n.children = append(n.children, child)
	return child
}

// fullyExpanded holds vacuously when the color to move must pass.
func (n *node) fullyExpanded() bool {
	return len(n.children) == len(n.board.LegalActions(n.color))
}

func (n *node) untried() []game.Action {
	tried := lo.Map(n.children, func(child *node, _ int) game.Action {
		return child.action
	})
	return lo.Without(n.board.LegalActions(n.color), tried...)
}
