package searcher

import (
	"fmt"
	"reversi/game"
)

// rollout plays uniformly random moves on board until neither color can
// move, passing whenever the color to move has no action. The board is
// consumed.
func (m *MCTS) rollout(board game.Board, color game.Color) float64 {
	for !board.Terminal() {
		actions := board.LegalActions(color)
		if len(actions) == 0 {
			color = color.Opponent()
			continue
		}
		action := actions[m.rng.Intn(len(actions))]
		if err := board.Apply(action, color); err != nil {
			panic(fmt.Sprintf("board rejected legal action %s for %s: %v", action, color, err))
		}
		color = color.Opponent()
	}
	return m.reward(board.Winner())
}

// reward scores a finished game; positive is good for the searching color.
func (m *MCTS) reward(outcome game.Outcome, margin int) float64 {
	var reward float64
	switch outcome {
	case game.FirstWins:
		reward = WinBonus + float64(margin)
	case game.SecondWins:
		reward = -(WinBonus + float64(margin))
	}
	if m.color == game.Second {
		reward = -reward
	}
	return reward
}

// backup credits reward to every node on the path from frontier up to, but
// not including, the root. Each node's statistic is kept from the point of
// view of the color that moved into it.
func (m *MCTS) backup(frontier *node, reward float64) {
	for n := frontier; !n.isRoot(); n = n.parent {
		n.visits++
		if n.parent.color == m.color {
			n.rewards += reward
		} else {
			n.rewards -= reward
		}
	}
}
