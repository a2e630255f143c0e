package searcher

import "errors"

// Hyperparameters for MCTS

const DefaultExploration = 2.1 // Exploration constant C
const DefaultIterations = 1200 // Rollouts per move

// WinBonus is added to the score margin of a decided game so that any win
// outweighs any draw.
const WinBonus = 30.0

var ErrNoLegalMoves = errors.New("no legal moves")
