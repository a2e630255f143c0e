package engine

import (
	"reversi/metrics"
)

// MaxMoves bounds a game, passes included.
const MaxMoves = 200

type Runner interface {
	// Run plays a game till neither side can move or MaxMoves is reached
	Run() (metrics.GameMetric, []metrics.MoveMetric, error)
}
