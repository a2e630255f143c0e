package game

import "errors"

var ErrIllegalMove = errors.New("illegal move")

// Action identifies a move. Implementations must be comparable with ==.
type Action interface {
	String() string
}

// Board is the rules engine the searcher plays against. Apply mutates the
// board in place; callers that speculate on a position must Copy it first.
type Board interface {
	// LegalActions returns the moves available to color, in a stable order.
	LegalActions(color Color) []Action
	Apply(action Action, color Color) error
	// Terminal reports whether neither color has a legal action.
	Terminal() bool
	// Winner returns the outcome and the absolute score margin. It is only
	// meaningful once Terminal holds.
	Winner() (Outcome, int)
	Copy() Board
}
