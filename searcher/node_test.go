package searcher

import (
	"errors"
	"reversi/game"
	"strconv"
)

type mockAction int

func (a mockAction) String() string {
	return strconv.Itoa(int(a))
}

// mockBoard offers a fixed action list per color until remaining moves
// have been played, then reports a fixed outcome.
type mockBoard struct {
	actions   map[game.Color][]game.Action
	remaining int
	outcome   game.Outcome
	margin    int
	played    []game.Action
	reject    bool
}

func (m *mockBoard) LegalActions(color game.Color) []game.Action {
	if m.remaining <= 0 {
		return nil
	}
	return m.actions[color]
}

func (m *mockBoard) Apply(action game.Action, color game.Color) error {
	if m.reject {
		return errors.New("rejected")
	}
	m.remaining--
	m.played = append(m.played, action)
	return nil
}

func (m *mockBoard) Terminal() bool {
	return len(m.LegalActions(game.First)) == 0 && len(m.LegalActions(game.Second)) == 0
}

func (m *mockBoard) Winner() (game.Outcome, int) {
	return m.outcome, m.margin
}

func (m *mockBoard) Copy() game.Board {
	cp := *m
	cp.played = append([]game.Action(nil), m.played...)
	return &cp
}

func newMockBoard(remaining int, first, second []game.Action) *mockBoard {
	return &mockBoard{
		actions:   map[game.Color][]game.Action{game.First: first, game.Second: second},
		remaining: remaining,
	}
}
