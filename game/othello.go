package game

import (
	"fmt"
	"strings"
)

// MaxScoreMargin bounds the disc difference reported by Winner.
const MaxScoreMargin = Size * Size

type cell int8

const (
	empty cell = iota
	black
	white
)

func discOf(c Color) cell {
	if c == First {
		return black
	}
	return white
}

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Othello is an 8x8 reversi position. The zero value is an empty board.
type Othello struct {
	cells [Size][Size]cell
}

// NewOthello returns the standard starting position.
func NewOthello() *Othello {
	o := &Othello{}
	o.cells[3][4], o.cells[4][3] = black, black
	o.cells[3][3], o.cells[4][4] = white, white
	return o
}

// ParseOthello builds a position from Size rows of 'X', 'O' and '.'.
func ParseOthello(rows []string) (*Othello, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	o := &Othello{}
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", r+1, Size, len(row))
		}
		for c, ch := range row {
			switch ch {
			case 'X', 'x':
				o.cells[r][c] = black
			case 'O', 'o':
				o.cells[r][c] = white
			case '.', '-':
				o.cells[r][c] = empty
			default:
				return nil, fmt.Errorf("row %d: unexpected %q", r+1, ch)
			}
		}
	}
	return o, nil
}

// Rows renders the position in the format accepted by ParseOthello.
func (o *Othello) Rows() []string {
	rows := make([]string, Size)
	for r := 0; r < Size; r++ {
		var b strings.Builder
		for c := 0; c < Size; c++ {
			switch o.cells[r][c] {
			case black:
				b.WriteByte('X')
			case white:
				b.WriteByte('O')
			default:
				b.WriteByte('.')
			}
		}
		rows[r] = b.String()
	}
	return rows
}

func (o *Othello) String() string {
	return strings.Join(o.Rows(), "\n")
}

func (o *Othello) LegalActions(color Color) []Action {
	var actions []Action
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sq := Square{Row: r, Col: c}
			if o.cells[r][c] == empty && o.captures(sq, color) {
				actions = append(actions, sq)
			}
		}
	}
	return actions
}

func (o *Othello) Apply(action Action, color Color) error {
	sq, ok := action.(Square)
	if !ok {
		return fmt.Errorf("%w: unsupported action type %T", ErrIllegalMove, action)
	}
	if !sq.onBoard() || o.cells[sq.Row][sq.Col] != empty {
		return fmt.Errorf("%w: %s for %s", ErrIllegalMove, sq, color)
	}

	own := discOf(color)
	flipped := 0
	for _, d := range directions {
		n := o.run(sq, d, color)
		for i := 1; i <= n; i++ {
			o.cells[sq.Row+i*d[0]][sq.Col+i*d[1]] = own
		}
		flipped += n
	}
	if flipped == 0 {
		return fmt.Errorf("%w: %s flips nothing for %s", ErrIllegalMove, sq, color)
	}
	o.cells[sq.Row][sq.Col] = own
	return nil
}

func (o *Othello) Terminal() bool {
	return !o.hasMove(First) && !o.hasMove(Second)
}

func (o *Othello) Winner() (Outcome, int) {
	b, w := o.Count(First), o.Count(Second)
	switch {
	case b > w:
		return FirstWins, b - w
	case w > b:
		return SecondWins, w - b
	default:
		return Draw, 0
	}
}

// Count returns the number of discs of the given color.
func (o *Othello) Count(color Color) int {
	disc := discOf(color)
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if o.cells[r][c] == disc {
				n++
			}
		}
	}
	return n
}

func (o *Othello) Copy() Board {
	cp := *o
	return &cp
}

func (o *Othello) hasMove(color Color) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if o.cells[r][c] == empty && o.captures(Square{Row: r, Col: c}, color) {
				return true
			}
		}
	}
	return false
}

func (o *Othello) captures(sq Square, color Color) bool {
	for _, d := range directions {
		if o.run(sq, d, color) > 0 {
			return true
		}
	}
	return false
}

// run counts the opposing discs bracketed between sq and a disc of color
// along direction d. It returns 0 when the line is not closed.
func (o *Othello) run(sq Square, d [2]int, color Color) int {
	own, opp := discOf(color), discOf(color.Opponent())
	n := 0
	for r, c := sq.Row+d[0], sq.Col+d[1]; r >= 0 && r < Size && c >= 0 && c < Size; r, c = r+d[0], c+d[1] {
		switch o.cells[r][c] {
		case opp:
			n++
		case own:
			return n
		default:
			return 0
		}
	}
	return 0
}
