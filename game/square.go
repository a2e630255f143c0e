package game

import (
	"errors"
	"fmt"
	"strings"
)

const Size = 8

var ErrInvalidSquare = errors.New("invalid square")

// Square is an Othello board coordinate, zero-based.
type Square struct {
	Row int
	Col int
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'A'+s.Col, s.Row+1)
}

func (s Square) onBoard() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// ParseSquare parses the "D3" notation: column letter then row number.
func ParseSquare(s string) (Square, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	sq := Square{Row: int(s[1] - '1'), Col: int(s[0] - 'A')}
	if !sq.onBoard() {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}
