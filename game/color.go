package game

import "fmt"

type Color int

const (
	First  Color = iota // Black, moves first
	Second              // White
)

func (c Color) Opponent() Color {
	if c == First {
		return Second
	}
	return First
}

func (c Color) String() string {
	switch c {
	case First:
		return "X"
	case Second:
		return "O"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// ParseColor accepts the disc symbols used on the wire ("X", "O").
func ParseColor(s string) (Color, error) {
	switch s {
	case "X", "x":
		return First, nil
	case "O", "o":
		return Second, nil
	default:
		return 0, fmt.Errorf("unknown color %q", s)
	}
}

type Outcome int

const (
	FirstWins Outcome = iota
	SecondWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return First.String()
	case SecondWins:
		return Second.String()
	default:
		return "draw"
	}
}
