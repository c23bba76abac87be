package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Mark - the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

var ErrInvalidMark = errors.New("invalid mark")

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark. It panics for Empty,
// which can't be produced by any valid sequence of moves.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		panic(fmt.Sprintf("mark %q has no opponent", that.String()))
	}
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	if string(text) == Empty.String() {
		*that = Empty
		return nil
	}

	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark
	return nil
}

// ParseMark - converts user or config input into a player mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}
