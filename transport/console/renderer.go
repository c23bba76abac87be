package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const banner = `
  ----------------------
       TIC  TAC  TOE
  ----------------------
`

// Renderer prints the game to a terminal. It only reads game state.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (that *Renderer) Welcome() {
	fmt.Fprint(that.out, banner)
}

func (that *Renderer) Turn(round int, mover entity.Mark) {
	fmt.Fprint(that.out, "\n\n")
	fmt.Fprintf(that.out, "      Round %d - %s's    \n", round, mover)
	fmt.Fprintln(that.out, "  ----------------------")
}

func (that *Renderer) Board(cells [][]entity.Mark) {
	var sb strings.Builder

	sb.WriteString("\n")
	for _, row := range cells {
		for _, cell := range row {
			sb.WriteString(cell.String())
			sb.WriteString("  ")
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString("\n")

	fmt.Fprint(that.out, sb.String())
}

// Rejected - explains why the game refused a move.
func (that *Renderer) Rejected(err error, size int) {
	switch {
	case errors.Is(err, apperror.ErrOutOfBounds):
		fmt.Fprintf(that.out, "\nCoordinates out of bounds. Options are %s.\n", options(size))
	case errors.Is(err, apperror.ErrCellOccupied):
		fmt.Fprintln(that.out, "\nSomeone has already moved there!")
	default:
		fmt.Fprintf(that.out, "\n%v\n", err)
	}
}

func (that *Renderer) Outcome(cells [][]entity.Mark, outcome entity.Outcome) {
	fmt.Fprintln(that.out)
	that.Board(cells)
	fmt.Fprintln(that.out)
	fmt.Fprintln(that.out, "Game over!")

	if outcome.IsWin() {
		fmt.Fprintf(that.out, "%s's win!\n", outcome.Winner)
		return
	}

	fmt.Fprintln(that.out, "It's a draw!")
}

func (that *Renderer) Tally(tally *entity.Tally) {
	fmt.Fprintf(that.out, "\nScoreboard: X %d, O %d, draws %d\n", tally.XWins, tally.OWins, tally.Draws)
}

func options(size int) string {
	opts := make([]string, size)
	for i := range opts {
		opts[i] = strconv.Itoa(i)
	}

	return strings.Join(opts, ", ")
}
