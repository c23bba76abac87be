package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	msgAskSize       = "How big should the board be? (%d to %d)"
	msgAskFirstMover = "Who moves first? [X/O]"
	msgAskMove       = "Where will you move? [row,col]"

	msgBadSize  = "Please enter a whole number from %d to %d."
	msgBadMover = "Please enter X or O."
	msgBadMove  = "Please enter two digits, separated by a comma."
)

var ErrInputClosed = errors.New("input closed")

type inputLine struct {
	text string
	err  error
}

// Prompter asks the player for the game settings and moves.
// Malformed answers are asked again and never surface as errors.
type Prompter struct {
	out     io.Writer
	lines   chan inputLine
	minSize int
	maxSize int
}

// NewPrompter - starts reading lines from in until end of input or until ctx is done.
// Board sizes outside [minSize, maxSize] are asked again.
func NewPrompter(ctx context.Context, in io.Reader, out io.Writer, minSize, maxSize int) *Prompter {
	lines := make(chan inputLine)

	go readLines(ctx, bufio.NewReader(in), lines)

	return &Prompter{
		out:     out,
		lines:   lines,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// readLines - forwards every line of any length. A read failure other than EOF is
// forwarded once before the channel closes.
func readLines(ctx context.Context, reader *bufio.Reader, lines chan<- inputLine) {
	defer close(lines)

	for {
		text, err := reader.ReadString('\n')
		if text != "" || (err != nil && !errors.Is(err, io.EOF)) {
			next := inputLine{text: strings.TrimRight(text, "\r\n")}
			if err != nil && !errors.Is(err, io.EOF) {
				next.err = fmt.Errorf("failed to read input: %w", err)
			}

			select {
			case lines <- next:
			case <-ctx.Done():
				return
			}
		}

		if err != nil {
			return
		}
	}
}

// AskSize - asks until an integer within [minSize, maxSize] is entered.
func (that *Prompter) AskSize(ctx context.Context) (int, error) {
	for {
		line, err := that.ask(ctx, fmt.Sprintf(msgAskSize, that.minSize, that.maxSize))
		if err != nil {
			return 0, err
		}

		size, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || size < that.minSize || size > that.maxSize {
			that.say(fmt.Sprintf(msgBadSize, that.minSize, that.maxSize))
			continue
		}

		return size, nil
	}
}

func (that *Prompter) AskFirstMover(ctx context.Context) (entity.Mark, error) {
	for {
		line, err := that.ask(ctx, msgAskFirstMover)
		if err != nil {
			return entity.Empty, err
		}

		mark, err := entity.ParseMark(line)
		if err != nil {
			that.say(msgBadMover)
			continue
		}

		return mark, nil
	}
}

// ReadMove - asks until a "row,col" pair of integers is entered.
// Range checks are left to the game.
func (that *Prompter) ReadMove(ctx context.Context) (int, int, error) {
	for {
		line, err := that.ask(ctx, msgAskMove)
		if err != nil {
			return 0, 0, err
		}

		row, col, ok := parseMove(line)
		if !ok {
			that.say(msgBadMove)
			continue
		}

		return row, col, nil
	}
}

func (that *Prompter) ask(ctx context.Context, question string) (string, error) {
	fmt.Fprintln(that.out, question)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if next.err != nil {
			return "", next.err
		}
		return next.text, nil
	}
}

func (that *Prompter) say(message string) {
	fmt.Fprintf(that.out, "\n%s\n", message)
}

func parseMove(line string) (int, int, bool) {
	coords := strings.Split(line, ",")
	if len(coords) != 2 {
		return 0, 0, false
	}

	row, err := strconv.Atoi(strings.TrimSpace(coords[0]))
	if err != nil {
		return 0, 0, false
	}

	col, err := strconv.Atoi(strings.TrimSpace(coords[1]))
	if err != nil {
		return 0, 0, false
	}

	return row, col, true
}
