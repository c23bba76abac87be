package entity

import "time"

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

// Outcome - the result of the latest termination check.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing, Winner: Empty}
}

func Win(mark Mark) Outcome {
	return Outcome{Status: StatusWin, Winner: mark}
}

func Draw() Outcome {
	return Outcome{Status: StatusDraw, Winner: Empty}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// GameResult - a finished game as it's kept on the scoreboard.
type GameResult struct {
	ID         string    `json:"id"`
	Size       int       `json:"size"`
	FirstMover Mark      `json:"first_mover"`
	Outcome    Outcome   `json:"outcome"`
	Moves      int       `json:"moves"`
	Board      [][]Mark  `json:"board"`
	FinishedAt time.Time `json:"finished_at"`
}

// TallyField - the scoreboard counter a finished game is added to.
func (that *GameResult) TallyField() string {
	if that.Outcome.IsWin() {
		return that.Outcome.Winner.String()
	}

	return string(StatusDraw)
}

type Tally struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that *Tally) Total() int {
	return that.XWins + that.OWins + that.Draws
}
