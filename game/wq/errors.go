package 围碁

import (
	"fmt"

	"github.com/gorgonia/goban/game"
)

// Reason says why a move could not be made.
type Reason int

const (
	OffBoard Reason = iota
	Occupied
	Suicide
	ImpossiblePlayer
	BadCoordinate
)

func (r Reason) String() string {
	switch r {
	case OffBoard:
		return "coordinate off board"
	case Occupied:
		return "board location not empty"
	case Suicide:
		return "suicide is not a valid option"
	case ImpossiblePlayer:
		return "impossible player"
	case BadCoordinate:
		return "malformed coordinate"
	}
	return "unknown"
}

// MoveError is a move or setup stone the record asks for that the board
// cannot take. Number is the 1-based applied move number, 0 for setup stones.
type MoveError struct {
	Move   game.PlayerMove
	Number int
	Value  string // raw SGF value, when the move came from a record
	Reason Reason
}

func (err *MoveError) Error() string {
	what := fmt.Sprintf("move %d", err.Number)
	if err.Number == 0 {
		what = "setup stone"
	}
	if err.Value != "" {
		return fmt.Sprintf("Unable to make %s %v[%s]: %v", what, err.Move.Player, err.Value, err.Reason)
	}
	return fmt.Sprintf("Unable to make %s %v: %v", what, err.Move, err.Reason)
}
