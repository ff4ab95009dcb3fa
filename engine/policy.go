package engine

import (
	"errors"

	"stratego/game"
)

// Decision is the invalid-action policy's verdict after a rejection.
type Decision int

const (
	Retry Decision = iota
	Forfeit
)

// Classify maps a rejection error to its policy-level kind. Timeouts count
// as malformed output.
func Classify(err error) FailureKind {
	var illegal *game.IllegalMoveError
	if errors.As(err, &illegal) {
		if illegal.Reason == game.IllegalOutOfTurn {
			return FailureOutOfTurn
		}
		return FailureIllegal
	}
	return FailureMalformed
}

// InvalidActionPolicy accounts rejected actions per player and decides
// between retry and forfeiture. It never touches board or turn state.
type InvalidActionPolicy struct {
	threshold int
}

func NewInvalidActionPolicy(threshold int) *InvalidActionPolicy {
	return &InvalidActionPolicy{threshold: threshold}
}

// Record increments the player's invalid count on the state and returns
// Forfeit once the cumulative count reaches the threshold.
func (p *InvalidActionPolicy) Record(s *game.MatchState, player game.PlayerID) Decision {
	s.InvalidCounts[player]++
	if s.InvalidCounts[player] >= p.threshold {
		return Forfeit
	}
	return Retry
}
