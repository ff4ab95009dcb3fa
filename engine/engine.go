package engine

import (
	"context"
	"fmt"

	"stratego/game"
)

// ActionErrorKind classifies agent failures that happen before rule
// validation ever sees a move.
type ActionErrorKind int

const (
	MalformedAction ActionErrorKind = iota
	ActionTimeout
)

func (k ActionErrorKind) String() string {
	if k == ActionTimeout {
		return "timeout"
	}
	return "malformed"
}

// ActionError is the structured failure an agent adapter returns instead
// of a move: unparseable output or a timeout. The engine never re-parses
// raw model text itself.
type ActionError struct {
	Kind   ActionErrorKind
	Detail string
}

func (e *ActionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("action error: %s", e.Kind)
	}
	return fmt.Sprintf("action error: %s: %s", e.Kind, e.Detail)
}

// MatchInfo is the metadata handed to an agent alongside its board view.
type MatchInfo struct {
	Player       game.PlayerID
	TurnCount    int
	InvalidCount int
	LegalMoves   []game.Move
}

// Agent is the capability contract every player adapter implements. It
// returns either a move or an ActionError; the call must honor ctx, which
// carries the per-action timeout.
type Agent interface {
	RequestAction(ctx context.Context, view game.View, info MatchInfo) (game.Move, error)
}

// FailureKind is the policy-level classification of a rejected action.
type FailureKind int

const (
	FailureMalformed FailureKind = iota
	FailureIllegal
	FailureOutOfTurn
)

func (k FailureKind) String() string {
	switch k {
	case FailureMalformed:
		return "malformed"
	case FailureIllegal:
		return "illegal"
	case FailureOutOfTurn:
		return "out_of_turn"
	default:
		return "unknown"
	}
}

// Recorder consumes the per-turn event stream. An event is emitted only
// for turns that fully completed the validation, resolution, detection and
// termination pipeline.
type Recorder interface {
	MoveApplied(turn int, outcome game.MoveOutcome)
	ActionRejected(turn int, player game.PlayerID, kind FailureKind)
	MatchEnded(result game.MatchResult)
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) MoveApplied(int, game.MoveOutcome)                   {}
func (NopRecorder) ActionRejected(int, game.PlayerID, FailureKind)      {}
func (NopRecorder) MatchEnded(game.MatchResult)                         {}

// InvariantError signals corrupted engine state: an internal defect, never
// an agent error. It aborts the match instead of being retried or
// silently corrected.
type InvariantError struct {
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: %v", e.Err)
}

func (e *InvariantError) Unwrap() error { return e.Err }
