package engine

import "stratego/game"

// TerminationController evaluates end conditions once per completed turn,
// in fixed priority order. Flag capture short-circuits everything; the
// invalid-move threshold never reaches here because forfeiture finalizes
// the state inside the turn loop before any move completes.
type TerminationController struct {
	rules *game.Rules
}

func NewTerminationController(rules *game.Rules) *TerminationController {
	return &TerminationController{rules: rules}
}

// Check returns the match result and true when any end condition holds.
// Priority: flag captured, no legal moves for the player to move,
// repetition, turn limit.
func (t *TerminationController) Check(s *game.MatchState, repetition bool) (game.MatchResult, bool) {
	if s.Status == game.Terminal {
		return s.Result(), true
	}
	if !s.HasLegalMoves(s.Turn) {
		s.Finalize(game.EndNoLegalMoves, s.Turn.Opponent())
		return s.Result(), true
	}
	if repetition {
		s.Finalize(game.EndRepetition, game.NoPlayer)
		return s.Result(), true
	}
	if s.TurnCount >= t.rules.TurnLimit {
		s.Finalize(game.EndTurnLimit, game.NoPlayer)
		return s.Result(), true
	}
	return game.MatchResult{}, false
}
