package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"stratego/game"
)

const DefaultActionTimeout = 30 * time.Second

// MatchController owns one MatchState for the lifetime of a match and
// drives the strictly sequential turn loop: agent action, validation,
// policy or resolution, repetition detection, termination check. The only
// blocking call is the one out to an agent, bounded by the action timeout.
type MatchController struct {
	state    *game.MatchState
	agents   map[game.PlayerID]Agent
	recorder Recorder
	policy   *InvalidActionPolicy
	detector *RepetitionDetector
	checker  *TerminationController
	timeout  time.Duration
}

type ControllerOption func(*MatchController)

func WithRecorder(r Recorder) ControllerOption {
	return func(c *MatchController) {
		if r != nil {
			c.recorder = r
		}
	}
}

func WithActionTimeout(d time.Duration) ControllerOption {
	return func(c *MatchController) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewMatchController wires a controller around an initialized state. The
// recorder is injected here and events flow to it directly; agents never
// hold a recorder reference.
func NewMatchController(state *game.MatchState, player1, player2 Agent, options ...ControllerOption) *MatchController {
	c := &MatchController{
		state: state,
		agents: map[game.PlayerID]Agent{
			game.Player1: player1,
			game.Player2: player2,
		},
		recorder: NopRecorder{},
		policy:   NewInvalidActionPolicy(state.Rules.InvalidMoveThreshold),
		detector: NewRepetitionDetector(state.Rules),
		checker:  NewTerminationController(state.Rules),
		timeout:  DefaultActionTimeout,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Run plays the match to completion and returns its result. Every match
// ends with a well-formed MatchResult unless the context is cancelled or
// an engine invariant breaks; a cancelled match simply stops without
// exposing a partial turn.
func (c *MatchController) Run(ctx context.Context) (game.MatchResult, error) {
	log.Info().
		Int("board_size", c.state.Board.Size()).
		Int("turn_limit", c.state.Rules.TurnLimit).
		Msgf("%s is starting", c.state.Turn)

	// A hostile provided placement can freeze the first mover outright.
	if result, done := c.checker.Check(c.state, false); done {
		c.recorder.MatchEnded(result)
		return result, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return game.MatchResult{}, err
		}
		player := c.state.Turn

		move, err := c.requestAction(ctx, player)
		if err == nil {
			err = game.ValidateMove(c.state, move)
		}
		if err != nil {
			if ctx.Err() != nil {
				return game.MatchResult{}, ctx.Err()
			}
			result, done := c.rejectAction(player, err)
			if done {
				return result, nil
			}
			continue
		}

		outcome, err := c.state.ApplyMove(move)
		if err != nil {
			ierr := &InvariantError{Err: err}
			log.Error().Err(ierr).Msgf("aborting match on turn %d", c.state.TurnCount+1)
			return game.MatchResult{}, ierr
		}

		repetition := c.detector.Observe(move, c.state.Hash())
		result, done := c.checker.Check(c.state, repetition)
		c.recorder.MoveApplied(c.state.TurnCount, outcome)
		if done {
			log.Info().Msgf("match over after %d turns: %s, winner %s",
				result.TurnCount, result.Reason, result.Winner)
			c.recorder.MatchEnded(result)
			return result, nil
		}
	}
}

// requestAction briefs the agent with its filtered view and metadata and
// collects either a move or a failure. A deadline hit is folded into the
// malformed-action taxonomy rather than surfacing as a crash.
func (c *MatchController) requestAction(ctx context.Context, player game.PlayerID) (game.Move, error) {
	view := c.state.Board.PlayerView(player)
	info := MatchInfo{
		Player:       player,
		TurnCount:    c.state.TurnCount,
		InvalidCount: c.state.InvalidCounts[player],
		LegalMoves:   c.state.LegalMoves(player),
	}

	actionCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	move, err := c.agents[player].RequestAction(actionCtx, view, info)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return game.Move{}, &ActionError{Kind: ActionTimeout, Detail: err.Error()}
		}
		return game.Move{}, err
	}
	return move, nil
}

// rejectAction runs the invalid-action policy for a failed attempt. Board
// and turn ownership never change here; at most a turn is burned from the
// shared budget when the rules say invalid attempts consume one.
func (c *MatchController) rejectAction(player game.PlayerID, cause error) (game.MatchResult, bool) {
	kind := Classify(cause)
	attempted := c.state.TurnCount + 1
	c.recorder.ActionRejected(attempted, player, kind)
	log.Debug().Err(cause).Msgf("rejected %s action by %s on turn %d", kind, player, attempted)

	if c.policy.Record(c.state, player) == Forfeit {
		c.state.Finalize(game.EndInvalidMoveThreshold, player.Opponent())
		result := c.state.Result()
		log.Info().Msgf("%s forfeits after %d invalid actions", player, c.state.InvalidCounts[player])
		c.recorder.MatchEnded(result)
		return result, true
	}

	if c.state.Rules.ConsumeTurnOnInvalid {
		c.state.ForfeitTurn()
		if result, done := c.checker.Check(c.state, false); done {
			c.recorder.MatchEnded(result)
			return result, true
		}
	}
	return game.MatchResult{}, false
}

// State exposes the controller's state for inspection after Run returns.
func (c *MatchController) State() *game.MatchState {
	return c.state
}
