// Package agent provides built-in engine.Agent implementations used for
// baselines and tests. Model-backed adapters live outside this module;
// anything here works purely from the filtered view and the offered legal
// moves.
package agent

import (
	"context"

	"golang.org/x/exp/rand"

	"stratego/engine"
	"stratego/game"
)

// RandomAgent picks uniformly among the legal moves it is offered.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) RequestAction(ctx context.Context, view game.View, info engine.MatchInfo) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}
	if len(info.LegalMoves) == 0 {
		return game.Move{}, &engine.ActionError{Kind: engine.MalformedAction, Detail: "no legal moves offered"}
	}
	return info.LegalMoves[a.rng.Intn(len(info.LegalMoves))], nil
}
