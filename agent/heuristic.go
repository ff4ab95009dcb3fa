package agent

import (
	"context"

	"golang.org/x/exp/rand"

	"stratego/engine"
	"stratego/game"
)

// HeuristicAgent plays a simple probing game: it prefers attacks that gain
// information or material, advances toward the opponent otherwise, and
// penalizes undoing its own previous move so it does not shuttle.
type HeuristicAgent struct {
	rng      *rand.Rand
	lastMove map[game.PlayerID]game.Move
}

func NewHeuristicAgent(seed uint64) *HeuristicAgent {
	return &HeuristicAgent{
		rng:      rand.New(rand.NewSource(seed)),
		lastMove: make(map[game.PlayerID]game.Move),
	}
}

func (a *HeuristicAgent) RequestAction(ctx context.Context, view game.View, info engine.MatchInfo) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}
	if len(info.LegalMoves) == 0 {
		return game.Move{}, &engine.ActionError{Kind: engine.MalformedAction, Detail: "no legal moves offered"}
	}

	best := info.LegalMoves[0]
	bestScore := a.score(view, info, best)
	count := 1
	for _, m := range info.LegalMoves[1:] {
		s := a.score(view, info, m)
		switch {
		case s > bestScore:
			best, bestScore, count = m, s, 1
		case s == bestScore:
			// Reservoir-sample ties so equal moves are taken evenly.
			count++
			if a.rng.Intn(count) == 0 {
				best = m
			}
		}
	}
	a.lastMove[info.Player] = best
	return best, nil
}

func (a *HeuristicAgent) score(view game.View, info engine.MatchInfo, m game.Move) int {
	score := 0
	target := view.At(m.To)
	mover := view.At(m.From)

	if target.Occupied {
		// Attacks reveal information even when they lose.
		score += 3
		if target.Known {
			switch {
			case game.ResolveCombat(mover.Rank, target.Rank) == game.AttackerWins,
				target.Rank == game.Flag:
				score += 5
			case game.ResolveCombat(mover.Rank, target.Rank) == game.DefenderWins:
				score -= 4
			}
		}
	} else if a.advances(info.Player, m) {
		score++
	}

	if prev, ok := a.lastMove[info.Player]; ok && m.Reverses(prev) {
		score -= 4
	}
	return score
}

// advances reports whether the move closes in on the opponent's home rows.
func (a *HeuristicAgent) advances(player game.PlayerID, m game.Move) bool {
	if player == game.Player1 {
		return m.To.Row > m.From.Row
	}
	return m.To.Row < m.From.Row
}
