package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCombat(t *testing.T) {
	cases := []struct {
		name     string
		attacker Rank
		defender Rank
		want     CombatResult
	}{
		{"equal ranks destroy each other", Captain, Captain, MutualLoss},
		{"higher rank attacker wins", Major, Sergeant, AttackerWins},
		{"lower rank attacker loses", Sergeant, Major, DefenderWins},
		{"miner defuses bomb", Miner, Bomb, AttackerWins},
		{"scout dies to bomb", Scout, Bomb, DefenderWins},
		{"marshal dies to bomb", Marshal, Bomb, DefenderWins},
		{"spy assassinates marshal", Spy, Marshal, AttackerWins},
		{"marshal crushes defending spy", Marshal, Spy, AttackerWins},
		{"spy loses to anything else", Spy, Scout, DefenderWins},
		{"flag falls to any attacker", Spy, Flag, FlagCaptured},
		{"flag falls to marshal", Marshal, Flag, FlagCaptured},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ResolveCombat(tc.attacker, tc.defender))
		})
	}
}

func TestSpyMarshalAsymmetry(t *testing.T) {
	require.Equal(t, AttackerWins, ResolveCombat(Spy, Marshal),
		"spy beats the marshal only when attacking")
	require.Equal(t, AttackerWins, ResolveCombat(Marshal, Spy),
		"defending spy falls to the marshal by plain rank comparison")
}

func TestCombatRevealsBothRanks(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Miner},
		{Row: 2, Col: 0}: {Owner: Player2, Rank: Bomb},
	})

	outcome, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 2, Col: 0}})
	require.NoError(t, err)
	require.NotNil(t, outcome.Combat)
	require.Equal(t, AttackerWins, outcome.Combat.Result)

	// Miner advanced into the bomb's cell, revealed.
	miner := s.Board.PieceAt(Coord{Row: 2, Col: 0})
	require.NotNil(t, miner)
	require.Equal(t, Miner, miner.Rank)
	require.True(t, miner.Revealed, "combat reveals the winner too")
	require.Nil(t, s.Board.PieceAt(Coord{Row: 1, Col: 0}))
}

func TestLosingAttackerIsStillRevealed(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Sergeant},
		{Row: 2, Col: 0}: {Owner: Player2, Rank: Major},
	})

	outcome, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 2, Col: 0}})
	require.NoError(t, err)
	require.Equal(t, DefenderWins, outcome.Combat.Result)

	require.Nil(t, s.Board.PieceAt(Coord{Row: 1, Col: 0}), "losing attacker is removed")
	defender := s.Board.PieceAt(Coord{Row: 2, Col: 0})
	require.True(t, defender.Revealed, "surviving defender's rank becomes public")
}

func TestMutualLossRemovesBoth(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Captain},
		{Row: 2, Col: 0}: {Owner: Player2, Rank: Captain},
	})

	outcome, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 2, Col: 0}})
	require.NoError(t, err)
	require.Equal(t, MutualLoss, outcome.Combat.Result)
	require.Nil(t, s.Board.PieceAt(Coord{Row: 1, Col: 0}))
	require.Nil(t, s.Board.PieceAt(Coord{Row: 2, Col: 0}))
}
