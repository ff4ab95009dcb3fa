package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMoveAlternatesTurn(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Sergeant},
		{Row: 4, Col: 0}: {Owner: Player2, Rank: Sergeant},
	})
	require.Equal(t, Player1, s.Turn)
	require.Equal(t, 0, s.TurnCount)

	_, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 1, Col: 1}})
	require.NoError(t, err)
	require.Equal(t, Player2, s.Turn, "turn alternates after every applied move")
	require.Equal(t, 1, s.TurnCount, "turn count increments exactly once per turn")

	_, err = s.ApplyMove(Move{Player: Player2, From: Coord{Row: 4, Col: 0}, To: Coord{Row: 4, Col: 1}})
	require.NoError(t, err)
	require.Equal(t, Player1, s.Turn)
	require.Equal(t, 2, s.TurnCount)
}

func TestForfeitTurnKeepsMover(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Sergeant},
	})
	s.ForfeitTurn()
	require.Equal(t, Player1, s.Turn, "a forfeited turn never advances ownership")
	require.Equal(t, 1, s.TurnCount, "a forfeited turn still burns the budget")
}

func TestApplyMoveFlagCaptureIsTerminal(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Scout},
		{Row: 2, Col: 0}: {Owner: Player2, Rank: Flag},
		{Row: 5, Col: 5}: {Owner: Player2, Rank: Marshal},
	})

	outcome, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 2, Col: 0}})
	require.NoError(t, err)
	require.Equal(t, FlagCaptured, outcome.Combat.Result)
	require.Equal(t, Terminal, s.Status, "flag capture is immediately terminal")
	require.Equal(t, Player1, s.Winner)
	require.Equal(t, EndFlagCaptured, s.EndReason)
}

func TestApplyMoveOnTerminalStateFails(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Scout},
	})
	s.Finalize(EndTurnLimit, NoPlayer)

	_, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 1, Col: 1}})
	require.Error(t, err, "terminal state must be immutable")
}

func TestHistoryWindowIsBounded(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Sergeant},
		{Row: 4, Col: 0}: {Owner: Player2, Rank: Sergeant},
	})
	s.Rules = NewStandardRules(WithHistoryWindow(6))

	a := Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 1, Col: 1}}
	b := Move{Player: Player2, From: Coord{Row: 4, Col: 0}, To: Coord{Row: 4, Col: 1}}
	for i := 0; i < 5; i++ {
		_, err := s.ApplyMove(a)
		require.NoError(t, err)
		_, err = s.ApplyMove(b)
		require.NoError(t, err)
		a.From, a.To = a.To, a.From
		b.From, b.To = b.To, b.From
	}
	require.Len(t, s.History, 6, "history keeps only the configured window")
}

func TestLegalMovesScoutSlides(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 0, Col: 0}: {Owner: Player1, Rank: Scout},
		{Row: 0, Col: 4}: {Owner: Player2, Rank: Miner},
	})

	moves := s.LegalMoves(Player1)

	var targets []Coord
	for _, m := range moves {
		targets = append(targets, m.To)
	}
	require.Contains(t, targets, Coord{Row: 0, Col: 3}, "slide up to the blocker")
	require.Contains(t, targets, Coord{Row: 0, Col: 4}, "attacking the blocker is legal")
	require.NotContains(t, targets, Coord{Row: 0, Col: 5}, "cannot jump over the blocker")
	require.Contains(t, targets, Coord{Row: 5, Col: 0}, "full column is open")
}

func TestLegalMovesImmovablePieces(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 0, Col: 0}: {Owner: Player1, Rank: Flag},
		{Row: 0, Col: 1}: {Owner: Player1, Rank: Bomb},
	})
	require.Empty(t, s.LegalMoves(Player1), "flags and bombs never move")
	require.False(t, s.HasLegalMoves(Player1))
}

func TestHashDistinguishesSideToMove(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Sergeant},
	})
	h1 := s.Hash()
	s.Turn = Player2
	require.NotEqual(t, h1, s.Hash(), "position hash covers the side to move")
}

func TestResultSnapshotsInvalidCounts(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Sergeant},
	})
	s.InvalidCounts[Player1] = 2
	s.Finalize(EndInvalidMoveThreshold, Player2)

	result := s.Result()
	s.InvalidCounts[Player1] = 99

	require.Equal(t, 2, result.InvalidCounts[Player1], "result is an immutable snapshot")
	require.Equal(t, Player2, result.Winner)
}

func TestPieceCountNeverIncreases(t *testing.T) {
	s := newTestState(t, map[Coord]Piece{
		{Row: 1, Col: 0}: {Owner: Player1, Rank: Captain},
		{Row: 2, Col: 0}: {Owner: Player2, Rank: Captain},
		{Row: 5, Col: 5}: {Owner: Player2, Rank: Flag},
	})
	before1 := len(s.Board.Pieces(Player1))
	before2 := len(s.Board.Pieces(Player2))

	_, err := s.ApplyMove(Move{Player: Player1, From: Coord{Row: 1, Col: 0}, To: Coord{Row: 2, Col: 0}})
	require.NoError(t, err)

	require.LessOrEqual(t, len(s.Board.Pieces(Player1)), before1)
	require.LessOrEqual(t, len(s.Board.Pieces(Player2)), before2)
}
