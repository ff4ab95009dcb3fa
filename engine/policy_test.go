package engine

import (
	"errors"
	"testing"

	"stratego/game"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "out of turn is its own kind",
			err:  &game.IllegalMoveError{Reason: game.IllegalOutOfTurn},
			want: FailureOutOfTurn,
		},
		{
			name: "rule violation is illegal",
			err:  &game.IllegalMoveError{Reason: game.IllegalPathBlocked},
			want: FailureIllegal,
		},
		{
			name: "agent action error is malformed",
			err:  &ActionError{Kind: MalformedAction, Detail: "no move in reply"},
			want: FailureMalformed,
		},
		{
			name: "timeout is malformed",
			err:  &ActionError{Kind: ActionTimeout},
			want: FailureMalformed,
		},
		{
			name: "unknown error defaults to malformed",
			err:  errors.New("transport broke"),
			want: FailureMalformed,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.err); got != c.want {
				t.Errorf("Classify(%v) = %s, want %s", c.err, got, c.want)
			}
		})
	}
}

func TestPolicyForfeitsAtThreshold(t *testing.T) {
	s := game.NewMatchState(game.NewStandardRules(), game.NewBoard(6))
	policy := NewInvalidActionPolicy(3)

	for i := 0; i < 2; i++ {
		if got := policy.Record(s, game.Player1); got != Retry {
			t.Fatalf("rejection %d: got %v, want Retry", i+1, got)
		}
	}
	if got := policy.Record(s, game.Player1); got != Forfeit {
		t.Fatalf("third rejection: got %v, want Forfeit", got)
	}
	if s.InvalidCounts[game.Player1] != 3 {
		t.Errorf("invalid count = %d, want 3", s.InvalidCounts[game.Player1])
	}
}

func TestPolicyCountsPlayersSeparately(t *testing.T) {
	s := game.NewMatchState(game.NewStandardRules(), game.NewBoard(6))
	policy := NewInvalidActionPolicy(2)

	policy.Record(s, game.Player1)
	if got := policy.Record(s, game.Player2); got != Retry {
		t.Fatalf("first rejection for player 2: got %v, want Retry", got)
	}
	if got := policy.Record(s, game.Player1); got != Forfeit {
		t.Fatalf("second rejection for player 1: got %v, want Forfeit", got)
	}
	if s.InvalidCounts[game.Player2] != 1 {
		t.Errorf("player 2 count = %d, want 1", s.InvalidCounts[game.Player2])
	}
}
