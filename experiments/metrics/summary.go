package metrics

import "stratego/game"

// Summary is the cross-game arithmetic for one benchmark run. It lives
// here, outside the match engine: the core produces one result per match
// and never aggregates.
type Summary struct {
	Games int

	Wins1 int
	Wins2 int
	Draws int

	WinRate1 float64
	WinRate2 float64

	AvgTurns    float64
	AvgInvalid1 float64
	AvgInvalid2 float64
	AvgRepeats  float64

	EndedByFlag        int
	EndedByNoMoves     int
	EndedByInvalid     int
	EndedByRepetition  int
	EndedByTurnLimit   int
}

// Summarize folds game records into a Summary.
func Summarize(records []GameRecord) Summary {
	var s Summary
	s.Games = len(records)
	if s.Games == 0 {
		return s
	}

	var turns, invalid1, invalid2, repeats int
	for _, r := range records {
		switch r.Winner {
		case game.Player1.String():
			s.Wins1++
		case game.Player2.String():
			s.Wins2++
		default:
			s.Draws++
		}

		switch r.Reason {
		case game.EndFlagCaptured.String():
			s.EndedByFlag++
		case game.EndNoLegalMoves.String():
			s.EndedByNoMoves++
		case game.EndInvalidMoveThreshold.String():
			s.EndedByInvalid++
		case game.EndRepetition.String():
			s.EndedByRepetition++
		case game.EndTurnLimit.String():
			s.EndedByTurnLimit++
		}

		turns += r.Turns
		invalid1 += r.InvalidMoves1
		invalid2 += r.InvalidMoves2
		repeats += r.Repetitions
	}

	n := float64(s.Games)
	s.WinRate1 = float64(s.Wins1) / n
	s.WinRate2 = float64(s.Wins2) / n
	s.AvgTurns = float64(turns) / n
	s.AvgInvalid1 = float64(invalid1) / n
	s.AvgInvalid2 = float64(invalid2) / n
	s.AvgRepeats = float64(repeats) / n
	return s
}
