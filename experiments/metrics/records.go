package metrics

import (
	"time"

	"github.com/google/uuid"

	"stratego/engine"
	"stratego/game"
)

// GameRecord is one finished match as stored in the benchmark CSV.
type GameRecord struct {
	ID            uuid.UUID
	Agent1        string
	Agent2        string
	BoardSize     int
	Winner        string
	Turns         int
	InvalidMoves1 int
	InvalidMoves2 int
	Repetitions   int
	FlagCaptured  bool
	Reason        string
	StartTime     time.Time
	EndTime       time.Time
}

// MoveRecord is one applied or rejected action within a match.
type MoveRecord struct {
	Game        uuid.UUID
	Turn        int
	Player      int
	Move        string
	Outcome     string
	Captured    string
	WasRepeated bool
}

const repeatLookback = 3

// MatchRecorder implements engine.Recorder by accumulating one GameRecord
// plus its MoveRecords in memory. One recorder serves exactly one match.
type MatchRecorder struct {
	record      GameRecord
	moves       []MoveRecord
	recent      map[game.PlayerID][]game.Move
	repetitions int
	finished    bool
}

func NewMatchRecorder(agent1, agent2 string, boardSize int) *MatchRecorder {
	return &MatchRecorder{
		record: GameRecord{
			ID:        uuid.New(),
			Agent1:    agent1,
			Agent2:    agent2,
			BoardSize: boardSize,
			StartTime: time.Now().UTC(),
		},
		recent: make(map[game.PlayerID][]game.Move),
	}
}

func (r *MatchRecorder) MoveApplied(turn int, outcome game.MoveOutcome) {
	m := outcome.Move
	repeated := false
	for _, prev := range r.recent[m.Player] {
		if prev == m {
			repeated = true
			break
		}
	}
	if repeated {
		r.repetitions++
	}
	r.recent[m.Player] = append(r.recent[m.Player], m)
	if len(r.recent[m.Player]) > repeatLookback {
		r.recent[m.Player] = r.recent[m.Player][1:]
	}

	rec := MoveRecord{
		Game:        r.record.ID,
		Turn:        turn,
		Player:      int(m.Player),
		Move:        m.String(),
		Outcome:     "move",
		WasRepeated: repeated,
	}
	if c := outcome.Combat; c != nil {
		switch c.Result {
		case game.AttackerWins, game.FlagCaptured:
			rec.Outcome = "won_battle"
			rec.Captured = c.Defender.String()
		case game.DefenderWins:
			rec.Outcome = "lost_battle"
			rec.Captured = c.Attacker.String()
		case game.MutualLoss:
			rec.Outcome = "mutual_loss"
			rec.Captured = c.Defender.String()
		}
	}
	r.moves = append(r.moves, rec)
}

func (r *MatchRecorder) ActionRejected(turn int, player game.PlayerID, kind engine.FailureKind) {
	r.moves = append(r.moves, MoveRecord{
		Game:    r.record.ID,
		Turn:    turn,
		Player:  int(player),
		Outcome: "rejected_" + kind.String(),
	})
}

func (r *MatchRecorder) MatchEnded(result game.MatchResult) {
	r.record.EndTime = time.Now().UTC()
	r.record.Winner = result.Winner.String()
	r.record.Turns = result.TurnCount
	r.record.InvalidMoves1 = result.InvalidCounts[game.Player1]
	r.record.InvalidMoves2 = result.InvalidCounts[game.Player2]
	r.record.Repetitions = r.repetitions
	r.record.FlagCaptured = result.Reason == game.EndFlagCaptured
	r.record.Reason = result.Reason.String()
	r.finished = true
}

// Game returns the accumulated record; valid once MatchEnded has fired.
func (r *MatchRecorder) Game() (GameRecord, bool) {
	return r.record, r.finished
}

func (r *MatchRecorder) Moves() []MoveRecord {
	return r.moves
}
