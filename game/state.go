package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Status is the match lifecycle phase.
type Status int

const (
	Ongoing Status = iota
	Terminal
)

// EndReason says why a match terminated.
type EndReason int

const (
	EndNone EndReason = iota
	EndFlagCaptured
	EndNoLegalMoves
	EndInvalidMoveThreshold
	EndRepetition
	EndTurnLimit
)

func (r EndReason) String() string {
	switch r {
	case EndFlagCaptured:
		return "flag_captured"
	case EndNoLegalMoves:
		return "no_legal_moves"
	case EndInvalidMoveThreshold:
		return "invalid_move_threshold"
	case EndRepetition:
		return "repetition"
	case EndTurnLimit:
		return "turn_limit"
	default:
		return "none"
	}
}

// Draw reports whether the reason ends the match without a winner.
func (r EndReason) Draw() bool {
	return r == EndRepetition || r == EndTurnLimit
}

// StateHash is a position fingerprint covering the board and the side to
// move.
type StateHash uint64

// MatchResult is the immutable snapshot taken at termination and handed to
// the recorder. Winner is NoPlayer for a draw.
type MatchResult struct {
	Winner        PlayerID
	Reason        EndReason
	TurnCount     int
	InvalidCounts map[PlayerID]int
}

// MoveOutcome describes one applied move. Combat is nil when the
// destination was empty.
type MoveOutcome struct {
	Move   Move
	Combat *Combat
}

// MatchState is the dynamic state of one match. It is mutated exclusively
// by the match controller and becomes immutable the instant a termination
// check succeeds.
type MatchState struct {
	Board         *Board
	Rules         *Rules
	Turn          PlayerID
	TurnCount     int
	History       []Move
	InvalidCounts map[PlayerID]int
	Status        Status
	EndReason     EndReason
	Winner        PlayerID
}

// NewMatchState wraps an already populated board into a fresh ongoing
// state with player 1 to move.
func NewMatchState(rules *Rules, board *Board) *MatchState {
	return &MatchState{
		Board: board,
		Rules: rules,
		Turn:  Player1,
		InvalidCounts: map[PlayerID]int{
			Player1: 0,
			Player2: 0,
		},
	}
}

func (s *MatchState) Copy() *MatchState {
	historyCopy := make([]Move, len(s.History))
	copy(historyCopy, s.History)

	invalidCopy := make(map[PlayerID]int, len(s.InvalidCounts))
	for player, count := range s.InvalidCounts {
		invalidCopy[player] = count
	}

	return &MatchState{
		Board:         s.Board.Copy(),
		Rules:         s.Rules,
		Turn:          s.Turn,
		TurnCount:     s.TurnCount,
		History:       historyCopy,
		InvalidCounts: invalidCopy,
		Status:        s.Status,
		EndReason:     s.EndReason,
		Winner:        s.Winner,
	}
}

// Hash fingerprints the position: occupancy, ownership, rank, reveal state
// of every cell, plus the side to move.
func (s *MatchState) Hash() StateHash {
	hasher := fnv.New64a()
	binary.Write(hasher, binary.LittleEndian, int64(s.Turn))
	for i, p := range s.Board.cells {
		if p == nil {
			continue
		}
		binary.Write(hasher, binary.LittleEndian, int64(i))
		binary.Write(hasher, binary.LittleEndian, int64(p.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(p.Rank))
		binary.Write(hasher, binary.LittleEndian, p.Revealed)
	}
	return StateHash(hasher.Sum64())
}

var orthogonal = []Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// LegalMoves generates every move the player could legally make right now,
// ignoring whose turn it is. The engine uses it both to brief agents and
// to detect the no-legal-moves loss.
func (s *MatchState) LegalMoves(player PlayerID) []Move {
	var moves []Move
	for _, from := range s.Board.Pieces(player) {
		piece := s.Board.PieceAt(from)
		if !piece.Rank.Movable() {
			continue
		}
		for _, d := range orthogonal {
			if piece.Rank == Scout {
				for distance := 1; ; distance++ {
					to := Coord{Row: from.Row + d.Row*distance, Col: from.Col + d.Col*distance}
					if !s.Board.InBounds(to) || s.Board.IsLake(to) {
						break
					}
					target := s.Board.PieceAt(to)
					if target == nil {
						moves = append(moves, Move{Player: player, From: from, To: to})
						continue
					}
					if target.Owner != player {
						moves = append(moves, Move{Player: player, From: from, To: to})
					}
					break
				}
				continue
			}
			to := Coord{Row: from.Row + d.Row, Col: from.Col + d.Col}
			if !s.Board.InBounds(to) || s.Board.IsLake(to) {
				continue
			}
			if target := s.Board.PieceAt(to); target == nil || target.Owner != player {
				moves = append(moves, Move{Player: player, From: from, To: to})
			}
		}
	}
	return moves
}

func (s *MatchState) HasLegalMoves(player PlayerID) bool {
	return len(s.LegalMoves(player)) > 0
}

// ApplyMove mutates the board with an already validated move, resolves
// combat if the destination is defended, records history, and completes
// the turn. Flag capture finalizes the state immediately.
//
// Errors indicate a corrupted engine, not bad input: the move must have
// passed ValidateMove.
func (s *MatchState) ApplyMove(m Move) (MoveOutcome, error) {
	if s.Status == Terminal {
		return MoveOutcome{}, fmt.Errorf("apply on terminal state")
	}
	attacker := s.Board.PieceAt(m.From)
	if attacker == nil || attacker.Owner != m.Player {
		return MoveOutcome{}, fmt.Errorf("apply of unvalidated move %s", m)
	}

	outcome := MoveOutcome{Move: m}
	defender := s.Board.PieceAt(m.To)

	if defender == nil {
		if err := s.Board.Relocate(m.From, m.To); err != nil {
			return MoveOutcome{}, fmt.Errorf("relocate %s: %w", m, err)
		}
		if s.Rules.ScoutRevealOnMultiStep && attacker.Rank == Scout && manhattan(m.From, m.To) > 1 {
			s.Board.Reveal(m.To)
		}
	} else {
		combat, err := s.resolveCombat(m, attacker, defender)
		if err != nil {
			return MoveOutcome{}, err
		}
		outcome.Combat = combat
	}

	s.History = append(s.History, m)
	if window := s.Rules.HistoryWindow; window > 0 && len(s.History) > window {
		s.History = s.History[len(s.History)-window:]
	}
	s.completeTurn()
	s.Turn = s.Turn.Opponent()

	if outcome.Combat != nil && outcome.Combat.Result == FlagCaptured {
		s.Finalize(EndFlagCaptured, m.Player)
	}
	return outcome, nil
}

// resolveCombat reveals both participants, then applies the resolution to
// the board.
func (s *MatchState) resolveCombat(m Move, attacker, defender *Piece) (*Combat, error) {
	s.Board.Reveal(m.From)
	s.Board.Reveal(m.To)
	combat := &Combat{
		Attacker: attacker.Rank,
		Defender: defender.Rank,
		Result:   ResolveCombat(attacker.Rank, defender.Rank),
	}

	switch combat.Result {
	case AttackerWins, FlagCaptured:
		if _, err := s.Board.Remove(m.To); err != nil {
			return nil, fmt.Errorf("remove defender at %s: %w", m.To, err)
		}
		if err := s.Board.Relocate(m.From, m.To); err != nil {
			return nil, fmt.Errorf("advance attacker %s: %w", m, err)
		}
	case DefenderWins:
		if _, err := s.Board.Remove(m.From); err != nil {
			return nil, fmt.Errorf("remove attacker at %s: %w", m.From, err)
		}
	case MutualLoss:
		if _, err := s.Board.Remove(m.From); err != nil {
			return nil, fmt.Errorf("remove attacker at %s: %w", m.From, err)
		}
		if _, err := s.Board.Remove(m.To); err != nil {
			return nil, fmt.Errorf("remove defender at %s: %w", m.To, err)
		}
	}
	return combat, nil
}

// ForfeitTurn burns one turn from the shared budget without moving or
// alternating; the offender retries under the invalid-action policy.
func (s *MatchState) ForfeitTurn() {
	s.completeTurn()
}

func (s *MatchState) completeTurn() {
	s.TurnCount++
}

// Finalize ends the match. It is idempotent against later, lower-priority
// reasons: the first finalization wins.
func (s *MatchState) Finalize(reason EndReason, winner PlayerID) {
	if s.Status == Terminal {
		return
	}
	s.Status = Terminal
	s.EndReason = reason
	s.Winner = winner
}

// Result snapshots the terminal state into an immutable record.
func (s *MatchState) Result() MatchResult {
	invalidCopy := make(map[PlayerID]int, len(s.InvalidCounts))
	for player, count := range s.InvalidCounts {
		invalidCopy[player] = count
	}
	return MatchResult{
		Winner:        s.Winner,
		Reason:        s.EndReason,
		TurnCount:     s.TurnCount,
		InvalidCounts: invalidCopy,
	}
}

func manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}
