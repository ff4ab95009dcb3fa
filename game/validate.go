package game

import "fmt"

// IllegalReason says which legality check a move failed.
type IllegalReason int

const (
	IllegalOutOfBounds IllegalReason = iota
	IllegalEmptySource
	IllegalNotOwnPiece
	IllegalImmovablePiece
	IllegalZeroDistance
	IllegalDiagonal
	IllegalTooFar
	IllegalPathBlocked
	IllegalLakeDestination
	IllegalOwnPieceDestination
	IllegalOutOfTurn
)

func (r IllegalReason) String() string {
	switch r {
	case IllegalOutOfBounds:
		return "out_of_bounds"
	case IllegalEmptySource:
		return "empty_source"
	case IllegalNotOwnPiece:
		return "not_own_piece"
	case IllegalImmovablePiece:
		return "immovable_piece"
	case IllegalZeroDistance:
		return "zero_distance"
	case IllegalDiagonal:
		return "diagonal"
	case IllegalTooFar:
		return "too_far"
	case IllegalPathBlocked:
		return "path_blocked"
	case IllegalLakeDestination:
		return "lake_destination"
	case IllegalOwnPieceDestination:
		return "own_piece_destination"
	case IllegalOutOfTurn:
		return "out_of_turn"
	default:
		return "unknown"
	}
}

// IllegalMoveError is returned by ValidateMove for any rule-illegal move.
type IllegalMoveError struct {
	Move   Move
	Reason IllegalReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s by %s: %s", e.Move, e.Move.Player, e.Reason)
}

// ValidateMove checks a proposed move against the current state and
// returns nil when it is legal. It never mutates anything. A destination
// occupied by an opposing piece is legal; it triggers combat.
func ValidateMove(s *MatchState, m Move) error {
	illegal := func(reason IllegalReason) error {
		return &IllegalMoveError{Move: m, Reason: reason}
	}
	b := s.Board

	if !b.InBounds(m.From) || !b.InBounds(m.To) {
		return illegal(IllegalOutOfBounds)
	}

	piece := b.PieceAt(m.From)
	if piece == nil {
		return illegal(IllegalEmptySource)
	}
	if piece.Owner != m.Player {
		return illegal(IllegalNotOwnPiece)
	}
	if !piece.Rank.Movable() {
		return illegal(IllegalImmovablePiece)
	}

	if err := validatePath(b, piece.Rank, m); err != nil {
		return err
	}

	if b.IsLake(m.To) {
		return illegal(IllegalLakeDestination)
	}
	if target := b.PieceAt(m.To); target != nil && target.Owner == m.Player {
		return illegal(IllegalOwnPieceDestination)
	}

	if m.Player != s.Turn {
		return illegal(IllegalOutOfTurn)
	}
	return nil
}

// validatePath enforces move geometry: exactly one orthogonal step for
// standard pieces, any number of clear orthogonal cells for a scout.
func validatePath(b *Board, rank Rank, m Move) error {
	illegal := func(reason IllegalReason) error {
		return &IllegalMoveError{Move: m, Reason: reason}
	}
	dRow := m.To.Row - m.From.Row
	dCol := m.To.Col - m.From.Col

	if dRow == 0 && dCol == 0 {
		return illegal(IllegalZeroDistance)
	}
	if dRow != 0 && dCol != 0 {
		return illegal(IllegalDiagonal)
	}

	distance := abs(dRow) + abs(dCol)
	if distance == 1 {
		return nil
	}
	if rank != Scout {
		return illegal(IllegalTooFar)
	}

	// Scout slide: every intervening cell must be empty and not a lake.
	stepRow, stepCol := sign(dRow), sign(dCol)
	c := m.From
	for i := 1; i < distance; i++ {
		c = Coord{Row: c.Row + stepRow, Col: c.Col + stepCol}
		if b.IsLake(c) || b.PieceAt(c) != nil {
			return illegal(IllegalPathBlocked)
		}
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
