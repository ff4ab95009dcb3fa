package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("coordinate out of bounds")
	ErrOccupiedCell = errors.New("cell is already occupied")
	ErrEmptyCell    = errors.New("cell is empty")
	ErrLakeCell     = errors.New("cell is a lake")
)

// Coord addresses a board cell. Row 0 is player 1's outermost home row.
type Coord struct {
	Row int
	Col int
}

// String renders the coordinate in the row-letter column-number notation
// used by moves and logs, e.g. {0,3} -> "A3".
func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col)
}

// Board is an N×N grid. Each cell is empty, a lake, or holds exactly one
// piece. The board owns all pieces through cell occupancy; only the match
// controller may reach its mutating operations.
type Board struct {
	size  int
	cells []*Piece
	lakes map[Coord]struct{}
}

// NewBoard creates an empty board of the given size with the size-scaled
// lake layout.
func NewBoard(size int) *Board {
	b := &Board{
		size:  size,
		cells: make([]*Piece, size*size),
		lakes: make(map[Coord]struct{}),
	}
	for _, c := range generateLakes(size) {
		b.lakes[c] = struct{}{}
	}
	return b
}

func (b *Board) Size() int { return b.size }

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

func (b *Board) IsLake(c Coord) bool {
	_, ok := b.lakes[c]
	return ok
}

func (b *Board) index(c Coord) int { return c.Row*b.size + c.Col }

// PieceAt returns the piece occupying the cell, or nil.
func (b *Board) PieceAt(c Coord) *Piece {
	if !b.InBounds(c) {
		return nil
	}
	return b.cells[b.index(c)]
}

// Place puts a piece onto an empty, non-lake cell.
func (b *Board) Place(p Piece, c Coord) error {
	if !b.InBounds(c) {
		return ErrOutOfBounds
	}
	if b.IsLake(c) {
		return ErrLakeCell
	}
	if b.cells[b.index(c)] != nil {
		return ErrOccupiedCell
	}
	piece := p
	b.cells[b.index(c)] = &piece
	return nil
}

// Relocate moves the piece at from to the empty cell at to. It checks
// occupancy only; rule legality is the validator's job.
func (b *Board) Relocate(from, to Coord) error {
	if !b.InBounds(from) || !b.InBounds(to) {
		return ErrOutOfBounds
	}
	if b.cells[b.index(from)] == nil {
		return ErrEmptyCell
	}
	if b.IsLake(to) {
		return ErrLakeCell
	}
	if b.cells[b.index(to)] != nil {
		return ErrOccupiedCell
	}
	b.cells[b.index(to)] = b.cells[b.index(from)]
	b.cells[b.index(from)] = nil
	return nil
}

// Remove takes the piece off the cell and returns it.
func (b *Board) Remove(c Coord) (Piece, error) {
	if !b.InBounds(c) {
		return Piece{}, ErrOutOfBounds
	}
	p := b.cells[b.index(c)]
	if p == nil {
		return Piece{}, ErrEmptyCell
	}
	b.cells[b.index(c)] = nil
	return *p, nil
}

// Reveal marks the piece's rank as visible to the opponent. Revealing an
// already revealed piece is a no-op.
func (b *Board) Reveal(c Coord) {
	if p := b.PieceAt(c); p != nil {
		p.Revealed = true
	}
}

// Pieces returns the coordinates of every piece owned by the player, in
// row-major order.
func (b *Board) Pieces(player PlayerID) []Coord {
	var coords []Coord
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Coord{Row: row, Col: col}
			if p := b.PieceAt(c); p != nil && p.Owner == player {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// Copy returns a deep copy. Pieces are duplicated so reveals on the copy
// never leak back.
func (b *Board) Copy() *Board {
	nb := &Board{
		size:  b.size,
		cells: make([]*Piece, len(b.cells)),
		lakes: make(map[Coord]struct{}, len(b.lakes)),
	}
	for i, p := range b.cells {
		if p != nil {
			piece := *p
			nb.cells[i] = &piece
		}
	}
	for c := range b.lakes {
		nb.lakes[c] = struct{}{}
	}
	return nb
}
