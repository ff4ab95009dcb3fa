package game

import "fmt"

// Move is a proposed relocation of the mover's piece. It is produced by an
// agent adapter and validated by the engine before anything mutates.
type Move struct {
	Player PlayerID
	From   Coord
	To     Coord
}

// String renders the move in the bracketed source/destination notation,
// e.g. "[A0 B0]".
func (m Move) String() string {
	return fmt.Sprintf("[%s %s]", m.From, m.To)
}

// Reverses reports whether m undoes other: the same two cells walked in
// the opposite direction.
func (m Move) Reverses(other Move) bool {
	return m.From == other.To && m.To == other.From
}
