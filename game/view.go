package game

import (
	"strconv"
	"strings"
)

// ViewCell is one cell of a player-scoped board projection.
type ViewCell struct {
	Lake     bool
	Occupied bool
	Owner    PlayerID
	// Rank is meaningful only when Known is true. Own pieces are always
	// known; opposing pieces only after a reveal.
	Rank  Rank
	Known bool
}

// View is the filtered board handed to agent adapters. It is a value
// snapshot: mutating the real board never changes an existing view, and
// unrevealed opposing ranks are never present in it at all.
type View struct {
	Player PlayerID
	Size   int
	cells  []ViewCell
}

func (v View) At(c Coord) ViewCell {
	if c.Row < 0 || c.Row >= v.Size || c.Col < 0 || c.Col >= v.Size {
		return ViewCell{}
	}
	return v.cells[c.Row*v.Size+c.Col]
}

// PlayerView projects the full board into what the given player may see.
// This is the only board representation ever exposed outside the engine.
func (b *Board) PlayerView(player PlayerID) View {
	v := View{
		Player: player,
		Size:   b.size,
		cells:  make([]ViewCell, b.size*b.size),
	}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Coord{Row: row, Col: col}
			i := b.index(c)
			if b.IsLake(c) {
				v.cells[i] = ViewCell{Lake: true}
				continue
			}
			p := b.PieceAt(c)
			if p == nil {
				continue
			}
			cell := ViewCell{Occupied: true, Owner: p.Owner}
			if p.Owner == player || p.Revealed {
				cell.Rank = p.Rank
				cell.Known = true
			}
			v.cells[i] = cell
		}
	}
	return v
}

// Render draws the view as text: own pieces by rank abbreviation,
// unrevealed opposing pieces as "?", lakes as "~", empty cells as ".".
// Revealed opposing pieces show their abbreviation in lower case.
func (v View) Render() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < v.Size; col++ {
		sb.WriteString(padCell(strconv.Itoa(col)))
	}
	sb.WriteByte('\n')
	for row := 0; row < v.Size; row++ {
		sb.WriteByte(byte('A' + row))
		sb.WriteString("  ")
		for col := 0; col < v.Size; col++ {
			cell := v.At(Coord{Row: row, Col: col})
			switch {
			case cell.Lake:
				sb.WriteString(padCell("~"))
			case !cell.Occupied:
				sb.WriteString(padCell("."))
			case cell.Owner == v.Player:
				sb.WriteString(padCell(cell.Rank.Abbrev()))
			case cell.Known:
				sb.WriteString(padCell(strings.ToLower(cell.Rank.Abbrev())))
			default:
				sb.WriteString(padCell("?"))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func padCell(s string) string {
	for len(s) < 3 {
		s = " " + s
	}
	return s + " "
}

