package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// generateLakes produces the impassable cells for a board size. A 6×6
// board gets the two-cell center pair; larger boards get two 2×2 clusters
// in the neutral zone. Lakes never reach into home rows, so sizes below 6
// end up with none.
func generateLakes(size int) []Coord {
	if size == 6 {
		mid := size / 2
		return []Coord{{Row: mid - 1, Col: mid}, {Row: mid, Col: mid - 1}}
	}

	setupRows := SetupRows(size)
	neutralStart := setupRows
	neutralEnd := size - setupRows - 1
	midRow := (neutralStart + neutralEnd) / 2
	midCol := size / 2
	delta := max(2, size/4)

	var lakes []Coord
	for _, row := range []int{midRow - 1, midRow} {
		for _, col := range []int{midCol - delta - 1, midCol - delta, midCol + delta, midCol + delta + 1} {
			c := Coord{Row: row, Col: col}
			if row < setupRows || row >= size-setupRows {
				continue
			}
			if col < 0 || col >= size {
				continue
			}
			lakes = append(lakes, c)
		}
	}
	return lakes
}

// trimPriority is the order in which ranks give up their slot on boards
// too small for one of each; fillerRanks pad the remaining home-row slots
// on larger boards.
var (
	trimPriority = []Rank{Spy, General, Colonel, Major, Captain}
	fillerRanks  = []Rank{Bomb, Scout, Miner, Sergeant}
)

// PieceCounts returns the per-player rank allotment for a board size:
// one of each rank, trimmed or padded to exactly fill the home rows.
func PieceCounts(size int) map[Rank]int {
	counts := make(map[Rank]int)
	for _, r := range AllRanks() {
		counts[r] = 1
	}
	total := len(counts)
	slots := size * SetupRows(size)

	for i := 0; total > slots; i++ {
		r := trimPriority[i%len(trimPriority)]
		if counts[r] > 0 {
			counts[r]--
			total--
		}
	}
	for i := 0; total < slots; i++ {
		counts[fillerRanks[i%len(fillerRanks)]]++
		total++
	}
	return counts
}

// PlaceRandom fills the player's home rows with a randomized but sane
// setup: Flag on the outermost row, Bombs shielding it where possible,
// Spy forward, Marshal and General on middle back columns, everything
// else shuffled.
func PlaceRandom(b *Board, player PlayerID, rng *rand.Rand) error {
	size := b.Size()
	first, last := HomeRows(size, player)
	setupRows := last - first + 1
	half := max(1, setupRows/2)

	var backRows, frontRows []int
	if player == Player1 {
		for row := first; row < first+half; row++ {
			backRows = append(backRows, row)
		}
		for row := first + half; row <= last; row++ {
			frontRows = append(frontRows, row)
		}
	} else {
		for row := last; row > last-half; row-- {
			backRows = append(backRows, row)
		}
		for row := last - half; row >= first; row-- {
			frontRows = append(frontRows, row)
		}
	}

	freeBack := freeCells(b, backRows)
	freeFront := freeCells(b, frontRows)
	rng.Shuffle(len(freeBack), func(i, j int) { freeBack[i], freeBack[j] = freeBack[j], freeBack[i] })
	rng.Shuffle(len(freeFront), func(i, j int) { freeFront[i], freeFront[j] = freeFront[j], freeFront[i] })

	counts := PieceCounts(size)
	place := func(rank Rank, c Coord) error {
		if err := b.Place(Piece{Owner: player, Rank: rank}, c); err != nil {
			return fmt.Errorf("place %s at %s: %w", rank, c, err)
		}
		freeBack = removeCoord(freeBack, c)
		freeFront = removeCoord(freeFront, c)
		return nil
	}

	// Flag on the outermost row.
	flagRow := first
	if player == Player2 {
		flagRow = last
	}
	var flagCandidates []Coord
	for col := 0; col < size; col++ {
		c := Coord{Row: flagRow, Col: col}
		if !b.IsLake(c) && b.PieceAt(c) == nil {
			flagCandidates = append(flagCandidates, c)
		}
	}
	if len(flagCandidates) == 0 {
		flagCandidates = freeBack
	}
	flagAt := flagCandidates[rng.Intn(len(flagCandidates))]
	if err := place(Flag, flagAt); err != nil {
		return err
	}
	counts[Flag]--

	// Bombs shield the flag first, then scatter.
	for _, c := range []Coord{
		{Row: flagAt.Row + 1, Col: flagAt.Col},
		{Row: flagAt.Row - 1, Col: flagAt.Col},
		{Row: flagAt.Row, Col: flagAt.Col + 1},
		{Row: flagAt.Row, Col: flagAt.Col - 1},
	} {
		if counts[Bomb] == 0 {
			break
		}
		if !b.InBounds(c) || b.IsLake(c) || b.PieceAt(c) != nil {
			continue
		}
		if !inRows(c.Row, backRows) && !inRows(c.Row, frontRows) {
			continue
		}
		if err := place(Bomb, c); err != nil {
			return err
		}
		counts[Bomb]--
	}
	for counts[Bomb] > 0 && len(freeBack)+len(freeFront) > 0 {
		var c Coord
		if len(freeBack) > 0 && (len(freeFront) == 0 || rng.Intn(2) == 0) {
			c = freeBack[len(freeBack)-1]
		} else {
			c = freeFront[len(freeFront)-1]
		}
		if err := place(Bomb, c); err != nil {
			return err
		}
		counts[Bomb]--
	}

	// Spy hides in the front.
	if counts[Spy] > 0 {
		var c Coord
		if len(freeFront) > 0 {
			c = freeFront[len(freeFront)-1]
		} else {
			c = freeBack[len(freeBack)-1]
		}
		if err := place(Spy, c); err != nil {
			return err
		}
		counts[Spy]--
	}

	// Marshal and General prefer defensible middle back columns.
	midCols := []int{size / 2}
	if size >= 6 {
		midCols = []int{size/2 - 1, size / 2, size/2 + 1}
	}
	for _, rank := range []Rank{Marshal, General} {
		if counts[rank] == 0 {
			continue
		}
		placed := false
		for _, row := range backRows {
			for _, col := range midCols {
				c := Coord{Row: row, Col: col}
				if containsCoord(freeBack, c) {
					if err := place(rank, c); err != nil {
						return err
					}
					counts[rank]--
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
	}

	// Everything else, shuffled over the remaining slots.
	var remaining []Rank
	for rank, count := range counts {
		for i := 0; i < count; i++ {
			remaining = append(remaining, rank)
		}
	}
	rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })

	slots := append(append([]Coord{}, freeFront...), freeBack...)
	if len(remaining) > len(slots) {
		return fmt.Errorf("placement overflow: %d pieces for %d slots", len(remaining), len(slots))
	}
	for i, rank := range remaining {
		if err := b.Place(Piece{Owner: player, Rank: rank}, slots[i]); err != nil {
			return fmt.Errorf("place %s at %s: %w", rank, slots[i], err)
		}
	}
	return nil
}

// NewRandomBoard builds a board with both players' armies placed
// randomly under the rules' board size.
func NewRandomBoard(rules *Rules, rng *rand.Rand) (*Board, error) {
	b := NewBoard(rules.BoardSize)
	for _, player := range []PlayerID{Player1, Player2} {
		if err := PlaceRandom(b, player, rng); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ValidatePlacement checks a provided setup for one player: every piece
// inside the home rows and the rank census matching the board's allotment
// exactly, one Flag included.
func ValidatePlacement(b *Board, player PlayerID) error {
	first, last := HomeRows(b.Size(), player)
	census := make(map[Rank]int)
	for _, c := range b.Pieces(player) {
		if c.Row < first || c.Row > last {
			return fmt.Errorf("piece at %s outside home rows %d-%d", c, first, last)
		}
		census[b.PieceAt(c).Rank]++
	}
	for rank, want := range PieceCounts(b.Size()) {
		if census[rank] != want {
			return fmt.Errorf("rank %s: placed %d, allotted %d", rank, census[rank], want)
		}
	}
	return nil
}

func freeCells(b *Board, rows []int) []Coord {
	var cells []Coord
	for _, row := range rows {
		for col := 0; col < b.Size(); col++ {
			c := Coord{Row: row, Col: col}
			if !b.IsLake(c) && b.PieceAt(c) == nil {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func removeCoord(cells []Coord, c Coord) []Coord {
	for i, cell := range cells {
		if cell == c {
			return append(cells[:i], cells[i+1:]...)
		}
	}
	return cells
}

func containsCoord(cells []Coord, c Coord) bool {
	for _, cell := range cells {
		if cell == c {
			return true
		}
	}
	return false
}

func inRows(row int, rows []int) bool {
	for _, r := range rows {
		if r == row {
			return true
		}
	}
	return false
}
