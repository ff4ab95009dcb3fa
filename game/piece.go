package game

import "fmt"

// PlayerID identifies one of the two players. NoPlayer marks the absence of
// a player, e.g. the winner field of a drawn match.
type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (p PlayerID) String() string {
	if p == NoPlayer {
		return "None"
	}
	return fmt.Sprintf("Player%d", int(p))
}

// Rank is a piece's combat strength. The numeric values follow the classic
// ordering: higher beats lower, with Bomb and Flag outside normal movement
// and Spy/Miner carrying their special cases.
type Rank int

const (
	Flag       Rank = 0
	Spy        Rank = 1
	Scout      Rank = 2
	Miner      Rank = 3
	Sergeant   Rank = 4
	Lieutenant Rank = 5
	Captain    Rank = 6
	Major      Rank = 7
	Colonel    Rank = 8
	General    Rank = 9
	Marshal    Rank = 10
	Bomb       Rank = 11
)

// Movable reports whether pieces of this rank may move at all.
func (r Rank) Movable() bool {
	return r != Flag && r != Bomb
}

func (r Rank) String() string {
	names := map[Rank]string{
		Flag: "Flag", Spy: "Spy", Scout: "Scout", Miner: "Miner",
		Sergeant: "Sergeant", Lieutenant: "Lieutenant", Captain: "Captain",
		Major: "Major", Colonel: "Colonel", General: "General",
		Marshal: "Marshal", Bomb: "Bomb",
	}
	if name, ok := names[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Abbrev returns the two-letter board rendering of the rank.
func (r Rank) Abbrev() string {
	abbrevs := map[Rank]string{
		Flag: "FL", Spy: "SP", Scout: "SC", Miner: "MN",
		Sergeant: "SG", Lieutenant: "LT", Captain: "CP",
		Major: "MJ", Colonel: "CL", General: "GN",
		Marshal: "MS", Bomb: "BM",
	}
	if ab, ok := abbrevs[r]; ok {
		return ab
	}
	return "??"
}

// AllRanks lists every rank once, in numeric order.
func AllRanks() []Rank {
	return []Rank{Flag, Spy, Scout, Miner, Sergeant, Lieutenant, Captain,
		Major, Colonel, General, Marshal, Bomb}
}

// Piece is a single piece on the board. Rank is visible to the owner
// always, and to the opponent only once Revealed is set by combat (or the
// optional scout multi-step rule).
type Piece struct {
	Owner    PlayerID
	Rank     Rank
	Revealed bool
}
