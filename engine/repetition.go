package engine

import "stratego/game"

// RepetitionDetector watches applied moves for stalling. Two signals:
// one piece shuttling between the same two cells for a configured number
// of full cycles on a player's consecutive own turns, and the whole
// position (board plus side to move) recurring a configured number of
// times inside a bounded window. Both players are watched symmetrically.
type RepetitionDetector struct {
	shuttleThreshold  int
	positionThreshold int
	window            int

	lastMove map[game.PlayerID]game.Move
	streak   map[game.PlayerID]int

	positionCounts map[game.StateHash]int
	positionOrder  []game.StateHash
}

func NewRepetitionDetector(rules *game.Rules) *RepetitionDetector {
	return &RepetitionDetector{
		shuttleThreshold:  rules.ShuttleThreshold,
		positionThreshold: rules.PositionThreshold,
		window:            rules.HistoryWindow,
		lastMove:          make(map[game.PlayerID]game.Move),
		streak:            make(map[game.PlayerID]int),
		positionCounts:    make(map[game.StateHash]int),
	}
}

// Observe feeds one applied move and the resulting position hash into the
// detector. It reports whether a repetition has been signaled.
func (d *RepetitionDetector) Observe(m game.Move, hash game.StateHash) bool {
	return d.observeShuttle(m) || d.observePosition(hash)
}

// observeShuttle counts consecutive own-turn moves confined to one pair of
// cells. A streak of 2*threshold moves means threshold full cycles.
func (d *RepetitionDetector) observeShuttle(m game.Move) bool {
	prev, seen := d.lastMove[m.Player]
	if seen && m.Reverses(prev) {
		d.streak[m.Player]++
	} else {
		d.streak[m.Player] = 1
	}
	d.lastMove[m.Player] = m
	return d.streak[m.Player] >= 2*d.shuttleThreshold
}

func (d *RepetitionDetector) observePosition(hash game.StateHash) bool {
	d.positionCounts[hash]++
	d.positionOrder = append(d.positionOrder, hash)
	if d.window > 0 && len(d.positionOrder) > d.window {
		oldest := d.positionOrder[0]
		d.positionOrder = d.positionOrder[1:]
		d.positionCounts[oldest]--
		if d.positionCounts[oldest] == 0 {
			delete(d.positionCounts, oldest)
		}
	}
	return d.positionCounts[hash] >= d.positionThreshold
}
