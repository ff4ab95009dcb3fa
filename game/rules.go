package game

import "fmt"

// Named defaults for every tunable the engine recognizes. The repetition
// thresholds are deliberately exported constants rather than buried
// heuristics.
const (
	DefaultBoardSize            = 6
	MinBoardSize                = 4
	MaxBoardSize                = 10
	DefaultTurnLimit            = 200
	DefaultInvalidMoveThreshold = 3

	// DefaultShuttleThreshold is the number of full back-and-forth cycles
	// by one piece between the same two cells, on consecutive own turns,
	// that counts as stalling.
	DefaultShuttleThreshold = 3

	// DefaultPositionThreshold is the number of times an identical
	// position (board plus side to move) may recur before the match is
	// declared drawn.
	DefaultPositionThreshold = 3

	// DefaultHistoryWindow bounds the move history kept on MatchState and
	// scanned by the repetition detector.
	DefaultHistoryWindow = 20
)

// Rules carries every configuration option the match engine recognizes.
type Rules struct {
	BoardSize            int
	TurnLimit            int
	InvalidMoveThreshold int
	ShuttleThreshold     int
	PositionThreshold    int
	HistoryWindow        int

	// ConsumeTurnOnInvalid burns a turn from the shared budget on every
	// rejected action. The conservative default bounds worst-case match
	// length even against an agent that never produces a legal move.
	ConsumeTurnOnInvalid bool

	// ScoutRevealOnMultiStep reveals a scout's rank whenever it moves more
	// than one cell. Off by default; combat is then the only reveal.
	ScoutRevealOnMultiStep bool
}

type Option func(*Rules)

func WithBoardSize(size int) Option {
	return func(r *Rules) {
		if size > 0 {
			r.BoardSize = size
		}
	}
}

func WithTurnLimit(limit int) Option {
	return func(r *Rules) {
		if limit > 0 {
			r.TurnLimit = limit
		}
	}
}

func WithInvalidMoveThreshold(threshold int) Option {
	return func(r *Rules) {
		if threshold > 0 {
			r.InvalidMoveThreshold = threshold
		}
	}
}

func WithRepetitionThresholds(shuttle, position int) Option {
	return func(r *Rules) {
		if shuttle > 0 {
			r.ShuttleThreshold = shuttle
		}
		if position > 0 {
			r.PositionThreshold = position
		}
	}
}

func WithHistoryWindow(window int) Option {
	return func(r *Rules) {
		if window > 0 {
			r.HistoryWindow = window
		}
	}
}

func WithTurnConsumedOnInvalid(consume bool) Option {
	return func(r *Rules) { r.ConsumeTurnOnInvalid = consume }
}

func WithScoutRevealOnMultiStep(reveal bool) Option {
	return func(r *Rules) { r.ScoutRevealOnMultiStep = reveal }
}

// NewStandardRules returns the reference configuration, adjusted by any
// options.
func NewStandardRules(options ...Option) *Rules {
	r := &Rules{
		BoardSize:            DefaultBoardSize,
		TurnLimit:            DefaultTurnLimit,
		InvalidMoveThreshold: DefaultInvalidMoveThreshold,
		ShuttleThreshold:     DefaultShuttleThreshold,
		PositionThreshold:    DefaultPositionThreshold,
		HistoryWindow:        DefaultHistoryWindow,
		ConsumeTurnOnInvalid: true,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Validate rejects configurations the engine cannot run.
func (r *Rules) Validate() error {
	if r.BoardSize < MinBoardSize || r.BoardSize > MaxBoardSize {
		return fmt.Errorf("board size %d outside [%d, %d]", r.BoardSize, MinBoardSize, MaxBoardSize)
	}
	if r.TurnLimit <= 0 {
		return fmt.Errorf("turn limit must be positive, got %d", r.TurnLimit)
	}
	if r.InvalidMoveThreshold <= 0 {
		return fmt.Errorf("invalid move threshold must be positive, got %d", r.InvalidMoveThreshold)
	}
	if r.HistoryWindow < 2*r.ShuttleThreshold {
		return fmt.Errorf("history window %d too small for shuttle threshold %d", r.HistoryWindow, r.ShuttleThreshold)
	}
	return nil
}

// SetupRows is how many home rows each player fills at the given board
// size.
func SetupRows(size int) int {
	switch {
	case size >= 10:
		return 4
	case size == 9:
		return 3
	default:
		return 2
	}
}

// HomeRows returns the inclusive row range the player may place into.
func HomeRows(size int, player PlayerID) (first, last int) {
	rows := SetupRows(size)
	if player == Player1 {
		return 0, rows - 1
	}
	return size - rows, size - 1
}
