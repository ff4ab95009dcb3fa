package game

// CombatResult is the outcome of an attacker entering a defended cell.
type CombatResult int

const (
	AttackerWins CombatResult = iota
	DefenderWins
	MutualLoss
	FlagCaptured
)

func (r CombatResult) String() string {
	switch r {
	case AttackerWins:
		return "attacker_wins"
	case DefenderWins:
		return "defender_wins"
	case MutualLoss:
		return "mutual_loss"
	case FlagCaptured:
		return "flag_captured"
	default:
		return "unknown"
	}
}

// Combat records one resolved battle. Both ranks are public afterwards:
// combat always produces information, win or lose.
type Combat struct {
	Attacker Rank
	Defender Rank
	Result   CombatResult
}

// ResolveCombat applies the rank comparison table. The special cases take
// precedence over numeric order:
//   - the Flag falls to any attacker and ends the match,
//   - a Bomb destroys every attacker except a Miner,
//   - a Spy defeats the Marshal only as the attacker.
func ResolveCombat(attacker, defender Rank) CombatResult {
	switch {
	case defender == Flag:
		return FlagCaptured
	case defender == Bomb:
		if attacker == Miner {
			return AttackerWins
		}
		return DefenderWins
	case attacker == Spy && defender == Marshal:
		return AttackerWins
	case attacker == defender:
		return MutualLoss
	case attacker > defender:
		return AttackerWins
	default:
		return DefenderWins
	}
}
