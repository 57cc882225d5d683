package game

import "fmt"

// MatchOutcome is how a match ended, if it has.
type MatchOutcome int

const (
	OutcomeUndecided MatchOutcome = iota
	OutcomePlayerWins
	OutcomeAlienWins
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomePlayerWins:
		return "player_wins"
	case OutcomeAlienWins:
		return "alien_wins"
	case OutcomeUndecided:
		return "undecided"
	default:
		return "unknown"
	}
}

// Winner returns the winning side. ok is false while undecided.
func (o MatchOutcome) Winner() (side Side, ok bool) {
	switch o {
	case OutcomePlayerWins:
		return SidePlayer, true
	case OutcomeAlienWins:
		return SideAlien, true
	default:
		return SidePlayer, false
	}
}

func outcomeFor(winner Side) MatchOutcome {
	if winner == SideAlien {
		return OutcomeAlienWins
	}
	return OutcomePlayerWins
}

// SideStats counts what one side did during a match.
type SideStats struct {
	Casts     [TierSpeed + 1]int // indexed by Tier
	Fired     int                // projectiles actually spawned
	Dropped   int                // fan projectiles rejected by the cap
	Pickups   int
	SpeedGain float64 // speed gained from items
}

// CastsOf returns the number of casts of tier t.
func (s SideStats) CastsOf(t Tier) int {
	if t < TierBasic || t > TierSpeed {
		return 0
	}
	return s.Casts[t]
}

// TotalCasts sums casts over every tier.
func (s SideStats) TotalCasts() int {
	n := 0
	for _, t := range tierOrder {
		n += s.Casts[t]
	}
	return n
}

// MatchResult summarises a match for reports.
type MatchResult struct {
	Outcome     MatchOutcome
	Frames      int
	PlayerScore int
	AlienScore  int
	Player      SideStats
	Alien       SideStats
	ItemsSpawn  int
	ItemsLost   int
	Description string
}

// Stats returns the statistics of one side.
func (r MatchResult) Stats(side Side) SideStats {
	if side == SideAlien {
		return r.Alien
	}
	return r.Player
}

// DetermineMatchResult builds the summary of m as it stands.
func DetermineMatchResult(m *Match) MatchResult {
	r := MatchResult{
		Outcome:     m.outcome,
		Frames:      m.frame,
		PlayerScore: m.PlayerScore,
		AlienScore:  m.AlienScore,
		Player:      m.stats[SidePlayer],
		Alien:       m.stats[SideAlien],
		ItemsSpawn:  m.itemsSpawned,
		ItemsLost:   m.itemsExpired,
	}
	r.Player.SpeedGain = m.Player.Speed - combatantBaseSpeed
	r.Alien.SpeedGain = m.Alien.Speed - combatantBaseSpeed

	switch {
	case m.outcome != OutcomeUndecided:
		winner, _ := m.outcome.Winner()
		r.Description = fmt.Sprintf("%s_destroyed_frame_%d", winner.Opponent(), m.frame)
	case r.Player.TotalCasts() == 0 && r.Alien.TotalCasts() == 0:
		r.Description = "no_shots_fired"
	default:
		r.Description = "in_progress"
	}
	return r
}
