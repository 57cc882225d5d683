package game

// Side identifies one of the two combatants.
type Side int

const (
	SidePlayer Side = iota
	SideAlien
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAlien:
		return "alien"
	default:
		return "unknown"
	}
}

// Label is the capitalised name used on screen ("Player Wins!").
func (s Side) Label() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideAlien:
		return "Alien"
	default:
		return "Nobody"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideAlien
	}
	return SidePlayer
}

// Tier is an attack strength.
type Tier int

const (
	TierBasic Tier = iota + 1
	TierSpread
	TierSpeed
)

// tierOrder is the firing priority: only the first eligible tier fires.
var tierOrder = [...]Tier{TierBasic, TierSpread, TierSpeed}

func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierSpread:
		return "spread"
	case TierSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// tierParams bundles the per-tier attack profile.
type tierParams struct {
	cost     int       // gauge points spent per cast
	unlock   int       // gauge points required to cast
	minScore int       // own score required to cast
	speed    float64   // projectile speed magnitude
	drifts   []float64 // horizontal velocity per spawned projectile
}

var tierTable = map[Tier]tierParams{
	TierBasic:  {cost: 2, unlock: 2, minScore: 0, speed: baseProjectileSpeed, drifts: []float64{0}},
	TierSpread: {cost: 6, unlock: 6, minScore: 2, speed: baseProjectileSpeed, drifts: []float64{-1, 0, 1}},
	TierSpeed:  {cost: 8, unlock: 8, minScore: 4, speed: speedProjectileSpeed, drifts: []float64{0}},
}

// Cost returns the gauge points a cast of t spends.
func (t Tier) Cost() int { return tierTable[t].cost }

// MinScore returns the own score needed before t unlocks.
func (t Tier) MinScore() int { return tierTable[t].minScore }

// Volley returns how many projectiles one cast of t spawns.
func (t Tier) Volley() int { return len(tierTable[t].drifts) }
