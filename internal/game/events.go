package game

import "fmt"

// EventKind classifies something that happened during a frame.
type EventKind int

const (
	EventMatchStart EventKind = iota
	EventFire
	EventItemSpawn
	EventItemExpired
	EventItemCollected
	EventHit
	EventWin
)

func (k EventKind) String() string {
	switch k {
	case EventMatchStart:
		return "match_start"
	case EventFire:
		return "fire"
	case EventItemSpawn:
		return "item_spawn"
	case EventItemExpired:
		return "item_expired"
	case EventItemCollected:
		return "item_collected"
	case EventHit:
		return "hit"
	case EventWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is one frame occurrence. Side is the acting side: the shooter, the
// collector, the winner.
type Event struct {
	Frame int
	Kind  EventKind
	Side  Side
	Tier  Tier // EventFire only
	Count int  // projectiles spawned or removed
	X, Y  float64
}

func (e Event) String() string {
	switch e.Kind {
	case EventFire:
		return fmt.Sprintf("%s fires %s x%d", e.Side, e.Tier, e.Count)
	case EventItemCollected:
		return fmt.Sprintf("%s collects item", e.Side)
	case EventItemSpawn:
		return fmt.Sprintf("item spawns at (%.0f,%.0f)", e.X, e.Y)
	case EventItemExpired:
		return "item leaves the field"
	case EventHit:
		return fmt.Sprintf("%s hit by %d", e.Side.Opponent(), e.Count)
	case EventWin:
		return fmt.Sprintf("%s wins", e.Side)
	case EventMatchStart:
		return "match start"
	default:
		return e.Kind.String()
	}
}

// Cue is an audio trigger.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueBeam
	CueBoom
	CueSpecialBomb
	CueExplosion
	CueItemPickup
	CueMusicLoop
	CueMusicStop
	cueCount
)

// CueCount is the number of distinct cues including CueNone.
const CueCount = int(cueCount)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueBeam:
		return "beam"
	case CueBoom:
		return "boom"
	case CueSpecialBomb:
		return "special-bomb"
	case CueExplosion:
		return "explosion"
	case CueItemPickup:
		return "item-pickup"
	case CueMusicLoop:
		return "music-loop"
	case CueMusicStop:
		return "music-stop"
	default:
		return "none"
	}
}

// Cues returns the audio triggers an event fires, in play order.
func (e Event) Cues() []Cue {
	switch e.Kind {
	case EventMatchStart:
		return []Cue{CueMusicLoop}
	case EventFire:
		return []Cue{fireCue(e.Side, e.Tier)}
	case EventItemCollected:
		return []Cue{CueItemPickup}
	case EventWin:
		return []Cue{CueExplosion, CueMusicStop}
	default:
		return nil
	}
}

func fireCue(side Side, tier Tier) Cue {
	switch {
	case side == SidePlayer && tier == TierSpeed:
		return CueBeam
	case side == SidePlayer:
		return CueShoot
	case tier == TierSpeed:
		return CueSpecialBomb
	default:
		return CueBoom
	}
}
