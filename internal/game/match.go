package game

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Match owns all state of one Player-versus-Alien round. Every mutation
// happens inside Step.
type Match struct {
	Player *Combatant
	Alien  *Combatant
	Shots  *ProjectileSet // player projectiles
	Bombs  *ProjectileSet // alien projectiles
	Items  []*Item

	Explosions []*Explosion

	PlayerScore int
	AlienScore  int

	bounds  Rect
	frame   int
	started bool
	outcome MatchOutcome

	rng           *rand.Rand
	log           zerolog.Logger
	itemInterval  time.Duration
	itemReroll    bool
	lastItemSpawn time.Duration

	stats        [2]SideStats
	itemsSpawned int
	itemsExpired int
	events       []Event
}

// MatchOption configures a Match at construction.
type MatchOption func(*Match)

// WithSeed seeds the item RNG for reproducible matches.
func WithSeed(seed int64) MatchOption {
	return func(m *Match) {
		m.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	}
}

// WithLogger routes match logs to l.
func WithLogger(l zerolog.Logger) MatchOption {
	return func(m *Match) { m.log = l }
}

// WithItemInterval fixes the item spawn interval instead of drawing it.
func WithItemInterval(d time.Duration) MatchOption {
	return func(m *Match) { m.itemInterval = d }
}

// WithItemIntervalReroll draws a new spawn interval after every spawn.
func WithItemIntervalReroll(on bool) MatchOption {
	return func(m *Match) { m.itemReroll = on }
}

// NewMatch sets up a fresh match at match time zero.
func NewMatch(opts ...MatchOption) *Match {
	m := &Match{
		Player: NewPlayer(0),
		Alien:  NewAlien(0),
		Shots:  NewProjectileSet(MaxShots),
		Bombs:  NewProjectileSet(MaxBombs),
		bounds: Bounds(),
		log:    zerolog.Nop(),
	}
	for i := 0; i < MaxItemsOnScreen-1; i++ {
		m.Items = append(m.Items, NewItem())
	}
	for _, o := range opts {
		o(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay randomness
	}
	if m.itemInterval <= 0 {
		m.itemInterval = m.drawItemInterval()
	}
	return m
}

func (m *Match) drawItemInterval() time.Duration {
	span := int64(itemSpawnIntervalMax - itemSpawnIntervalMin)
	return itemSpawnIntervalMin + time.Duration(m.rng.Int63n(span+1))
}

// Frame returns the number of frames stepped so far.
func (m *Match) Frame() int { return m.frame }

// Over reports whether a side has won.
func (m *Match) Over() bool { return m.outcome != OutcomeUndecided }

// Outcome returns the result so far.
func (m *Match) Outcome() MatchOutcome { return m.outcome }

// ItemInterval returns the current item spawn interval.
func (m *Match) ItemInterval() time.Duration { return m.itemInterval }

// Combatant returns the combatant of side.
func (m *Match) Combatant(side Side) *Combatant {
	if side == SideAlien {
		return m.Alien
	}
	return m.Player
}

// Projectiles returns the projectile set fired by side.
func (m *Match) Projectiles(side Side) *ProjectileSet {
	if side == SideAlien {
		return m.Bombs
	}
	return m.Shots
}

// Score returns the score of side.
func (m *Match) Score(side Side) int {
	if side == SideAlien {
		return m.AlienScore
	}
	return m.PlayerScore
}

func (m *Match) addScore(side Side) {
	if side == SideAlien {
		m.AlienScore++
	} else {
		m.PlayerScore++
	}
}

// Step advances the match by one frame at match time now and returns what
// happened. Once the match is over only explosions keep animating.
func (m *Match) Step(in FrameInput, now time.Duration) []Event {
	m.events = nil
	m.ageExplosions()
	if m.Over() {
		return nil
	}
	if !m.started {
		m.started = true
		m.emit(Event{Kind: EventMatchStart})
		m.log.Debug().Dur("item_interval", m.itemInterval).Msg("match start")
	}

	for _, c := range []*Combatant{m.Player, m.Alien} {
		c.Move(in.For(c.Side).Direction(), m.bounds)
		c.Gauge.Tick(now)
	}

	m.resolveFire(m.Player, in.Player)
	m.resolveFire(m.Alien, in.Alien)

	m.Shots.Update(m.bounds)
	m.Bombs.Update(m.bounds)

	// Alien first: a frame where both sides are hit goes to the Player.
	if m.resolveHit(m.Alien, m.Shots) || m.resolveHit(m.Player, m.Bombs) {
		m.frame++
		return m.events
	}

	m.updateItems(now)
	m.frame++
	return m.events
}

func (m *Match) emit(e Event) {
	e.Frame = m.frame
	m.events = append(m.events, e)
}

// resolveFire casts the first eligible tier whose key is held, then records
// the basic fire key as the reload state for the next frame.
func (m *Match) resolveFire(c *Combatant, in SideInput) {
	set := m.Projectiles(c.Side)
	score := m.Score(c.Side)
	for _, t := range tierOrder {
		if !in.Pressed(t) || c.Reloading || set.Full() ||
			score < t.MinScore() || !c.Gauge.CanFire(t) {
			continue
		}
		x, y := c.GunPos()
		params := tierTable[t]
		spawned := 0
		for _, dx := range params.drifts {
			if set.Add(newProjectile(c.Side, t, x, y, dx)) {
				spawned++
			}
		}
		c.Gauge.Spend(params.cost)

		st := &m.stats[c.Side]
		st.Casts[t]++
		st.Fired += spawned
		st.Dropped += len(params.drifts) - spawned

		m.emit(Event{Kind: EventFire, Side: c.Side, Tier: t, Count: spawned, X: x, Y: y})
		m.log.Debug().
			Int("frame", m.frame).
			Stringer("side", c.Side).
			Stringer("tier", t).
			Int("spawned", spawned).
			Int("gauge", c.Gauge.Value()).
			Msg("cast")
		break
	}
	c.Reloading = in.Fire
}

// resolveHit checks target against the opposing projectiles. A hit destroys
// the colliding projectiles and the target and ends the match.
func (m *Match) resolveHit(target *Combatant, incoming *ProjectileSet) bool {
	hits := incoming.Collide(target.Rect, target.mask())
	if len(hits) == 0 {
		return false
	}
	winner := target.Side.Opponent()
	target.alive = false
	for _, p := range hits {
		m.Explosions = append(m.Explosions, newExplosion(p.Rect))
	}
	m.Explosions = append(m.Explosions, newExplosion(target.Rect))
	m.outcome = outcomeFor(winner)

	cx, cy := target.Rect.CenterX(), target.Rect.CenterY()
	m.emit(Event{Kind: EventHit, Side: winner, Count: len(hits), X: cx, Y: cy})
	m.emit(Event{Kind: EventWin, Side: winner, X: cx, Y: cy})
	m.log.Info().
		Int("frame", m.frame).
		Stringer("winner", winner).
		Int("player_score", m.PlayerScore).
		Int("alien_score", m.AlienScore).
		Msg("match over")
	return true
}

func (m *Match) updateItems(now time.Duration) {
	for _, it := range m.Items {
		if it.Update(m.bounds) {
			m.itemsExpired++
			m.emit(Event{Kind: EventItemExpired})
		}
	}

	m.maybeSpawnItem(now)

	for _, it := range m.Items {
		if !it.Spawned() {
			continue
		}
		x, y := it.Rect.CenterX(), it.Rect.CenterY()
		// Bombs are checked first; a hit resets the item so it cannot score twice.
		switch {
		case it.Collide(m.Bombs) > 0:
			m.reward(m.Alien, x, y)
		case it.Collide(m.Shots) > 0:
			m.reward(m.Player, x, y)
		}
	}
}

func (m *Match) maybeSpawnItem(now time.Duration) {
	spawned := 0
	var idle *Item
	for _, it := range m.Items {
		if it.Spawned() {
			spawned++
		} else if idle == nil {
			idle = it
		}
	}
	if idle == nil || spawned >= MaxItemsOnScreen-1 {
		return
	}
	if now-m.lastItemSpawn <= m.itemInterval {
		return
	}
	idle.Spawn(m.rng, m.bounds)
	m.lastItemSpawn = now
	m.itemsSpawned++
	if m.itemReroll {
		m.itemInterval = m.drawItemInterval()
	}
	m.emit(Event{Kind: EventItemSpawn, X: idle.Rect.X, Y: idle.Rect.Y})
	m.log.Debug().
		Int("frame", m.frame).
		Float64("x", idle.Rect.X).
		Float64("y", idle.Rect.Y).
		Float64("speed", idle.Speed()).
		Msg("item spawned")
}

func (m *Match) reward(c *Combatant, x, y float64) {
	m.addScore(c.Side)
	c.collect()
	m.stats[c.Side].Pickups++
	m.emit(Event{Kind: EventItemCollected, Side: c.Side, X: x, Y: y})
	m.log.Debug().
		Int("frame", m.frame).
		Stringer("side", c.Side).
		Int("score", m.Score(c.Side)).
		Float64("speed", c.Speed).
		Msg("item collected")
}

func (m *Match) ageExplosions() {
	kept := m.Explosions[:0]
	for _, e := range m.Explosions {
		e.Update()
		if !e.Done() {
			kept = append(kept, e)
		}
	}
	m.Explosions = kept
}
