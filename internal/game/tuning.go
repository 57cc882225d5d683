package game

import "time"

// --- Playfield ---

const (
	ScreenWidth    = 640
	ScreenHeight   = 480
	TicksPerSecond = 40
	FrameDuration  = time.Second / TicksPerSecond
)

// --- Gauge ---

const (
	GaugeCapacity       = 10
	gaugeRefillInterval = 2000 * time.Millisecond
	itemGaugeBonus      = 1 // energy granted per item collected
)

// --- Combatants & projectiles ---

const (
	MaxShots = 10 // live player projectiles
	MaxBombs = 10 // live alien projectiles

	combatantBaseSpeed = 1.0
	itemSpeedBonus     = 0.3 // permanent speed gain per item collected
	gunOffset          = 0.0 // horizontal muzzle offset from the player's centre

	baseProjectileSpeed  = 3.0
	speedProjectileSpeed = 15.0
)

// --- Items ---

const (
	MaxItemsOnScreen = 4 // at most MaxItemsOnScreen-1 items are spawned at once

	itemSpeedMin         = 1.0
	itemSpeedMax         = 3.0
	itemSpawnYMin        = 200
	itemSpawnYMax        = 280
	itemSpawnIntervalMin = 5000 * time.Millisecond
	itemSpawnIntervalMax = 15000 * time.Millisecond
)

// --- Effects ---

const (
	explosionLife      = 12 // frames an explosion stays on screen
	explosionAnimCycle = 3  // frames per animation step

	// WinHold is how long the win screen stays up before the program exits.
	WinHold = 5 * time.Second
)
