package game

import (
	"fmt"
	"time"
)

// Controller produces one side's keys for the coming frame.
type Controller func(ts *TestSim) SideInput

// TestSim is a headless match harness used by tests and the headless report.
// It mirrors the screen's Update loop but has no Ebiten dependency: match
// time advances by exactly one FrameDuration per frame.
type TestSim struct {
	Match  *Match
	SimLog *SimLog
	Now    time.Duration

	matchOpts   []MatchOption
	controllers [2]Controller
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra   simOptionKind = iota // match options, verbose, applied first
	simOptControl                      // controllers, applied after the match exists
	simOptSetup                        // state tweaks, applied last
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithMatch forwards options to NewMatch.
func WithMatch(opts ...MatchOption) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.matchOpts = append(ts.matchOpts, opts...)
	}}
}

// WithVerbose enables per-frame verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithController drives side with fn.
func WithController(side Side, fn Controller) SimOption {
	return SimOption{simOptControl, func(ts *TestSim) {
		ts.controllers[side] = fn
	}}
}

// WithHeld holds the same keys for side on every frame.
func WithHeld(side Side, in SideInput) SimOption {
	return WithController(side, func(*TestSim) SideInput { return in })
}

// WithBot hands side to a CPU Bot.
func WithBot(side Side) SimOption {
	return SimOption{simOptControl, func(ts *TestSim) {
		b := NewBot(side)
		ts.controllers[side] = func(ts *TestSim) SideInput { return b.Decide(ts.Match) }
	}}
}

// WithSetup runs fn against the freshly built match.
func WithSetup(fn func(m *Match)) SimOption {
	return SimOption{simOptSetup, func(ts *TestSim) {
		fn(ts.Match)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (match options, verbose)
//  2. Build the Match
//  3. Controllers
//  4. Setup hooks
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog:    NewSimLog(false),
		matchOpts: []MatchOption{WithSeed(1)},
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.Match = NewMatch(ts.matchOpts...)
	for _, kind := range []simOptionKind{simOptControl, simOptSetup} {
		for _, o := range opts {
			if o.kind == kind {
				o.fn(ts)
			}
		}
	}
	return ts
}

// RunFrames advances the match n frames, logging events to SimLog.
func (ts *TestSim) RunFrames(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
	}
}

// RunUntil advances the match up to maxFrames, stopping early if predicate
// returns true. Returns the frame at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		ts.Step()
		if predicate(ts) {
			return ts.Match.Frame()
		}
	}
	return -1
}

// Step runs one frame with the controllers' input and returns its events.
func (ts *TestSim) Step() []Event {
	var in FrameInput
	if c := ts.controllers[SidePlayer]; c != nil {
		in.Player = c(ts)
	}
	if c := ts.controllers[SideAlien]; c != nil {
		in.Alien = c(ts)
	}
	return ts.StepInput(in)
}

// StepInput runs one frame with explicit input.
func (ts *TestSim) StepInput(in FrameInput) []Event {
	ts.Now += FrameDuration
	frame := ts.Match.Frame()
	prevGauge := [2]int{ts.Match.Player.Gauge.Value(), ts.Match.Alien.Gauge.Value()}

	events := ts.Match.Step(in, ts.Now)
	for _, e := range events {
		ts.SimLog.AddEvent(e)
	}

	for _, side := range []Side{SidePlayer, SideAlien} {
		c := ts.Match.Combatant(side)
		label := side.String()
		if g := c.Gauge.Value(); g > prevGauge[side] {
			ts.SimLog.AddVerbose(frame, label, "gauge", "refill",
				fmt.Sprintf("%d → %d", prevGauge[side], g), float64(g))
		}
		ts.SimLog.AddVerbose(frame, label, "move", "position",
			fmt.Sprintf("(%.1f,%.1f)", c.Rect.X, c.Rect.Y), c.Rect.X)
	}
	return events
}

// SimSnapshot is a lightweight copy of the match state at a frame.
type SimSnapshot struct {
	Frame   int
	Now     time.Duration
	Sides   [2]SideSnapshot
	Items   int
	Outcome MatchOutcome
}

// SideSnapshot is one combatant's state at a frame.
type SideSnapshot struct {
	X, Y   float64
	Facing int
	Speed  float64
	Gauge  int
	Score  int
	Live   int
}

// Snapshot returns the current state of the match.
func (ts *TestSim) Snapshot() SimSnapshot {
	m := ts.Match
	snap := SimSnapshot{Frame: m.Frame(), Now: ts.Now, Outcome: m.Outcome()}
	for _, side := range []Side{SidePlayer, SideAlien} {
		c := m.Combatant(side)
		snap.Sides[side] = SideSnapshot{
			X:      c.Rect.X,
			Y:      c.Rect.Y,
			Facing: c.Facing,
			Speed:  c.Speed,
			Gauge:  c.Gauge.Value(),
			Score:  m.Score(side),
			Live:   m.Projectiles(side).Len(),
		}
	}
	for _, it := range m.Items {
		if it.Spawned() {
			snap.Items++
		}
	}
	return snap
}
