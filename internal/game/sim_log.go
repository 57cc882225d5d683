package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless match.
type SimLogEntry struct {
	Frame    int
	Side     string  // "player", "alien", or "--" for match-wide events
	Category string  // fire, item, match, gauge, move
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] alien  fire     spread        x3 at (320,24)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[F=%03d] %-6s %-8s %-13s %s",
		e.Frame, e.Side, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless match.
// Unlike screen.EventFeed (a UI ring buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-frame position and gauge
// entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(frame int, side, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Frame:    frame,
		Side:     side,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(frame int, side, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(frame, side, category, key, value, numVal)
}

// AddEvent records a match event under its category.
func (sl *SimLog) AddEvent(e Event) {
	side := e.Side.String()
	switch e.Kind {
	case EventFire:
		sl.Add(e.Frame, side, "fire", e.Tier.String(),
			fmt.Sprintf("x%d at (%.0f,%.0f)", e.Count, e.X, e.Y), float64(e.Count))
	case EventItemSpawn:
		sl.Add(e.Frame, "--", "item", "spawn", fmt.Sprintf("(%.0f,%.0f)", e.X, e.Y), e.Y)
	case EventItemExpired:
		sl.Add(e.Frame, "--", "item", "expired", "left the field", 0)
	case EventItemCollected:
		sl.Add(e.Frame, side, "item", "collected", fmt.Sprintf("at (%.0f,%.0f)", e.X, e.Y), 1)
	case EventHit:
		sl.Add(e.Frame, side, "match", "hit", fmt.Sprintf("%s hit by %d", e.Side.Opponent(), e.Count), float64(e.Count))
	case EventWin:
		sl.Add(e.Frame, side, "match", "win", e.Side.Label()+" Wins!", 0)
	case EventMatchStart:
		sl.Add(e.Frame, "--", "match", "start", "", 0)
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterSide returns entries for one side label.
func (sl *SimLog) FilterSide(side Side) []SimLogEntry {
	var out []SimLogEntry
	label := side.String()
	for _, e := range sl.entries {
		if e.Side == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterFrameRange returns entries within [fromFrame, toFrame] inclusive.
func (sl *SimLog) FilterFrameRange(fromFrame, toFrame int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Frame >= fromFrame && e.Frame <= toFrame {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a frame range.
func (sl *SimLog) FormatRange(fromFrame, toFrame int) string {
	var sb strings.Builder
	for _, e := range sl.FilterFrameRange(fromFrame, toFrame) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the match state.
func (sl *SimLog) Summary(m *Match) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at F=%03d ---\n", m.Frame())
	for _, side := range []Side{SidePlayer, SideAlien} {
		c := m.Combatant(side)
		fmt.Fprintf(&sb, "%s: score=%d gauge=%d/%d speed=%.1f x=%.0f live=%d\n",
			side.Label(), m.Score(side), c.Gauge.Value(), c.Gauge.Capacity(),
			c.Speed, c.Rect.X, m.Projectiles(side).Len())
	}
	spawned := 0
	for _, it := range m.Items {
		if it.Spawned() {
			spawned++
		}
	}
	fmt.Fprintf(&sb, "Items spawned: %d  Outcome: %s\n", spawned, m.Outcome())
	return sb.String()
}
