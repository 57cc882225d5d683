package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Star-Shoot/internal/game"
)

const (
	feedMaxEntries = 40
	feedLineHeight = 14
	feedPanelWidth = 260
	feedHighlight  = 3 // newest entries drawn on a highlighted row
)

// EventFeed is a ring buffer of recent match events rendered as an overlay.
type EventFeed struct {
	entries []game.Event
	head    int
	count   int
}

// NewEventFeed creates an empty feed.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]game.Event, feedMaxEntries)}
}

// Add appends events, dropping the oldest when full.
func (f *EventFeed) Add(events ...game.Event) {
	for _, e := range events {
		f.entries[f.head] = e
		f.head = (f.head + 1) % feedMaxEntries
		if f.count < feedMaxEntries {
			f.count++
		}
	}
}

// Len returns how many events are held.
func (f *EventFeed) Len() int { return f.count }

// Recent returns events oldest first.
func (f *EventFeed) Recent() []game.Event {
	out := make([]game.Event, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+feedMaxEntries)%feedMaxEntries]
	}
	return out
}

func sideColor(s game.Side) color.RGBA {
	if s == game.SidePlayer {
		return color.RGBA{R: 80, G: 200, B: 255, A: 255}
	}
	return color.RGBA{R: 120, G: 230, B: 110, A: 255}
}

// Draw renders the feed along the right edge of screen.
func (f *EventFeed) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	panelX := float32(w - feedPanelWidth)

	vector.FillRect(screen, panelX, 0, feedPanelWidth, float32(h), color.RGBA{R: 8, G: 8, B: 16, A: 200}, false)
	vector.StrokeLine(screen, panelX, 0, panelX, float32(h), 1, color.RGBA{R: 60, G: 60, B: 100, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS  [F1] hide", int(panelX)+8, 2)

	entries := f.Recent()
	maxVisible := (h - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for i, e := range entries {
		if i >= len(entries)-feedHighlight {
			vector.FillRect(screen, panelX+2, float32(y), feedPanelWidth-4, feedLineHeight, color.RGBA{R: 30, G: 30, B: 60, A: 160}, false)
		}
		if e.Kind != game.EventItemSpawn && e.Kind != game.EventItemExpired {
			vector.FillRect(screen, panelX+5, float32(y+4), 3, 6, sideColor(e.Side), false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Frame, e), int(panelX)+12, y)
		y += feedLineHeight
	}
}
