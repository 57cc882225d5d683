// Package screen is the Ebiten frontend: it reads the keyboard, steps the
// match, plays sound cues and draws the field.
package screen

import (
	"context"
	"errors"
	"image/color"
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Star-Shoot/internal/config"
	"github.com/Garsondee/Star-Shoot/internal/game"
	"github.com/Garsondee/Star-Shoot/internal/telemetry"
)

const (
	hintFrames   = 4 * game.TicksPerSecond // control hints stay up this long
	reportEvents = 30
	starCount    = 90
)

var winHoldFrames = int(game.WinHold / game.FrameDuration)

// Options wires optional collaborators into a Game. Nil fields disable the
// matching feature.
type Options struct {
	Logger   zerolog.Logger
	Mixer    *Mixer
	Recorder *telemetry.Recorder
}

// Game implements ebiten.Game for one match.
type Game struct {
	cfg   config.Config
	log   zerolog.Logger
	match *game.Match
	keys  [2]Keymap
	bots  [2]*game.Bot

	mixer    *Mixer
	recorder *telemetry.Recorder
	feed     *EventFeed
	showFeed bool

	sprites    map[spriteKey]*ebiten.Image
	background *ebiten.Image

	now      time.Duration // match clock, advanced one frame per Update
	frames   int
	holdLeft int // frames the win banner has left; -1 while playing
}

type spriteKey struct {
	kind game.SpriteKind
	flip bool
}

// New builds a Game from cfg.
func New(cfg config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		log:      opts.Logger,
		mixer:    opts.Mixer,
		recorder: opts.Recorder,
		feed:     NewEventFeed(),
		sprites:  make(map[spriteKey]*ebiten.Image),
		holdLeft: -1,
	}

	var err error
	if g.keys[game.SidePlayer], err = NewKeymap(cfg.Keys.Player); err != nil {
		return nil, err
	}
	if g.keys[game.SideAlien], err = NewKeymap(cfg.Keys.Alien); err != nil {
		return nil, err
	}
	if cfg.Match.CPU.Player {
		g.bots[game.SidePlayer] = game.NewBot(game.SidePlayer)
	}
	if cfg.Match.CPU.Alien {
		g.bots[game.SideAlien] = game.NewBot(game.SideAlien)
	}

	g.match = game.NewMatch(MatchOptions(cfg.Match, g.log)...)
	g.background = newStarfield(cfg.Match.Seed)
	return g, nil
}

// MatchOptions translates match settings into game options.
func MatchOptions(mc config.MatchConfig, log zerolog.Logger) []game.MatchOption {
	opts := []game.MatchOption{game.WithLogger(log)}
	if mc.Seed != 0 {
		opts = append(opts, game.WithSeed(mc.Seed))
	}
	if mc.ItemIntervalMs > 0 {
		opts = append(opts, game.WithItemInterval(time.Duration(mc.ItemIntervalMs)*time.Millisecond))
	}
	if mc.RerollItemInterval {
		opts = append(opts, game.WithItemIntervalReroll(true))
	}
	return opts
}

// Match exposes the running match.
func (g *Game) Match() *game.Match { return g.match }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleToggles()

	if g.holdLeft == 0 {
		return ebiten.Termination
	}

	var in game.FrameInput
	if !g.match.Over() {
		in.Player = g.sideInput(game.SidePlayer)
		in.Alien = g.sideInput(game.SideAlien)
	}
	g.now += game.FrameDuration
	before := g.match.Frame()
	events := g.match.Step(in, g.now)
	g.frames++

	g.feed.Add(events...)
	if g.recorder != nil {
		ctx := context.Background()
		g.recorder.Record(ctx, events)
		if g.match.Frame() > before {
			g.recorder.Frame(ctx)
		}
	}
	if g.mixer != nil {
		for _, e := range events {
			g.mixer.Play(e.Cues())
		}
		g.mixer.Update()
	}

	switch {
	case g.holdLeft > 0:
		g.holdLeft--
	case g.match.Over():
		g.holdLeft = winHoldFrames
	}
	return nil
}

func (g *Game) sideInput(side game.Side) game.SideInput {
	if b := g.bots[side]; b != nil {
		return b.Decide(g.match)
	}
	return g.keys[side].Read(ebiten.IsKeyPressed)
}

func (g *Game) handleToggles() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showFeed = !g.showFeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		report := game.MatchReport(g.match, g.feed.Recent(), reportEvents)
		if err := clipboard.WriteAll(report); err != nil {
			g.log.Warn().Err(err).Msg("copying match report failed")
		} else {
			g.log.Info().Int("frame", g.match.Frame()).Msg("match report copied to clipboard")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.background, nil)

	for _, it := range g.match.Items {
		if it.Spawned() {
			g.drawSprite(screen, game.SpriteItem, false, it.Rect)
		}
	}
	for _, c := range []*game.Combatant{g.match.Player, g.match.Alien} {
		if !c.Alive() {
			continue
		}
		kind, flip := c.Sprite()
		g.drawSprite(screen, kind, flip, c.Rect)
	}
	for _, set := range []*game.ProjectileSet{g.match.Shots, g.match.Bombs} {
		for _, p := range set.All() {
			g.drawSprite(screen, p.Sprite(), false, p.Rect)
		}
	}
	for _, e := range g.match.Explosions {
		g.drawSprite(screen, game.SpriteExplosion, e.Flipped(), e.Rect)
	}

	g.drawHUD(screen)
	if winner, ok := g.match.Outcome().Winner(); ok {
		drawWinner(screen, winner)
	}
	if g.showFeed {
		g.feed.Draw(screen)
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, kind game.SpriteKind, flip bool, at game.Rect) {
	key := spriteKey{kind, flip}
	img, ok := g.sprites[key]
	if !ok {
		img = ebiten.NewImageFromImage(game.SpriteImage(kind, flip))
		g.sprites[key] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X, at.Y)
	screen.DrawImage(img, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return game.ScreenWidth, game.ScreenHeight
}

// Run opens the window and plays one match. A normal quit returns nil.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowSize(int(game.ScreenWidth*g.cfg.Window.Scale), int(game.ScreenHeight*g.cfg.Window.Scale))
	ebiten.SetFullscreen(g.cfg.Window.Fullscreen)
	ebiten.SetTPS(game.TicksPerSecond)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	r := game.DetermineMatchResult(g.match)
	g.log.Info().
		Stringer("outcome", r.Outcome).
		Int("frames", r.Frames).
		Int("player_score", r.PlayerScore).
		Int("alien_score", r.AlienScore).
		Str("detail", r.Description).
		Msg("match finished")
	return err
}

// newStarfield renders a fixed star background.
func newStarfield(seed int64) *ebiten.Image {
	img := ebiten.NewImage(game.ScreenWidth, game.ScreenHeight)
	img.Fill(color.RGBA{R: 4, G: 4, B: 18, A: 255})
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- decorative only
	for i := 0; i < starCount; i++ {
		x := float32(rng.Intn(game.ScreenWidth))
		y := float32(rng.Intn(game.ScreenHeight))
		v := uint8(90 + rng.Intn(160))
		size := float32(1 + rng.Intn(2))
		vector.FillRect(img, x, y, size, size, color.RGBA{R: v, G: v, B: v, A: 255}, false)
	}
	return img
}
