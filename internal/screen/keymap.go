package screen

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Star-Shoot/internal/config"
	"github.com/Garsondee/Star-Shoot/internal/game"
)

// KeyByName resolves an Ebiten key name such as "ArrowLeft" or "T".
// Matching ignores case.
func KeyByName(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Keymap is one side's resolved bindings.
type Keymap struct {
	Left, Right, Fire, Spread, Speed ebiten.Key
}

// NewKeymap resolves every binding in kb.
func NewKeymap(kb config.KeyBindings) (Keymap, error) {
	var km Keymap
	for _, b := range []struct {
		dst  *ebiten.Key
		name string
	}{
		{&km.Left, kb.Left},
		{&km.Right, kb.Right},
		{&km.Fire, kb.Fire},
		{&km.Spread, kb.Spread},
		{&km.Speed, kb.Speed},
	} {
		k, err := KeyByName(b.name)
		if err != nil {
			return Keymap{}, err
		}
		*b.dst = k
	}
	return km, nil
}

// Read samples held keys through pressed.
func (km Keymap) Read(pressed func(ebiten.Key) bool) game.SideInput {
	return game.SideInput{
		Left:      pressed(km.Left),
		Right:     pressed(km.Right),
		Fire:      pressed(km.Fire),
		Spread:    pressed(km.Spread),
		SpeedFire: pressed(km.Speed),
	}
}

// Label lists the bindings for the help line, e.g. "A/D move  T/R/E fire".
func (km Keymap) Label() string {
	return fmt.Sprintf("%s/%s move  %s/%s/%s fire",
		km.Left, km.Right, km.Fire, km.Spread, km.Speed)
}
