package game

// SideInput is one side's key state for a frame.
type SideInput struct {
	Left      bool
	Right     bool
	Fire      bool
	Spread    bool
	SpeedFire bool
}

// Direction folds the movement keys into -1, 0 or +1.
func (in SideInput) Direction() int {
	d := 0
	if in.Right {
		d++
	}
	if in.Left {
		d--
	}
	return d
}

// Pressed reports whether the key for tier t is held.
func (in SideInput) Pressed(t Tier) bool {
	switch t {
	case TierBasic:
		return in.Fire
	case TierSpread:
		return in.Spread
	case TierSpeed:
		return in.SpeedFire
	default:
		return false
	}
}

// FrameInput is the key snapshot the match consumes each frame.
type FrameInput struct {
	Player SideInput
	Alien  SideInput
}

// For returns the input of one side.
func (in FrameInput) For(side Side) SideInput {
	if side == SideAlien {
		return in.Alien
	}
	return in.Player
}
