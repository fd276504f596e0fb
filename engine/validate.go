package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned by ValidateState when a RunState violates one
// of SPEC_FULL §3's invariants. Decide itself never returns it: Decide
// calls Sanitize first and proceeds on the clamped state (SPEC_FULL §7
// permits this, provided it is documented — it is documented here).
var ErrInvalidState = errors.New("engine: invalid state")

// ErrNoLegalAction is returned by Decide when s.LootPhase is true but
// s.LootOptions is empty (SPEC_FULL §7).
var ErrNoLegalAction = errors.New("engine: no legal action")

// ValidateState checks s against SPEC_FULL §3's invariants without
// mutating it, returning ErrInvalidState (wrapped with the first violation
// found) if any fail. Decide does not call this; it calls Sanitize
// instead. ValidateState is for hosts that want to reject malformed
// snapshots outright rather than have the engine silently repair them.
func ValidateState(s *RunState) error {
	if err := validateFighter("player", &s.Player); err != nil {
		return err
	}
	for i := range s.Enemies {
		if err := validateFighter(fmt.Sprintf("enemies[%d]", i), &s.Enemies[i]); err != nil {
			return err
		}
	}
	if s.LootPhase && len(s.LootOptions) == 0 {
		return fmt.Errorf("%w: loot phase with no loot options", ErrInvalidState)
	}
	return nil
}

func validateFighter(name string, f *Fighter) error {
	if f.Health.Current < 0 || f.Health.Current > f.Health.Max {
		return fmt.Errorf("%w: %s.health.current=%d out of [0,%d]", ErrInvalidState, name, f.Health.Current, f.Health.Max)
	}
	if f.Armor.Current < 0 || f.Armor.Current > f.Armor.Max {
		return fmt.Errorf("%w: %s.armor.current=%d out of [0,%d]", ErrInvalidState, name, f.Armor.Current, f.Armor.Max)
	}
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		c := f.Move(m).Charges
		if c < -1 || c > 3 {
			return fmt.Errorf("%w: %s.%s.charges=%d out of [-1,3]", ErrInvalidState, name, m, c)
		}
	}
	return nil
}

// Sanitize clamps s in place to satisfy SPEC_FULL §3's invariants: health
// and armor current values into [0, max], charges into [-1, 3], negative
// max pools and negative atk/def up to 0, and a negative CurrentEnemyIndex
// up to 0. It leaves the health, armor and charge fields of a state that
// satisfies ValidateState unchanged; ValidateState does not check atk/def
// or CurrentEnemyIndex, so a state it accepts can still be changed there.
func Sanitize(s *RunState) {
	sanitizeFighter(&s.Player)
	for i := range s.Enemies {
		sanitizeFighter(&s.Enemies[i])
	}
	if s.CurrentEnemyIndex < 0 {
		s.CurrentEnemyIndex = 0
	}
}

func sanitizeFighter(f *Fighter) {
	if f.Health.Max < 0 {
		f.Health.Max = 0
	}
	f.Health.Current = clampInt(f.Health.Current, 0, f.Health.Max)
	if f.Armor.Max < 0 {
		f.Armor.Max = 0
	}
	f.Armor.Current = clampInt(f.Armor.Current, 0, f.Armor.Max)

	for i := range f.Moves {
		if f.Moves[i].Atk < 0 {
			f.Moves[i].Atk = 0
		}
		if f.Moves[i].Def < 0 {
			f.Moves[i].Def = 0
		}
		f.Moves[i].Charges = clampInt(f.Moves[i].Charges, -1, 3)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
