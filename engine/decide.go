package engine

import "math"

// ActionKind discriminates the shape Action's payload takes.
type ActionKind int

const (
	ActionMoveRock ActionKind = iota
	ActionMovePaper
	ActionMoveScissor
	ActionPickLoot
)

func (k ActionKind) String() string {
	switch k {
	case ActionMoveRock:
		return "move_rock"
	case ActionMovePaper:
		return "move_paper"
	case ActionMoveScissor:
		return "move_scissor"
	case ActionPickLoot:
		return "pick_loot"
	default:
		return "unknown"
	}
}

// Action is decide's return value (SPEC_FULL §6): one of MoveRock,
// MovePaper, MoveScissor, or PickLoot(i).
type Action struct {
	Kind ActionKind
	// LootIndex is meaningful only when Kind == ActionPickLoot.
	LootIndex int
}

func (a Action) String() string {
	if a.Kind == ActionPickLoot {
		return "pick_loot"
	}
	return a.Kind.String()
}

func actionForMove(m Move) Action {
	switch m {
	case Paper:
		return Action{Kind: ActionMovePaper}
	case Scissor:
		return Action{Kind: ActionMoveScissor}
	default:
		return Action{Kind: ActionMoveRock}
	}
}

// Decide is the engine's single decision entry point (SPEC_FULL §4.5): it
// inspects the loot-phase flag and dispatches to the loot valuator or the
// combat search accordingly. It uses DefaultWeights, DefaultSearchConfig
// and a NopLogger. Use DecideWith to override any of those.
func Decide(s *RunState) (Action, error) {
	return DecideWith(s, DefaultWeights, DefaultSearchConfig, NopLogger{})
}

// DecideWith is Decide parameterized on explicit weights, search
// configuration and a progress Logger.
//
// DecideWith never mutates s: it works from a sanitized clone (Sanitize,
// see validate.go), so a caller handing in a snapshot with an
// out-of-invariant field (negative health, charges outside {-1..3}, and so
// on) gets a decision computed against the clamped state rather than an
// error — this is the defensive-clamp option SPEC_FULL §7 permits,
// documented here as required. Callers that want strict rejection instead
// should call ValidateState themselves first.
func DecideWith(s *RunState, w Weights, cfg SearchConfig, log Logger) (Action, error) {
	if log == nil {
		log = NopLogger{}
	}
	state := s.Clone()
	Sanitize(&state)

	if state.LootPhase {
		log.BeginDecide("loot")
		if len(state.LootOptions) == 0 {
			return Action{}, ErrNoLegalAction
		}
		action, value := pickLoot(&state, w, cfg)
		log.EndDecide(action.String(), value)
		return action, nil
	}

	log.BeginDecide("combat")
	if state.Terminal() {
		// Empty enemy list, an out-of-range current_enemy_index, or a dead
		// player: the run is over. This is a valid terminal output, not an
		// error (SPEC_FULL §7) — decide returns the rock fallback.
		action := Action{Kind: ActionMoveRock}
		log.EndDecide(action.String(), EvaluateWith(&state, w))
		return action, nil
	}

	move, value := PickCombat(&state, cfg, w)
	action := actionForMove(move)
	log.EndDecide(action.String(), value)
	return action, nil
}

// pickLoot scores every offered loot option and returns the action picking
// the best one, ties broken by lowest index (SPEC_FULL §4.5, §5).
func pickLoot(s *RunState, w Weights, cfg SearchConfig) (Action, float64) {
	bestIndex := 0
	bestScore := math.Inf(-1)
	for i, opt := range s.LootOptions {
		score := ScoreLootWith(s, opt, w, cfg)
		if score > bestScore {
			bestScore = score
			bestIndex = i
		}
	}
	return Action{Kind: ActionPickLoot, LootIndex: bestIndex}, bestScore
}
