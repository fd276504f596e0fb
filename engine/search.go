package engine

import "math"

// PickCombat runs the expectimax search over the player's legal combat
// moves and returns the best one, along with its expected value (SPEC_FULL
// §4.4). It is the pure decision core behind Decide's combat-phase branch.
//
// PickCombat allocates a fresh memoization cache for this call and discards
// it on return: there is no shared mutable state across calls (SPEC_FULL
// §5).
func PickCombat(s *RunState, cfg SearchConfig, w Weights) (Move, float64) {
	if s.Terminal() {
		return Rock, EvaluateWith(s, w)
	}
	legal := s.Player.LegalMoves()
	if len(legal) == 0 {
		return Rock, EvaluateWith(s, w)
	}
	if cfg.H <= 0 {
		return legal[0], EvaluateWith(s, w)
	}

	m := newMemoTable()
	action, value := expand(s, legal, cfg.H, m, w)
	return action, value
}

// searchValue is the recursive expectimax value function (SPEC_FULL §4.4's
// search(s,d)). depth 0 and terminal states are leaves scored by Evaluate;
// otherwise it looks up, and on a miss computes and caches, the best
// action's expected value at this node.
func searchValue(s *RunState, depth int, m *memoTable, w Weights) float64 {
	if depth == 0 || s.Terminal() {
		return EvaluateWith(s, w)
	}

	legal := s.Player.LegalMoves()
	if len(legal) == 0 {
		legal = []Move{Rock}
	}

	key := canonicalKey(s, depth)
	if v, ok := m.get(key); ok {
		return v
	}

	_, value := expand(s, legal, depth, m, w)
	m.put(key, value)
	return value
}

// expand evaluates every legal player move at this node and returns the
// best one and its expected value.
func expand(s *RunState, legal []Move, depth int, m *memoTable, w Weights) (Move, float64) {
	bestAction := legal[0]
	bestValue := math.Inf(-1)
	for i, a := range legal {
		v := valueOfAction(s, a, depth, m, w)
		if i == 0 || v > bestValue {
			bestValue = v
			bestAction = a
		}
	}
	return bestAction, bestValue
}

// valueOfAction computes the expected value of playing a against the
// current enemy's legal replies, applying the lethal-branch override
// (SPEC_FULL §4.4): if any reply leads to a state where the player ends up
// dead (detected by a descendant value at or below deathSentinelThreshold),
// the action's value is the worst such outcome instead of the probability-
// weighted average across all replies. A uniform distribution over the
// enemy's legal replies is assumed, per the search's "no opponent model"
// mandate.
func valueOfAction(s *RunState, a Move, depth int, m *memoTable, w Weights) float64 {
	enemy := s.CurrentEnemy()
	enemyLegal := enemy.LegalMoves()
	if len(enemyLegal) == 0 {
		enemyLegal = []Move{Rock}
	}
	p := 1.0 / float64(len(enemyLegal))

	tainted := false
	worst := math.Inf(1)
	expected := 0.0

	for _, e := range enemyLegal {
		clone := s.Clone()
		ApplyRound(&clone, a, e)
		AdvanceIfDead(&clone)

		child := searchValue(&clone, depth-1, m, w)
		if child <= deathSentinelThreshold {
			tainted = true
			if child < worst {
				worst = child
			}
			continue
		}
		expected += child * p
	}

	if tainted {
		return worst
	}
	return expected
}
