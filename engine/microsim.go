package engine

// microSimResult summarizes a bounded greedy forward simulation, used by the
// loot valuator to estimate the marginal combat value of a loot pick
// (SPEC_FULL §4.3's "Micro-simulation" signal).
type microSimResult struct {
	// roundsToKill is how many rounds it took to kill the current enemy,
	// or rounds+1 if it was not killed within the simulated window.
	roundsToKill int
	// playerAlive reports whether the player survived the simulated window.
	playerAlive bool
}

// simulateGreedy plays out up to rounds rounds of combat using a
// deterministic greedy policy for both sides: always play the legal move
// with the highest atk, breaking ties by enumeration order rock, paper,
// scissor (SPEC_FULL §4.3). It operates on a clone of s and never mutates
// the caller's state.
//
// This is deliberately not the expectimax search: it is a cheap, one-line
// policy used only to produce a quick TTK/survival estimate for comparing
// two loot options, not to pick the actual move played.
func simulateGreedy(s *RunState, rounds int) microSimResult {
	clone := s.Clone()

	enemyIndexAtStart := clone.CurrentEnemyIndex
	result := microSimResult{roundsToKill: rounds + 1, playerAlive: true}

	for round := 0; round < rounds; round++ {
		if clone.Terminal() {
			result.playerAlive = clone.Player.Health.Current > 0
			break
		}

		playerMove, okP := greedyChoice(&clone.Player)
		enemy := clone.CurrentEnemy()
		enemyMove, okE := greedyChoice(enemy)
		if !okP {
			playerMove = Rock
		}
		if !okE {
			enemyMove = Rock
		}

		ApplyRound(&clone, playerMove, enemyMove)
		AdvanceIfDead(&clone)

		if clone.CurrentEnemyIndex > enemyIndexAtStart {
			result.roundsToKill = round + 1
			result.playerAlive = clone.Player.Health.Current > 0
			return result
		}
		if clone.Player.Health.Current == 0 {
			result.playerAlive = false
			return result
		}
	}

	result.playerAlive = clone.Player.Health.Current > 0
	return result
}

// greedyChoice picks the legal move with the highest atk for f, breaking
// ties by enumeration order (rock, paper, scissor). ok is false if f has no
// legal move, in which case the caller should fall back to rock.
func greedyChoice(f *Fighter) (m Move, ok bool) {
	best := -1
	bestAtk := -1
	for _, cand := range [numMoves]Move{Rock, Paper, Scissor} {
		stat := f.Move(cand)
		if !stat.Usable() {
			continue
		}
		if stat.Atk > bestAtk {
			bestAtk = stat.Atk
			best = int(cand)
		}
	}
	if best < 0 {
		return Rock, false
	}
	return Move(best), true
}
