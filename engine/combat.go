package engine

// ApplyRound advances the run exactly one round against the current enemy,
// given both sides' moves. It mutates s in place.
//
// ApplyRound does not advance s.CurrentEnemyIndex itself, even if the
// current enemy's health reaches 0 this round: that keeps the kernel
// single-step (SPEC_FULL §4.1). Callers that want the run to move on to the
// next enemy must call AdvanceIfDead after ApplyRound.
//
// Preconditions (not checked here; callers that accept untrusted input
// should run Sanitize first, see validate.go): the current enemy is alive
// and s.LootPhase is false.
//
// The resolution order below must be preserved verbatim (SPEC_FULL §4.1):
// classification, then damage/armor-gain computation, then application to
// each fighter (armor gain, then absorption, then health), then the charge
// update for both sides.
func ApplyRound(s *RunState, playerMove, enemyMove Move) {
	enemy := s.CurrentEnemy()
	if enemy == nil {
		return
	}

	// 1. Outcome classification.
	outcome := classify(playerMove, enemyMove)

	// 2. Damage/armor-gain computation.
	playerStat := s.Player.Move(playerMove)
	enemyStat := enemy.Move(enemyMove)

	var dmgToEnemy, dmgToPlayer int
	var armorToPlayer, armorToEnemy int

	switch outcome {
	case outcomeTie:
		dmgToEnemy = playerStat.Atk
		armorToPlayer = playerStat.Def
		dmgToPlayer = enemyStat.Atk
		armorToEnemy = enemyStat.Def
	case outcomePlayerWins:
		dmgToEnemy = playerStat.Atk
		armorToPlayer = playerStat.Def
	case outcomeEnemyWins:
		dmgToPlayer = enemyStat.Atk
		armorToEnemy = enemyStat.Def
	}

	// 3. Apply to each fighter: armor gain, then absorption, then health.
	applyDamage(&s.Player, armorToPlayer, dmgToPlayer)
	applyDamage(enemy, armorToEnemy, dmgToEnemy)

	// 4. Charge update, both sides.
	updateCharges(&s.Player, playerMove)
	updateCharges(enemy, enemyMove)
}

// AdvanceIfDead moves s.CurrentEnemyIndex past the current enemy if it is
// dead (post-step enemy advancement, SPEC_FULL §4.1). It reports whether it
// advanced. Safe to call on a state with no current enemy (a no-op).
func AdvanceIfDead(s *RunState) bool {
	enemy := s.CurrentEnemy()
	if enemy == nil || enemy.Health.Current > 0 {
		return false
	}
	s.CurrentEnemyIndex++
	return true
}

type outcome int

const (
	outcomeTie outcome = iota
	outcomePlayerWins
	outcomeEnemyWins
)

// classify resolves which side wins a move pair. Rock beats scissor, paper
// beats rock, scissor beats paper.
func classify(player, enemy Move) outcome {
	if player == enemy {
		return outcomeTie
	}
	switch player {
	case Rock:
		if enemy == Scissor {
			return outcomePlayerWins
		}
	case Paper:
		if enemy == Rock {
			return outcomePlayerWins
		}
	case Scissor:
		if enemy == Paper {
			return outcomePlayerWins
		}
	}
	return outcomeEnemyWins
}

// applyDamage gives the fighter armorGain (clamped to max armor), then
// subtracts incoming damage: first from armor, the remainder from health
// (floored at 0). Absorption is computed against the armor the fighter had
// before this round's gain — armor gained this round does not absorb this
// round's incoming damage.
func applyDamage(f *Fighter, armorGain, incoming int) {
	armorBefore := f.Armor.Current

	absorbed := incoming
	if absorbed > armorBefore {
		absorbed = armorBefore
	}

	f.Armor.clampedAdd(armorGain)
	f.Armor.Current -= absorbed

	remainder := incoming - absorbed
	f.Health.Current -= remainder
	if f.Health.Current < 0 {
		f.Health.Current = 0
	}
}

// updateCharges applies the charge-regeneration rule for one fighter after
// it played used. The played move's charges are spent; the other two
// regenerate (SPEC_FULL §4.1 step 4).
func updateCharges(f *Fighter, used Move) {
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		stat := f.Move(m)
		if m == used {
			switch {
			case stat.Charges > 1:
				stat.Charges--
			case stat.Charges == 1:
				stat.Charges = -1
			}
			continue
		}
		switch {
		case stat.Charges == -1:
			stat.Charges = 0
		case stat.Charges >= 0 && stat.Charges < 3:
			stat.Charges++
		}
	}
}
