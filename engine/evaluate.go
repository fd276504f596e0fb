package engine

// deathSentinelThreshold is the boundary the search uses to detect that a
// deterministic death sentinel (PlayerDeadScore, by default -1,000,000) has
// leaked up from a descendant evaluation. It sits strictly between the
// default PlayerDeadScore and any score a live, merely unlucky state could
// produce (SPEC_FULL §4.4's lethal override).
const deathSentinelThreshold = -900_000

// Evaluate scores a state from the player's point of view: higher is
// better. It is pure and deterministic: Evaluate(s) == Evaluate(&clone) for
// any clone of s (SPEC_FULL §8's algebraic property).
//
// Evaluate uses engine.DefaultWeights. Use EvaluateWith to score against an
// overridden weight table.
func Evaluate(s *RunState) float64 {
	return EvaluateWith(s, DefaultWeights)
}

// EvaluateWith is Evaluate parameterized on an explicit weight table, for
// callers experimenting with alternate calibrations (SPEC_FULL §10).
func EvaluateWith(s *RunState, w Weights) float64 {
	if s.Player.Health.Current == 0 {
		return w.PlayerDeadScore
	}

	score := 0.0
	score += w.PerClearedEnemy * float64(s.CurrentEnemyIndex)

	enemy := s.CurrentEnemy()
	if enemy == nil {
		// Every enemy cleared: the run is won. There is no "current enemy"
		// left to score damage/threat against.
		score += w.PlayerHealthPerPoint * float64(s.Player.Health.Current)
		return score
	}

	if enemy.Health.Current == 0 {
		// Branch-exit bonus: this child just killed the current enemy.
		score += w.CurrentEnemyDead
		return score + w.HealthOnExitBonus*float64(s.Player.Health.Current)
	}

	score += w.PlayerHealthPerPoint * float64(s.Player.Health.Current)
	score += w.PlayerArmorPerPoint * float64(s.Player.Armor.Current)
	if s.Player.Armor.Current == 0 {
		score += w.ArmorAtZeroPenalty
	}

	score += w.DamageDealtPerPoint * float64(enemy.Health.Max-enemy.Health.Current)

	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		stat := s.Player.Move(m)
		score += w.chargeBonus(stat.Charges)
		score += w.StatInvestmentPerPoint * float64(stat.Atk+stat.Def)

		enemyStat := enemy.Move(m)
		if enemyStat.Charges > 0 {
			score += w.ThreatPerAtkPoint * float64(enemyStat.Atk)
		}
	}

	if s.Player.Health.Max > 0 {
		ratio := float64(s.Player.Health.Current) / float64(s.Player.Health.Max)
		if ratio < w.LowHPRiskThreshold {
			score -= (w.LowHPRiskThreshold - ratio) * w.LowHPRiskFactor
		}
	}

	return score
}
