package engine

import "math"

// lootSentinelVeryNegative is the "never pick this" sentinel: both the
// heal-while-effectively-full override and the non-finite-result clamp
// (SPEC_FULL §4.3, §7) return a value at or below this, well past what any
// ordinary combination of terms can produce.
const lootSentinelVeryNegative = -1e12

// lootHealNearFullPenalty is the softer "heal while mostly full" penalty
// (current/max > 0.9, but not full): large and negative, but not the
// never-pick sentinel.
const lootHealNearFullPenalty = -50_000

// ScoreLoot returns the projected value of accepting loot now, assuming the
// run continues (SPEC_FULL §4.3). Higher is better. Non-finite results are
// clamped to lootSentinelVeryNegative.
//
// ScoreLoot uses engine.DefaultWeights and engine.DefaultSearchConfig. Use
// ScoreLootWith to parameterize on an explicit configuration.
func ScoreLoot(s *RunState, loot LootOption) float64 {
	return ScoreLootWith(s, loot, DefaultWeights, DefaultSearchConfig)
}

// ScoreLootWith is ScoreLoot parameterized on explicit weights/config.
func ScoreLootWith(s *RunState, loot LootOption, w Weights, cfg SearchConfig) float64 {
	if loot.Kind == LootHeal {
		missing := s.Player.Health.Max - s.Player.Health.Current
		if missing < 1 {
			return lootSentinelVeryNegative
		}
		if s.Player.Health.Max > 0 && float64(s.Player.Health.Current)/float64(s.Player.Health.Max) > 0.9 {
			return lootHealNearFullPenalty
		}
	}

	before := EvaluateWith(s, w)

	after := s.Clone()
	ApplyLoot(&after, loot)
	sdv := EvaluateWith(&after, w) - before

	bias := buildPreferenceBias(s, loot)

	base := simulateGreedy(s, cfg.MicroSimRounds)
	modified := simulateGreedy(&after, cfg.MicroSimRounds)
	deltaTTK := modified.roundsToKill - base.roundsToKill
	deltaSurvival := boolToSigned(modified.playerAlive) - boolToSigned(base.playerAlive)
	microScore := -1200.0*float64(deltaTTK) + 4000.0*float64(deltaSurvival)

	score := sdv + bias + microScore

	remaining := s.RemainingRooms()
	multiplier := 1 + math.Min(0.4, float64(remaining)*0.05)
	score *= multiplier

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return lootSentinelVeryNegative
	}
	return score
}

func boolToSigned(b bool) int {
	if b {
		return 1
	}
	return 0
}

// buildPreferenceBias adds a soft bias reflecting how well loot fits the
// player's current build (SPEC_FULL §4.3's "Build preference" signal).
func buildPreferenceBias(s *RunState, loot LootOption) float64 {
	weaponPref := weaponPreferences(&s.Player)

	hpPref := 0.0
	if s.Player.Health.Max > 0 {
		hpPref = 1 - float64(s.Player.Health.Current)/float64(s.Player.Health.Max)
	}
	armorMax := s.Player.Armor.Max
	if armorMax < 1 {
		armorMax = 1
	}
	armorPref := float64(s.Player.Armor.Current) / float64(armorMax)

	totalPositiveCharges := 0
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		if c := s.Player.Move(m).Charges; c > 0 {
			totalPositiveCharges += c
		}
	}
	chargesPref := 1 - math.Min(1, float64(totalPositiveCharges)/9)

	switch loot.Kind {
	case LootUpgradeRock:
		return weaponPref[Rock] * 50
	case LootUpgradePaper:
		return weaponPref[Paper] * 50
	case LootUpgradeScissor:
		return weaponPref[Scissor] * 50
	case LootGrantCharges:
		return chargesPref * 50
	case LootAddMaxHealth:
		return hpPref * 40
	case LootAddMaxArmor:
		return armorPref * 40
	case LootHeal:
		return hpPref * 30
	default:
		return 0
	}
}

// weaponPreferences normalizes the three moves' atk/def/charges heuristic
// into [0,1] preferences (SPEC_FULL §4.3).
func weaponPreferences(f *Fighter) [numMoves]float64 {
	var raw [numMoves]float64
	max := 0.0
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		stat := f.Move(m)
		chargesW := clampFloat(float64(stat.Charges), 1, 3)
		raw[m] = float64(stat.Atk)*chargesW + float64(stat.Def)*0.5
		if raw[m] > max {
			max = raw[m]
		}
	}

	var pref [numMoves]float64
	if max <= 0 {
		return pref
	}
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		pref[m] = raw[m] / max
	}
	return pref
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
