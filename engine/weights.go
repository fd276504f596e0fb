package engine

// Weights bundles the state evaluator's calibrated coefficients (SPEC_FULL
// §4.2) into one overridable struct, in the spirit of the teacher's own
// "all tuning knobs in one place" Weights table (engine/material.go in the
// original), but as named fields rather than an indexed array: this
// evaluator has a handful of named features, not hundreds of positional
// ones, so a struct is the more honest fit.
//
// DefaultWeights are the spec's design defaults. Implementers are expected
// to treat them as defaults, not as an oracle (SPEC_FULL §10).
type Weights struct {
	PlayerDeadScore float64

	PerClearedEnemy    float64
	CurrentEnemyDead    float64
	HealthOnExitBonus   float64

	PlayerHealthPerPoint float64
	PlayerArmorPerPoint  float64
	ArmorAtZeroPenalty   float64

	DamageDealtPerPoint float64

	ChargeBonusZero float64
	ChargeBonusOne  float64
	ChargeBonusTwo  float64
	ChargeBonusMax  float64

	StatInvestmentPerPoint float64

	ThreatPerAtkPoint float64

	LowHPRiskThreshold float64
	LowHPRiskFactor    float64
}

// DefaultWeights is the calibrated coefficient table from SPEC_FULL §4.2.
var DefaultWeights = Weights{
	PlayerDeadScore: -1_000_000,

	PerClearedEnemy:   20_000,
	CurrentEnemyDead:  35_000,
	HealthOnExitBonus: 250,

	PlayerHealthPerPoint: 300,
	PlayerArmorPerPoint:  120,
	ArmorAtZeroPenalty:   -800,

	DamageDealtPerPoint: 80,

	ChargeBonusZero: -120,
	ChargeBonusOne:  35,
	ChargeBonusTwo:  60,
	ChargeBonusMax:  90,

	StatInvestmentPerPoint: 30,

	ThreatPerAtkPoint: -25,

	LowHPRiskThreshold: 0.35,
	LowHPRiskFactor:    2000,
}

// chargeBonus returns the per-move charge bonus term for a given charge
// count (SPEC_FULL §4.2's "Per-move charge bonus" row).
func (w Weights) chargeBonus(charges int) float64 {
	switch {
	case charges <= 0:
		return w.ChargeBonusZero
	case charges == 1:
		return w.ChargeBonusOne
	case charges == 2:
		return w.ChargeBonusTwo
	default:
		return w.ChargeBonusMax
	}
}

// SearchConfig bundles the search engine's tunable depths (SPEC_FULL §4.4,
// §4.3). H is the expectimax horizon; MicroSimRounds is the loot valuator's
// forward-simulation depth R.
type SearchConfig struct {
	H              int
	MicroSimRounds int
}

// DefaultSearchConfig matches the spec's design defaults: horizon 6,
// 3-round micro-simulation.
var DefaultSearchConfig = SearchConfig{
	H:              6,
	MicroSimRounds: 3,
}
