package engine

import "testing"

func baseEvalState() *RunState {
	return &RunState{
		Player: Fighter{
			Health: Pool{Current: 20, Max: 30},
			Armor:  Pool{Current: 5, Max: 10},
			Moves: [numMoves]MoveStat{
				Rock:    {Atk: 4, Def: 1, Charges: 3},
				Paper:   {Atk: 2, Def: 1, Charges: 2},
				Scissor: {Atk: 3, Def: 0, Charges: 1},
			},
		},
		Enemies: []Fighter{
			{
				Health: Pool{Current: 10, Max: 20},
				Armor:  Pool{Current: 0, Max: 5},
				Moves: [numMoves]MoveStat{
					Rock:    {Atk: 5, Def: 1, Charges: 2},
					Paper:   {Atk: 2, Def: 0, Charges: 0},
					Scissor: {Atk: 3, Def: 0, Charges: 3},
				},
			},
		},
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	s := baseEvalState()
	clone := s.Clone()

	a := Evaluate(s)
	b := Evaluate(&clone)
	if a != b {
		t.Errorf("Evaluate(s) = %v, Evaluate(clone) = %v, want equal", a, b)
	}
}

func TestEvaluatePlayerDead(t *testing.T) {
	s := baseEvalState()
	s.Player.Health.Current = 0
	if got := Evaluate(s); got != DefaultWeights.PlayerDeadScore {
		t.Errorf("Evaluate(dead player) = %v, want %v", got, DefaultWeights.PlayerDeadScore)
	}
}

func TestEvaluateRunWon(t *testing.T) {
	s := baseEvalState()
	s.CurrentEnemyIndex = len(s.Enemies)
	got := Evaluate(s)
	want := DefaultWeights.PerClearedEnemy*float64(len(s.Enemies)) + DefaultWeights.PlayerHealthPerPoint*float64(s.Player.Health.Current)
	if got != want {
		t.Errorf("Evaluate(run won) = %v, want %v", got, want)
	}
}

func TestEvaluateCurrentEnemyDeadBranchExit(t *testing.T) {
	s := baseEvalState()
	s.Enemies[0].Health.Current = 0
	got := Evaluate(s)
	want := DefaultWeights.CurrentEnemyDead + DefaultWeights.HealthOnExitBonus*float64(s.Player.Health.Current)
	if got != want {
		t.Errorf("Evaluate(current enemy dead) = %v, want %v", got, want)
	}
}

func TestEvaluateArmorAtZeroPenalty(t *testing.T) {
	s := baseEvalState()
	s.Player.Armor.Current = 0
	withZero := Evaluate(s)

	s.Player.Armor.Current = 1
	withOne := Evaluate(s)

	diff := withOne - withZero
	want := DefaultWeights.PlayerArmorPerPoint - DefaultWeights.ArmorAtZeroPenalty
	if diff != want {
		t.Errorf("armor-at-zero delta = %v, want %v", diff, want)
	}
}

func TestEvaluateLowHPRiskAversion(t *testing.T) {
	s := baseEvalState()
	s.Player.Health.Max = 100

	s.Player.Health.Current = 20 // ratio 0.2, below 0.35 threshold
	low := Evaluate(s)

	s.Player.Health.Current = 50 // ratio 0.5, above threshold
	high := Evaluate(s)

	// Health-per-point alone would make the higher-HP state strictly
	// better; the risk term should widen that gap further, not narrow it.
	perPointDelta := DefaultWeights.PlayerHealthPerPoint * 30
	if high-low <= perPointDelta {
		t.Errorf("expected risk aversion to widen the gap beyond the linear health term: high-low=%v, linear=%v", high-low, perPointDelta)
	}
}

func TestEvaluateThreatPenalizesChargedEnemyMoves(t *testing.T) {
	s := baseEvalState()
	withCharge := Evaluate(s)

	s.Enemies[0].Moves[Rock].Charges = 0
	withoutCharge := Evaluate(s)

	if withoutCharge <= withCharge {
		t.Errorf("removing enemy charge should raise score: with=%v without=%v", withCharge, withoutCharge)
	}
}
