package engine

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func randomFighter(r *rand.Rand) Fighter {
	maxHP := 10 + r.Intn(40)
	maxArmor := r.Intn(15)
	f := Fighter{
		Health: Pool{Current: r.Intn(maxHP + 1), Max: maxHP},
		Armor:  Pool{Current: r.Intn(maxArmor + 1), Max: maxArmor},
	}
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		f.Moves[m] = MoveStat{
			Atk:     r.Intn(10),
			Def:     r.Intn(5),
			Charges: r.Intn(5) - 1, // -1..3
		}
	}
	return f
}

// Universal invariants (SPEC_FULL §8), property-checked over many random
// starting states and move pairs.
func TestApplyRoundInvariantsProperty(t *testing.T) {
	Convey("Given randomly generated fighters", t, func() {
		r := rand.New(rand.NewSource(1))

		Convey("every apply_round call preserves the state invariants", func() {
			for i := 0; i < 500; i++ {
				s := &RunState{
					Player:  randomFighter(r),
					Enemies: []Fighter{randomFighter(r)},
				}
				playerMove := Move(r.Intn(numMoves))
				enemyMove := Move(r.Intn(numMoves))

				ApplyRound(s, playerMove, enemyMove)

				for _, f := range []Fighter{s.Player, s.Enemies[0]} {
					So(f.Health.Current, ShouldBeGreaterThanOrEqualTo, 0)
					So(f.Health.Current, ShouldBeLessThanOrEqualTo, f.Health.Max)
					So(f.Armor.Current, ShouldBeGreaterThanOrEqualTo, 0)
					So(f.Armor.Current, ShouldBeLessThanOrEqualTo, f.Armor.Max)
					for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
						c := f.Move(m).Charges
						So(c, ShouldBeGreaterThanOrEqualTo, -1)
						So(c, ShouldBeLessThanOrEqualTo, 3)
					}
				}
			}
		})
	})
}

// evaluate is deterministic and side-effect-free (SPEC_FULL §8): scoring a
// clone must always match scoring the original, across many random
// states.
func TestEvaluateDeterministicProperty(t *testing.T) {
	Convey("Given randomly generated run states", t, func() {
		r := rand.New(rand.NewSource(2))

		Convey("Evaluate agrees on a state and any clone of it", func() {
			for i := 0; i < 200; i++ {
				s := RunState{
					Player:            randomFighter(r),
					Enemies:           []Fighter{randomFighter(r), randomFighter(r)},
					CurrentEnemyIndex: r.Intn(3),
				}
				clone := s.Clone()
				So(Evaluate(&s), ShouldEqual, Evaluate(&clone))
			}
		})
	})
}

// ScoreLoot never returns a non-finite value to callers (SPEC_FULL §7).
func TestScoreLootNeverNonFiniteProperty(t *testing.T) {
	Convey("Given randomly generated states and loot offers", t, func() {
		r := rand.New(rand.NewSource(3))
		kinds := []LootKind{
			LootHeal, LootAddMaxHealth, LootAddMaxArmor,
			LootUpgradeRock, LootUpgradePaper, LootUpgradeScissor,
			LootGrantCharges, LootUnknown,
		}

		Convey("ScoreLoot always returns a finite value", func() {
			for i := 0; i < 200; i++ {
				s := RunState{
					Player:  randomFighter(r),
					Enemies: []Fighter{randomFighter(r)},
				}
				loot := LootOption{
					Kind: kinds[r.Intn(len(kinds))],
					V1:   r.Intn(6),
					V2:   r.Intn(6),
					V3:   r.Intn(6),
				}
				score := ScoreLoot(&s, loot)
				So(score, ShouldNotEqual, math.Inf(1))
				So(score, ShouldNotEqual, math.Inf(-1))
				So(score, ShouldEqual, score) // false only for NaN
			}
		})
	})
}
