package protocol

import (
	"testing"

	"github.com/duskward/combatant/engine"
)

func TestClassifyLootCanonicalTags(t *testing.T) {
	cases := []struct {
		tag  string
		want engine.LootKind
	}{
		{"Heal", engine.LootHeal},
		{"AddMaxHealth", engine.LootAddMaxHealth},
		{"AddMaxArmor", engine.LootAddMaxArmor},
		{"UpgradeRock", engine.LootUpgradeRock},
		{"UpgradePaper", engine.LootUpgradePaper},
		{"UpgradeScissor", engine.LootUpgradeScissor},
		{"upgradeROCK", engine.LootUpgradeRock},
	}
	for _, c := range cases {
		got := ClassifyLoot(WireLoot{Type: c.tag, V1: 1})
		if got.Kind != c.want {
			t.Errorf("ClassifyLoot(Type=%q).Kind = %v, want %v", c.tag, got.Kind, c.want)
		}
		if got.V1 != 1 {
			t.Errorf("ClassifyLoot(Type=%q).V1 = %v, want 1", c.tag, got.V1)
		}
	}
}

func TestClassifyLootLabelFallback(t *testing.T) {
	cases := []struct {
		label string
		want  engine.LootKind
	}{
		{"Potion of Vitality", engine.LootAddMaxHealth},
		{"a flask granting +3 HP", engine.LootAddMaxHealth},
		{"Iron Armor Plate", engine.LootAddMaxArmor},
		{"Healing Potion", engine.LootHeal},
		{"Rusty Sword", engine.LootUpgradeRock},
		{"Tower Shield", engine.LootUpgradePaper},
		{"Scroll of Magic Missile", engine.LootUpgradeScissor},
		{"Bag of Holding", engine.LootUnknown},
	}
	for _, c := range cases {
		got := ClassifyLoot(WireLoot{Label: c.label})
		if got.Kind != c.want {
			t.Errorf("ClassifyLoot(Label=%q).Kind = %v, want %v", c.label, got.Kind, c.want)
		}
	}
}

// TestClassifyLootHealDefersToMaxHealth verifies the spec's explicit
// ordering: "heal"/"potion" only wins if the label didn't already match
// max-hp or max-armor. "Potion of Vitality" contains both "potion" and
// "vitality"; vitality (max-hp) must win.
func TestClassifyLootHealDefersToMaxHealth(t *testing.T) {
	got := ClassifyLoot(WireLoot{Label: "Potion of Vitality"})
	if got.Kind != engine.LootAddMaxHealth {
		t.Errorf("Kind = %v, want LootAddMaxHealth (vitality beats potion)", got.Kind)
	}

	got = ClassifyLoot(WireLoot{Label: "Potion of Armor"})
	if got.Kind != engine.LootAddMaxArmor {
		t.Errorf("Kind = %v, want LootAddMaxArmor (armor beats potion)", got.Kind)
	}
}

func TestClassifyLootTagTakesPrecedenceOverLabel(t *testing.T) {
	got := ClassifyLoot(WireLoot{Type: "Heal", Label: "Rusty Sword"})
	if got.Kind != engine.LootHeal {
		t.Errorf("Kind = %v, want LootHeal (canonical tag beats label fallback)", got.Kind)
	}
}

func TestClassifyLootUnknownTagFallsBackToLabel(t *testing.T) {
	got := ClassifyLoot(WireLoot{Type: "mystery_box", Label: "a gleaming shield"})
	if got.Kind != engine.LootUpgradePaper {
		t.Errorf("Kind = %v, want LootUpgradePaper (label fallback used since tag is unrecognized)", got.Kind)
	}
}

func TestClassifyLootOptionsPreservesOrder(t *testing.T) {
	ws := []WireLoot{
		{Type: "Heal", V1: 5},
		{Type: "UpgradeRock", V1: 1, V2: 0},
		{Label: "unrecognizable trinket"},
	}
	opts := ClassifyLootOptions(ws)
	want := []engine.LootKind{engine.LootHeal, engine.LootUpgradeRock, engine.LootUnknown}
	for i, k := range want {
		if opts[i].Kind != k {
			t.Errorf("opts[%d].Kind = %v, want %v", i, opts[i].Kind, k)
		}
	}
}
