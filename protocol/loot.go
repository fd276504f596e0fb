// Package protocol translates untrusted wire payloads into the engine's
// canonical types. It is the thin compatibility layer SPEC_FULL §6 calls
// for: the engine core only ever consumes engine.LootOption's tagged sum
// type, never the open type-string-plus-slots shape a remote server might
// actually send.
package protocol

import (
	"strings"

	"github.com/duskward/combatant/engine"
)

// WireLoot is the open, free-form shape a server payload carries: a type
// tag, a human label and integer slots. SPEC_FULL §6 names two value slots;
// WireLoot carries a third, V3, which is copied to LootOption.V3 unchanged.
type WireLoot struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	V1    int    `json:"v1"`
	V2    int    `json:"v2"`
	V3    int    `json:"v3"`
}

// ClassifyLoot recovers an engine.LootOption from a WireLoot. It tries the
// canonical tag first (case-insensitive exact match against Type), then
// falls back to substring matching against Label. Unknown payloads
// classify to engine.LootUnknown, which scores 0 and applies no effect.
func ClassifyLoot(w WireLoot) engine.LootOption {
	if kind, ok := classifyTag(w.Type); ok {
		return toOption(kind, w)
	}
	return toOption(classifyLabel(w.Label), w)
}

func toOption(kind engine.LootKind, w WireLoot) engine.LootOption {
	return engine.LootOption{Kind: kind, Label: w.Label, V1: w.V1, V2: w.V2, V3: w.V3}
}

func classifyTag(tag string) (engine.LootKind, bool) {
	switch strings.ToLower(tag) {
	case "heal":
		return engine.LootHeal, true
	case "addmaxhealth":
		return engine.LootAddMaxHealth, true
	case "addmaxarmor":
		return engine.LootAddMaxArmor, true
	case "upgraderock":
		return engine.LootUpgradeRock, true
	case "upgradepaper":
		return engine.LootUpgradePaper, true
	case "upgradescissor":
		return engine.LootUpgradeScissor, true
	default:
		return engine.LootUnknown, false
	}
}

// classifyLabel applies the case-insensitive substring fallback rules
// (SPEC_FULL §6), checked in the order that lets "heal"/"potion" defer to
// an already-matched max-hp or max-armor hit.
func classifyLabel(label string) engine.LootKind {
	l := strings.ToLower(label)

	switch {
	case containsAny(l, "maxhealth", "hp", "vitality"):
		return engine.LootAddMaxHealth
	case containsAny(l, "maxarmor", "armor"):
		return engine.LootAddMaxArmor
	case containsAny(l, "heal", "potion"):
		return engine.LootHeal
	case containsAny(l, "rock", "sword"):
		return engine.LootUpgradeRock
	case containsAny(l, "paper", "shield"):
		return engine.LootUpgradePaper
	case containsAny(l, "scissor", "spell", "magic"):
		return engine.LootUpgradeScissor
	default:
		return engine.LootUnknown
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ClassifyLootOptions classifies a whole batch, preserving order.
func ClassifyLootOptions(ws []WireLoot) []engine.LootOption {
	opts := make([]engine.LootOption, len(ws))
	for i, w := range ws {
		opts[i] = ClassifyLoot(w)
	}
	return opts
}
