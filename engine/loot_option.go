package engine

// LootKind discriminates the canonical LootOption variants (SPEC_FULL §3).
// It is the tagged-sum-type replacement for the source system's open record
// with a free-form type string; protocol.ClassifyLoot is the thin
// translation layer that recovers a LootKind from an untrusted wire payload.
type LootKind int

const (
	// LootUnknown scores 0 and applies no effect; it is what an
	// unrecognized wire payload classifies to (SPEC_FULL §6).
	LootUnknown LootKind = iota
	LootHeal
	LootAddMaxHealth
	LootAddMaxArmor
	LootUpgradeRock
	LootUpgradePaper
	LootUpgradeScissor
	LootGrantCharges
)

// LootOption is a single loot offer. Only the fields relevant to Kind are
// meaningful:
//
//	Heal, AddMaxHealth, AddMaxArmor: V1 is the amount.
//	UpgradeRock/Paper/Scissor:       V1 is the atk delta, V2 the def delta.
//	GrantCharges:                    V1/V2/V3 are the rock/paper/scissor deltas.
//
// Label is the free-form human-readable text the wire payload carried; it
// is retained only so protocol.ClassifyLoot's keyword fallback has
// something to inspect, and carries no meaning once Kind is set.
type LootOption struct {
	Kind  LootKind
	Label string

	V1 int
	V2 int
	V3 int
}

// moveForUpgrade maps an upgrade LootKind to the move it upgrades. ok is
// false for non-upgrade kinds.
func (l LootOption) moveForUpgrade() (m Move, ok bool) {
	switch l.Kind {
	case LootUpgradeRock:
		return Rock, true
	case LootUpgradePaper:
		return Paper, true
	case LootUpgradeScissor:
		return Scissor, true
	default:
		return 0, false
	}
}
