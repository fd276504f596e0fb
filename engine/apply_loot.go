package engine

// ApplyLoot mutates s in place to reflect accepting loot, per the
// declarative effects in SPEC_FULL §3. Unknown loot kinds are a no-op.
//
// ApplyLoot is not idempotent for any non-heal, non-capped effect (SPEC_FULL
// §8): applying the same stat or charge grant twice keeps adding, it does
// not detect "already applied".
func ApplyLoot(s *RunState, l LootOption) {
	switch l.Kind {
	case LootHeal:
		s.Player.Health.clampedAdd(l.V1)

	case LootAddMaxHealth:
		s.Player.Health.Max += l.V1
		s.Player.Health.Current += l.V1

	case LootAddMaxArmor:
		s.Player.Armor.Max += l.V1
		s.Player.Armor.Current += l.V1
		if s.Player.Armor.Current > s.Player.Armor.Max {
			s.Player.Armor.Current = s.Player.Armor.Max
		}

	case LootUpgradeRock, LootUpgradePaper, LootUpgradeScissor:
		m, _ := l.moveForUpgrade()
		stat := s.Player.Move(m)
		stat.Atk += l.V1
		stat.Def += l.V2

	case LootGrantCharges:
		grantCharges(s.Player.Move(Rock), l.V1)
		grantCharges(s.Player.Move(Paper), l.V2)
		grantCharges(s.Player.Move(Scissor), l.V3)
	}
}

// grantCharges adds delta charges to stat, clamped to the maximum of 3. A
// negative floor of -1 still stands as the "just spent" marker; granting
// charges only ever moves a move toward more usable, so the clamp here only
// needs to guard the top.
func grantCharges(stat *MoveStat, delta int) {
	stat.Charges += delta
	if stat.Charges > 3 {
		stat.Charges = 3
	}
}
