package transport

import (
	"testing"

	"github.com/duskward/combatant/engine"
)

func TestDecideOneTerminalFallsBackToRock(t *testing.T) {
	s := NewServer(":0")
	state := &engine.RunState{Player: engine.Fighter{Health: engine.Pool{Current: 10, Max: 10}}}

	reply := s.decideOne(state)
	if reply.Error != "" {
		t.Fatalf("unexpected error: %s", reply.Error)
	}
	if reply.Action != "move_rock" {
		t.Errorf("Action = %q, want move_rock for a terminal (no-enemy) state", reply.Action)
	}
}

func TestDecideOnePropagatesLootIndex(t *testing.T) {
	s := NewServer(":0")
	state := &engine.RunState{
		Player: engine.Fighter{
			Health: engine.Pool{Current: 10, Max: 10},
			Moves: [3]engine.MoveStat{
				{Atk: 1, Def: 0, Charges: 1},
				{Atk: 1, Def: 0, Charges: 1},
				{Atk: 1, Def: 0, Charges: 1},
			},
		},
		LootPhase: true,
		LootOptions: []engine.LootOption{
			{Kind: engine.LootHeal, V1: 1}, // player is at full health: never picked
			{Kind: engine.LootAddMaxHealth, V1: 5},
		},
	}

	reply := s.decideOne(state)
	if reply.Error != "" {
		t.Fatalf("unexpected error: %s", reply.Error)
	}
	if reply.Action != "pick_loot" {
		t.Errorf("Action = %q, want pick_loot", reply.Action)
	}
	if reply.LootIndex != 1 {
		t.Errorf("LootIndex = %d, want 1 (the max-health option)", reply.LootIndex)
	}
}
