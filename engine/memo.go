package engine

import "strconv"

// memoTable caches search values keyed by canonicalKey. Unlike the teacher's
// engine.HashTable (a fixed-size, lossy, globally-shared transposition
// table keyed by Zobrist hash with collision handling via two candidate
// slots), this cache is a plain map: the state space a single decide() call
// explores is tiny compared to a chess search tree, there is no board
// Zobrist hash to reuse, and SPEC_FULL §5's "no shared mutable state across
// decisions" rules out a package-level global table anyway. One memoTable
// is allocated per top-level Decide call and discarded when it returns.
type memoTable struct {
	entries map[string]float64
}

// newMemoTable returns an empty cache.
func newMemoTable() *memoTable {
	return &memoTable{entries: make(map[string]float64)}
}

// get returns the cached value for key, if any.
func (m *memoTable) get(key string) (float64, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// put records value under key.
func (m *memoTable) put(key string, value float64) {
	m.entries[key] = value
}

// canonicalKey builds the string the search memoizes on: the remaining
// search depth plus every field of state that affects the value the search
// will compute from here (SPEC_FULL §4.4's "canonical state key"). Two
// states that differ only in fields the evaluator and kernel never read
// (LootPhase, LootOptions, TotalRooms, CurrentRoomIndex — irrelevant while
// resolving combat rounds) are given the same key on purpose, so the search
// can reuse work across them.
func canonicalKey(s *RunState, depth int) string {
	buf := make([]byte, 0, 128)
	buf = strconv.AppendInt(buf, int64(depth), 10)
	buf = append(buf, '|')
	buf = appendFighterKey(buf, &s.Player)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(s.CurrentEnemyIndex), 10)
	for i := range s.Enemies {
		buf = append(buf, '|')
		buf = appendFighterKey(buf, &s.Enemies[i])
	}
	return string(buf)
}

func appendFighterKey(buf []byte, f *Fighter) []byte {
	buf = strconv.AppendInt(buf, int64(f.Health.Current), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(f.Health.Max), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(f.Armor.Current), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(f.Armor.Max), 10)
	for _, m := range [numMoves]Move{Rock, Paper, Scissor} {
		stat := f.Move(m)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(stat.Atk), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(stat.Def), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(stat.Charges), 10)
	}
	return buf
}
