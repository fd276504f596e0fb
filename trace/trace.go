// Package trace tags each top-level decision with a correlation ID, the
// same way the pflow graphql store stamps a fresh uuid onto every new
// store instance it creates (eventsource.go's id := uuid.New().String()).
// The engine itself has no notion of a decision ID; this is purely a host
// concern for correlating a Decide call with whatever the host logs or
// sends downstream about it.
package trace

import (
	"github.com/google/uuid"

	"github.com/duskward/combatant/engine"
)

// Decision wraps the result of a traced Decide call with the ID assigned
// to it.
type Decision struct {
	ID     string
	Action engine.Action
	Err    error
}

// Decide runs engine.Decide, stamping the call with a fresh uuid. The ID
// is generated whether or not the decision succeeds, so a host can
// correlate an error back to the same trace as a success would have used.
func Decide(s *engine.RunState) Decision {
	id := uuid.New().String()
	action, err := engine.Decide(s)
	return Decision{ID: id, Action: action, Err: err}
}

// DecideWith is Decide, parameterized like engine.DecideWith.
func DecideWith(s *engine.RunState, w engine.Weights, cfg engine.SearchConfig, log engine.Logger) Decision {
	id := uuid.New().String()
	action, err := engine.DecideWith(s, w, cfg, log)
	return Decision{ID: id, Action: action, Err: err}
}
