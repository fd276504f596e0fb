// Package batch runs many independent Decide calls concurrently. The
// engine package itself is synchronous and single-threaded per decision
// (SPEC_FULL §5): this package is where a host that needs to decide for
// several runs at once — e.g. several bots playing in parallel — adds that
// concurrency, fanning requests out to a worker pool and fanning results
// back in with channerics, the same way fastview.go fans out/in view
// updates.
package batch

import (
	"context"

	channerics "github.com/niceyeti/channerics/channels"

	"github.com/duskward/combatant/engine"
)

// Request is one run's snapshot to decide for, tagged with an ID the
// caller can use to correlate the Result back to it.
type Request struct {
	ID    string
	State *engine.RunState
}

// Result is the outcome of deciding for one Request.
type Result struct {
	ID     string
	Action engine.Action
	Err    error
}

// Run fans reqs out across workers goroutines, each calling engine.Decide
// on its own snapshot (engine.Decide never mutates its input, so sharing
// read-only RunStates across goroutines is safe), and fans the results
// back in as a single channel. It respects ctx cancellation: once ctx is
// done, no further requests are dispatched and the returned channel is
// closed once any in-flight workers finish.
//
// workers is clamped to at least 1 and at most len(reqs).
func Run(ctx context.Context, reqs []Request, workers int) <-chan Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	in := make(chan Request)
	go func() {
		defer close(in)
		for _, r := range reqs {
			select {
			case <-ctx.Done():
				return
			case in <- r:
			}
		}
	}()

	done := ctx.Done()
	outs := make([]<-chan Result, workers)
	for i := 0; i < workers; i++ {
		out := make(chan Result)
		outs[i] = out
		go worker(done, in, out)
	}

	return channerics.Merge[Result](outs)
}

func worker(done <-chan struct{}, in <-chan Request, out chan<- Result) {
	defer close(out)
	for req := range channerics.OrDone[Request](done, in) {
		action, err := engine.Decide(req.State)
		result := Result{ID: req.ID, Action: action, Err: err}
		select {
		case out <- result:
		case <-done:
			return
		}
	}
}
