// Command decisiond is a stdin/stdout decision loop in the same shape as
// zurichess's UCI main: print a version banner, parse flags, then read
// one line at a time and dispatch each to a handler, logging unexpected
// errors but never exiting over them. Each input line is a JSON
// RunState; each output line is a JSON object holding the decision's trace
// id, the action's name and, for a loot pick, its loot_index.
// Pass -serve to run the websocket server instead of reading stdin.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/duskward/combatant/engine"
	"github.com/duskward/combatant/logging"
	"github.com/duskward/combatant/trace"
	"github.com/duskward/combatant/transport"
)

var (
	buildVersion = "(devel)"

	versionFlag = flag.Bool("version", false, "only print version and exit")
	consoleLog  = flag.Bool("console", false, "write human-readable logs instead of JSON")
	serveAddr   = flag.String("serve", "", "if set, run a websocket decision server on this address instead of reading stdin")
	horizon     = flag.Int("horizon", engine.DefaultSearchConfig.H, "combat search horizon (plies)")
)

func main() {
	fmt.Printf("decisiond %v, running on %v/%v\n", buildVersion, runtime.GOOS, runtime.GOARCH)

	flag.Parse()
	if *versionFlag {
		return
	}

	var sink *logging.Sink
	if *consoleLog {
		sink = logging.NewConsoleSink(os.Stdout)
	} else {
		sink = logging.NewSink(os.Stdout)
	}

	cfg := engine.DefaultSearchConfig
	cfg.H = *horizon

	if *serveAddr != "" {
		srv := transport.NewServer(*serveAddr)
		srv.Log = sink
		srv.Decide = func(s *engine.RunState) (engine.Action, error) {
			return engine.DecideWith(s, engine.DefaultWeights, cfg, sink)
		}
		if err := srv.ListenAndServe(); err != nil {
			fmt.Fprintln(os.Stderr, "decisiond: serve:", err)
			os.Exit(1)
		}
		return
	}

	runStdinLoop(os.Stdin, os.Stdout, cfg, sink)
}

func runStdinLoop(in *os.File, out *os.File, cfg engine.SearchConfig, sink *logging.Sink) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var state engine.RunState
		if err := json.Unmarshal(line, &state); err != nil {
			fmt.Fprintln(os.Stderr, "decisiond: malformed line:", err)
			continue
		}

		decision := trace.DecideWith(&state, engine.DefaultWeights, cfg, sink)
		if decision.Err != nil {
			fmt.Fprintln(os.Stderr, "decisiond: decide:", decision.Err)
			continue
		}

		resp := response{ID: decision.ID, Action: decision.Action.String()}
		if decision.Action.Kind == engine.ActionPickLoot {
			resp.LootIndex = decision.Action.LootIndex
		}
		if err := enc.Encode(resp); err != nil {
			fmt.Fprintln(os.Stderr, "decisiond: encode:", err)
		}
	}
}

type response struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	LootIndex int    `json:"loot_index,omitempty"`
}
