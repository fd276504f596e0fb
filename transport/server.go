// Package transport serves Decide over a websocket, the same shape as the
// niceyeti-tabular server's serveWebsocket/publishUpdates pair: upgrade the
// HTTP connection, then loop reading client messages and writing replies.
// Here the client sends a run-state snapshot and the server writes back
// the decided Action — this is the "remote game server" side of
// SPEC_FULL §1's out-of-scope HTTP client, stood up for local testing and
// demos (cmd/decisiond can speak to it instead of stdin).
package transport

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/duskward/combatant/engine"
)

const (
	writeWait        = 1 * time.Second
	closeGracePeriod = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Reply is what the server writes back for each decoded RunState it reads.
type Reply struct {
	Action string `json:"action"`
	// LootIndex is only meaningful when Action is "pick_loot".
	LootIndex int    `json:"loot_index,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Server decides for every RunState a connected client sends it.
type Server struct {
	Addr   string
	Log    engine.Logger
	Decide func(*engine.RunState) (engine.Action, error)
}

// NewServer builds a Server using engine.Decide and a NopLogger. Callers
// wanting the zerolog sink or overridden weights should set Log/Decide
// directly.
func NewServer(addr string) *Server {
	return &Server{Addr: addr, Log: engine.NopLogger{}, Decide: engine.Decide}
}

// ListenAndServe registers the websocket handler at /decide and blocks
// serving HTTP, the same shape as server.go's ListenAndServe call.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/decide", s.serveWebsocket)
	return http.ListenAndServe(s.Addr, mux)
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		log.Println("transport: upgrade:", err)
		return
	}
	defer closeWebsocket(ws)

	for {
		var state engine.RunState
		if err := ws.ReadJSON(&state); err != nil {
			return
		}

		reply := s.decideOne(&state)
		if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return
		}
		if err := ws.WriteJSON(reply); err != nil {
			return
		}
	}
}

func (s *Server) decideOne(state *engine.RunState) Reply {
	action, err := s.Decide(state)
	if err != nil {
		return Reply{Error: err.Error()}
	}
	reply := Reply{Action: action.String()}
	if action.Kind == engine.ActionPickLoot {
		reply.LootIndex = action.LootIndex
	}
	return reply
}

func closeWebsocket(ws *websocket.Conn) {
	_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	ws.Close()
}
