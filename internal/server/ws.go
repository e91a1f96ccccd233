package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/gateway"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/metrics"
)

// handleWS upgrades the connection and runs its read loop until the client
// goes away. Each connection gets a fresh uuid; ids are never reused.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	acceptOpts := &websocket.AcceptOptions{}
	if s.Origin == "*" {
		acceptOpts.InsecureSkipVerify = true
	} else {
		acceptOpts.OriginPatterns = []string{s.Origin}
	}

	conn, err := websocket.Accept(w, r, acceptOpts)
	if err != nil {
		logging.Log.Warnf("[WS] accept: %v", err)
		return
	}
	conn.SetReadLimit(4096)

	connID := uuid.NewString()
	client := gateway.NewClient(connID, conn)
	s.Hub.Register(client)
	metrics.ConnectedClients.Inc()
	logging.Log.Infof("[WS] %s connected", connID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go client.WritePump(ctx)

	// New arrivals see the lobby immediately.
	s.Hub.ToConn(connID, events.Marshal(events.EvRoomList, s.Coord.Summaries()))

	defer func() {
		roomCode := client.Room()
		s.Hub.Unregister(connID)
		metrics.ConnectedClients.Dec()
		s.Coord.Disconnect(connID, roomCode)
		conn.Close(websocket.StatusNormalClosure, "")
		logging.Log.Infof("[WS] %s disconnected", connID)
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if !client.Limiter.Allow() {
			logging.Log.Warnf("[WS] %s rate limited, dropping message", connID)
			continue
		}

		var env events.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			logging.Log.Warnf("[WS] %s bad envelope: %v", connID, err)
			continue
		}
		s.dispatch(client, env)
	}
}

// dispatch routes one inbound envelope to the coordinator. Malformed
// payloads are logged and dropped; the connection stays up.
func (s *Server) dispatch(client *gateway.Client, env events.Envelope) {
	connID := client.ID

	switch env.Event {
	case events.EvCreateRoom:
		var req events.CreateRoomRequest
		if !decode(connID, env, &req) {
			return
		}
		s.Coord.CreateRoom(connID, req)

	case events.EvJoinRoom:
		var req events.JoinRoomRequest
		if !decode(connID, env, &req) {
			return
		}
		s.Coord.JoinRoom(connID, req)

	case events.EvLeaveRoom:
		s.Coord.Leave(connID, client.Room())

	case events.EvJoin:
		var req events.JoinRequest
		if !decode(connID, env, &req) {
			return
		}
		s.Coord.JoinLegacy(connID, req)

	case events.EvTyped:
		var req events.TypedRequest
		if !decode(connID, env, &req) {
			return
		}
		s.Coord.Submit(connID, client.Room(), req)

	case events.EvFreezeRequest:
		var req events.FreezeRequest
		if !decode(connID, env, &req) {
			return
		}
		s.Coord.UseFreeze(connID, client.Room(), req)

	case events.EvAdminReset:
		s.Coord.ResetLegacy()

	case events.EvAdminResetAll:
		s.Coord.ResetAll()

	default:
		logging.Log.Warnf("[WS] %s unknown event %q", connID, env.Event)
	}
}

func decode(connID string, env events.Envelope, out any) bool {
	if err := json.Unmarshal(env.Data, out); err != nil {
		logging.Log.Warnf("[WS] %s bad %s payload: %v", connID, env.Event, err)
		return false
	}
	return true
}
