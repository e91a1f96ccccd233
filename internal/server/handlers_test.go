package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/game"
	"github.com/wanwish/rainy-words/internal/gateway"
	"github.com/wanwish/rainy-words/internal/rooms"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	hub := gateway.NewHub()
	return &Server{
		Hub:    hub,
		Coord:  game.NewCoordinator(rooms.NewStore(), hub, events.NewBus()),
		Origin: "*",
	}
}

func TestHandleHealth_NoDatabase(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
	}
}

func TestStatsHandlers_RequireDatabase(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"leaderboard", "/stats/leaderboard", srv.handleStatsLeaderboard},
		{"player", "/stats/player/abc", srv.handleStatsPlayer},
		{"match", "/stats/match/abc", srv.handleStatsMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != http.StatusServiceUnavailable {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
			}
		})
	}
}

func TestDispatch_CreateRoom(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Coord.ResetAll()

	client := gateway.NewClient("conn-1", nil)
	srv.Hub.Register(client)

	srv.dispatch(client, events.Envelope{
		Event: events.EvCreateRoom,
		Data:  []byte(`{"name":"Alice","mode":"normal","durationMin":2,"playersWanted":2}`),
	})

	sums := srv.Coord.Summaries()
	if len(sums) != 1 {
		t.Fatalf("rooms after create_room = %d, want 1", len(sums))
	}
	if client.Room() != sums[0].ID {
		t.Errorf("client room = %q, want %q", client.Room(), sums[0].ID)
	}
}

func TestDispatch_BadPayloadIsDropped(t *testing.T) {
	srv := newTestServer(t)

	client := gateway.NewClient("conn-1", nil)
	srv.Hub.Register(client)

	srv.dispatch(client, events.Envelope{
		Event: events.EvCreateRoom,
		Data:  []byte(`{not json`),
	})

	if got := len(srv.Coord.Summaries()); got != 0 {
		t.Errorf("rooms after bad payload = %d, want 0", got)
	}
}
