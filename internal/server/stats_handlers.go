package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/stats"
)

func (s *Server) handleStatsLeaderboard(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "Stats require a database connection", http.StatusServiceUnavailable)
		return
	}

	q := stats.NewQueries(s.DB)
	category := r.URL.Query().Get("cat")
	if category == "" {
		category = "score"
	}

	entries, err := q.GetLeaderboard(category, 10)
	if err != nil {
		logging.Log.Warnf("[Stats] leaderboard: %v", err)
		http.Error(w, "Error loading leaderboard", http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

func (s *Server) handleStatsPlayer(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "Stats require a database connection", http.StatusServiceUnavailable)
		return
	}

	// /stats/player/{id}
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 4 || parts[3] == "" {
		http.Error(w, "Player ID required", http.StatusBadRequest)
		return
	}
	playerID := parts[3]

	q := stats.NewQueries(s.DB)
	lifetime, err := q.GetPlayerLifetimeStats(playerID)
	if err != nil {
		logging.Log.Warnf("[Stats] player %s: %v", playerID, err)
		http.Error(w, "Player not found", http.StatusNotFound)
		return
	}
	writeJSON(w, lifetime)
}

func (s *Server) handleStatsMatch(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "Stats require a database connection", http.StatusServiceUnavailable)
		return
	}

	// /stats/match/{id}
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 4 || parts[3] == "" {
		http.Error(w, "Match ID required", http.StatusBadRequest)
		return
	}
	matchID := parts[3]

	q := stats.NewQueries(s.DB)
	recap, err := q.GetMatchRecap(matchID)
	if err != nil {
		logging.Log.Warnf("[Stats] match %s: %v", matchID, err)
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}
	writeJSON(w, recap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Log.Warnf("[Stats] encoding response: %v", err)
	}
}
