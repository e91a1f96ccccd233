package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wanwish/rainy-words/internal/config"
	"github.com/wanwish/rainy-words/internal/db"
	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/game"
	"github.com/wanwish/rainy-words/internal/gateway"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/rooms"
)

// Server holds the shared pieces every handler needs.
type Server struct {
	Hub    *gateway.Hub
	Coord  *game.Coordinator
	DB     *db.DB
	Origin string
}

func Run() error {
	cfg := config.Load()
	if err := logging.Init(cfg.LogFile); err != nil {
		return err
	}
	defer logging.Sync()

	hub := gateway.NewHub()
	bus := events.NewBus()

	opts := []game.Option{
		game.WithSpawnInterval(time.Duration(cfg.SpawnIntervalMs) * time.Millisecond),
	}

	srv := &Server{
		Hub:    hub,
		Origin: cfg.ClientOrigin,
	}

	// Optional database connection
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			logging.Log.Warnf("[DB] Failed to connect: %v (running without database)", err)
		} else {
			if err := database.Migrate(); err != nil {
				logging.Log.Warnf("[DB] Migration failed: %v", err)
			}
			srv.DB = database
			wordBuf := make(chan db.WordEvent, 1000)
			go wordBatchWriter(database, wordBuf)
			opts = append(opts, game.WithHistory(database, wordBuf))
			logging.Log.Infof("[DB] Database connected and migrations applied")
		}
	} else {
		logging.Log.Infof("[DB] DATABASE_URL not set, running without database")
	}

	srv.Coord = game.NewCoordinator(rooms.NewStore(), hub, bus, opts...)

	// Any room change collapses into one lobby-wide room_list push.
	go func() {
		for range bus.RoomListChanges {
			srv.Coord.BroadcastRoomList()
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/stats/leaderboard", srv.handleStatsLeaderboard)
	mux.HandleFunc("/stats/player/", srv.handleStatsPlayer)
	mux.HandleFunc("/stats/match/", srv.handleStatsMatch)

	addr := "0.0.0.0:" + cfg.Port
	logging.Log.Infof("Server listening on http://localhost:%s", cfg.Port)
	return http.ListenAndServe(addr, mux)
}

// wordBatchWriter drains the word-event buffer into Postgres, flushing on
// size or every 500ms, whichever comes first.
func wordBatchWriter(database *db.DB, buffer chan db.WordEvent) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	batch := make([]db.WordEvent, 0, 50)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := database.BatchRecordWords(batch); err != nil {
			logging.Log.Errorf("[DB] BatchRecordWords: %v", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev := <-buffer:
			batch = append(batch, ev)
			if len(batch) >= 50 {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
