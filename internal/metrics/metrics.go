// Package metrics exposes the coordinator's operational counters on the
// default Prometheus registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission result labels.
const (
	ResultCorrect = "correct"
	ResultWrong   = "wrong"
	ResultStale   = "stale"
)

var (
	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rainywords_rooms_created_total",
		Help: "Rooms created since process start.",
	})

	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rainywords_active_rooms",
		Help: "Live rooms in the registry.",
	})

	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rainywords_connected_clients",
		Help: "Open WebSocket connections.",
	})

	WordsSpawned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rainywords_words_spawned_total",
		Help: "Words spawned, partitioned by spin flag.",
	}, []string{"spin"})

	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rainywords_submissions_total",
		Help: "Typed submissions, partitioned by outcome.",
	}, []string{"result"})

	GamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rainywords_games_started_total",
		Help: "Matches that reached the running state.",
	})

	GamesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rainywords_games_completed_total",
		Help: "Matches that ended, including forced ends.",
	})

	FreezesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rainywords_freezes_applied_total",
		Help: "Freeze power-ups relayed to opponents.",
	})
)

// CountSpawn records one spawned word.
func CountSpawn(spin bool) {
	label := "false"
	if spin {
		label = "true"
	}
	WordsSpawned.WithLabelValues(label).Inc()
}

// CountSubmission records one judged submission.
func CountSubmission(result string) {
	Submissions.WithLabelValues(result).Inc()
}
