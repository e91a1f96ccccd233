package db

import (
	"fmt"
	"time"
)

type MatchRecord struct {
	ID         string
	RoomCode   string
	Mode       string
	DurationMs int
	StartedAt  *time.Time
	EndedAt    *time.Time
}

// CreateMatch opens a history row for a round that just started.
func (d *DB) CreateMatch(roomCode, mode string, durationMs int) (string, error) {
	var id string
	err := d.conn.QueryRow(`
		INSERT INTO matches (room_code, mode, duration_ms, started_at)
		VALUES ($1, $2, $3, now())
		RETURNING id
	`, roomCode, mode, durationMs).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("creating match: %w", err)
	}
	return id, nil
}

func (d *DB) EndMatch(matchID string) error {
	_, err := d.conn.Exec(`
		UPDATE matches SET ended_at = now() WHERE id = $1
	`, matchID)
	if err != nil {
		return fmt.Errorf("ending match: %w", err)
	}
	return nil
}

func (d *DB) AddMatchPlayer(matchID, playerID, name string, finalScore, rank int) error {
	_, err := d.conn.Exec(`
		INSERT INTO match_players (match_id, player_id, name, final_score, rank)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (match_id, player_id) DO UPDATE SET final_score = $4, rank = $5
	`, matchID, playerID, name, finalScore, rank)
	if err != nil {
		return fmt.Errorf("adding match player: %w", err)
	}
	return nil
}
