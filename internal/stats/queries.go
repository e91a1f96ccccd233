// Package stats serves read-only match-history queries over the optional
// Postgres store.
package stats

import (
	"fmt"

	"github.com/wanwish/rainy-words/internal/db"
)

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

func (q *Queries) GetPlayerMatchStats(matchID, playerID string) (*PlayerMatchStats, error) {
	stats := &PlayerMatchStats{
		MatchID:  matchID,
		PlayerID: playerID,
	}

	err := q.DB.QueryRow(`
		SELECT mp.name, mp.final_score, mp.rank
		FROM match_players mp
		WHERE mp.match_id = $1 AND mp.player_id = $2
	`, matchID, playerID).Scan(&stats.PlayerName, &stats.Score, &stats.Rank)
	if err != nil {
		return nil, fmt.Errorf("getting match player: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT
			COUNT(*) as words,
			COALESCE(AVG(reaction_ms), 0) as avg_reaction,
			COALESCE(MIN(reaction_ms), 0) as best_reaction,
			COUNT(*) FILTER (WHERE spin) as spin_words
		FROM word_events
		WHERE match_id = $1 AND player_id = $2
	`, matchID, playerID).Scan(&stats.Words, &stats.AvgReaction, &stats.BestReaction, &stats.SpinWords)
	if err != nil {
		return nil, fmt.Errorf("getting word stats: %w", err)
	}

	var durationSecs float64
	q.DB.QueryRow(`
		SELECT EXTRACT(EPOCH FROM (ended_at - started_at))
		FROM matches WHERE id = $1 AND ended_at IS NOT NULL AND started_at IS NOT NULL
	`, matchID).Scan(&durationSecs)
	if durationSecs > 0 {
		stats.WPM = float64(stats.Words) / durationSecs * 60
	}

	return stats, nil
}

func (q *Queries) GetPlayerLifetimeStats(playerID string) (*PlayerLifetimeStats, error) {
	stats := &PlayerLifetimeStats{
		PlayerID: playerID,
	}

	err := q.DB.QueryRow(`
		SELECT mp.name
		FROM match_players mp
		JOIN matches m ON m.id = mp.match_id
		WHERE mp.player_id = $1
		ORDER BY m.created_at DESC
		LIMIT 1
	`, playerID).Scan(&stats.PlayerName)
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT
			COUNT(*) as matches_played,
			COALESCE(SUM(final_score), 0) as total_score,
			COALESCE(MAX(final_score), 0) as best_match,
			COUNT(*) FILTER (WHERE rank = 1) as win_count
		FROM match_players
		WHERE player_id = $1
	`, playerID).Scan(&stats.MatchesPlayed, &stats.TotalScore, &stats.BestMatch, &stats.WinCount)
	if err != nil {
		return nil, fmt.Errorf("getting lifetime stats: %w", err)
	}

	// Win streak: most recent consecutive first-place finishes.
	rows, err := q.DB.Query(`
		SELECT mp.rank
		FROM match_players mp
		JOIN matches m ON m.id = mp.match_id
		WHERE mp.player_id = $1 AND m.ended_at IS NOT NULL
		ORDER BY m.ended_at DESC
	`, playerID)
	if err != nil {
		return nil, fmt.Errorf("getting win streak: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var rank int
		if err := rows.Scan(&rank); err != nil {
			return nil, err
		}
		if rank == 1 {
			streak++
		} else {
			break
		}
	}
	stats.WinStreak = streak

	return stats, nil
}

func (q *Queries) GetLeaderboard(category string, limit int) ([]LeaderboardEntry, error) {
	var query string
	switch category {
	case "score":
		query = `
			SELECT mp.player_id, MAX(mp.name), COALESCE(SUM(mp.final_score), 0) as value
			FROM match_players mp
			GROUP BY mp.player_id
			ORDER BY value DESC
			LIMIT $1`
	case "wins":
		query = `
			SELECT mp.player_id, MAX(mp.name), COUNT(*) FILTER (WHERE mp.rank = 1) as value
			FROM match_players mp
			GROUP BY mp.player_id
			ORDER BY value DESC
			LIMIT $1`
	case "words":
		query = `
			SELECT we.player_id, MAX(mp.name), COUNT(we.id) as value
			FROM word_events we
			JOIN match_players mp ON mp.match_id = we.match_id AND mp.player_id = we.player_id
			GROUP BY we.player_id
			ORDER BY value DESC
			LIMIT $1`
	case "reaction":
		query = `
			SELECT we.player_id, MAX(mp.name), COALESCE(MIN(we.reaction_ms), 0) as value
			FROM word_events we
			JOIN match_players mp ON mp.match_id = we.match_id AND mp.player_id = we.player_id
			GROUP BY we.player_id
			ORDER BY value ASC
			LIMIT $1`
	case "spins":
		query = `
			SELECT we.player_id, MAX(mp.name), COUNT(*) FILTER (WHERE we.spin) as value
			FROM word_events we
			JOIN match_players mp ON mp.match_id = we.match_id AND mp.player_id = we.player_id
			GROUP BY we.player_id
			ORDER BY value DESC
			LIMIT $1`
	default:
		return nil, fmt.Errorf("unknown leaderboard category: %s", category)
	}

	rows, err := q.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("getting leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Value); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		entries = append(entries, e)
	}
	return entries, nil
}

func (q *Queries) GetMatchRecap(matchID string) (*MatchRecap, error) {
	recap := &MatchRecap{MatchID: matchID}

	err := q.DB.QueryRow(`
		SELECT room_code, mode, started_at, ended_at FROM matches WHERE id = $1
	`, matchID).Scan(&recap.RoomCode, &recap.Mode, &recap.StartedAt, &recap.EndedAt)
	if err != nil {
		return nil, fmt.Errorf("getting match: %w", err)
	}

	rows, err := q.DB.Query(`
		SELECT mp.player_id FROM match_players mp WHERE mp.match_id = $1 ORDER BY mp.rank
	`, matchID)
	if err != nil {
		return nil, fmt.Errorf("getting match players: %w", err)
	}
	defer rows.Close()

	var playerIDs []string
	for rows.Next() {
		var playerID string
		if err := rows.Scan(&playerID); err != nil {
			return nil, err
		}
		playerIDs = append(playerIDs, playerID)
	}

	for _, playerID := range playerIDs {
		stats, err := q.GetPlayerMatchStats(matchID, playerID)
		if err != nil {
			return nil, err
		}
		recap.Players = append(recap.Players, *stats)
	}

	return recap, nil
}
