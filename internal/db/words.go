package db

import (
	"fmt"
	"strings"
	"time"
)

// WordEvent is one correctly typed word, buffered and written in batches.
type WordEvent struct {
	MatchID    string
	PlayerID   string
	WordID     int
	Word       string
	Spin       bool
	Points     int
	SpawnedAt  time.Time
	TypedAt    time.Time
	ReactionMs int
}

// BatchRecordWords inserts a batch of word events in a single statement.
func (d *DB) BatchRecordWords(batch []WordEvent) error {
	if len(batch) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO word_events
		(match_id, player_id, word_id, word, spin, points, spawned_at, typed_at, reaction_ms)
		VALUES `)

	args := make([]any, 0, len(batch)*9)
	for i, ev := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 9
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9)
		args = append(args, ev.MatchID, ev.PlayerID, ev.WordID, ev.Word, ev.Spin,
			ev.Points, ev.SpawnedAt, ev.TypedAt, ev.ReactionMs)
	}

	if _, err := d.conn.Exec(sb.String(), args...); err != nil {
		return fmt.Errorf("batch recording words: %w", err)
	}
	return nil
}
