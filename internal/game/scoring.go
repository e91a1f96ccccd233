package game

import (
	"time"

	"github.com/wanwish/rainy-words/internal/db"
	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/metrics"
	"github.com/wanwish/rainy-words/internal/words"
)

// Submit judges a typed word. The whole remove-then-credit path runs under
// the room lock, so for any word id exactly one submission can win; the rest
// see the word already gone and fall into the stale branch.
func (c *Coordinator) Submit(connID, roomCode string, req events.TypedRequest) {
	room := c.rooms.Get(roomCode)
	if room == nil {
		metrics.CountSubmission(metrics.ResultStale)
		return
	}

	room.Lock()
	defer room.Unlock()

	if !room.Running || room.Players.Get(connID) == nil {
		metrics.CountSubmission(metrics.ResultStale)
		c.cast.ToConn(connID, events.Marshal(events.EvWordResult, events.WordResult{
			WordID: req.WordID, Correct: false,
		}))
		return
	}

	w, res := room.Words.Claim(req.WordID, req.Text)
	switch res {
	case words.ClaimMissing:
		// Already solved or never existed; expected traffic, never rewarded.
		metrics.CountSubmission(metrics.ResultStale)
		c.cast.ToConn(connID, events.Marshal(events.EvWordResult, events.WordResult{
			WordID: req.WordID, Correct: false,
		}))
	case words.ClaimWrong:
		metrics.CountSubmission(metrics.ResultWrong)
		c.cast.ToConn(connID, events.Marshal(events.EvWordResult, events.WordResult{
			WordID: req.WordID, Correct: false,
		}))
	case words.ClaimOK:
		points := 1
		if w.Spin {
			points = 2
		}
		p := room.Players.UpdateScore(connID, points)

		c.cast.ToRoom(roomCode, events.Marshal(events.EvWordResult, events.WordResult{
			WordID:   req.WordID,
			Correct:  true,
			ScorerID: connID,
			NewScore: p.Score,
		}))
		c.cast.ToRoom(roomCode, events.Marshal(events.EvPlayerList, c.playerList(room)))
		metrics.CountSubmission(metrics.ResultCorrect)
		c.recordWord(room.MatchID, connID, w, points)
	}
}

// recordWord queues the solve for the history writer; drops when the buffer
// is full rather than stalling the round.
func (c *Coordinator) recordWord(matchID, playerID string, w *words.Word, points int) {
	if c.wordBuf == nil || matchID == "" {
		return
	}
	typedAt := time.Now()
	ev := db.WordEvent{
		MatchID:    matchID,
		PlayerID:   playerID,
		WordID:     w.ID,
		Word:       w.Text,
		Spin:       w.Spin,
		Points:     points,
		SpawnedAt:  w.SpawnedAt,
		TypedAt:    typedAt,
		ReactionMs: int(typedAt.Sub(w.SpawnedAt).Milliseconds()),
	}
	select {
	case c.wordBuf <- ev:
	default:
		logging.Log.Warnf("[DB] word buffer full, dropping event")
	}
}
