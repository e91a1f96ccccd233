package game

import (
	"time"

	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/metrics"
	"github.com/wanwish/rainy-words/internal/rooms"
	"github.com/wanwish/rainy-words/internal/scheduler"
	"github.com/wanwish/rainy-words/internal/words"
)

// tryStart fires the session when the room is at quorum and every member
// agrees on mode and duration. On disagreement the room stays waiting and the
// offending dimension is announced.
func (c *Coordinator) tryStart(room *rooms.Room) {
	room.Lock()
	defer room.Unlock()
	c.tryStartLocked(room)
}

// tryStartLocked is the admission path's start decision; it runs in the same
// critical section that admitted the member. Caller holds the room lock.
func (c *Coordinator) tryStartLocked(room *rooms.Room) {
	if room.Running || room.Players.Count() != room.RequiredPlayers {
		return
	}

	members := room.Players.GetList()
	first := members[0]
	for _, p := range members[1:] {
		if p.Mode != first.Mode {
			c.cast.ToRoom(room.Code, events.Marshal(events.EvModeMismatch, events.Mismatch{
				Message: "Players picked different game modes. Agree on one to start.",
			}))
			return
		}
	}
	for _, p := range members[1:] {
		if p.DurationMin != first.DurationMin {
			c.cast.ToRoom(room.Code, events.Marshal(events.EvDurationMismatch, events.Mismatch{
				Message: "Players picked different match lengths. Agree on one to start.",
			}))
			return
		}
	}

	// The legacy global room adopts whatever its members agreed on.
	room.Mode = first.Mode
	room.DurationMin = first.DurationMin

	c.startLocked(room)
}

// startLocked transitions waiting -> running. Caller holds the room lock.
func (c *Coordinator) startLocked(room *rooms.Room) {
	now := time.Now()
	duration := time.Duration(room.DurationMin) * time.Minute
	room.StartAt = now.Add(StartLeadIn)
	room.EndAt = room.StartAt.Add(duration)
	room.Running = true

	if c.db != nil {
		matchID, err := c.db.CreateMatch(room.Code, string(room.Mode), int(duration.Milliseconds()))
		if err != nil {
			logging.Log.Errorf("[DB] CreateMatch: %v", err)
		} else {
			room.MatchID = matchID
		}
	}

	names := make([]string, 0, room.Players.Count())
	for _, p := range room.Players.GetList() {
		names = append(names, p.Name)
	}
	c.cast.ToRoom(room.Code, events.Marshal(events.EvGameStart, events.GameStart{
		RoomID:      room.Code,
		StartAtMs:   room.StartAt.UnixMilli(),
		DurationMin: room.DurationMin,
		EndAtMs:     room.EndAt.UnixMilli(),
		Players:     names,
	}))
	metrics.GamesStarted.Inc()
	logging.Log.Infof("[Room %s] game started: %d players, %dm", room.Code, len(names), room.DurationMin)

	c.setTimers(room.Code,
		scheduler.Every(TickInterval, func() { c.tick(room) }),
		scheduler.Every(c.spawnInterval, func() { c.spawn(room) }),
	)
	c.bus.SignalRoomList()
}

// tick broadcasts the countdown once per second and ends the round at zero.
func (c *Coordinator) tick(room *rooms.Room) {
	room.Lock()
	defer room.Unlock()
	if !room.Running {
		return
	}

	remaining := time.Until(room.EndAt).Milliseconds()
	if remaining < 0 {
		remaining = 0
	}
	c.cast.ToRoom(room.Code, events.Marshal(events.EvTimer, events.Timer{RemainingMs: remaining}))
	if remaining <= 0 {
		c.endLocked(room)
	}
}

// spawn drops the next word into the room. Every spinGap-th word is a
// double-point spin word; the gap is resampled from [5,10] each time so the
// bonus cadence is bounded but not predictable.
func (c *Coordinator) spawn(room *rooms.Room) {
	room.Lock()
	defer room.Unlock()
	if !room.Running {
		return
	}

	room.WordsSinceSpin++
	spin := false
	if room.WordsSinceSpin >= room.SpinGap {
		spin = true
		room.WordsSinceSpin = 0
		room.SpinGap = rooms.RollSpinGap()
	}

	w := room.Words.Spawn(words.Pick(room.Mode), spin)
	c.cast.ToRoom(room.Code, events.Marshal(events.EvNewWord, events.NewWord{
		ID:        w.ID,
		Text:      w.Text,
		SpawnAtMs: w.SpawnedAt.UnixMilli(),
		Spin:      w.Spin,
	}))
	metrics.CountSpawn(spin)
}

// endLocked transitions running -> ended: stops the timers, announces the
// ranking, resets scores for the next round. Idempotent; caller holds the
// room lock. Because the flag flips under the lock, no timer or new_word can
// follow the game_end broadcast for this round.
func (c *Coordinator) endLocked(room *rooms.Room) {
	if !room.Running {
		return
	}
	room.Running = false
	c.stopTimers(room.Code)

	ranked := room.Players.Ranked()
	scores := make([]events.PlayerEntry, 0, len(ranked))
	for _, p := range ranked {
		scores = append(scores, events.PlayerEntry{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	winnerName := "N/A"
	if len(ranked) > 0 {
		winnerName = ranked[0].Name
	}
	c.cast.ToRoom(room.Code, events.Marshal(events.EvGameEnd, events.GameEnd{
		WinnerName: winnerName,
		Scores:     scores,
	}))
	metrics.GamesCompleted.Inc()
	logging.Log.Infof("[Room %s] game ended, winner=%s", room.Code, winnerName)

	if c.db != nil && room.MatchID != "" {
		if err := c.db.EndMatch(room.MatchID); err != nil {
			logging.Log.Errorf("[DB] EndMatch: %v", err)
		}
		for i, p := range ranked {
			if err := c.db.AddMatchPlayer(room.MatchID, p.ID, p.Name, p.Score, i+1); err != nil {
				logging.Log.Errorf("[DB] AddMatchPlayer: %v", err)
			}
		}
	}
	room.MatchID = ""

	// Back to a fresh waiting round.
	room.Players.ResetScores()
	room.Words.Clear()
	c.bus.SignalRoomList()
}
