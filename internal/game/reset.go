package game

import (
	"github.com/wanwish/rainy-words/internal/events"
	"github.com/wanwish/rainy-words/internal/logging"
	"github.com/wanwish/rainy-words/internal/rooms"
)

// ResetLegacy clears the global room back to waiting: timers cancelled,
// scores zeroed, words cleared and ids rewound. Members stay, and a round
// restarts immediately if the quorum still holds.
func (c *Coordinator) ResetLegacy() {
	c.mu.Lock()
	code := c.legacyCode
	c.mu.Unlock()
	if code == "" {
		return
	}
	room := c.rooms.Get(code)
	if room == nil {
		return
	}

	c.resetRoom(room)
	c.cast.ToRoom(room.Code, events.Marshal(events.EvReset, nil))
	room.Lock()
	roster := c.playerList(room)
	room.Unlock()
	c.cast.ToRoom(room.Code, events.Marshal(events.EvPlayerList, roster))
	c.signalRoomList()
	logging.Log.Infof("[Room %s] admin reset", room.Code)

	c.tryStart(room)
}

// ResetAll tears down every room: timers cancelled, members forced back to
// the lobby, rooms deleted, emptied room list broadcast.
func (c *Coordinator) ResetAll() {
	for _, room := range c.rooms.List() {
		c.resetRoom(room)
		c.cast.ToRoom(room.Code, events.Marshal(events.EvReset, nil))
		c.cast.ToRoom(room.Code, events.Marshal(events.EvForceLeave, nil))

		room.Lock()
		members := room.Players.GetList()
		room.Players.Clear()
		room.Closed = true
		room.Unlock()
		for _, p := range members {
			c.cast.SetRoom(p.ID, "")
		}
		c.deleteRoom(room.Code)
		logging.Log.Infof("[Room %s] force-closed by admin", room.Code)
	}
	c.signalRoomList()
}

// resetRoom returns one room to a clean waiting state.
func (c *Coordinator) resetRoom(room *rooms.Room) {
	room.Lock()
	defer room.Unlock()
	c.stopTimers(room.Code)
	room.Running = false
	if c.db != nil && room.MatchID != "" {
		if err := c.db.EndMatch(room.MatchID); err != nil {
			logging.Log.Errorf("[DB] EndMatch: %v", err)
		}
	}
	room.MatchID = ""
	room.Players.ResetScores()
	room.Words.Reset()
}
